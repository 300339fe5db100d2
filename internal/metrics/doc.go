// Package metrics provides Prometheus instrumentation for the filesystem indexer.
//
// All metrics are prefixed with "fs_indexer_" to avoid naming collisions with
// other applications.
//
// # Metric Categories
//
// ## HTTP Metrics
//
// Track API request performance and error rates:
//   - HTTPRequestsTotal: Counter of total requests by method, path, and status
//   - HTTPRequestDuration: Histogram of request duration by method and path
//   - HTTPRequestsInFlight: Gauge of currently processing requests
//
// ## Indexer Metrics
//
// Track traversals:
//   - IndexerRunsTotal: Counter of index calls by status (success, error, canceled)
//   - IndexerRunDuration: Histogram of traversal duration
//   - IndexerLastRunEntries: Gauge of entries by kind produced by the last run
//   - IndexerSkippedEntries: Counter of entries omitted by failing operation
//   - IndexerDuplicatePaths: Counter of paths dropped by the first-wins merge
//
// ## Walk Task Metrics
//
// Track the fan-out:
//   - WalkTasksSpawned: Counter of sub-directory walks by mode (goroutine, inline)
//   - WalkTasksInFlight: Gauge of walk goroutines currently running
//   - WalkConcurrencyLimit: Gauge of the configured limit (0 = unbounded)
//
// ## Filesystem Metrics
//
// Track provider operations and NFS resilience:
//   - FilesystemOperationDuration / FilesystemOperationErrors by operation
//   - FilesystemRetryAttempts / Success / Failures and FilesystemStaleErrors
//
// # Usage
//
// Metrics register themselves with the default registry through promauto.
// Call InitializeMetrics once at startup so every label combination is
// exported from the first scrape, and install NewFilesystemObserver with
// filesystem.SetObserver.
package metrics
