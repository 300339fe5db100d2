package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fs_indexer_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fs_indexer_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fs_indexer_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)
)

// Indexer metrics
var (
	IndexerRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fs_indexer_indexer_runs_total",
			Help: "Total number of index calls by outcome",
		},
		[]string{"status"}, // "success", "error", "canceled"
	)

	IndexerRunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fs_indexer_indexer_run_duration_seconds",
			Help:    "Duration of a full traversal in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30, 60, 300},
		},
	)

	IndexerLastRunTimestamp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fs_indexer_indexer_last_run_timestamp",
			Help: "Unix timestamp of the last completed traversal",
		},
	)

	IndexerLastRunEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "fs_indexer_indexer_last_run_entries",
			Help: "Number of entries produced by the last traversal",
		},
		[]string{"kind"}, // "directory", "file", "link"
	)

	IndexerSkippedEntries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fs_indexer_indexer_skipped_entries_total",
			Help: "Total number of entries omitted from an index",
		},
		[]string{"op"}, // "readdir", "readlink", "classify", "walk"
	)

	IndexerDuplicatePaths = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fs_indexer_indexer_duplicate_paths_total",
			Help: "Total number of duplicate paths dropped while merging partial indexes",
		},
	)
)

// Walk task metrics
var (
	WalkTasksSpawned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fs_indexer_walk_tasks_total",
			Help: "Total number of sub-directory walks by execution mode",
		},
		[]string{"mode"}, // "goroutine", "inline"
	)

	WalkTasksInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fs_indexer_walk_tasks_in_flight",
			Help: "Number of walk goroutines currently running",
		},
	)

	WalkConcurrencyLimit = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fs_indexer_walk_concurrency_limit",
			Help: "Configured maximum number of walk goroutines (0 = unbounded)",
		},
	)
)

// Filesystem metrics
var (
	FilesystemOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fs_indexer_filesystem_operation_duration_seconds",
			Help:    "Duration of filesystem provider operations in seconds",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"operation"},
	)

	FilesystemOperationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fs_indexer_filesystem_operation_errors_total",
			Help: "Total number of failed filesystem provider operations",
		},
		[]string{"operation"},
	)

	FilesystemRetryAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fs_indexer_filesystem_retry_attempts_total",
			Help: "Total number of retries after NFS stale file handle errors",
		},
		[]string{"operation"},
	)

	FilesystemRetrySuccess = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fs_indexer_filesystem_retry_success_total",
			Help: "Total number of operations that succeeded after retrying",
		},
		[]string{"operation"},
	)

	FilesystemRetryFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fs_indexer_filesystem_retry_failures_total",
			Help: "Total number of operations that failed after exhausting retries",
		},
		[]string{"operation"},
	)

	FilesystemStaleErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fs_indexer_filesystem_stale_errors_total",
			Help: "Total number of NFS stale file handle errors observed",
		},
		[]string{"operation"},
	)
)
