package metrics

// Label values shared with the packages that record them
var (
	fsOperations = []string{"readdir", "classify", "readlink", "lstat"}
	skipOps      = []string{"readdir", "readlink", "classify", "walk"}
	entryKinds   = []string{"directory", "file", "link"}
	runStatuses  = []string{"success", "error", "canceled"}
	walkModes    = []string{"goroutine", "inline"}
)

// InitializeMetrics pre-populates all expected label combinations so that
// every metric is exported from the first Prometheus scrape.
// Call this once at startup after metric registration.
func InitializeMetrics() {
	for _, op := range fsOperations {
		FilesystemOperationDuration.WithLabelValues(op)
		FilesystemOperationErrors.WithLabelValues(op)
		FilesystemRetryAttempts.WithLabelValues(op)
		FilesystemRetrySuccess.WithLabelValues(op)
		FilesystemRetryFailures.WithLabelValues(op)
		FilesystemStaleErrors.WithLabelValues(op)
	}

	for _, op := range skipOps {
		IndexerSkippedEntries.WithLabelValues(op)
	}

	for _, kind := range entryKinds {
		IndexerLastRunEntries.WithLabelValues(kind)
	}

	for _, status := range runStatuses {
		IndexerRunsTotal.WithLabelValues(status)
	}

	for _, mode := range walkModes {
		WalkTasksSpawned.WithLabelValues(mode)
	}
}
