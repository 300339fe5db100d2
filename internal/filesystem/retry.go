package filesystem

import (
	"errors"
	"syscall"
	"time"

	"fs-indexer/internal/logging"
)

// RetryConfig configures retry behavior for filesystem operations
type RetryConfig struct {
	MaxRetries     int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// DefaultRetryConfig returns sensible defaults for NFS retry behavior
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:     3,
		InitialBackoff: 50 * time.Millisecond,
		MaxBackoff:     500 * time.Millisecond,
	}
}

// isNFSStaleError checks if an error is an NFS stale file handle error
func isNFSStaleError(err error) bool {
	if err == nil {
		return false
	}

	// Check for ESTALE (stale file handle) - errno 116 on Linux
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno == syscall.ESTALE
	}

	return false
}

// sleep is replaced in tests
var sleep = time.Sleep

// withRetry runs fn, retrying NFS stale file handle errors with capped
// exponential backoff. The value of the last attempt is returned even on
// error so callers can keep partial results.
func withRetry[T any](operation, path string, config RetryConfig, fn func() (T, error)) (T, error) {
	start := time.Now()
	obs := observe()
	backoff := config.InitialBackoff

	var (
		value   T
		lastErr error
	)

	for attempt := 0; attempt <= config.MaxRetries; attempt++ {
		value, lastErr = fn()
		if lastErr == nil {
			if attempt > 0 {
				logging.Info("NFS %s succeeded on retry %d for %s", operation, attempt, path)
				obs.ObserveRetrySuccess(operation)
			}
			obs.ObserveOperation(operation, time.Since(start).Seconds(), nil)
			return value, nil
		}

		// Only retry on NFS stale file handle errors
		if !isNFSStaleError(lastErr) {
			obs.ObserveOperation(operation, time.Since(start).Seconds(), lastErr)
			return value, lastErr
		}

		obs.ObserveStaleError(operation)

		// Don't sleep after the last attempt
		if attempt < config.MaxRetries {
			obs.ObserveRetryAttempt(operation)
			logging.Debug("NFS %s stale file handle for %s, retrying in %v (attempt %d/%d)",
				operation, path, backoff, attempt+1, config.MaxRetries)
			sleep(backoff)

			backoff *= 2
			if backoff > config.MaxBackoff {
				backoff = config.MaxBackoff
			}
		}
	}

	logging.Warn("NFS %s failed after %d retries for %s: %v", operation, config.MaxRetries, path, lastErr)
	obs.ObserveRetryFailure(operation)
	obs.ObserveOperation(operation, time.Since(start).Seconds(), lastErr)
	return value, lastErr
}
