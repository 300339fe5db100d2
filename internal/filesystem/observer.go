package filesystem

import "sync/atomic"

// Observer records filesystem operation metrics. Implementations are provided
// by the metrics package to break the import cycle between filesystem and metrics.
type Observer interface {
	// ObserveOperation records duration and error status for a filesystem operation.
	// operation is one of "readdir", "classify", "readlink", "lstat".
	ObserveOperation(operation string, durationSeconds float64, err error)

	// Retry-specific metrics for NFS resilience.
	ObserveRetryAttempt(operation string)
	ObserveRetrySuccess(operation string)
	ObserveRetryFailure(operation string)
	ObserveStaleError(operation string)
}

type observerBox struct {
	observer Observer
}

// defaultObserver is the package-level observer set at startup.
var defaultObserver atomic.Value

// SetObserver sets the package-level metrics observer.
// Call this once at startup after creating the observer implementation.
func SetObserver(o Observer) {
	defaultObserver.Store(observerBox{observer: o})
}

// observe returns the package-level observer, or a no-op one when unset.
func observe() Observer {
	if box, ok := defaultObserver.Load().(observerBox); ok && box.observer != nil {
		return box.observer
	}
	return noopObserver{}
}

type noopObserver struct{}

func (noopObserver) ObserveOperation(string, float64, error) {}
func (noopObserver) ObserveRetryAttempt(string)              {}
func (noopObserver) ObserveRetrySuccess(string)              {}
func (noopObserver) ObserveRetryFailure(string)              {}
func (noopObserver) ObserveStaleError(string)                {}
