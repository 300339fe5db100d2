package filesystem

import (
	"errors"
	"os"
	"sync"
	"syscall"
	"testing"
	"time"
)

// recordingObserver counts observer callbacks per operation
type recordingObserver struct {
	mu         sync.Mutex
	operations map[string]int
	errors     map[string]int
	attempts   map[string]int
	successes  map[string]int
	failures   map[string]int
	stale      map[string]int
}

func newRecordingObserver() *recordingObserver {
	return &recordingObserver{
		operations: make(map[string]int),
		errors:     make(map[string]int),
		attempts:   make(map[string]int),
		successes:  make(map[string]int),
		failures:   make(map[string]int),
		stale:      make(map[string]int),
	}
}

func (o *recordingObserver) ObserveOperation(op string, _ float64, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.operations[op]++
	if err != nil {
		o.errors[op]++
	}
}

func (o *recordingObserver) ObserveRetryAttempt(op string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.attempts[op]++
}

func (o *recordingObserver) ObserveRetrySuccess(op string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.successes[op]++
}

func (o *recordingObserver) ObserveRetryFailure(op string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.failures[op]++
}

func (o *recordingObserver) ObserveStaleError(op string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.stale[op]++
}

// withTestHooks installs a recording observer and a sleep recorder
func withTestHooks(t *testing.T) (*recordingObserver, *[]time.Duration) {
	t.Helper()

	obs := newRecordingObserver()
	var slept []time.Duration

	SetObserver(obs)
	sleep = func(d time.Duration) { slept = append(slept, d) }
	t.Cleanup(func() {
		SetObserver(nil)
		sleep = time.Sleep
	})

	return obs, &slept
}

var staleErr = &os.PathError{Op: "open", Path: "/nfs/x", Err: syscall.ESTALE}

func TestDefaultRetryConfig(t *testing.T) {
	config := DefaultRetryConfig()

	if config.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want 3", config.MaxRetries)
	}
	if config.InitialBackoff != 50*time.Millisecond {
		t.Errorf("InitialBackoff = %v, want 50ms", config.InitialBackoff)
	}
	if config.MaxBackoff != 500*time.Millisecond {
		t.Errorf("MaxBackoff = %v, want 500ms", config.MaxBackoff)
	}
}

func TestIsNFSStaleError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil error", err: nil, want: false},
		{name: "ESTALE error", err: syscall.ESTALE, want: true},
		{name: "wrapped ESTALE", err: staleErr, want: true},
		{name: "ENOENT error", err: syscall.ENOENT, want: false},
		{name: "generic error", err: os.ErrNotExist, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isNFSStaleError(tt.err); got != tt.want {
				t.Errorf("isNFSStaleError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWithRetrySucceedsAfterStaleErrors(t *testing.T) {
	obs, slept := withTestHooks(t)

	calls := 0
	value, err := withRetry("readdir", "/nfs/x", DefaultRetryConfig(), func() (int, error) {
		calls++
		if calls < 3 {
			return 0, staleErr
		}
		return 42, nil
	})

	if err != nil {
		t.Fatalf("Expected success, got %v", err)
	}
	if value != 42 {
		t.Errorf("Expected 42, got %d", value)
	}
	if calls != 3 {
		t.Errorf("Expected 3 calls, got %d", calls)
	}
	if len(*slept) != 2 || (*slept)[0] != 50*time.Millisecond || (*slept)[1] != 100*time.Millisecond {
		t.Errorf("Expected backoff [50ms 100ms], got %v", *slept)
	}
	if obs.successes["readdir"] != 1 {
		t.Errorf("Expected 1 retry success, got %d", obs.successes["readdir"])
	}
	if obs.stale["readdir"] != 2 {
		t.Errorf("Expected 2 stale errors, got %d", obs.stale["readdir"])
	}
	if obs.operations["readdir"] != 1 || obs.errors["readdir"] != 0 {
		t.Errorf("Expected one successful operation, got %d ops %d errors",
			obs.operations["readdir"], obs.errors["readdir"])
	}
}

func TestWithRetryGivesUp(t *testing.T) {
	obs, slept := withTestHooks(t)

	config := RetryConfig{MaxRetries: 4, InitialBackoff: 100 * time.Millisecond, MaxBackoff: 250 * time.Millisecond}
	calls := 0
	_, err := withRetry("readlink", "/nfs/x", config, func() (string, error) {
		calls++
		return "", staleErr
	})

	if !errors.Is(err, syscall.ESTALE) {
		t.Fatalf("Expected ESTALE, got %v", err)
	}
	if calls != 5 {
		t.Errorf("Expected 5 calls, got %d", calls)
	}

	expected := []time.Duration{100 * time.Millisecond, 200 * time.Millisecond, 250 * time.Millisecond, 250 * time.Millisecond}
	if len(*slept) != len(expected) {
		t.Fatalf("Expected %d sleeps, got %v", len(expected), *slept)
	}
	for i, d := range expected {
		if (*slept)[i] != d {
			t.Errorf("Sleep %d: expected %v, got %v", i, d, (*slept)[i])
		}
	}
	if obs.failures["readlink"] != 1 {
		t.Errorf("Expected 1 retry failure, got %d", obs.failures["readlink"])
	}
	if obs.attempts["readlink"] != 4 {
		t.Errorf("Expected 4 retry attempts, got %d", obs.attempts["readlink"])
	}
}

func TestWithRetryDoesNotRetryOtherErrors(t *testing.T) {
	obs, slept := withTestHooks(t)

	calls := 0
	partial, err := withRetry("readdir", "/x", DefaultRetryConfig(), func() ([]string, error) {
		calls++
		return []string{"a"}, os.ErrPermission
	})

	if !errors.Is(err, os.ErrPermission) {
		t.Fatalf("Expected permission error, got %v", err)
	}
	if calls != 1 {
		t.Errorf("Expected a single call, got %d", calls)
	}
	if len(*slept) != 0 {
		t.Errorf("Expected no backoff, got %v", *slept)
	}
	if len(partial) != 1 {
		t.Errorf("Expected partial result to be returned, got %v", partial)
	}
	if obs.errors["readdir"] != 1 {
		t.Errorf("Expected 1 operation error, got %d", obs.errors["readdir"])
	}
}

func TestObserveWithoutObserver(t *testing.T) {
	SetObserver(nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("withRetry panicked without observer: %v", r)
		}
	}()

	if _, err := withRetry("lstat", "/x", DefaultRetryConfig(), func() (bool, error) { return true, nil }); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}
