package workers

import "runtime"

// ioMultiplier is the number of I/O-bound workers per available CPU
const ioMultiplier = 2.0

// Count returns the number of workers for a workload, scaling GOMAXPROCS
// by multiplier. The result is at least 1 and at most limit (0 = no limit).
func Count(multiplier float64, limit int) int {
	// GOMAXPROCS is automatically set to container CPU limit in Go 1.19+
	available := runtime.GOMAXPROCS(0)

	workers := int(float64(available) * multiplier)

	if workers < 1 {
		workers = 1
	}
	if limit > 0 && workers > limit {
		workers = limit
	}

	return workers
}

// ForIO returns worker count for I/O-bound tasks (2 per CPU).
// The limit parameter caps the maximum number of workers.
func ForIO(limit int) int {
	return Count(ioMultiplier, limit)
}
