/*
Package workers sizes worker pools in containerized environments.

runtime.NumCPU reports the host's CPU count, while GOMAXPROCS follows the
container CPU limit (Go 1.19+). A pod limited to 2 CPUs on a 64-core node
should not start 64 walkers:

	// Wrong: returns 64
	n := runtime.NumCPU()

	// Correct: returns 2
	n := runtime.GOMAXPROCS(0)

Count scales GOMAXPROCS by a workload multiplier and caps the result:

	// 3 workers per CPU, maximum of 24
	n := workers.Count(3.0, 24)

ForIO applies the I/O-bound multiplier of 2 workers per CPU, which suits
directory walks that spend most of their time blocked in readdir and lstat:

	n := workers.ForIO(64)

The indexer uses ForIO when INDEX_WORKERS is set to "auto".
*/
package workers
