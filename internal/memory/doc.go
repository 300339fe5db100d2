// Package memory configures the Go runtime memory limit for containerized
// deployments.
//
// Go detects cgroup CPU limits but not memory limits, so GOMEMLIMIT has to
// be set explicitly. An unbounded walk of a very wide tree holds one
// goroutine stack and one partial index per directory, so the server calls
// [ConfigureFromEnv] before anything else to let the garbage collector work
// against the container limit instead of running into an OOM kill.
//
// # Environment Variables
//
//   - GOMEMLIMIT: standard Go variable; when set it wins and is only reported
//   - MEMORY_LIMIT: container memory limit in bytes, usually injected through
//     the Kubernetes Downward API
//   - MEMORY_RATIO: share of MEMORY_LIMIT given to the Go heap, between 0 and
//     1 (default 0.90)
//
// # Kubernetes Configuration
//
//	env:
//	- name: MEMORY_LIMIT
//	  valueFrom:
//	    resourceFieldRef:
//	      resource: limits.memory
package memory
