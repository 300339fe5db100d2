// Package main provides the entry point for the fs-indexer HTTP service.
//
// The service indexes a directory tree on request and serves the result as
// a snapshot document. Every request walks the filesystem again; nothing is
// cached between requests.
//
// # Application Lifecycle
//
//  1. Configuration Loading: reads CONFIG_FILE and the environment
//  2. Memory Limit: GOMEMLIMIT from MEMORY_LIMIT (see internal/memory)
//  3. Metrics Wiring: attaches the Prometheus filesystem observer
//  4. Indexer Initialization: local filesystem provider with NFS retry
//  5. HTTP Server Setup: routes, logging, metrics and compression middleware
//  6. Graceful Shutdown: handles SIGINT/SIGTERM
//
// # HTTP Server
//
// The application runs two HTTP servers:
//
//  1. Main Server (default port 8080):
//     - GET /api/index?path=&kind=&format=
//     - GET /api/children/{path}
//     - GET /health, /healthz, /livez, /version
//
//  2. Metrics Server (default port 9090, optional):
//     - Prometheus metrics endpoint (/metrics)
//     - Health check endpoint (/health)
//
// # Environment Variables
//
//   - ROOT_DIR: directory served by the API (default: /data)
//   - PORT: main HTTP server port (default: 8080)
//   - METRICS_PORT: metrics server port (default: 9090)
//   - METRICS_ENABLED: enable metrics server (default: true)
//   - INDEX_WORKERS: walk concurrency limit, "auto" or 0 for unbounded
//   - LOG_LEVEL: logging level (debug/info/warn/error)
//   - LOG_HEALTH_CHECKS: log health check requests (default: true)
//   - CONFIG_FILE: optional YAML file, overridden by the environment
//   - MEMORY_LIMIT, MEMORY_RATIO: derive GOMEMLIMIT from the container limit
//
// For offline use see the fsindex command in cmd/fsindex.
package main
