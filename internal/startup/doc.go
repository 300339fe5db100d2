// Package startup handles application initialization, configuration loading,
// and startup/shutdown logging.
//
// # Configuration
//
// Configuration is loaded by [LoadConfig] from an optional YAML file named by
// CONFIG_FILE, then from environment variables, which take precedence:
//
//   - ROOT_DIR: Directory indexed when a request names no path (default: /data)
//   - PORT: HTTP server port (default: 8080)
//   - METRICS_PORT: Prometheus metrics server port (default: 9090)
//   - METRICS_ENABLED: Enable or disable metrics server (default: true)
//   - INDEX_WORKERS: Maximum walk goroutines; empty or 0 is unbounded, "auto"
//     sizes from GOMAXPROCS (default: unbounded)
//   - LOG_LEVEL: Logging level - debug, info, warn, error (default: info)
//   - LOG_HEALTH_CHECKS: Log health check requests (default: true)
//
// The YAML file uses the same settings in snake case:
//
//	root_dir: /srv/share
//	port: "8080"
//	metrics_enabled: false
//	index_workers: auto
//
// # Build Information
//
// Build-time variables are injected via ldflags and exposed via [GetBuildInfo]:
//   - Version: Application version
//   - Commit: Git commit hash
//   - BuildTime: Build timestamp
//   - GoVersion: Go compiler version
//
// # Lifecycle Logging
//
//   - [LogIndexerInit]: Indexer concurrency settings
//   - [LogHTTPRoutes]: Registered HTTP routes (debug level)
//   - [LogServerStarted]: Server endpoints and startup duration
//   - [LogShutdownInitiated]: Graceful shutdown start
//   - [LogShutdownComplete]: Shutdown completion
package startup
