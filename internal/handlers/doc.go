// Package handlers provides HTTP request handlers for the indexer API.
//
// It includes handlers for:
//   - Snapshot documents of a fresh traversal (/api/index)
//   - Immediate children of a directory (/api/children/{path})
//   - Health checks and build information
//   - The Prometheus metrics endpoint
//
// Request paths are resolved below the configured root directory; a path
// can never escape it.
package handlers
