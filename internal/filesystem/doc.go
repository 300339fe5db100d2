/*
Package filesystem is the indexer's view of the host filesystem.

# Provider

The walker never touches the os package directly. It goes through a
Provider, which supports exactly the operations a traversal needs:

  - ReadDir: list the names of the immediate children of a directory
  - Classify: decide whether a path is a directory, file, link or unknown
  - ReadLink: read the raw target of a symbolic link
  - Exists: check whether anything is present at a path

Local implements Provider on the host filesystem. Tests substitute an
in-memory Provider to inject failures that are hard to produce on disk.

# Classification

Classify is a pure query and never returns an error. A path is a link when a
link-read probe succeeds, which keeps dangling links classified as links.
Otherwise the Lstat mode decides: directory, regular file, or unknown.
Anything that cannot be stat'd (vanished, permission denied) is unknown.
Link targets are never followed, so a symlink to a directory is a link.

# Retry Behavior

Every Local operation retries NFS stale file handle errors (ESTALE, errno
116) with exponential backoff:
  - MaxRetries: 3 attempts
  - InitialBackoff: 50ms
  - MaxBackoff: 500ms

All other errors fail immediately.

# Metrics

Operations are reported to the package-level Observer, set once at startup
with SetObserver. The metrics package provides the Prometheus-backed
implementation; without one, reporting is skipped.
*/
package filesystem
