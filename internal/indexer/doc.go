// Package indexer builds an in-memory index of a filesystem subtree.
//
// A traversal starts at a root directory and produces an entry.Index keyed
// by absolute path, covering every directory, file and symbolic link beneath
// the root:
//   - Directories are recursed into; their child names are recorded once the
//     whole subtree has been walked
//   - Files become leaf entries
//   - Links become leaf entries carrying the raw link target; they are never
//     followed, so link cycles cannot cause infinite recursion
//   - Anything else (sockets, devices, vanished paths) is skipped
//
// The walker fans out one goroutine per sub-directory. By default the fan-out
// is unbounded; WalkerConfig.MaxConcurrency (or INDEX_WORKERS) caps the number
// of walk goroutines, in which case sub-directories that find no free slot are
// walked by their parent once it has finished listing. Either way siblings are
// joined in the order they were discovered and each goroutine owns its partial
// index, so no lock guards the index itself.
//
// Failures below the root never abort a traversal. An unreadable directory is
// indexed with no children, an unreadable link is omitted, and each of these
// is reported as a Skip on the Result alongside a warning through the
// injected logger. Only root preconditions fail the call: ErrPathDoesNotExist
// and ErrNotADirectory.
//
// There is no incremental re-indexing, watching or caching: every call is a
// fresh traversal and returns a new index.
package indexer
