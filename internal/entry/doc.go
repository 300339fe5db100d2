// Package entry defines the nodes produced by a filesystem traversal and the
// Index that owns them.
//
// An Entry is one of three shapes:
//   - Directory: an absolute path plus the set of its immediate child names
//   - File: an absolute path
//   - Link: an absolute path plus the raw, uncanonicalized link target
//
// Directories reference their children by name, never by pointer. The Index
// is the single owner of every Entry, keyed by absolute path, and a child is
// resolved by joining the directory path with the child name and looking the
// result up in the Index. This keeps the structure acyclic regardless of what
// the filesystem looks like.
//
// Entries are immutable once constructed. An Index is replaced wholesale on
// every traversal; there is no incremental update.
package entry
