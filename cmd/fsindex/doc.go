// Command fsindex indexes a directory tree once and prints the snapshot.
//
// Usage:
//
//	fsindex [flags]
//
// Flags:
//
//	-root PATH       directory to index (default: current directory)
//	-format FORMAT   json or yaml (default: yaml on a terminal, json otherwise)
//	-kind KIND       all, directories, files or links (default: all)
//	-workers N       walk concurrency: N, auto, or 0 for unbounded
//	                 (default: INDEX_WORKERS)
//	-show-skips      print every skipped entry to stderr
//	-v               log traversal warnings to stderr
//
// The snapshot goes to stdout and nothing is written to disk. Skipped
// entries are always part of the snapshot; -show-skips additionally lists
// them on stderr.
//
// Exit status is 0 on success, 1 when the root cannot be indexed or the
// traversal was interrupted, and 2 on invalid flags. An interrupted
// traversal still prints the partial snapshot.
package main
