// Package explorer keeps a "current directory" on top of the indexer.
//
// An Explorer holds a path and the index of the most recent traversal of
// that path. Navigating (Navigate, Enter, Up, Refresh) always runs a fresh,
// complete traversal; a failed navigation leaves the previous path and
// index in place. Listing splits the current directory's immediate
// children into directories, files and links for presentation.
package explorer
