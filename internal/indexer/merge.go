package indexer

import (
	"slices"

	"fs-indexer/internal/entry"
)

// Merge unions children into parent and returns parent. Keys are disjoint
// when every partial index comes from a distinct subtree; if a path does
// appear twice, the first-inserted entry wins: parent entries beat child
// entries, and earlier children beat later ones. The dropped paths are
// returned in sorted order. The child indexes are not modified.
func Merge(parent entry.Index, children ...entry.Index) (entry.Index, []string) {
	if parent == nil {
		parent = make(entry.Index)
	}

	var duplicates []string
	for _, child := range children {
		for _, e := range child {
			if !parent.Insert(e) {
				duplicates = append(duplicates, e.Path())
			}
		}
	}

	slices.Sort(duplicates)
	return parent, duplicates
}
