package entry

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
)

// Index maps an absolute path to exactly one Entry. It is the sole owner of
// every entry produced by a traversal.
type Index map[string]Entry

// Insert adds e under its path. The first entry stored for a path wins: if
// the path is already present the index is left untouched and Insert returns
// false.
func (idx Index) Insert(e Entry) bool {
	if _, exists := idx[e.path]; exists {
		return false
	}
	idx[e.path] = e
	return true
}

// Get returns the entry stored for path
func (idx Index) Get(path string) (Entry, bool) {
	e, ok := idx[path]
	return e, ok
}

// Filter returns a new Index holding only entries of the given kind
func (idx Index) Filter(kind Kind) Index {
	out := make(Index)
	for path, e := range idx {
		if e.kind == kind {
			out[path] = e
		}
	}
	return out
}

// Directories returns the directory subset of the index
func (idx Index) Directories() Index {
	return idx.Filter(KindDirectory)
}

// Files returns the file subset of the index
func (idx Index) Files() Index {
	return idx.Filter(KindFile)
}

// Links returns the link subset of the index
func (idx Index) Links() Index {
	return idx.Filter(KindLink)
}

// Paths returns every key in sorted order
func (idx Index) Paths() []string {
	paths := make([]string, 0, len(idx))
	for path := range idx {
		paths = append(paths, path)
	}
	slices.Sort(paths)
	return paths
}

// Children resolves the children of the directory at dirPath through the
// index. Names that do not resolve are left out. The result is in name order.
func (idx Index) Children(dirPath string) []Entry {
	dir, ok := idx[dirPath]
	if !ok || dir.kind != KindDirectory {
		return nil
	}

	children := make([]Entry, 0, len(dir.children))
	for _, childPath := range dir.ChildPaths() {
		if child, ok := idx[childPath]; ok {
			children = append(children, child)
		}
	}
	return children
}

// Counts returns the number of directories, files and links in the index
func (idx Index) Counts() (directories, files, links int) {
	for _, e := range idx {
		switch e.kind {
		case KindDirectory:
			directories++
		case KindFile:
			files++
		case KindLink:
			links++
		}
	}
	return directories, files, links
}

// Equal reports whether both indexes have the same key set and equal entries
func (idx Index) Equal(other Index) bool {
	if len(idx) != len(other) {
		return false
	}
	for path, e := range idx {
		o, ok := other[path]
		if !ok || !e.Equal(o) {
			return false
		}
	}
	return true
}

// Validate checks the structural invariants of the index:
//   - every key equals the path of the entry stored under it
//   - every child name of a directory resolves to an entry whose parent is
//     that directory
//   - every entry whose parent directory is indexed is listed among that
//     directory's children
//
// All violations are reported together.
func (idx Index) Validate() error {
	var errs []error

	for _, key := range idx.Paths() {
		e := idx[key]
		if e.path != key {
			errs = append(errs, fmt.Errorf("entry %q stored under key %q", e.path, key))
			continue
		}
		if e.kind == KindUnknown {
			errs = append(errs, fmt.Errorf("entry %q has unknown kind", key))
		}

		for _, name := range e.children {
			if name == "" || name == "." || name == ".." || filepath.Base(name) != name {
				errs = append(errs, fmt.Errorf("directory %q has invalid child name %q", key, name))
				continue
			}
			if _, ok := idx[filepath.Join(key, name)]; !ok {
				errs = append(errs, fmt.Errorf("directory %q lists missing child %q", key, name))
			}
		}

		parentPath := e.Parent()
		if parentPath == key {
			continue
		}
		if parent, ok := idx[parentPath]; ok && parent.kind == KindDirectory && !parent.HasChild(e.Name()) {
			errs = append(errs, fmt.Errorf("entry %q is not listed by its parent %q", key, parentPath))
		}
	}

	return errors.Join(errs...)
}
