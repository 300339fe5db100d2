package entry

import (
	"os"
	"path/filepath"
	"slices"
)

// Entry is a single node of an Index. The zero value is an Unknown entry with
// no path and is never stored in an Index.
type Entry struct {
	kind     Kind
	path     string
	target   string
	children []string
}

// NewDirectory creates a directory entry. Names are de-duplicated and stored
// sorted; a nil or empty slice yields an empty, non-nil child set.
func NewDirectory(path string, names []string) Entry {
	children := make([]string, 0, len(names))
	children = append(children, names...)
	slices.Sort(children)
	children = slices.Compact(children)

	return Entry{
		kind:     KindDirectory,
		path:     path,
		children: children,
	}
}

// NewFile creates a file entry
func NewFile(path string) Entry {
	return Entry{kind: KindFile, path: path}
}

// NewLink creates a link entry. The target is kept exactly as read from the
// link; it may be relative, absolute or dangling.
func NewLink(path, target string) Entry {
	return Entry{kind: KindLink, path: path, target: target}
}

// Kind returns the entry variant
func (e Entry) Kind() Kind {
	return e.kind
}

// Path returns the absolute path of the entry
func (e Entry) Path() string {
	return e.path
}

// Name returns the last element of the path. For a filesystem root the path
// itself is returned.
func (e Entry) Name() string {
	name := filepath.Base(e.path)
	if name == string(filepath.Separator) || name == "." {
		return e.path
	}
	return name
}

// Parent returns the path of the directory containing the entry. A
// filesystem root is its own parent.
func (e Entry) Parent() string {
	return filepath.Dir(e.path)
}

// Target returns the raw link target. ok is false for non-links.
func (e Entry) Target() (target string, ok bool) {
	if e.kind != KindLink {
		return "", false
	}
	return e.target, true
}

// Children returns a copy of the child names in sorted order. Non-directories
// return nil.
func (e Entry) Children() []string {
	if e.kind != KindDirectory {
		return nil
	}
	return slices.Clone(e.children)
}

// HasChildren reports whether a directory has at least one child
func (e Entry) HasChildren() bool {
	return len(e.children) > 0
}

// HasChild reports whether name is one of the directory's children
func (e Entry) HasChild(name string) bool {
	_, found := slices.BinarySearch(e.children, name)
	return found
}

// ChildPaths returns the absolute path of every child, in name order
func (e Entry) ChildPaths() []string {
	if e.kind != KindDirectory {
		return nil
	}
	paths := make([]string, len(e.children))
	for i, name := range e.children {
		paths[i] = filepath.Join(e.path, name)
	}
	return paths
}

// Metadata returns the current on-disk metadata of the entry's path. Links are
// not followed, so a dangling link still reports its own metadata.
func (e Entry) Metadata() (os.FileInfo, error) {
	return os.Lstat(e.path)
}

// Equal reports whether two entries have the same variant, path and
// kind-specific attributes.
func (e Entry) Equal(other Entry) bool {
	return e.kind == other.kind &&
		e.path == other.path &&
		e.target == other.target &&
		slices.Equal(e.children, other.children)
}
