package explorer

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"fs-indexer/internal/entry"
	"fs-indexer/internal/indexer"
)

// Listing is the immediate content of a directory, each slice sorted by name
type Listing struct {
	Directories []entry.Entry
	Files       []entry.Entry
	Links       []Link
}

// Link is a link entry together with the kind of what it points to
type Link struct {
	entry.Entry
	// TargetKind is KindDirectory or KindFile, or KindUnknown for a
	// dangling link or a special file
	TargetKind entry.Kind
}

// TargetKind reports the kind of whatever path resolves to, following
// links. Traversals never do this; it only decides whether a link can be
// entered.
func TargetKind(path string) entry.Kind {
	info, err := os.Stat(path)
	if err != nil {
		return entry.KindUnknown
	}
	switch {
	case info.IsDir():
		return entry.KindDirectory
	case info.Mode().IsRegular():
		return entry.KindFile
	default:
		return entry.KindUnknown
	}
}

// Len returns the total number of entries in the listing
func (l Listing) Len() int {
	return len(l.Directories) + len(l.Files) + len(l.Links)
}

// Explorer tracks a current directory and its index. It is safe for
// concurrent use; navigations are serialized.
type Explorer struct {
	indexer *indexer.Indexer

	mu     sync.RWMutex
	path   string
	result *indexer.Result
}

// New indexes path and returns an Explorer positioned there
func New(ctx context.Context, idx *indexer.Indexer, path string) (*Explorer, error) {
	e := &Explorer{indexer: idx}
	if err := e.Navigate(ctx, path); err != nil {
		return nil, err
	}
	return e, nil
}

// Path returns the current directory
func (e *Explorer) Path() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.path
}

// Result returns the traversal of the current directory
func (e *Explorer) Result() *indexer.Result {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.result
}

// Navigate moves to path and indexes it. A canceled traversal counts as a
// failure.
func (e *Explorer) Navigate(ctx context.Context, path string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.navigateLocked(ctx, path)
}

// Enter moves to a path relative to the current directory. A link to a
// directory is followed and the explorer moves to the resolved directory.
func (e *Explorer) Enter(ctx context.Context, rel string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	target := rel
	if !filepath.IsAbs(rel) {
		target = filepath.Join(e.path, rel)
	}

	if info, err := os.Lstat(target); err == nil && info.Mode()&os.ModeSymlink != 0 &&
		TargetKind(target) == entry.KindDirectory {
		resolved, err := filepath.EvalSymlinks(target)
		if err != nil {
			return err
		}
		target = resolved
	}

	return e.navigateLocked(ctx, target)
}

// Up moves to the parent of the current directory. At a filesystem root
// it re-indexes the root.
func (e *Explorer) Up(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	parent := filepath.Dir(e.path)
	if resolved, err := filepath.EvalSymlinks(parent); err == nil {
		parent = resolved
	}
	return e.navigateLocked(ctx, parent)
}

// Refresh re-indexes the current directory
func (e *Explorer) Refresh(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.navigateLocked(ctx, e.path)
}

func (e *Explorer) navigateLocked(ctx context.Context, path string) error {
	result, err := e.indexer.Index(ctx, path)
	if err != nil {
		return err
	}
	e.path = result.Root
	e.result = result
	return nil
}

// Listing returns the immediate children of the current directory
func (e *Explorer) Listing() Listing {
	e.mu.RLock()
	defer e.mu.RUnlock()

	var l Listing
	if e.result == nil {
		return l
	}

	for _, child := range e.result.Entries.Children(e.path) {
		switch child.Kind() {
		case entry.KindDirectory:
			l.Directories = append(l.Directories, child)
		case entry.KindFile:
			l.Files = append(l.Files, child)
		case entry.KindLink:
			l.Links = append(l.Links, Link{Entry: child, TargetKind: TargetKind(child.Path())})
		}
	}
	return l
}
