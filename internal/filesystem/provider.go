package filesystem

import (
	"errors"
	"io/fs"
	"os"

	"fs-indexer/internal/entry"
)

// Provider abstracts the filesystem operations a traversal performs. Every
// method may fail per call; Classify folds failures into entry.KindUnknown.
type Provider interface {
	// ReadDir returns the names of the immediate children of path. On error
	// it returns whatever names were read before the failure.
	ReadDir(path string) ([]string, error)
	// Classify returns the kind of path itself, never of a link target.
	Classify(path string) entry.Kind
	// ReadLink returns the raw target of the link at path.
	ReadLink(path string) (string, error)
	// Exists reports whether anything, including a dangling link, is at path.
	Exists(path string) bool
}

// Local is the host filesystem Provider
type Local struct {
	retry RetryConfig
}

// NewLocal creates a host filesystem provider with the given retry behavior
func NewLocal(config RetryConfig) *Local {
	return &Local{retry: config}
}

var defaultLocal = NewLocal(DefaultRetryConfig())

// Classify classifies path using the default host filesystem provider
func Classify(path string) entry.Kind {
	return defaultLocal.Classify(path)
}

// ReadDir lists the immediate children of path
func (l *Local) ReadDir(path string) ([]string, error) {
	return withRetry("readdir", path, l.retry, func() ([]string, error) {
		dirEntries, err := os.ReadDir(path)
		names := make([]string, 0, len(dirEntries))
		for _, de := range dirEntries {
			names = append(names, de.Name())
		}
		return names, err
	})
}

// Classify returns the kind of path without following links
func (l *Local) Classify(path string) entry.Kind {
	kind, err := withRetry("classify", path, l.retry, func() (entry.Kind, error) {
		if _, err := os.Readlink(path); err == nil {
			return entry.KindLink, nil
		}

		info, err := os.Lstat(path)
		if err != nil {
			return entry.KindUnknown, err
		}
		return kindFromMode(info.Mode()), nil
	})
	if err != nil {
		return entry.KindUnknown
	}
	return kind
}

// ReadLink returns the raw target of the link at path
func (l *Local) ReadLink(path string) (string, error) {
	return withRetry("readlink", path, l.retry, func() (string, error) {
		return os.Readlink(path)
	})
}

// Exists reports whether anything is present at path. Only a definite
// not-exist error counts as absent.
func (l *Local) Exists(path string) bool {
	_, err := withRetry("lstat", path, l.retry, func() (os.FileInfo, error) {
		return os.Lstat(path)
	})
	return err == nil || !errors.Is(err, fs.ErrNotExist)
}

// kindFromMode maps Lstat mode bits to an entry kind
func kindFromMode(mode fs.FileMode) entry.Kind {
	switch {
	case mode&fs.ModeSymlink != 0:
		return entry.KindLink
	case mode.IsDir():
		return entry.KindDirectory
	case mode.IsRegular():
		return entry.KindFile
	default:
		return entry.KindUnknown
	}
}
