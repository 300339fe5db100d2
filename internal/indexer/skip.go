package indexer

import (
	"errors"
	"fmt"
)

// Operations recorded on a Skip
const (
	OpReadDir  = "readdir"
	OpReadLink = "readlink"
	OpClassify = "classify"
	OpWalk     = "walk"
)

var (
	// ErrUnknownKind marks an entry that is neither directory, file nor link
	ErrUnknownKind = errors.New("entry is not a directory, file or link")
	// ErrInvalidName marks a child name that cannot be joined under its parent
	ErrInvalidName = errors.New("invalid entry name")
)

// Skip records an entry that was omitted, or a directory that was indexed
// without (all of) its children, because an operation on it failed.
type Skip struct {
	Path string
	Op   string
	Err  error
}

func (s Skip) Error() string {
	return fmt.Sprintf("%s %s: %v", s.Op, s.Path, s.Err)
}

func (s Skip) Unwrap() error {
	return s.Err
}
