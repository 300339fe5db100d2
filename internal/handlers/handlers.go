package handlers

import (
	"fs-indexer/internal/indexer"
	"fs-indexer/internal/startup"
)

// Handlers holds the dependencies shared by every HTTP handler
type Handlers struct {
	indexer *indexer.Indexer
	rootDir string
}

// New creates the HTTP handlers for idx serving config.RootDir
func New(idx *indexer.Indexer, config *startup.Config) *Handlers {
	return &Handlers{
		indexer: idx,
		rootDir: config.RootDir,
	}
}
