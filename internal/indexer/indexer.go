package indexer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"fs-indexer/internal/entry"
	"fs-indexer/internal/filesystem"
	"fs-indexer/internal/logging"
	"fs-indexer/internal/metrics"
)

// Root precondition failures. Index wraps them in an *fs.PathError, so
// errors.Is works against both these and the fs package sentinels.
var (
	ErrPathDoesNotExist = errors.New("path does not exist")
	ErrNotADirectory    = errors.New("not a directory")
)

// Result is the outcome of one traversal
type Result struct {
	// Root is the absolute, cleaned path that was indexed
	Root string `json:"root"`
	// Entries holds every indexed entry keyed by absolute path
	Entries entry.Index `json:"-"`
	// Skips lists everything omitted or partially indexed, sorted by path
	Skips []Skip `json:"-"`
	// Duplicates lists paths dropped by the first-wins merge
	Duplicates []string      `json:"duplicates,omitempty"`
	Stats      Stats         `json:"stats"`
	Duration   time.Duration `json:"duration"`
}

// Indexer is the entry point for traversals. It holds no traversal state
// between calls: every Index call walks the tree from scratch and returns a
// new Result. It is safe for concurrent use.
type Indexer struct {
	provider  filesystem.Provider
	logger    logging.Logger
	walker    *Walker
	startTime time.Time

	activeRuns atomic.Int64
	totalRuns  atomic.Int64

	lastMu     sync.RWMutex
	lastRun    time.Time
	lastRoot   string
	lastStats  Stats
	lastErrMsg string
}

// HealthStatus contains health check information.
type HealthStatus struct {
	Ready          bool      `json:"ready"`
	Indexing       bool      `json:"indexing"`
	ActiveRuns     int64     `json:"activeRuns"`
	TotalRuns      int64     `json:"totalRuns"`
	StartTime      time.Time `json:"startTime"`
	Uptime         string    `json:"uptime"`
	LastIndexed    time.Time `json:"lastIndexed,omitempty"`
	LastRoot       string    `json:"lastRoot,omitempty"`
	LastStats      *Stats    `json:"lastStats,omitempty"`
	LastError      string    `json:"lastError,omitempty"`
	MaxConcurrency int       `json:"maxConcurrency"`
}

// New creates an Indexer. Zero fields of config take their defaults.
func New(config Config) *Indexer {
	if config.Provider == nil {
		config.Provider = filesystem.NewLocal(filesystem.DefaultRetryConfig())
	}
	if config.Logger == nil {
		config.Logger = logging.Default()
	}

	metrics.WalkConcurrencyLimit.Set(float64(config.Walker.MaxConcurrency))

	return &Indexer{
		provider:  config.Provider,
		logger:    config.Logger,
		walker:    NewWalker(config.Provider, config.Logger, config.Walker),
		startTime: time.Now(),
	}
}

// Index walks root and returns the index of everything beneath it.
//
// root must exist and be a directory; a link to a directory is rejected
// with ErrNotADirectory. Failures below root never fail the call and are
// reported on Result.Skips instead. If ctx is canceled mid-walk the partial
// result is returned together with ctx.Err().
func (idx *Indexer) Index(ctx context.Context, root string) (*Result, error) {
	start := time.Now()

	abs, err := filepath.Abs(root)
	if err != nil {
		idx.recordFailure(root, err)
		return nil, &fs.PathError{Op: "index", Path: root, Err: err}
	}

	if !idx.provider.Exists(abs) {
		err := &fs.PathError{Op: "index", Path: abs, Err: ErrPathDoesNotExist}
		idx.recordFailure(abs, err)
		return nil, err
	}
	if kind := idx.provider.Classify(abs); kind != entry.KindDirectory {
		err := &fs.PathError{Op: "index", Path: abs, Err: ErrNotADirectory}
		idx.recordFailure(abs, err)
		return nil, err
	}

	idx.activeRuns.Add(1)
	defer idx.activeRuns.Add(-1)

	logging.Debug("Starting traversal of %s", abs)

	result := idx.walker.Walk(ctx, abs)
	result.Duration = time.Since(start)

	status := "success"
	if ctx.Err() != nil {
		status = "canceled"
	}
	idx.recordRun(result, status)

	if len(result.Skips) > 0 {
		idx.logger.Warnf("Indexed %s with %d skipped entries", abs, len(result.Skips))
	}
	logging.Debug("Indexed %s in %v: %d directories, %d files, %d links (goroutines=%d, inline=%d, peak=%d)",
		abs, result.Duration, result.Stats.Directories, result.Stats.Files, result.Stats.Links,
		result.Stats.Spawned, result.Stats.Inline, result.Stats.PeakInFlight)

	if err := ctx.Err(); err != nil {
		return result, err
	}
	return result, nil
}

// Directories indexes root and returns only its directory entries
func (idx *Indexer) Directories(ctx context.Context, root string) (entry.Index, error) {
	return idx.subset(ctx, root, entry.KindDirectory)
}

// Files indexes root and returns only its file entries
func (idx *Indexer) Files(ctx context.Context, root string) (entry.Index, error) {
	return idx.subset(ctx, root, entry.KindFile)
}

// Links indexes root and returns only its link entries
func (idx *Indexer) Links(ctx context.Context, root string) (entry.Index, error) {
	return idx.subset(ctx, root, entry.KindLink)
}

func (idx *Indexer) subset(ctx context.Context, root string, kind entry.Kind) (entry.Index, error) {
	result, err := idx.Index(ctx, root)
	if result == nil {
		return nil, err
	}
	return result.Entries.Filter(kind), err
}

// MaxConcurrency returns the configured walk goroutine limit (0 = unbounded)
func (idx *Indexer) MaxConcurrency() int {
	return idx.walker.config.MaxConcurrency
}

// IsIndexing reports whether a traversal is in progress
func (idx *Indexer) IsIndexing() bool {
	return idx.activeRuns.Load() > 0
}

// LastIndexTime returns when the last traversal completed
func (idx *Indexer) LastIndexTime() time.Time {
	idx.lastMu.RLock()
	defer idx.lastMu.RUnlock()
	return idx.lastRun
}

// GetHealthStatus returns detailed health information.
func (idx *Indexer) GetHealthStatus() HealthStatus {
	idx.lastMu.RLock()
	defer idx.lastMu.RUnlock()

	status := HealthStatus{
		Ready:          true,
		Indexing:       idx.activeRuns.Load() > 0,
		ActiveRuns:     idx.activeRuns.Load(),
		TotalRuns:      idx.totalRuns.Load(),
		StartTime:      idx.startTime,
		Uptime:         time.Since(idx.startTime).String(),
		LastIndexed:    idx.lastRun,
		LastRoot:       idx.lastRoot,
		LastError:      idx.lastErrMsg,
		MaxConcurrency: idx.walker.config.MaxConcurrency,
	}
	if !idx.lastRun.IsZero() {
		stats := idx.lastStats
		status.LastStats = &stats
	}
	return status
}

func (idx *Indexer) recordRun(result *Result, status string) {
	idx.totalRuns.Add(1)

	metrics.IndexerRunsTotal.WithLabelValues(status).Inc()
	metrics.IndexerRunDuration.Observe(result.Duration.Seconds())
	metrics.IndexerLastRunTimestamp.Set(float64(time.Now().Unix()))

	dirs, files, links := result.Entries.Counts()
	metrics.IndexerLastRunEntries.WithLabelValues(entry.KindDirectory.String()).Set(float64(dirs))
	metrics.IndexerLastRunEntries.WithLabelValues(entry.KindFile.String()).Set(float64(files))
	metrics.IndexerLastRunEntries.WithLabelValues(entry.KindLink.String()).Set(float64(links))

	idx.lastMu.Lock()
	idx.lastRun = time.Now()
	idx.lastRoot = result.Root
	idx.lastStats = result.Stats
	idx.lastErrMsg = ""
	if status != "success" {
		idx.lastErrMsg = fmt.Sprintf("traversal %s", status)
	}
	idx.lastMu.Unlock()
}

func (idx *Indexer) recordFailure(root string, err error) {
	idx.totalRuns.Add(1)
	metrics.IndexerRunsTotal.WithLabelValues("error").Inc()
	idx.logger.Warnf("Cannot index %s: %v", root, err)

	idx.lastMu.Lock()
	idx.lastErrMsg = err.Error()
	idx.lastMu.Unlock()
}
