package indexer

import (
	"context"
	"path/filepath"
	"slices"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/semaphore"

	"fs-indexer/internal/entry"
	"fs-indexer/internal/filesystem"
	"fs-indexer/internal/logging"
	"fs-indexer/internal/metrics"
)

// Stats describes the work done by one traversal
type Stats struct {
	Directories int64 `json:"directories"`
	Files       int64 `json:"files"`
	Links       int64 `json:"links"`
	Skipped     int64 `json:"skipped"`
	// Spawned counts sub-directories walked on their own goroutine
	Spawned int64 `json:"spawned"`
	// Inline counts sub-directories walked by their parent because no
	// concurrency slot was free
	Inline int64 `json:"inline"`
	// PeakInFlight is the highest number of walk goroutines seen at once
	PeakInFlight int64 `json:"peakInFlight"`
}

// Walker performs the recursive, concurrent part of a traversal
type Walker struct {
	provider filesystem.Provider
	logger   logging.Logger
	config   WalkerConfig
}

// NewWalker creates a walker over provider
func NewWalker(provider filesystem.Provider, logger logging.Logger, config WalkerConfig) *Walker {
	if provider == nil {
		provider = filesystem.NewLocal(filesystem.DefaultRetryConfig())
	}
	if logger == nil {
		logger = logging.Default()
	}
	if config.MaxConcurrency < 0 {
		config.MaxConcurrency = 0
	}
	return &Walker{provider: provider, logger: logger, config: config}
}

// walkRun holds the state shared by every goroutine of a single Walk call.
// Only counters live here; each goroutine builds its own partial index.
type walkRun struct {
	*Walker
	ctx context.Context
	sem *semaphore.Weighted

	directories atomic.Int64
	files       atomic.Int64
	links       atomic.Int64
	skipped     atomic.Int64
	spawned     atomic.Int64
	inline      atomic.Int64
	inFlight    atomic.Int64
	peak        atomic.Int64
}

// partial is the output of walking one directory and everything below it
type partial struct {
	entries    entry.Index
	skips      []Skip
	duplicates []string
}

// pending is the join handle of a sub-directory walk
type pending struct {
	name     string
	path     string
	deferred bool
	done     chan struct{}
	result   partial
}

// Walk indexes dirPath and everything beneath it. dirPath must be an
// absolute, clean path naming a directory; the Indexer checks this before
// calling. Failures below dirPath are recorded as skips on the result.
//
// A listing that fails partway keeps the names the provider returned with
// the error: they are classified and walked like any other, and the
// directory carries a readdir skip. Only a listing that returned nothing
// leaves the directory with no children.
//
// When ctx is canceled, directories not yet listed are indexed without
// children and recorded as walk skips; the walk still joins every goroutine
// it started before returning.
func (w *Walker) Walk(ctx context.Context, dirPath string) *Result {
	run := &walkRun{Walker: w, ctx: ctx}
	if w.config.MaxConcurrency > 0 {
		run.sem = semaphore.NewWeighted(int64(w.config.MaxConcurrency))
	}

	p := run.walkDir(dirPath)

	slices.SortStableFunc(p.skips, func(a, b Skip) int {
		return strings.Compare(a.Path, b.Path)
	})
	slices.Sort(p.duplicates)

	return &Result{
		Root:       dirPath,
		Entries:    p.entries,
		Skips:      p.skips,
		Duplicates: p.duplicates,
		Stats:      run.stats(),
	}
}

func (r *walkRun) stats() Stats {
	return Stats{
		Directories:  r.directories.Load(),
		Files:        r.files.Load(),
		Links:        r.links.Load(),
		Skipped:      r.skipped.Load(),
		Spawned:      r.spawned.Load(),
		Inline:       r.inline.Load(),
		PeakInFlight: r.peak.Load(),
	}
}

// walkDir lists dirPath, produces leaves for its files and links, fans out
// over its sub-directories and merges their results once all are joined.
func (r *walkRun) walkDir(dirPath string) partial {
	r.directories.Add(1)

	var p partial
	leaves := make(entry.Index)

	if err := r.ctx.Err(); err != nil {
		p.skips = append(p.skips, r.skip(dirPath, OpWalk, err))
		p.entries = entry.Index{dirPath: entry.NewDirectory(dirPath, nil)}
		return p
	}

	names, err := r.provider.ReadDir(dirPath)
	if err != nil {
		r.logger.Warnf("Failed to list directory %s: %v", dirPath, err)
		p.skips = append(p.skips, r.skip(dirPath, OpReadDir, err))
	}
	slices.Sort(names)
	names = slices.Compact(names)

	children := make([]string, 0, len(names))
	var subdirs []*pending

	for _, name := range names {
		if !validName(name) {
			r.logger.Warnf("Ignoring invalid entry name %q in %s", name, dirPath)
			p.skips = append(p.skips, r.skip(filepath.Join(dirPath, name), OpClassify, ErrInvalidName))
			continue
		}

		childPath := filepath.Join(dirPath, name)

		switch r.provider.Classify(childPath) {
		case entry.KindFile:
			leaves.Insert(entry.NewFile(childPath))
			children = append(children, name)
			r.files.Add(1)

		case entry.KindLink:
			target, err := r.provider.ReadLink(childPath)
			if err != nil {
				r.logger.Warnf("Failed to read link %s: %v", childPath, err)
				p.skips = append(p.skips, r.skip(childPath, OpReadLink, err))
				continue
			}
			leaves.Insert(entry.NewLink(childPath, target))
			children = append(children, name)
			r.links.Add(1)

		case entry.KindDirectory:
			subdirs = append(subdirs, r.spawn(name, childPath))

		default:
			r.logger.Debugf("Skipping unclassifiable entry %s", childPath)
			p.skips = append(p.skips, r.skip(childPath, OpClassify, ErrUnknownKind))
		}
	}

	parts := make([]entry.Index, 0, len(subdirs)+1)
	parts = append(parts, leaves)

	for _, sub := range subdirs {
		result := r.join(sub)
		children = append(children, sub.name)
		parts = append(parts, result.entries)
		p.skips = append(p.skips, result.skips...)
		p.duplicates = append(p.duplicates, result.duplicates...)
	}

	own := entry.Index{dirPath: entry.NewDirectory(dirPath, children)}
	merged, duplicates := Merge(own, parts...)
	if len(duplicates) > 0 {
		r.logger.Warnf("Dropped %d duplicate paths under %s", len(duplicates), dirPath)
		metrics.IndexerDuplicatePaths.Add(float64(len(duplicates)))
		p.duplicates = append(p.duplicates, duplicates...)
	}
	p.entries = merged

	return p
}

// spawn starts walking a sub-directory on its own goroutine. With a
// concurrency limit and no free slot the walk is deferred until join,
// where the parent runs it itself; the listing loop never blocks.
func (r *walkRun) spawn(name, path string) *pending {
	sub := &pending{name: name, path: path}

	if r.sem != nil && !r.sem.TryAcquire(1) {
		sub.deferred = true
		return sub
	}

	sub.done = make(chan struct{})
	r.spawned.Add(1)
	metrics.WalkTasksSpawned.WithLabelValues("goroutine").Inc()
	r.enter()

	go func() {
		defer close(sub.done)
		defer func() {
			r.leave()
			if r.sem != nil {
				r.sem.Release(1)
			}
		}()
		sub.result = r.walkDir(sub.path)
	}()

	return sub
}

// join waits for a sub-directory walk, running it inline if it was deferred
func (r *walkRun) join(sub *pending) partial {
	if sub.deferred {
		r.inline.Add(1)
		metrics.WalkTasksSpawned.WithLabelValues("inline").Inc()
		return r.walkDir(sub.path)
	}
	<-sub.done
	return sub.result
}

func (r *walkRun) enter() {
	n := r.inFlight.Add(1)
	metrics.WalkTasksInFlight.Inc()
	for {
		peak := r.peak.Load()
		if n <= peak || r.peak.CompareAndSwap(peak, n) {
			return
		}
	}
}

func (r *walkRun) leave() {
	r.inFlight.Add(-1)
	metrics.WalkTasksInFlight.Dec()
}

func (r *walkRun) skip(path, op string, err error) Skip {
	r.skipped.Add(1)
	metrics.IndexerSkippedEntries.WithLabelValues(op).Inc()
	return Skip{Path: path, Op: op, Err: err}
}

// validName reports whether name is a single path element below its parent
func validName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsRune(name, filepath.Separator) && !strings.ContainsRune(name, '/')
}
