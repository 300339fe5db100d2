package indexer

import (
	"context"
	"errors"
	"slices"
	"testing"

	"fs-indexer/internal/entry"
	"fs-indexer/internal/logging"
)

func TestWalkReadDirFailureKeepsPartialListing(t *testing.T) {
	t.Parallel()

	listErr := errors.New("input/output error")
	provider := newFakeProvider().
		dir("/r", "bad", "good").
		dir("/r/bad", "kept").
		file("/r/bad/kept").
		dir("/r/good", "x").
		file("/r/good/x")
	provider.readDirErr["/r/bad"] = listErr

	logger := &recordingLogger{Logger: logging.Discard()}
	walker := NewWalker(provider, logger, WalkerConfig{})

	result := walker.Walk(context.Background(), "/r")

	bad, ok := result.Entries.Get("/r/bad")
	if !ok {
		t.Fatal("Expected failing directory to be indexed")
	}
	if !slices.Equal(bad.Children(), []string{"kept"}) {
		t.Errorf("Expected names read before the failure to be kept, got %v", bad.Children())
	}
	if _, ok := result.Entries.Get("/r/good/x"); !ok {
		t.Error("Expected sibling subtree to be indexed")
	}

	if len(result.Skips) != 1 {
		t.Fatalf("Expected one skip, got %v", result.Skips)
	}
	skip := result.Skips[0]
	if skip.Path != "/r/bad" || skip.Op != OpReadDir || !errors.Is(skip, listErr) {
		t.Errorf("Unexpected skip: %v", skip)
	}
	if len(logger.warnings) == 0 {
		t.Error("Expected a warning to be logged")
	}
	if err := result.Entries.Validate(); err != nil {
		t.Errorf("Expected consistent index, got %v", err)
	}
}

func TestWalkReadLinkFailureOmitsLink(t *testing.T) {
	t.Parallel()

	provider := newFakeProvider().
		dir("/r", "broken", "ok").
		link("/r/broken", "").
		link("/r/ok", "target")
	provider.readLinkErr["/r/broken"] = errors.New("permission denied")

	result := NewWalker(provider, logging.Discard(), WalkerConfig{}).Walk(context.Background(), "/r")

	if _, ok := result.Entries.Get("/r/broken"); ok {
		t.Error("Expected unreadable link to be omitted")
	}
	root, _ := result.Entries.Get("/r")
	if !slices.Equal(root.Children(), []string{"ok"}) {
		t.Errorf("Expected only readable link among children, got %v", root.Children())
	}
	if len(result.Skips) != 1 || result.Skips[0].Op != OpReadLink {
		t.Errorf("Expected a readlink skip, got %v", result.Skips)
	}
	if result.Stats.Links != 1 || result.Stats.Skipped != 1 {
		t.Errorf("Unexpected stats: %+v", result.Stats)
	}
}

func TestWalkSkipsUnknownAndInvalidNames(t *testing.T) {
	t.Parallel()

	provider := newFakeProvider().
		dir("/r", "..", ".", "", "a/b", "socket", "f", "f").
		file("/r/f")
	provider.kinds["/r/socket"] = entry.KindUnknown
	// A provider reporting ".." as a directory must not send the walk upwards
	provider.kinds["/"] = entry.KindDirectory

	result := NewWalker(provider, logging.Discard(), WalkerConfig{}).Walk(context.Background(), "/r")

	if !slices.Equal(result.Entries.Paths(), []string{"/r", "/r/f"}) {
		t.Errorf("Unexpected entries: %v", result.Entries.Paths())
	}

	ops := make(map[string]int)
	for _, skip := range result.Skips {
		ops[skip.Op]++
	}
	// ".", "..", "" and "a/b" are invalid names; socket is unclassifiable
	if ops[OpClassify] != 5 {
		t.Errorf("Expected 5 classify skips, got %v", result.Skips)
	}

	var unknown, invalid int
	for _, skip := range result.Skips {
		switch {
		case errors.Is(skip, ErrUnknownKind):
			unknown++
		case errors.Is(skip, ErrInvalidName):
			invalid++
		}
	}
	if unknown != 1 || invalid != 4 {
		t.Errorf("Expected 1 unknown and 4 invalid, got %d and %d", unknown, invalid)
	}
}

func TestWalkSkipsAreSortedByPath(t *testing.T) {
	t.Parallel()

	provider := newFakeProvider().
		dir("/r", "z", "a").
		dir("/r/z").
		dir("/r/a")
	provider.readDirErr["/r/z"] = errors.New("z failed")
	provider.readDirErr["/r/a"] = errors.New("a failed")

	result := NewWalker(provider, logging.Discard(), WalkerConfig{}).Walk(context.Background(), "/r")

	if len(result.Skips) != 2 || result.Skips[0].Path != "/r/a" || result.Skips[1].Path != "/r/z" {
		t.Errorf("Expected skips sorted by path, got %v", result.Skips)
	}
}

func TestWalkDeepFakeTreeBounded(t *testing.T) {
	t.Parallel()

	provider := newFakeProvider().dir("/r", "0", "1", "2")
	for _, top := range []string{"0", "1", "2"} {
		base := "/r/" + top
		provider.dir(base, "x", "y", "leaf")
		provider.file(base + "/leaf")
		provider.dir(base+"/x", "leaf")
		provider.file(base + "/x/leaf")
		provider.dir(base + "/y")
	}

	unbounded := NewWalker(provider, logging.Discard(), WalkerConfig{}).Walk(context.Background(), "/r")
	bounded := NewWalker(provider, logging.Discard(), WalkerConfig{MaxConcurrency: 1}).Walk(context.Background(), "/r")

	if !bounded.Entries.Equal(unbounded.Entries) {
		t.Error("Expected bounded walk to match unbounded walk")
	}
	if got := len(unbounded.Entries); got != 16 {
		t.Errorf("Expected 16 entries, got %d", got)
	}
	if bounded.Stats.Inline == 0 {
		t.Error("Expected some sub-directories to be walked inline with a limit of 1")
	}
	if bounded.Stats.PeakInFlight > 1 {
		t.Errorf("Expected at most 1 walk goroutine, saw %d", bounded.Stats.PeakInFlight)
	}
}

func TestNewWalkerNormalizesConfig(t *testing.T) {
	t.Parallel()

	w := NewWalker(nil, nil, WalkerConfig{MaxConcurrency: -3})
	if w.config.MaxConcurrency != 0 {
		t.Errorf("Expected negative limit to mean unbounded, got %d", w.config.MaxConcurrency)
	}
	if w.provider == nil || w.logger == nil {
		t.Error("Expected default provider and logger")
	}
}

func TestValidName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		valid bool
	}{
		{"file.txt", true},
		{".hidden", true},
		{"...", true},
		{"", false},
		{".", false},
		{"..", false},
		{"a/b", false},
	}

	for _, tt := range tests {
		if got := validName(tt.name); got != tt.valid {
			t.Errorf("validName(%q) = %v, want %v", tt.name, got, tt.valid)
		}
	}
}
