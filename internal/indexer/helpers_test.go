package indexer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fs-indexer/internal/entry"
	"fs-indexer/internal/logging"
)

// fakeProvider serves a tree described entirely in memory
type fakeProvider struct {
	kinds       map[string]entry.Kind
	children    map[string][]string
	targets     map[string]string
	readDirErr  map[string]error
	readLinkErr map[string]error
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		kinds:       make(map[string]entry.Kind),
		children:    make(map[string][]string),
		targets:     make(map[string]string),
		readDirErr:  make(map[string]error),
		readLinkErr: make(map[string]error),
	}
}

func (f *fakeProvider) dir(path string, names ...string) *fakeProvider {
	f.kinds[path] = entry.KindDirectory
	f.children[path] = names
	return f
}

func (f *fakeProvider) file(path string) *fakeProvider {
	f.kinds[path] = entry.KindFile
	return f
}

func (f *fakeProvider) link(path, target string) *fakeProvider {
	f.kinds[path] = entry.KindLink
	f.targets[path] = target
	return f
}

func (f *fakeProvider) ReadDir(path string) ([]string, error) {
	return append([]string(nil), f.children[path]...), f.readDirErr[path]
}

func (f *fakeProvider) Classify(path string) entry.Kind {
	return f.kinds[path]
}

func (f *fakeProvider) ReadLink(path string) (string, error) {
	if err := f.readLinkErr[path]; err != nil {
		return "", err
	}
	target, ok := f.targets[path]
	if !ok {
		return "", errors.New("not a link")
	}
	return target, nil
}

func (f *fakeProvider) Exists(path string) bool {
	_, ok := f.kinds[path]
	return ok
}

// recordingLogger collects warnings
type recordingLogger struct {
	logging.Logger
	warnings []string
}

func (l *recordingLogger) Warnf(format string, args ...interface{}) {
	l.warnings = append(l.warnings, format)
}

func newTestIndexer(t *testing.T, config Config) *Indexer {
	t.Helper()
	if config.Logger == nil {
		config.Logger = logging.Discard()
	}
	return New(config)
}

// buildScenario creates root/a (empty), root/b.txt and root/c -> b.txt
func buildScenario(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, "a"), 0o755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "b.txt"), []byte("b"), 0o644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	if err := os.Symlink("b.txt", filepath.Join(root, "c")); err != nil {
		t.Fatalf("Failed to create symlink: %v", err)
	}
	return root
}

// buildWideTree creates width sub-directories of depth levels each, with a
// file and a link in every directory.
func buildWideTree(t *testing.T, width, depth int) string {
	t.Helper()

	root := t.TempDir()
	for i := 0; i < width; i++ {
		dir := filepath.Join(root, "d"+string(rune('a'+i)))
		for level := 0; level < depth; level++ {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				t.Fatalf("Failed to create directory: %v", err)
			}
			if err := os.WriteFile(filepath.Join(dir, "f.txt"), nil, 0o644); err != nil {
				t.Fatalf("Failed to create file: %v", err)
			}
			if err := os.Symlink("f.txt", filepath.Join(dir, "l")); err != nil {
				t.Fatalf("Failed to create symlink: %v", err)
			}
			dir = filepath.Join(dir, "sub")
		}
	}
	return root
}
