package filesystem

import (
	"os"
	"path/filepath"
	"slices"
	"syscall"
	"testing"

	"fs-indexer/internal/entry"
)

// buildTree creates dir/, file, a link to file, a dangling link and a link to dir
func buildTree(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, "dir"), 0o755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "file.txt"), []byte("content"), 0o644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	if err := os.Symlink("file.txt", filepath.Join(root, "link")); err != nil {
		t.Fatalf("Failed to create link: %v", err)
	}
	if err := os.Symlink("/nonexistent", filepath.Join(root, "dangling")); err != nil {
		t.Fatalf("Failed to create dangling link: %v", err)
	}
	if err := os.Symlink("dir", filepath.Join(root, "dirlink")); err != nil {
		t.Fatalf("Failed to create directory link: %v", err)
	}
	return root
}

func TestClassify(t *testing.T) {
	root := buildTree(t)
	local := NewLocal(DefaultRetryConfig())

	tests := []struct {
		name     string
		path     string
		expected entry.Kind
	}{
		{"directory", filepath.Join(root, "dir"), entry.KindDirectory},
		{"regular file", filepath.Join(root, "file.txt"), entry.KindFile},
		{"link to file", filepath.Join(root, "link"), entry.KindLink},
		{"dangling link", filepath.Join(root, "dangling"), entry.KindLink},
		{"link to directory", filepath.Join(root, "dirlink"), entry.KindLink},
		{"missing path", filepath.Join(root, "missing"), entry.KindUnknown},
		{"root itself", root, entry.KindDirectory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := local.Classify(tt.path); got != tt.expected {
				t.Errorf("Classify(%s) = %v, want %v", tt.path, got, tt.expected)
			}
			if got := Classify(tt.path); got != tt.expected {
				t.Errorf("package Classify(%s) = %v, want %v", tt.path, got, tt.expected)
			}
		})
	}
}

func TestClassifyFifoIsUnknown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fifo")
	if err := syscall.Mkfifo(path, 0o644); err != nil {
		t.Skipf("mkfifo not supported: %v", err)
	}

	if got := Classify(path); got != entry.KindUnknown {
		t.Errorf("Expected KindUnknown for a fifo, got %v", got)
	}
}

func TestKindFromMode(t *testing.T) {
	tests := []struct {
		name     string
		mode     os.FileMode
		expected entry.Kind
	}{
		{"regular", 0o644, entry.KindFile},
		{"directory", os.ModeDir | 0o755, entry.KindDirectory},
		{"symlink", os.ModeSymlink | 0o777, entry.KindLink},
		{"socket", os.ModeSocket, entry.KindUnknown},
		{"device", os.ModeDevice, entry.KindUnknown},
		{"named pipe", os.ModeNamedPipe, entry.KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := kindFromMode(tt.mode); got != tt.expected {
				t.Errorf("kindFromMode(%v) = %v, want %v", tt.mode, got, tt.expected)
			}
		})
	}
}

func TestReadDir(t *testing.T) {
	root := buildTree(t)
	local := NewLocal(DefaultRetryConfig())

	names, err := local.ReadDir(root)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	slices.Sort(names)

	expected := []string{"dangling", "dir", "dirlink", "file.txt", "link"}
	if !slices.Equal(names, expected) {
		t.Errorf("Expected %v, got %v", expected, names)
	}

	if _, err := local.ReadDir(filepath.Join(root, "missing")); err == nil {
		t.Error("Expected error listing a missing directory")
	}
	if _, err := local.ReadDir(filepath.Join(root, "file.txt")); err == nil {
		t.Error("Expected error listing a regular file")
	}
}

func TestReadLink(t *testing.T) {
	root := buildTree(t)
	local := NewLocal(DefaultRetryConfig())

	tests := []struct {
		name     string
		path     string
		expected string
		wantErr  bool
	}{
		{"relative target", filepath.Join(root, "link"), "file.txt", false},
		{"dangling target", filepath.Join(root, "dangling"), "/nonexistent", false},
		{"not a link", filepath.Join(root, "file.txt"), "", true},
		{"missing", filepath.Join(root, "missing"), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := local.ReadLink(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadLink error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("Expected target %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestExists(t *testing.T) {
	root := buildTree(t)
	local := NewLocal(DefaultRetryConfig())

	if !local.Exists(root) {
		t.Error("Expected root to exist")
	}
	if !local.Exists(filepath.Join(root, "dangling")) {
		t.Error("Expected dangling link to exist")
	}
	if local.Exists(filepath.Join(root, "missing")) {
		t.Error("Expected missing path not to exist")
	}
}

func TestLocalReportsOperations(t *testing.T) {
	obs, _ := withTestHooks(t)
	root := buildTree(t)
	local := NewLocal(DefaultRetryConfig())

	local.Classify(root)
	if _, err := local.ReadDir(root); err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if _, err := local.ReadLink(filepath.Join(root, "file.txt")); err == nil {
		t.Fatal("Expected ReadLink of a file to fail")
	}

	if obs.operations["classify"] != 1 {
		t.Errorf("Expected 1 classify operation, got %d", obs.operations["classify"])
	}
	if obs.operations["readdir"] != 1 {
		t.Errorf("Expected 1 readdir operation, got %d", obs.operations["readdir"])
	}
	if obs.errors["readlink"] != 1 {
		t.Errorf("Expected 1 readlink error, got %d", obs.errors["readlink"])
	}
}
