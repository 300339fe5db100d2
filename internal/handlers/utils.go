package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"

	"fs-indexer/internal/indexer"
	"fs-indexer/internal/logging"
)

// writeJSON encodes v as JSON and writes it to the response writer.
// Any encoding or write errors are logged since we typically cannot
// recover from them in an HTTP handler context.
func writeJSON(w http.ResponseWriter, v interface{}) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error("failed to encode JSON response: %v", err)
	}
}

// writeJSONError writes an error response as JSON with the given status code.
func writeJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	writeJSON(w, map[string]string{"error": message})
}

// errOutsideRoot is returned for request paths that pass through a link.
// It is reported as a missing path.
var errOutsideRoot = errors.New("path is not below the root directory")

// resolvePath maps a request path onto the root directory. The path is
// cleaned as if absolute first, so ".." cannot climb above the root, and
// every component above the last must be a real directory: links are
// leaves, so a path through one is rejected. The last component is left to
// the indexer, which refuses a link with ErrNotADirectory.
func (h *Handlers) resolvePath(requestPath string) (string, error) {
	rel := filepath.Clean("/" + requestPath)
	resolved := filepath.Join(h.rootDir, rel)
	if rel == "/" {
		return resolved, nil
	}

	realRoot, err := filepath.EvalSymlinks(h.rootDir)
	if err != nil {
		// Missing root, indexing reports it
		return resolved, nil
	}
	realParent, err := filepath.EvalSymlinks(filepath.Dir(resolved))
	if err != nil {
		// Missing parent, indexing reports it
		return resolved, nil
	}

	if realParent != filepath.Join(realRoot, filepath.Dir(rel)) {
		return "", errOutsideRoot
	}
	return resolved, nil
}

// writeIndexError maps traversal errors to HTTP status codes
func writeIndexError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, indexer.ErrPathDoesNotExist), errors.Is(err, errOutsideRoot):
		writeJSONError(w, "path does not exist", http.StatusNotFound)
	case errors.Is(err, indexer.ErrNotADirectory):
		writeJSONError(w, "path is not a directory", http.StatusUnprocessableEntity)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeJSONError(w, "indexing canceled", http.StatusServiceUnavailable)
	default:
		logging.Error("Indexing failed: %v", err)
		writeJSONError(w, "indexing failed", http.StatusInternalServerError)
	}
}
