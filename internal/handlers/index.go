package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"fs-indexer/internal/entry"
	"fs-indexer/internal/explorer"
	"fs-indexer/internal/logging"
	"fs-indexer/internal/snapshot"
)

// GetIndex returns a snapshot document of a fresh traversal.
//
// Query parameters:
//   - path: directory below the root to index (default: the root)
//   - kind: only return entries of this kind (directories, files, links)
//   - format: json (default) or yaml
func (h *Handlers) GetIndex(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	kind := entry.KindUnknown
	if k := query.Get("kind"); k != "" {
		parsed, err := entry.ParseKind(k)
		if err != nil || parsed == entry.KindUnknown {
			writeJSONError(w, "invalid kind", http.StatusBadRequest)
			return
		}
		kind = parsed
	}

	format := snapshot.FormatJSON
	if f := query.Get("format"); f != "" {
		parsed, err := snapshot.ParseFormat(f)
		if err != nil {
			writeJSONError(w, "invalid format", http.StatusBadRequest)
			return
		}
		format = parsed
	}

	root, err := h.resolvePath(query.Get("path"))
	if err != nil {
		writeIndexError(w, err)
		return
	}

	result, err := h.indexer.Index(r.Context(), root)
	if err != nil {
		writeIndexError(w, err)
		return
	}

	doc := snapshot.FromResult(result)
	if kind != entry.KindUnknown {
		doc = doc.Filter(kind)
	}

	if format == snapshot.FormatYAML {
		w.Header().Set("Content-Type", "application/yaml")
	} else {
		w.Header().Set("Content-Type", "application/json")
	}
	w.Header().Set("Cache-Control", "no-cache")

	if err := snapshot.Encode(w, doc, format); err != nil {
		logging.Error("failed to encode snapshot: %v", err)
	}
}

// ChildResponse describes one immediate child of a directory
type ChildResponse struct {
	Name   string     `json:"name"`
	Path   string     `json:"path"`
	Kind   entry.Kind `json:"kind"`
	Target string     `json:"target,omitempty"`

	// TargetKind is set for links: directory, file or unknown (dangling)
	TargetKind *entry.Kind `json:"targetKind,omitempty"`
}

// ChildrenResponse lists the immediate children of a directory by kind
type ChildrenResponse struct {
	Path        string          `json:"path"`
	Directories []ChildResponse `json:"directories"`
	Files       []ChildResponse `json:"files"`
	Links       []ChildResponse `json:"links"`
	Skipped     int             `json:"skipped"`
}

// GetChildren returns the immediate children of a directory below the root
func (h *Handlers) GetChildren(w http.ResponseWriter, r *http.Request) {
	dirPath, err := h.resolvePath(mux.Vars(r)["path"])
	if err != nil {
		writeIndexError(w, err)
		return
	}

	exp, err := explorer.New(r.Context(), h.indexer, dirPath)
	if err != nil {
		writeIndexError(w, err)
		return
	}

	listing := exp.Listing()
	response := ChildrenResponse{
		Path:        exp.Path(),
		Directories: childResponses(listing.Directories),
		Files:       childResponses(listing.Files),
		Links:       linkResponses(listing.Links),
		Skipped:     len(exp.Result().Skips),
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")
	writeJSON(w, response)
}

func childResponse(e entry.Entry) ChildResponse {
	target, _ := e.Target()
	return ChildResponse{
		Name:   e.Name(),
		Path:   e.Path(),
		Kind:   e.Kind(),
		Target: target,
	}
}

func childResponses(entries []entry.Entry) []ChildResponse {
	out := make([]ChildResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, childResponse(e))
	}
	return out
}

func linkResponses(links []explorer.Link) []ChildResponse {
	out := make([]ChildResponse, 0, len(links))
	for _, link := range links {
		resp := childResponse(link.Entry)
		kind := link.TargetKind
		resp.TargetKind = &kind
		out = append(out, resp)
	}
	return out
}
