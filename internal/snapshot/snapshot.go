package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"fs-indexer/internal/entry"
	"fs-indexer/internal/indexer"
)

// Format selects the text encoding of a Document
type Format string

// Supported formats
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat parses a format name; "yml" is accepted for YAML
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported snapshot format %q", s)
	}
}

// Record is the serialized form of one entry. Target is set only for
// links and Children only for non-empty directories.
type Record struct {
	Path     string     `json:"path" yaml:"path"`
	Kind     entry.Kind `json:"kind" yaml:"kind"`
	Target   *string    `json:"target,omitempty" yaml:"target,omitempty"`
	Children []string   `json:"children,omitempty" yaml:"children,omitempty,flow"`
}

// SkipRecord is the serialized form of an indexer.Skip
type SkipRecord struct {
	Path  string `json:"path" yaml:"path"`
	Op    string `json:"op" yaml:"op"`
	Error string `json:"error" yaml:"error"`
}

// Document is a serializable snapshot of one traversal
type Document struct {
	Root    string       `json:"root,omitempty" yaml:"root,omitempty"`
	Entries []Record     `json:"entries" yaml:"entries"`
	Skips   []SkipRecord `json:"skips,omitempty" yaml:"skips,omitempty"`
}

// FromIndex builds a Document from an index
func FromIndex(root string, idx entry.Index) *Document {
	doc := &Document{
		Root:    root,
		Entries: make([]Record, 0, len(idx)),
	}

	for _, path := range idx.Paths() {
		doc.Entries = append(doc.Entries, recordOf(idx[path]))
	}
	return doc
}

// FromResult builds a Document from a traversal result, including its skips
func FromResult(result *indexer.Result) *Document {
	doc := FromIndex(result.Root, result.Entries)
	for _, skip := range result.Skips {
		doc.Skips = append(doc.Skips, SkipRecord{
			Path:  skip.Path,
			Op:    skip.Op,
			Error: skip.Err.Error(),
		})
	}
	return doc
}

func recordOf(e entry.Entry) Record {
	r := Record{Path: e.Path(), Kind: e.Kind()}
	switch e.Kind() {
	case entry.KindLink:
		target, _ := e.Target()
		r.Target = &target
	case entry.KindDirectory:
		r.Children = e.Children()
	}
	return r
}

// Index rebuilds the index described by the document. Records that could
// not have come from a traversal are rejected: duplicate paths, unknown
// kinds, links without a target, and attributes that do not belong to the
// record's kind. The rebuilt index must also pass entry.Index.Validate, so
// a document filtered down to directories alone does not rebuild.
func (d *Document) Index() (entry.Index, error) {
	idx := make(entry.Index, len(d.Entries))

	var errs []error
	for i, r := range d.Entries {
		e, err := r.entry()
		if err != nil {
			errs = append(errs, fmt.Errorf("entry %d: %w", i, err))
			continue
		}
		if !idx.Insert(e) {
			errs = append(errs, fmt.Errorf("entry %d: duplicate path %q", i, r.Path))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	if err := idx.Validate(); err != nil {
		return nil, fmt.Errorf("inconsistent snapshot: %w", err)
	}
	return idx, nil
}

func (r Record) entry() (entry.Entry, error) {
	if r.Path == "" {
		return entry.Entry{}, errors.New("missing path")
	}
	if r.Target != nil && r.Kind != entry.KindLink {
		return entry.Entry{}, fmt.Errorf("%s %q has a link target", r.Kind, r.Path)
	}
	if r.Children != nil && r.Kind != entry.KindDirectory {
		return entry.Entry{}, fmt.Errorf("%s %q has children", r.Kind, r.Path)
	}

	switch r.Kind {
	case entry.KindDirectory:
		return entry.NewDirectory(r.Path, r.Children), nil
	case entry.KindFile:
		return entry.NewFile(r.Path), nil
	case entry.KindLink:
		if r.Target == nil {
			return entry.Entry{}, fmt.Errorf("link %q has no target", r.Path)
		}
		return entry.NewLink(r.Path, *r.Target), nil
	default:
		return entry.Entry{}, fmt.Errorf("%q has unknown kind", r.Path)
	}
}

// Filter returns a copy of the document holding only entries of kind
func (d *Document) Filter(kind entry.Kind) *Document {
	out := &Document{Root: d.Root, Skips: d.Skips}
	out.Entries = slices.DeleteFunc(slices.Clone(d.Entries), func(r Record) bool {
		return r.Kind != kind
	})
	if out.Entries == nil {
		out.Entries = []Record{}
	}
	return out
}

// Encode writes doc to w in the given format
func Encode(w io.Writer, doc *Document, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported snapshot format %q", format)
	}
}

// Decode reads a document in the given format from r
func Decode(r io.Reader, format Format) (*Document, error) {
	var doc Document

	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decoding json snapshot: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decoding yaml snapshot: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported snapshot format %q", format)
	}

	return &doc, nil
}
