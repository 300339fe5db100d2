// Package snapshot converts an index into a human-diffable text document
// and back.
//
// A Document lists one Record per entry, sorted by path, with the
// kind-specific attributes spelled out field by field:
//
//	root: /tmp/t
//	entries:
//	  - path: /tmp/t
//	    kind: directory
//	    children: [a, b.txt, c]
//	  - path: /tmp/t/a
//	    kind: directory
//	  - path: /tmp/t/b.txt
//	    kind: file
//	  - path: /tmp/t/c
//	    kind: link
//	    target: b.txt
//
// Documents are written as JSON or YAML. Decoding a document and calling
// Index rebuilds an index equal to the one it was created from.
package snapshot
