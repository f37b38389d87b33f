// Package jsonptr holds the raw parsed JSON document for the duration of one
// generation pass and answers JSON Pointer (RFC 6901) lookups against it.
//
// It corresponds to the Document Store component of the normalization core.
// Unlike the source this core was modeled on, the document is never stashed
// in process-wide state: a Store value is created once per pass and threaded
// explicitly through every call that needs it.
package jsonptr

import (
	"strings"

	"github.com/lestrrat/go-jspointer"
	"github.com/pkg/errors"
)

// Store binds a single parsed JSON document (a generic tree of
// map[string]interface{}, []interface{}, string, float64, bool and nil) for
// the lifetime of one generation pass.
type Store struct {
	root interface{}
}

// New installs doc as the document for this pass.
func New(doc interface{}) *Store {
	return &Store{root: doc}
}

// Lookup resolves an RFC 6901 JSON Pointer against the stored document.
//
// Pointers are expected in the `#/a/b/c` form used throughout OpenAPI
// documents; a leading "#" is stripped before delegating to go-jspointer,
// which implements the escape decoding (`~1` -> `/`, `~0` -> `~`) and the
// numeric-segment-against-a-map fallback (treat as a string key) that this
// core's pointer semantics require.
func (s *Store) Lookup(pointer string) (interface{}, error) {
	raw := strings.TrimPrefix(pointer, "#")
	if raw == "" {
		return s.root, nil
	}

	p, err := jspointer.New(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid JSON pointer %q", pointer)
	}

	node, err := p.Get(s.root)
	if err != nil {
		return nil, &NotFoundError{Pointer: pointer, cause: err}
	}

	return node, nil
}

// NotFoundError is returned by Lookup when pointer does not resolve against
// the stored document.
type NotFoundError struct {
	Pointer string
	cause   error
}

func (e *NotFoundError) Error() string {
	return "pointer not found: " + e.Pointer
}

// Unwrap exposes the underlying go-jspointer resolution error.
func (e *NotFoundError) Unwrap() error { return e.cause }
