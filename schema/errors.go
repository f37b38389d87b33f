package schema

import "github.com/pkg/errors"

// RefNotFoundError is returned when a $ref's JSON Pointer does not resolve
// against the document under generation. It is fatal: the caller gets no
// partial result.
type RefNotFoundError struct {
	// Pointer is the JSON Pointer text that failed to resolve.
	Pointer string

	// Referrer is the pointer of the schema node that contained the
	// dangling $ref, when known.
	Referrer string
}

func (e *RefNotFoundError) Error() string {
	if e.Referrer != "" {
		return "ref not found: " + e.Pointer + " (referenced from " + e.Referrer + ")"
	}
	return "ref not found: " + e.Pointer
}

// MergeConflictError is returned when an allOf composition contains a
// member that cannot be merged into an object after Any members are
// dropped and Refs are resolved.
type MergeConflictError struct {
	// Pointer is the JSON Pointer of the offending allOf member, when
	// available.
	Pointer string
}

func (e *MergeConflictError) Error() string {
	if e.Pointer != "" {
		return "allOf merge conflict at " + e.Pointer + ": member is not an object"
	}
	return "allOf merge conflict: member is not an object"
}

// wrapRefNotFound annotates a Store lookup failure with the pointer that was
// being resolved and, when known, the referring schema's pointer.
func wrapRefNotFound(err error, pointer, referrer string) error {
	return errors.WithMessage(&RefNotFoundError{Pointer: pointer, Referrer: referrer}, err.Error())
}
