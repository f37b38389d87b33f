// Package oasmodel normalizes an OpenAPI document (2.x or 3.x, JSON-encoded)
// into a tagged schema representation and a reachability-pruned operation
// list, ready for an external code-emission backend to render into a
// target language's client bindings.
//
// The package ties together, in order:
//
//   - schema:    the per-pass Context wrapping the Document Store
//     (internal/jsonptr), the 16-rule schema parser, the union collapser
//     and the allOf merger (C1-C5).
//   - operation: the operation extractor and the Spec/Model/Operation/Param
//     /Response records (C6).
//   - reach:     the reachability filter that prunes Models to the closure
//     reachable from the caller-selected operations (C7).
//
// Code emission, the HTTP client runtime the emitted code depends on, JSON
// deserialization quirks beyond the standard library, and CLI/configuration
// plumbing are all out of scope.
package oasmodel
