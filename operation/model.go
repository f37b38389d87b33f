// Package operation builds the high-level Spec record — Info, Model,
// Param, Response, Operation — by walking an OpenAPI document's `paths`
// and `definitions`/`components.schemas` sections and invoking the schema
// package to normalize every schema node it finds along the way. This is
// the Operation Extractor component (C6) plus the Data Model records from
// an OpenAPI document's normalized structure.
package operation

import "github.com/team-telnyx/oasmodel/schema"

// Info mirrors an OpenAPI document's `info` object.
type Info struct {
	Title       string
	Description string
	Version     string
}

// ExternalDocs mirrors an operation's `externalDocs` object.
type ExternalDocs struct {
	URL         string
	Description string
}

// StatusCode distinguishes a concrete HTTP status code from the sentinel
// `default` response, per the GLOSSARY's "Default response" entry.
type StatusCode struct {
	code      int
	isDefault bool
}

// Coded builds a StatusCode for a concrete HTTP status.
func Coded(code int) StatusCode { return StatusCode{code: code} }

// DefaultCode is the sentinel for the OpenAPI `default` response key.
func DefaultCode() StatusCode { return StatusCode{isDefault: true} }

// IsDefault reports whether this is the `default` sentinel.
func (s StatusCode) IsDefault() bool { return s.isDefault }

// Code returns the numeric status and true, or (0, false) if this is the
// `default` sentinel.
func (s StatusCode) Code() (int, bool) { return s.code, !s.isDefault }

// Param is a path, query or body parameter.
type Param struct {
	Name        string
	Description string
	Schema      *schema.Schema
}

// Response is a single entry from an operation's `responses` map.
type Response struct {
	Code   StatusCode
	Schema *schema.Schema // nil if the response declares no schema/content.
}

// Operation is one HTTP operation extracted from `paths`.
type Operation struct {
	ID           string
	Summary      string
	Description  string
	ExternalDocs *ExternalDocs

	Method string
	Path   string

	PathParams  []*Param
	QueryParams []*Param
	BodyParams  []*Param

	RequestBody *schema.Schema // 3.x only; nil otherwise.
	Responses   []*Response
}

// Model is a named top-level schema definition.
type Model struct {
	Name        string
	Title       string
	Description string
	Schema      *schema.Schema
}

// Spec is the fully assembled, normalized specification — the core's final
// output before reachability filtering prunes Models.
type Spec struct {
	Info     Info
	Host     string
	BasePath string
	Schemes  []string
	Consumes []string
	Produces []string

	Models     []*Model
	Operations []*Operation
}

// ModelsInOrder returns a defensive copy of Spec.Models, preserving the
// input-order guarantee.
func (s *Spec) ModelsInOrder() []*Model {
	out := make([]*Model, len(s.Models))
	copy(out, s.Models)
	return out
}

// OperationsInOrder returns a defensive copy of Spec.Operations, preserving
// the input `paths`-enumeration-order guarantee.
func (s *Spec) OperationsInOrder() []*Operation {
	out := make([]*Operation, len(s.Operations))
	copy(out, s.Operations)
	return out
}
