// Package schema implements the normalized schema representation, the
// recursive JSON-to-Schema parser, the union collapser, and the allOf
// merger — the reference-resolution-and-normalization core of oasmodel.
package schema

import (
	"encoding/json"
	"sort"
)

// Kind tags which variant of the Schema sum type a value holds.
type Kind int

const (
	// KindAny is the top type: an empty schema (`{}`) or unrecognized
	// content. It carries no data.
	KindAny Kind = iota
	// KindPrim is a scalar: null, string, integer, number or boolean.
	KindPrim
	// KindArray is a homogeneous sequence.
	KindArray
	// KindObject is a map from property name to Schema.
	KindObject
	// KindUnion is a canonical (see Collapse) ordered list of alternatives.
	KindUnion
	// KindRef is a named reference to a top-level model.
	KindRef
)

// PrimKind enumerates the scalar kinds recognized by OpenAPI's `type`
// keyword.
type PrimKind int

const (
	PrimNull PrimKind = iota
	PrimStr
	PrimInt
	PrimNum
	PrimBool
)

var primKindNames = map[string]PrimKind{
	"null":    PrimNull,
	"string":  PrimStr,
	"integer": PrimInt,
	"number":  PrimNum,
	"boolean": PrimBool,
}

// ParsePrimKind maps an OpenAPI/JSON-Schema `type` string to a PrimKind. ok
// is false if t isn't one of the five recognized scalar type names.
func ParsePrimKind(t string) (k PrimKind, ok bool) {
	k, ok = primKindNames[t]
	return k, ok
}

func (k PrimKind) String() string {
	switch k {
	case PrimNull:
		return "null"
	case PrimStr:
		return "string"
	case PrimInt:
		return "integer"
	case PrimNum:
		return "number"
	case PrimBool:
		return "boolean"
	default:
		return "unknown"
	}
}

// Schema is the normalized, tagged representation that the parser, the
// union collapser, and the allOf merger all operate on. It's a closed sum
// type dispatched on Kind; only the fields relevant to that Kind are
// populated.
type Schema struct {
	Kind Kind

	// Prim
	Prim PrimKind

	// Array
	Of *Schema

	// Object. Iterate via PropertyNames for deterministic
	// (lexicographic) order.
	Props map[string]*Schema

	// Union. Guaranteed canonical once returned from Collapse: no nested
	// Union, at most one Object member, at most one Array member, no two
	// Prim members of the same kind.
	Members []*Schema

	// Ref
	RefName    string
	RefPointer string
}

// Any is the top type.
func Any() *Schema { return &Schema{Kind: KindAny} }

// NewPrim builds a scalar schema.
func NewPrim(k PrimKind) *Schema { return &Schema{Kind: KindPrim, Prim: k} }

// NewArray builds an array schema with element type of.
func NewArray(of *Schema) *Schema { return &Schema{Kind: KindArray, Of: of} }

// NewObject builds an object schema from props. The map is not copied; the
// caller must not mutate it afterwards.
func NewObject(props map[string]*Schema) *Schema {
	if props == nil {
		props = map[string]*Schema{}
	}
	return &Schema{Kind: KindObject, Props: props}
}

// NewUnion builds a union schema from members without canonicalizing them.
// Callers that need the canonical-form guarantees must pass the
// result through Collapse.
func NewUnion(members []*Schema) *Schema { return &Schema{Kind: KindUnion, Members: members} }

// NewRef builds a named reference.
func NewRef(name, pointer string) *Schema {
	return &Schema{Kind: KindRef, RefName: name, RefPointer: pointer}
}

// PropertyNames returns s's object property names in lexicographic order.
// For a schema that isn't KindObject it returns an empty slice.
func (s *Schema) PropertyNames() []string {
	names := make([]string, 0, len(s.Props))
	for name := range s.Props {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Equal reports whether two schemas are structurally equal. It's used by the
// union collapser to deduplicate primitives, Refs, and Any members by
// structural equality rather than pointer identity.
func (s *Schema) Equal(other *Schema) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s.Kind != other.Kind {
		return false
	}

	switch s.Kind {
	case KindAny:
		return true
	case KindPrim:
		return s.Prim == other.Prim
	case KindArray:
		return s.Of.Equal(other.Of)
	case KindRef:
		return s.RefName == other.RefName && s.RefPointer == other.RefPointer
	case KindObject:
		if len(s.Props) != len(other.Props) {
			return false
		}
		for name, ps := range s.Props {
			po, ok := other.Props[name]
			if !ok || !ps.Equal(po) {
				return false
			}
		}
		return true
	case KindUnion:
		if len(s.Members) != len(other.Members) {
			return false
		}
		for i, m := range s.Members {
			if !m.Equal(other.Members[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// jsonSchema mirrors Schema's shape for debugging output; it exists only so
// String() can lean on encoding/json instead of a hand-rolled printer.
type jsonSchema struct {
	Kind    string                 `json:"kind"`
	Prim    string                 `json:"prim,omitempty"`
	Of      *jsonSchema            `json:"of,omitempty"`
	Props   map[string]*jsonSchema `json:"props,omitempty"`
	Members []*jsonSchema          `json:"members,omitempty"`
	Ref     string                 `json:"ref,omitempty"`
}

func (s *Schema) toDebug() *jsonSchema {
	if s == nil {
		return nil
	}
	out := &jsonSchema{}
	switch s.Kind {
	case KindAny:
		out.Kind = "any"
	case KindPrim:
		out.Kind = "prim"
		out.Prim = s.Prim.String()
	case KindArray:
		out.Kind = "array"
		out.Of = s.Of.toDebug()
	case KindObject:
		out.Kind = "object"
		out.Props = map[string]*jsonSchema{}
		for name, ps := range s.Props {
			out.Props[name] = ps.toDebug()
		}
	case KindUnion:
		out.Kind = "union"
		for _, m := range s.Members {
			out.Members = append(out.Members, m.toDebug())
		}
	case KindRef:
		out.Kind = "ref"
		out.Ref = s.RefPointer
	}
	return out
}

// String renders s as indented JSON for debugging.
func (s *Schema) String() string {
	js, err := json.MarshalIndent(s.toDebug(), "", "  ")
	if err != nil {
		panic(err)
	}
	return string(js)
}
