package schema

import (
	"testing"

	assert "github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, ctx *Context, node interface{}) *Schema {
	t.Helper()
	s, err := Parse(ctx, node)
	assert.NoError(t, err)
	return s
}

func TestParsePrimitive(t *testing.T) {
	ctx := NewContext(map[string]interface{}{})
	s := mustParse(t, ctx, map[string]interface{}{"type": "string"})
	assert.Equal(t, KindPrim, s.Kind)
	assert.Equal(t, PrimStr, s.Prim)
}

func TestParseAnyOfDedupesDuplicatePrimitives(t *testing.T) {
	ctx := NewContext(map[string]interface{}{})
	node := map[string]interface{}{
		"anyOf": []interface{}{
			map[string]interface{}{"type": "string"},
			map[string]interface{}{"type": "string"},
			map[string]interface{}{"type": "integer"},
		},
	}

	s := mustParse(t, ctx, node)
	assert.Equal(t, KindUnion, s.Kind)
	assert.Len(t, s.Members, 2)
	assert.True(t, s.Members[0].Equal(NewPrim(PrimStr)))
	assert.True(t, s.Members[1].Equal(NewPrim(PrimInt)))
}

func TestParseAnyOfMergesObjectMembers(t *testing.T) {
	ctx := NewContext(map[string]interface{}{})
	node := map[string]interface{}{
		"anyOf": []interface{}{
			map[string]interface{}{
				"properties": map[string]interface{}{
					"a": map[string]interface{}{"type": "string"},
				},
			},
			map[string]interface{}{
				"properties": map[string]interface{}{
					"a": map[string]interface{}{"type": "integer"},
					"b": map[string]interface{}{"type": "boolean"},
				},
			},
		},
	}

	s := mustParse(t, ctx, node)
	assert.Equal(t, KindObject, s.Kind)
	assert.Len(t, s.Props, 2)

	a := s.Props["a"]
	assert.Equal(t, KindUnion, a.Kind)
	assert.True(t, a.Members[0].Equal(NewPrim(PrimStr)))
	assert.True(t, a.Members[1].Equal(NewPrim(PrimInt)))

	b := s.Props["b"]
	assert.True(t, b.Equal(NewPrim(PrimBool)))
}

func TestParseAllOfMergesRefAndInlineObject(t *testing.T) {
	doc := map[string]interface{}{
		"definitions": map[string]interface{}{
			"Base": map[string]interface{}{
				"properties": map[string]interface{}{
					"y": map[string]interface{}{"type": "integer"},
				},
			},
		},
	}
	ctx := NewContext(doc)

	node := map[string]interface{}{
		"allOf": []interface{}{
			map[string]interface{}{"$ref": "#/definitions/Base"},
			map[string]interface{}{
				"properties": map[string]interface{}{
					"x": map[string]interface{}{"type": "string"},
				},
			},
		},
	}

	s := mustParse(t, ctx, node)
	assert.Equal(t, KindObject, s.Kind)
	assert.Len(t, s.Props, 2)
	assert.True(t, s.Props["x"].Equal(NewPrim(PrimStr)))
	assert.True(t, s.Props["y"].Equal(NewPrim(PrimInt)))
}

func TestParseMissingRefIsFatal(t *testing.T) {
	ctx := NewContext(map[string]interface{}{"definitions": map[string]interface{}{}})

	node := map[string]interface{}{"$ref": "#/definitions/Missing"}
	s := mustParse(t, ctx, node)
	assert.Equal(t, KindRef, s.Kind, "named refs stay symbolic; resolution happens downstream")
	assert.Equal(t, "Missing", s.RefName)

	// Dereferencing the (dangling) pointer is where the failure surfaces.
	_, err := ctx.Fetch(s.RefPointer, "")
	assert.Error(t, err)

	var notFound *RefNotFoundError
	assert.ErrorAs(t, err, &notFound)
	assert.Equal(t, "#/definitions/Missing", notFound.Pointer)
}

func TestParseEmptySchemaIsAny(t *testing.T) {
	ctx := NewContext(map[string]interface{}{})
	s := mustParse(t, ctx, map[string]interface{}{})
	assert.Equal(t, KindAny, s.Kind)
}

func TestParseBareObjectTypeHasNoProperties(t *testing.T) {
	ctx := NewContext(map[string]interface{}{})
	s := mustParse(t, ctx, map[string]interface{}{"type": "object"})
	assert.Equal(t, KindObject, s.Kind)
	assert.Empty(t, s.Props)
}

func TestParseArrayWithoutItemsIsArrayOfAny(t *testing.T) {
	ctx := NewContext(map[string]interface{}{})
	s := mustParse(t, ctx, map[string]interface{}{"type": "array"})
	assert.Equal(t, KindArray, s.Kind)
	assert.Equal(t, KindAny, s.Of.Kind)
}

func TestParseNamedRefStaysSymbolic(t *testing.T) {
	ctx := NewContext(map[string]interface{}{})
	s := mustParse(t, ctx, map[string]interface{}{"$ref": "#/components/schemas/Pet"})
	assert.Equal(t, KindRef, s.Kind)
	assert.Equal(t, "Pet", s.RefName)
	assert.Equal(t, "#/components/schemas/Pet", s.RefPointer)
}

func TestParseContentWrapperPrefersJSON(t *testing.T) {
	ctx := NewContext(map[string]interface{}{})
	node := map[string]interface{}{
		"content": map[string]interface{}{
			"application/octet-stream": map[string]interface{}{"type": "integer"},
			"application/json":         map[string]interface{}{"type": "string"},
		},
	}
	s := mustParse(t, ctx, node)
	assert.True(t, s.Equal(NewPrim(PrimStr)))
}

func TestParseAdditionalPropertiesFalseIsIgnoredNotCollapsedToAny(t *testing.T) {
	// additionalProperties:false collapsing to Any would be a
	// bug in the source and must not be reproduced — the declared
	// properties are still returned.
	ctx := NewContext(map[string]interface{}{})
	node := map[string]interface{}{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]interface{}{
			"name": map[string]interface{}{"type": "string"},
		},
	}
	s := mustParse(t, ctx, node)
	assert.Equal(t, KindObject, s.Kind)
	assert.Len(t, s.Props, 1)
	assert.True(t, s.Props["name"].Equal(NewPrim(PrimStr)))
}
