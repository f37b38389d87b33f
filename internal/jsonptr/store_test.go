package jsonptr

import (
	"testing"

	assert "github.com/stretchr/testify/require"
)

func TestStoreLookup(t *testing.T) {
	doc := map[string]interface{}{
		"definitions": map[string]interface{}{
			"Pet": map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": map[string]interface{}{"type": "string"},
				},
			},
		},
		"tags": []interface{}{"a", "b", "c"},
	}

	store := New(doc)

	t.Run("map traversal", func(t *testing.T) {
		node, err := store.Lookup("#/definitions/Pet/properties/name")
		assert.NoError(t, err)
		assert.Equal(t, map[string]interface{}{"type": "string"}, node)
	})

	t.Run("numeric segment against array indexes", func(t *testing.T) {
		node, err := store.Lookup("#/tags/1")
		assert.NoError(t, err)
		assert.Equal(t, "b", node)
	})

	t.Run("missing pointer is fatal", func(t *testing.T) {
		_, err := store.Lookup("#/definitions/Missing")
		assert.Error(t, err)

		var notFound *NotFoundError
		assert.ErrorAs(t, err, &notFound)
		assert.Equal(t, "#/definitions/Missing", notFound.Pointer)
	})

	t.Run("empty pointer returns the document root", func(t *testing.T) {
		node, err := store.Lookup("#")
		assert.NoError(t, err)
		assert.Equal(t, doc, node)
	})
}
