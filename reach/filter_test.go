package reach

import (
	"testing"

	assert "github.com/stretchr/testify/require"

	"github.com/team-telnyx/oasmodel/operation"
	"github.com/team-telnyx/oasmodel/schema"
)

func testDoc() map[string]interface{} {
	return map[string]interface{}{
		"definitions": map[string]interface{}{
			"Pet": map[string]interface{}{
				"properties": map[string]interface{}{
					"tag": map[string]interface{}{"$ref": "#/definitions/Tag"},
				},
			},
			"Tag": map[string]interface{}{
				"type": "string",
			},
			"Error": map[string]interface{}{
				"type": "string",
			},
		},
		"paths": map[string]interface{}{
			"/pets": map[string]interface{}{
				"get": map[string]interface{}{
					"operationId": "listPets",
					"responses": map[string]interface{}{
						"200": map[string]interface{}{
							"schema": map[string]interface{}{"$ref": "#/definitions/Pet"},
						},
					},
				},
			},
			"/pets/{id}": map[string]interface{}{
				"get": map[string]interface{}{
					"operationId": "getPet",
					"responses": map[string]interface{}{
						"200": map[string]interface{}{
							"schema": map[string]interface{}{"$ref": "#/definitions/Pet"},
						},
					},
				},
				"delete": map[string]interface{}{
					"operationId": "deletePet",
					"responses": map[string]interface{}{
						"200": map[string]interface{}{
							"schema": map[string]interface{}{"$ref": "#/definitions/Error"},
						},
					},
				},
			},
		},
	}
}

func TestFilterComputesReachabilityClosure(t *testing.T) {
	doc := testDoc()
	ctx := schema.NewContext(doc)

	spec, err := operation.Build(ctx, doc, operation.OrderHints{})
	assert.NoError(t, err)
	assert.Len(t, spec.Operations, 3)
	assert.Len(t, spec.Models, 3)

	filtered, err := Filter(ctx, spec, Config{
		IncludeOperation: func(id string) bool { return id == "listPets" },
	})
	assert.NoError(t, err)

	assert.Len(t, filtered.Operations, 1)
	assert.Equal(t, "listPets", filtered.Operations[0].ID)

	names := map[string]bool{}
	for _, m := range filtered.Models {
		names[m.Name] = true
	}
	assert.Equal(t, map[string]bool{"Pet": true, "Tag": true}, names)
}

func TestFilterKeepsEveryModelWhenNoFilterGiven(t *testing.T) {
	doc := testDoc()
	ctx := schema.NewContext(doc)

	spec, err := operation.Build(ctx, doc, operation.OrderHints{})
	assert.NoError(t, err)

	filtered, err := Filter(ctx, spec, Config{})
	assert.NoError(t, err)

	assert.Len(t, filtered.Operations, 3)
	names := map[string]bool{}
	for _, m := range filtered.Models {
		names[m.Name] = true
	}
	assert.Equal(t, map[string]bool{"Pet": true, "Tag": true, "Error": true}, names)
}
