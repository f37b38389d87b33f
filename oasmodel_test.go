package oasmodel

import (
	"testing"

	assert "github.com/stretchr/testify/require"

	"github.com/team-telnyx/oasmodel/internal/testfixture"
	"github.com/team-telnyx/oasmodel/schema"
)

const petstoreFixtureYAML = `
info:
  title: Petstore
  version: "1.0.0"
definitions:
  Pet:
    properties:
      name:
        type: string
      tag:
        "$ref": "#/definitions/Tag"
  Tag:
    type: string
  Error:
    type: string
paths:
  /pets:
    get:
      operationId: listPets
      responses:
        "200":
          schema:
            "$ref": "#/definitions/Pet"
  /pets/{id}:
    delete:
      operationId: deletePet
      responses:
        "200":
          schema:
            "$ref": "#/definitions/Error"
`

func TestGenerateEndToEndFiltersUnreachableModels(t *testing.T) {
	fixtureMap, jsonBytes, err := testfixture.LoadYAML([]byte(petstoreFixtureYAML))
	assert.NoError(t, err)

	// Sanity-check the hand-authored fixture is itself a well-formed
	// object with a definitions section before trusting it in the test —
	// this is test tooling, not part of Generate's contract.
	valid, problems, err := testfixture.ValidateJSONSchema(
		`{"type":"object","required":["definitions","paths"]}`, fixtureMap)
	assert.NoError(t, err)
	assert.True(t, valid, problems)

	spec, err := Generate(jsonBytes, Config{
		IncludeOperation: func(id string) bool { return id == "listPets" },
	})
	assert.NoError(t, err)

	assert.Equal(t, "Petstore", spec.Info.Title)
	assert.Len(t, spec.Operations, 1)
	assert.Equal(t, "listPets", spec.Operations[0].ID)

	names := map[string]bool{}
	for _, m := range spec.Models {
		names[m.Name] = true
	}
	assert.Equal(t, map[string]bool{"Pet": true, "Tag": true}, names)
}

func TestGenerateDanglingRefIsFatal(t *testing.T) {
	raw := []byte(`{
		"definitions": {},
		"paths": {
			"/pets": {
				"get": {
					"operationId": "listPets",
					"responses": {
						"200": {"schema": {"$ref": "#/definitions/Missing"}}
					}
				}
			}
		}
	}`)

	_, err := Generate(raw, Config{})
	assert.Error(t, err)

	var notFound *schema.RefNotFoundError
	assert.ErrorAs(t, err, &notFound)
	assert.Equal(t, "#/definitions/Missing", notFound.Pointer)
}
