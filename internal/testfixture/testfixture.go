// Package testfixture is test-only tooling for authoring OpenAPI documents
// used to exercise oasmodel as YAML (the format most real-world OpenAPI
// documents are actually written in) instead of hand-written Go literals,
// and for sanity-checking that those fixtures are themselves well-formed
// JSON Schema before they're fed into the parser.
//
// Neither concern belongs in the production path: Generate only ever
// consumes already-decoded JSON, and validating document conformance is an
// explicit non-goal of the core.
package testfixture

import (
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v2"
)

// LoadYAML decodes a YAML-authored fixture into the generic JSON tree
// oasmodel consumes (map[string]interface{}/[]interface{}/scalars), plus
// the equivalent JSON bytes for tests that want to exercise Generate's
// byte-oriented entrypoint directly.
func LoadYAML(data []byte) (map[string]interface{}, []byte, error) {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, nil, err
	}

	converted, ok := toStringKeyedTree(raw).(map[string]interface{})
	if !ok {
		return nil, nil, fmt.Errorf("fixture root is not a YAML mapping")
	}

	jsonBytes, err := json.Marshal(converted)
	if err != nil {
		return nil, nil, err
	}

	return converted, jsonBytes, nil
}

// toStringKeyedTree recursively converts yaml.v2's
// map[interface{}]interface{} nodes into map[string]interface{}, matching
// the shape encoding/json would have produced for the same document.
func toStringKeyedTree(v interface{}) interface{} {
	switch val := v.(type) {
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, child := range val {
			out[fmt.Sprintf("%v", k)] = toStringKeyedTree(child)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, child := range val {
			out[i] = toStringKeyedTree(child)
		}
		return out
	default:
		return val
	}
}

// ValidateJSONSchema reports whether doc conforms to the given JSON Schema
// (provided inline, never fetched over the network) via gojsonschema. It's
// used by fixture tests as a sanity check on hand-authored test documents,
// never as part of Generate.
func ValidateJSONSchema(schemaJSON string, doc interface{}) (valid bool, problems []string, err error) {
	schemaLoader := gojsonschema.NewStringLoader(schemaJSON)
	docLoader := gojsonschema.NewGoLoader(doc)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return false, nil, err
	}

	for _, e := range result.Errors() {
		problems = append(problems, e.String())
	}
	return result.Valid(), problems, nil
}
