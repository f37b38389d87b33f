package operation

import (
	"strings"

	"github.com/team-telnyx/oasmodel/schema"
)

// httpVerbs is iterated in a fixed canonical order within a path; only
// path-level enumeration order needs to match the document, so the verb
// order inside one path object just needs to be deterministic, not
// document-faithful.
var httpVerbs = []string{
	"get", "put", "post", "delete", "options", "head", "patch", "trace",
}

// ExtractOperations walks `doc["paths"]` and builds one Operation per
// (path, method, operationObject) tuple whose operationId is present;
// operations without an id are silently skipped.
//
// pathOrder, when non-nil, gives the document's original top-level key
// order for `paths` (see internal/jsonorder); otherwise keys are visited
// in sorted order as a deterministic fallback.
func ExtractOperations(ctx *schema.Context, doc map[string]interface{}, pathOrder []string) ([]*Operation, error) {
	pathsNode, _ := doc["paths"].(map[string]interface{})

	order := pathOrder
	if order == nil {
		order = sortedKeys(pathsNode)
	}

	var ops []*Operation
	for _, path := range order {
		verbsNode, ok := pathsNode[path].(map[string]interface{})
		if !ok {
			continue
		}

		for _, verb := range httpVerbs {
			opNode, ok := verbsNode[verb].(map[string]interface{})
			if !ok {
				continue
			}

			id, ok := opNode["operationId"].(string)
			if !ok || id == "" {
				continue
			}

			op, err := buildOperation(ctx, path, verb, opNode)
			if err != nil {
				return nil, err
			}
			ops = append(ops, op)
		}
	}

	return ops, nil
}

func buildOperation(ctx *schema.Context, path, verb string, opNode map[string]interface{}) (*Operation, error) {
	op := &Operation{
		ID:     opNode["operationId"].(string),
		Method: strings.ToUpper(verb),
		Path:   path,
	}
	op.Summary, _ = opNode["summary"].(string)
	op.Description, _ = opNode["description"].(string)

	if ed, ok := opNode["externalDocs"].(map[string]interface{}); ok {
		doc := &ExternalDocs{}
		doc.URL, _ = ed["url"].(string)
		doc.Description, _ = ed["description"].(string)
		op.ExternalDocs = doc
	}

	if err := addParameters(ctx, op, opNode); err != nil {
		return nil, err
	}

	if rb, ok := opNode["requestBody"].(map[string]interface{}); ok {
		rbSchema, err := schema.Parse(ctx, rb)
		if err != nil {
			return nil, err
		}
		op.RequestBody = rbSchema
	}

	responses, err := extractResponses(ctx, opNode)
	if err != nil {
		return nil, err
	}
	op.Responses = responses

	return op, nil
}

func addParameters(ctx *schema.Context, op *Operation, opNode map[string]interface{}) error {
	paramsNode, _ := opNode["parameters"].([]interface{})

	for _, raw := range paramsNode {
		pm, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}

		// Dereference a $ref parameter to its target object before
		// reading its fields.
		if ref, ok := pm["$ref"].(string); ok {
			target, err := ctx.Store.Lookup(ref)
			if err != nil {
				return &schema.RefNotFoundError{Pointer: ref}
			}
			resolved, ok := target.(map[string]interface{})
			if !ok {
				continue
			}
			pm = resolved
		}

		in, _ := pm["in"].(string)

		paramSchema, err := schema.Parse(ctx, pm)
		if err != nil {
			return err
		}

		name, _ := pm["name"].(string)
		desc, _ := pm["description"].(string)
		param := &Param{Name: name, Description: desc, Schema: paramSchema}

		switch in {
		case "path":
			op.PathParams = append(op.PathParams, param)
		case "query":
			op.QueryParams = append(op.QueryParams, param)
		case "body":
			op.BodyParams = append(op.BodyParams, param)
		}
	}

	return nil
}
