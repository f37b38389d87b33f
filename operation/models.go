package operation

import "github.com/team-telnyx/oasmodel/schema"

// ExtractModels walks the document's model-definitions section — 2.x
// `definitions` or 3.x `components.schemas` — and parses each entry into a
// Model.
//
// modelOrder, when non-nil, gives the document's original key order for
// that section (see internal/jsonorder); otherwise keys are visited in
// sorted order as a deterministic fallback.
func ExtractModels(ctx *schema.Context, doc map[string]interface{}, modelOrder []string) ([]*Model, error) {
	definitions := definitionsOf(doc)

	order := modelOrder
	if order == nil {
		order = sortedKeys(definitions)
	}

	models := make([]*Model, 0, len(order))
	for _, name := range order {
		raw, ok := definitions[name]
		if !ok {
			continue
		}

		m, _ := raw.(map[string]interface{})

		s, err := schema.Parse(ctx, raw)
		if err != nil {
			return nil, err
		}

		model := &Model{Name: name, Schema: s}
		if m != nil {
			model.Title, _ = m["title"].(string)
			model.Description, _ = m["description"].(string)
		}
		models = append(models, model)
	}

	return models, nil
}

func definitionsOf(doc map[string]interface{}) map[string]interface{} {
	if defs, ok := doc["definitions"].(map[string]interface{}); ok {
		return defs
	}
	if components, ok := doc["components"].(map[string]interface{}); ok {
		if schemas, ok := components["schemas"].(map[string]interface{}); ok {
			return schemas
		}
	}
	return map[string]interface{}{}
}
