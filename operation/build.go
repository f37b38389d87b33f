package operation

import "github.com/team-telnyx/oasmodel/schema"

// OrderHints carries the document-order key listings that preserve the
// ordering guarantees for sections backed by plain (unordered) Go maps.
// Either field may be nil, in which case the corresponding section falls
// back to sorted order.
type OrderHints struct {
	Paths  []string
	Models []string
}

// Build assembles a full Spec from a decoded OpenAPI document: info, host,
// scheme/consumes/produces metadata, models and operations, in that order.
// It does not filter anything — see the reach package for
// reachability-driven pruning.
func Build(ctx *schema.Context, doc map[string]interface{}, hints OrderHints) (*Spec, error) {
	info := Info{}
	if in, ok := doc["info"].(map[string]interface{}); ok {
		info.Title, _ = in["title"].(string)
		info.Description, _ = in["description"].(string)
		info.Version, _ = in["version"].(string)
	}

	host, _ := doc["host"].(string)
	basePath, _ := doc["basePath"].(string)

	models, err := ExtractModels(ctx, doc, hints.Models)
	if err != nil {
		return nil, err
	}

	ops, err := ExtractOperations(ctx, doc, hints.Paths)
	if err != nil {
		return nil, err
	}

	return &Spec{
		Info:       info,
		Host:       host,
		BasePath:   basePath,
		Schemes:    stringSlice(doc["schemes"]),
		Consumes:   stringSlice(doc["consumes"]),
		Produces:   stringSlice(doc["produces"]),
		Models:     models,
		Operations: ops,
	}, nil
}
