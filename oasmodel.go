package oasmodel

import (
	"encoding/json"

	"github.com/team-telnyx/oasmodel/internal/jsonorder"
	"github.com/team-telnyx/oasmodel/operation"
	"github.com/team-telnyx/oasmodel/reach"
	"github.com/team-telnyx/oasmodel/schema"
)

// Config is the external configuration surface consumed by the
// reachability filter. IncludeOperation decides which
// operations are selected for generation; nil keeps every operation.
// RenameOperation is a downstream naming hook the core never consults
// itself — it's part of Config purely so callers have one place to carry
// both knobs together.
type Config struct {
	IncludeOperation func(id string) bool
	RenameOperation  func(id string) string
}

// Generate parses raw JSON-encoded OpenAPI document bytes, normalizes
// every schema node it contains, extracts the operation and model lists,
// and prunes the models to the transitive closure reachable from the
// operations cfg selects. The result is handed to an external
// code-emission backend — rendering target-language source is out of
// scope here.
func Generate(raw []byte, cfg Config) (*operation.Spec, error) {
	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	ctx := schema.NewContext(doc)

	hints := operation.OrderHints{}
	if keys, err := jsonorder.KeysAt(raw, "paths"); err == nil {
		hints.Paths = keys
	}
	if keys, err := jsonorder.KeysAt(raw, "definitions"); err == nil {
		hints.Models = keys
	} else if keys, err := jsonorder.KeysAt(raw, "components", "schemas"); err == nil {
		hints.Models = keys
	}

	spec, err := operation.Build(ctx, doc, hints)
	if err != nil {
		return nil, err
	}

	return reach.Filter(ctx, spec, reach.Config{
		IncludeOperation: cfg.IncludeOperation,
		RenameOperation:  cfg.RenameOperation,
	})
}
