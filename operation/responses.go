package operation

import (
	"sort"
	"strconv"

	"github.com/team-telnyx/oasmodel/schema"
)

// extractResponses builds one Response per entry in `responses`:
// a numeric code becomes Coded(code), and the string key "default" becomes
// the DefaultCode sentinel. A response without a `schema`/`content` node
// gets a nil Schema.
func extractResponses(ctx *schema.Context, opNode map[string]interface{}) ([]*Response, error) {
	responsesNode, _ := opNode["responses"].(map[string]interface{})
	if len(responsesNode) == 0 {
		return nil, nil
	}

	out := make([]*Response, 0, len(responsesNode))
	for key, raw := range responsesNode {
		respObj, _ := raw.(map[string]interface{})

		code, err := parseStatusCode(key)
		if err != nil {
			continue // unrecognized response key; ignore rather than fail
		}

		var respSchema *schema.Schema
		if hasSchemaOrContent(respObj) {
			respSchema, err = schema.Parse(ctx, respObj)
			if err != nil {
				return nil, err
			}
		}

		out = append(out, &Response{Code: code, Schema: respSchema})
	}

	sort.Slice(out, func(i, j int) bool {
		return responseLess(out[i].Code, out[j].Code)
	})

	return out, nil
}

func parseStatusCode(key string) (StatusCode, error) {
	if key == "default" {
		return DefaultCode(), nil
	}
	n, err := strconv.Atoi(key)
	if err != nil {
		return StatusCode{}, err
	}
	return Coded(n), nil
}

func hasSchemaOrContent(respObj map[string]interface{}) bool {
	if respObj == nil {
		return false
	}
	if _, ok := respObj["schema"]; ok {
		return true
	}
	if _, ok := respObj["content"]; ok {
		return true
	}
	return false
}

// responseLess orders responses deterministically: ascending by numeric
// code, with the `default` sentinel sorted last.
func responseLess(a, b StatusCode) bool {
	if a.IsDefault() != b.IsDefault() {
		return b.IsDefault()
	}
	ac, _ := a.Code()
	bc, _ := b.Code()
	return ac < bc
}
