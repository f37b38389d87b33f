package schema

import "strings"

// namedRefPrefixes are the two locations (2.x, 3.x) whose $refs name a
// top-level model and so stay symbolic instead of being inlined (rule
// 13).
var namedRefPrefixes = []string{
	"#/definitions/",
	"#/components/schemas/",
}

var contentMediaTypes = []string{
	"application/json",
	"application/octet-stream",
	"application/x-www-form-urlencoded",
}

// Parse translates a single JSON node into a Schema, dispatching on node
// shape according to a 16-rule priority list: the first
// applicable rule wins. ctx supplies the Document Store (for $ref
// resolution) that parsing may need to recurse into.
func Parse(ctx *Context, node interface{}) (*Schema, error) {
	m, ok := asObject(node)
	if !ok {
		return Any(), nil
	}

	// Rule 1: OpenAPI parameter wrapper.
	if inner, ok := m["schema"]; ok {
		return Parse(ctx, inner)
	}

	// Rules 2 & 3: explicit `type`.
	if typeNode, ok := m["type"]; ok {
		switch t := typeNode.(type) {
		case string:
			if pk, ok := ParsePrimKind(t); ok {
				return NewPrim(pk), nil
			}
			// type is "array"/"object"/unrecognized: falls through.
		case []interface{}:
			members := make([]*Schema, 0, len(t))
			for _, ti := range t {
				name, _ := ti.(string)
				child, err := Parse(ctx, map[string]interface{}{"type": name})
				if err != nil {
					return nil, err
				}
				members = append(members, child)
			}
			return Collapse(NewUnion(members)), nil
		}
	}

	// Rule 4: `items` given as an array of alternatives (tuple-typing
	// degraded to a union, since this core doesn't model fixed tuples).
	if itemsNode, ok := m["items"]; ok {
		if itemsArr, ok := itemsNode.([]interface{}); ok {
			members, err := parseEach(ctx, itemsArr)
			if err != nil {
				return nil, err
			}
			return Collapse(NewUnion(members)), nil
		}
	}

	// Rule 5: anyOf / oneOf. oneOf is treated identically to anyOf.
	if list, ok := m["anyOf"].([]interface{}); ok {
		return parseUnion(ctx, list)
	}
	if list, ok := m["oneOf"].([]interface{}); ok {
		return parseUnion(ctx, list)
	}

	typeStr, hasType := m["type"].(string)

	// Rules 6 & 7: `type: array`.
	if hasType && typeStr == "array" {
		if itemsNode, ok := m["items"]; ok {
			child, err := Parse(ctx, itemsNode)
			if err != nil {
				return nil, err
			}
			return NewArray(child), nil
		}
		return NewArray(Any()), nil
	}

	// Rule 8: object-form `items` without `type: array`.
	if itemsNode, ok := m["items"]; ok {
		child, err := Parse(ctx, itemsNode)
		if err != nil {
			return nil, err
		}
		return NewArray(child), nil
	}

	// Rule 9: `properties`.
	if propsNode, ok := m["properties"].(map[string]interface{}); ok {
		props := map[string]*Schema{}
		for key, val := range propsNode {
			child, err := Parse(ctx, val)
			if err != nil {
				return nil, err
			}
			props[key] = child
		}
		return NewObject(props), nil
	}

	// Rules 10 & 11: `allOf`.
	if allOfNode, ok := m["allOf"].([]interface{}); ok {
		members, err := parseEach(ctx, allOfNode)
		if err != nil {
			return nil, err
		}
		if len(members) == 1 {
			return members[0], nil
		}
		return Merge(ctx, members)
	}

	// Rule 12: bare `type: object`.
	if hasType && typeStr == "object" {
		return NewObject(map[string]*Schema{}), nil
	}

	// Rule 13: `$ref`.
	if ref, ok := m["$ref"].(string); ok {
		if name, ok := namedModelRef(ref); ok {
			return NewRef(name, ref), nil
		}
		return ctx.resolveInline(ref)
	}

	// Rule 14: empty schema.
	if len(m) == 0 {
		return Any(), nil
	}

	// Rule 15: request/response body wrapper.
	if contentNode, ok := m["content"].(map[string]interface{}); ok {
		for _, mediaType := range contentMediaTypes {
			if mt, ok := contentNode[mediaType]; ok {
				return Parse(ctx, mt)
			}
		}
	}

	// Rule 16: anything else degrades to Any — intentional lenience for
	// vendor extensions and unrecognized shapes.
	return Any(), nil
}

func parseEach(ctx *Context, nodes []interface{}) ([]*Schema, error) {
	out := make([]*Schema, 0, len(nodes))
	for _, n := range nodes {
		child, err := Parse(ctx, n)
		if err != nil {
			return nil, err
		}
		out = append(out, child)
	}
	return out, nil
}

func parseUnion(ctx *Context, nodes []interface{}) (*Schema, error) {
	members, err := parseEach(ctx, nodes)
	if err != nil {
		return nil, err
	}
	return Collapse(NewUnion(members)), nil
}

// namedModelRef reports whether ref points at a top-level model definition
// (2.x `#/definitions/N` or 3.x `#/components/schemas/N`), returning N.
func namedModelRef(ref string) (name string, ok bool) {
	for _, prefix := range namedRefPrefixes {
		if strings.HasPrefix(ref, prefix) {
			return strings.TrimPrefix(ref, prefix), true
		}
	}
	return "", false
}

func asObject(node interface{}) (map[string]interface{}, bool) {
	m, ok := node.(map[string]interface{})
	return m, ok
}
