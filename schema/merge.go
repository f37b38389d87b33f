package schema

import "github.com/imdario/mergo"

// Merge implements the allOf merger: Any members are dropped; if a
// single schema remains it's returned as-is; otherwise every remaining
// member must be an Object or a Ref to one (Refs are resolved through ctx),
// and their property maps are unioned right-wins — a later member's
// property overrides an earlier member's for the same key.
//
// It folds a list of schemas into one via mergo, using
// mergo.WithOverride so later members win property-key conflicts
// (right-wins union).
func Merge(ctx *Context, members []*Schema) (*Schema, error) {
	kept := make([]*Schema, 0, len(members))
	for _, m := range members {
		if m.Kind == KindAny {
			continue
		}
		kept = append(kept, m)
	}

	if len(kept) == 0 {
		return Any(), nil
	}
	if len(kept) == 1 {
		return kept[0], nil
	}

	props := map[string]*Schema{}
	for _, m := range kept {
		obj := m
		if m.Kind == KindRef {
			resolved, err := ctx.Fetch(m.RefPointer, "")
			if err != nil {
				return nil, err
			}
			obj = resolved
		}

		if obj.Kind != KindObject {
			return nil, &MergeConflictError{Pointer: m.RefPointer}
		}

		if err := mergo.Merge(&props, obj.Props, mergo.WithOverride); err != nil {
			return nil, err
		}
	}

	return NewObject(props), nil
}
