package schema

// Collapse rewrites a union schema into canonical form: no nested
// Union, at most one Object member, at most one Array member, and
// primitives deduplicated by structural equality preserving first-seen
// order. If s isn't a Union, Collapse returns it unchanged — this makes
// Collapse idempotent over the whole Schema space, not just over unions.
func Collapse(s *Schema) *Schema {
	if s.Kind != KindUnion {
		return s
	}

	members := flattenMembers(s.Members)

	var objects, arrays, prims []*Schema
	for _, m := range members {
		switch m.Kind {
		case KindObject:
			objects = append(objects, m)
		case KindArray:
			arrays = append(arrays, m)
		default: // KindPrim, KindRef, KindAny — opaque, deduped structurally
			prims = append(prims, m)
		}
	}

	var out []*Schema
	if len(objects) > 0 {
		out = append(out, mergeObjectMembers(objects))
	}
	if len(arrays) > 0 {
		out = append(out, mergeArrayMembers(arrays))
	}
	out = append(out, dedupPrims(prims)...)

	if len(out) == 1 {
		return out[0]
	}
	return NewUnion(out)
}

// flattenMembers splices the members of any nested Union into the current
// level, recursively.
func flattenMembers(members []*Schema) []*Schema {
	out := make([]*Schema, 0, len(members))
	for _, m := range members {
		if m.Kind == KindUnion {
			out = append(out, flattenMembers(m.Members)...)
		} else {
			out = append(out, m)
		}
	}
	return out
}

// mergeObjectMembers folds a set of Object union members into one Object by
// key-wise union. A key defined by more than one member collapses its
// values via a nested union, recursing.
func mergeObjectMembers(objects []*Schema) *Schema {
	props := map[string]*Schema{}
	for _, obj := range objects {
		for key, val := range obj.Props {
			if existing, ok := props[key]; ok {
				props[key] = Collapse(NewUnion([]*Schema{existing, val}))
			} else {
				props[key] = val
			}
		}
	}
	return NewObject(props)
}

// mergeArrayMembers folds a set of Array union members into one Array whose
// element type is the collapsed union of every member's element type.
func mergeArrayMembers(arrays []*Schema) *Schema {
	inners := make([]*Schema, len(arrays))
	for i, a := range arrays {
		inners[i] = a.Of
	}
	return NewArray(Collapse(NewUnion(inners)))
}

// dedupPrims removes structurally duplicate members, keeping first-seen
// order. Used for Prim/Ref/Any members, which are compared opaquely.
func dedupPrims(prims []*Schema) []*Schema {
	out := make([]*Schema, 0, len(prims))
	for _, p := range prims {
		seen := false
		for _, kept := range out {
			if kept.Equal(p) {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, p)
		}
	}
	return out
}
