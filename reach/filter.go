// Package reach implements the Reachability Filter (C7): given the set of
// operations selected by caller configuration, it computes the transitive
// closure of model references reachable from those operations and prunes
// the model list to exactly that closure.
package reach

import (
	"github.com/team-telnyx/oasmodel/operation"
	"github.com/team-telnyx/oasmodel/schema"
)

// Config is the filter's configuration surface. IncludeOperation
// decides which operations survive filtering; nil keeps every operation.
// RenameOperation is a downstream naming hook the core itself never
// consults — it's threaded through only so callers have one place to carry
// it alongside IncludeOperation.
type Config struct {
	IncludeOperation func(id string) bool
	RenameOperation  func(id string) string
}

type refState int

const (
	refNew refState = iota
	refSeen
)

// Filter returns a new Spec whose Operations are exactly those cfg selects
// and whose Models are exactly the transitive closure of schema references
// reachable from those operations.
func Filter(ctx *schema.Context, spec *operation.Spec, cfg Config) (*operation.Spec, error) {
	include := cfg.IncludeOperation
	if include == nil {
		include = func(string) bool { return true }
	}

	ops := make([]*operation.Operation, 0, len(spec.Operations))
	for _, op := range spec.Operations {
		if include(op.ID) {
			ops = append(ops, op)
		}
	}

	pending := map[string]refState{} // pointer -> state
	nameOf := map[string]string{}    // pointer -> model name
	referrer := map[string]string{}  // pointer -> pointer that first referenced it
	from := ""                       // pointer being expanded; empty while seeding

	var collect func(s *schema.Schema)
	collect = func(s *schema.Schema) {
		if s == nil {
			return
		}
		switch s.Kind {
		case schema.KindRef:
			if _, ok := pending[s.RefPointer]; !ok {
				pending[s.RefPointer] = refNew
				nameOf[s.RefPointer] = s.RefName
				referrer[s.RefPointer] = from
			}
		case schema.KindArray:
			collect(s.Of)
		case schema.KindObject:
			for _, child := range s.Props {
				collect(child)
			}
		case schema.KindUnion:
			for _, m := range s.Members {
				collect(m)
			}
		}
	}

	// Seed: every Ref reachable directly from the filtered operations.
	for _, op := range ops {
		for _, p := range op.PathParams {
			collect(p.Schema)
		}
		for _, p := range op.QueryParams {
			collect(p.Schema)
		}
		for _, p := range op.BodyParams {
			collect(p.Schema)
		}
		collect(op.RequestBody)
		for _, r := range op.Responses {
			collect(r.Schema)
		}
	}

	// Fixpoint: dereference every New pointer, parse its target, collect
	// its own references, and mark it Seen. Seen entries are never
	// revisited, which is what breaks cycles in the reference graph
	// by design.
	for {
		next, ok := firstNew(pending)
		if !ok {
			break
		}
		pending[next] = refSeen

		target, err := ctx.Fetch(next, referrer[next])
		if err != nil {
			return nil, err
		}
		from = next
		collect(target)
	}

	reachable := map[string]bool{}
	for _, name := range nameOf {
		reachable[name] = true
	}

	models := make([]*operation.Model, 0, len(spec.Models))
	for _, m := range spec.Models {
		if reachable[m.Name] {
			models = append(models, m)
		}
	}

	return &operation.Spec{
		Info:       spec.Info,
		Host:       spec.Host,
		BasePath:   spec.BasePath,
		Schemes:    spec.Schemes,
		Consumes:   spec.Consumes,
		Produces:   spec.Produces,
		Models:     models,
		Operations: ops,
	}, nil
}

// firstNew picks an arbitrary New entry. Map iteration order is undefined,
// but the fixpoint visits every New entry regardless of order, so the
// final closure is order-independent.
func firstNew(pending map[string]refState) (string, bool) {
	for ptr, st := range pending {
		if st == refNew {
			return ptr, true
		}
	}
	return "", false
}
