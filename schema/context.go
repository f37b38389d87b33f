package schema

import (
	"github.com/lestrrat/go-jsref"

	"github.com/team-telnyx/oasmodel/internal/jsonptr"
)

// Context carries the document-scoped state that parsing and merging
// need: the Document Store for pointer lookups, plus a resolver for
// fully dereferencing inline (non-named) $refs. It is created once per
// generation pass and passed explicitly to every call that needs it, in
// place of the implicit global document binding a pass-scoped process-wide
// slot would require.
type Context struct {
	Store *jsonptr.Store

	resolver *jsref.Resolver
}

// NewContext installs doc as the document for one generation pass.
func NewContext(doc interface{}) *Context {
	return &Context{
		Store:    jsonptr.New(doc),
		resolver: jsref.New(),
	}
}

// Fetch resolves pointer against the Context's Store and parses the
// result. referrer, when non-empty, is recorded on a RefNotFoundError for
// diagnostics. It's exported so the reachability filter (package reach)
// can dereference a Ref's pointer the same way the allOf merger does.
// Inline refs met during parsing go through resolveInline instead.
func (c *Context) Fetch(pointer, referrer string) (*Schema, error) {
	node, err := c.Store.Lookup(pointer)
	if err != nil {
		return nil, wrapRefNotFound(err, pointer, referrer)
	}
	return Parse(c, node)
}

// resolveInline fully dereferences a $ref that doesn't point at
// `definitions`/`components/schemas` (an "inline" reference, rule
// 13), using go-jsref's standard document-local resolution, and parses the
// result. Named top-level refs never reach this path — they stay symbolic
// as a *Schema with KindRef so the emission backend can render them as
// named types.
func (c *Context) resolveInline(pointer string) (*Schema, error) {
	doc, err := c.Store.Lookup("#")
	if err != nil {
		return nil, wrapRefNotFound(err, pointer, "")
	}

	node, err := c.resolver.Resolve(doc, pointer)
	if err != nil {
		return nil, wrapRefNotFound(err, pointer, "")
	}

	return Parse(c, node)
}
