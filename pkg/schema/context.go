package schema

import (
	"github.com/jpmckinney/jsonschema/pkg/draft"
	"github.com/jpmckinney/jsonschema/pkg/ptr"
	"github.com/jpmckinney/jsonschema/pkg/regexcache"
)

// Resolver resolves a schema reference to the schema value it denotes.
// Fetching referenced resources (network, filesystem) lives outside
// the engine; compilation only ever consumes this interface.
type Resolver interface {
	Resolve(ref string) (any, error)
}

// FormatFunc checks an instance against a named format. Checkers are
// registered by the caller; none ship with the engine.
type FormatFunc func(instance any) bool

// Context carries the state of one schema compilation: the active
// draft, the schema pointer accumulated while descending, the
// reference resolver, the registered format checkers and the shared
// regex cache. Contexts are values; Descend copies, so a child
// context never affects the parent or any sibling.
type Context struct {
	draft    draft.Draft
	location ptr.Pointer
	resolver Resolver
	formats  map[string]FormatFunc
	regexes  *regexcache.Cache
}

// NewContext creates a root compilation context.
//
// Parameters:
//
//	d draft.Draft: The active schema revision.
//	resolver Resolver: The reference resolver slot; may be nil.
//	formats map[string]FormatFunc: Named format checkers; may be nil.
//	regexes *regexcache.Cache: The pattern cache; nil selects the
//	process-wide default.
//
// Returns:
//
//	Context: A context pointing at the document root.
func NewContext(d draft.Draft, resolver Resolver, formats map[string]FormatFunc, regexes *regexcache.Cache) Context {
	if regexes == nil {
		regexes = regexcache.Default
	}
	return Context{draft: d, resolver: resolver, formats: formats, regexes: regexes}
}

// Draft returns the active schema revision.
func (c Context) Draft() draft.Draft {
	return c.draft
}

// Location returns the schema pointer of the position being compiled.
func (c Context) Location() ptr.Pointer {
	return c.location
}

// Resolver returns the reference resolver slot; may be nil.
func (c Context) Resolver() Resolver {
	return c.resolver
}

// Descend returns a context one schema segment deeper. The receiver
// is unchanged; draft, resolver, formats and cache are inherited.
func (c Context) Descend(segment string) Context {
	c.location = c.location.Push(segment)
	return c
}

// Compile recursively compiles fragment as a full schema rooted at
// the context's current location. Keywords embedding sub-schemas
// delegate here instead of doing their own pointer arithmetic.
func (c Context) Compile(fragment any) (*Node, error) {
	return compile(c, fragment)
}
