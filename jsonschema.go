// Package jsonschema compiles JSON Schema documents into immutable
// validator trees and validates instance documents against them.
//
// A schema is compiled once and the resulting node is reused for
// unboundedly many validations, from any number of goroutines:
//
//	node, err := jsonschema.CompileBytes([]byte(`{"pattern": "^[a-z]+$"}`))
//	if err != nil {
//		return err
//	}
//	if node.IsValid(instance) {
//		...
//	}
//	for e := range node.Validate(instance) {
//		fmt.Println(e.SchemaPtr, e.Error())
//	}
//
// IsValid is the cheap boolean membership check; Validate lazily
// produces the complete diagnostic trail and may be consumed
// partially at no extra cost.
package jsonschema

import (
	"github.com/jpmckinney/jsonschema/pkg/draft"
	"github.com/jpmckinney/jsonschema/pkg/loader"
	"github.com/jpmckinney/jsonschema/pkg/regexcache"
	"github.com/jpmckinney/jsonschema/pkg/schema"
)

// Option adjusts schema compilation.
type Option func(*options)

type options struct {
	draft    draft.Draft
	draftSet bool
	resolver schema.Resolver
	formats  map[string]schema.FormatFunc
	regexes  *regexcache.Cache
}

// WithDraft forces a schema revision instead of honoring the
// document's "$schema".
func WithDraft(d draft.Draft) Option {
	return func(o *options) {
		o.draft = d
		o.draftSet = true
	}
}

// WithResolver installs the resolver consulted when a schema
// reference must be resolved to a schema value.
func WithResolver(r schema.Resolver) Option {
	return func(o *options) {
		o.resolver = r
	}
}

// WithFormat registers a named format checker for the "format"
// keyword. Formats with no registered checker are ignored.
func WithFormat(name string, check schema.FormatFunc) Option {
	return func(o *options) {
		o.formats[name] = check
	}
}

// WithRegexCache substitutes the shared pattern cache, letting tests
// compile against an isolated cache instance.
func WithRegexCache(c *regexcache.Cache) Option {
	return func(o *options) {
		o.regexes = c
	}
}

// Compile builds a validator tree from an already-parsed schema
// document. Unless WithDraft forces one, a recognized "$schema" URI
// at the document root selects the draft; otherwise draft.Default
// applies.
//
// Parameters:
//
//	document any: The parsed schema document.
//	opts ...Option: Compilation options.
//
// Returns:
//
//	*schema.Node: The compiled, reusable validator tree.
//	error: A *schema.CompileError if the document is not a valid
//	schema.
func Compile(document any, opts ...Option) (*schema.Node, error) {
	o := options{draft: draft.Default, formats: map[string]schema.FormatFunc{}}
	for _, opt := range opts {
		opt(&o)
	}
	d := o.draft
	if !o.draftSet {
		if detected, ok := detectDraft(document); ok {
			d = detected
		}
	}
	ctx := schema.NewContext(d, o.resolver, o.formats, o.regexes)
	return ctx.Compile(document)
}

// CompileBytes parses a JSON or YAML schema document and compiles it.
func CompileBytes(data []byte, opts ...Option) (*schema.Node, error) {
	document, err := loader.ParseYAML(data)
	if err != nil {
		return nil, err
	}
	return Compile(document, opts...)
}

func detectDraft(document any) (draft.Draft, bool) {
	object, ok := document.(map[string]any)
	if !ok {
		return 0, false
	}
	uri, ok := object["$schema"].(string)
	if !ok {
		return 0, false
	}
	return draft.FromSchemaURI(uri)
}
