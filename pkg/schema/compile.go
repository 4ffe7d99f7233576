package schema

import (
	"fmt"
	"iter"
	"sort"

	verr "github.com/jpmckinney/jsonschema/pkg/err"
	"github.com/jpmckinney/jsonschema/pkg/ptr"
)

// compileFunc compiles one keyword from its schema fragment. A nil
// validator with a nil error means the keyword declined (not
// applicable here); a non-nil error aborts the enclosing node.
type compileFunc func(ctx Context, schema map[string]any, fragment any) (Validator, error)

// keywordRegistry maps keyword names to their compile functions. Keys
// absent from the registry are ignored during compilation, which
// keeps the engine forward-compatible with vocabulary it does not
// implement. Populated in init: combinator keywords recurse back into
// compile through Context.Compile, so a composite-literal initializer
// would form an initialization cycle.
var keywordRegistry = map[string]compileFunc{}

func init() {
	keywordRegistry["format"] = compileFormat
	keywordRegistry["minItems"] = compileMinItems
	keywordRegistry["not"] = compileNot
	keywordRegistry["pattern"] = compilePattern
	keywordRegistry["type"] = compileType
}

// CompileError reports that a schema document failed to compile. It
// carries the schema location of the offending keyword and wraps the
// underlying cause. A document that fails to compile yields no usable
// node: the schema itself is invalid configuration.
type CompileError struct {
	Location ptr.Pointer
	Err      error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	return fmt.Sprintf("compile %q: %v", e.Location.String(), e.Err)
}

// Unwrap returns the underlying cause.
func (e *CompileError) Unwrap() error {
	return e.Err
}

// compile builds the node for one (sub)schema. Object keys are
// visited in sorted order so that the first compile error surfaced,
// and the order of validators within the node, are deterministic.
// The first keyword compile error aborts the node; no partial nodes
// are ever returned.
func compile(ctx Context, fragment any) (*Node, error) {
	switch schema := fragment.(type) {
	case bool:
		node := &Node{location: ctx.Location()}
		if !schema {
			node.validators = []Validator{falseValidator{location: ctx.Location()}}
		}
		return node, nil
	case map[string]any:
		keys := make([]string, 0, len(schema))
		for key := range schema {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		node := &Node{location: ctx.Location()}
		for _, key := range keys {
			fn, ok := keywordRegistry[key]
			if !ok {
				continue
			}
			v, err := fn(ctx, schema, schema[key])
			if err != nil {
				return nil, err
			}
			if v != nil {
				node.validators = append(node.validators, v)
			}
		}
		return node, nil
	default:
		return nil, &CompileError{Location: ctx.Location(), Err: verr.ErrInvalidSchema}
	}
}

// falseValidator is what the boolean schema "false" compiles to: it
// rejects every instance.
type falseValidator struct {
	location ptr.Pointer
}

func (v falseValidator) IsValid(any) bool {
	return false
}

func (v falseValidator) Validate(instance any, location ptr.Pointer) iter.Seq[ValidationError] {
	return oneError(newFalseSchemaError(v.location, location, instance))
}
