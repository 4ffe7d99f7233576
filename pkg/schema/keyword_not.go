package schema

import (
	"iter"

	"github.com/jpmckinney/jsonschema/pkg/ptr"
)

// notValidator negates a nested schema. It keeps the operand in
// source form: when the operand matches, the error echoes the schema
// the author wrote, not its compiled representation.
type notValidator struct {
	original any
	node     *Node
}

// compileNot compiles the operand as a full nested schema under the
// "not" segment. A failing operand aborts negation compilation; there
// is no fallback.
func compileNot(ctx Context, _ map[string]any, fragment any) (Validator, error) {
	node, err := ctx.Descend("not").Compile(fragment)
	if err != nil {
		return nil, err
	}
	return &notValidator{original: fragment, node: node}, nil
}

func (v *notValidator) IsValid(instance any) bool {
	return !v.node.IsValid(instance)
}

func (v *notValidator) Validate(instance any, location ptr.Pointer) iter.Seq[ValidationError] {
	if v.IsValid(instance) {
		return noErrors()
	}
	// The schema pointer is the nested node's own location: the locus
	// of the sub-schema that should not have matched.
	return oneError(newNotError(v.node.Location(), location, instance, v.original))
}
