package schema

import (
	"iter"

	"github.com/jpmckinney/jsonschema/pkg/ptr"
)

// minItemsValidator requires arrays to hold at least limit elements.
type minItemsValidator struct {
	limit    uint64
	location ptr.Pointer
}

func compileMinItems(ctx Context, _ map[string]any, fragment any) (Validator, error) {
	location := ctx.Location().Push("minItems")
	limit, err := uintLimit(fragment, ctx.Draft())
	if err != nil {
		return nil, &CompileError{Location: location, Err: err}
	}
	return &minItemsValidator{limit: limit, location: location}, nil
}

func (v *minItemsValidator) IsValid(instance any) bool {
	items, ok := instance.([]any)
	// Non-array instances are vacuously valid.
	return !ok || uint64(len(items)) >= v.limit
}

func (v *minItemsValidator) Validate(instance any, location ptr.Pointer) iter.Seq[ValidationError] {
	if items, ok := instance.([]any); ok && uint64(len(items)) < v.limit {
		return oneError(newMinItemsError(v.location, location, instance, v.limit))
	}
	return noErrors()
}
