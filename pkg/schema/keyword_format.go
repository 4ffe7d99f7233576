package schema

import (
	"iter"

	verr "github.com/jpmckinney/jsonschema/pkg/err"
	"github.com/jpmckinney/jsonschema/pkg/ptr"
)

// formatValidator routes instances to a caller-registered format
// checker. The engine ships no checkers; a format with no registered
// checker is treated as an annotation and compiles to nothing.
type formatValidator struct {
	name     string
	check    FormatFunc
	location ptr.Pointer
}

func compileFormat(ctx Context, _ map[string]any, fragment any) (Validator, error) {
	location := ctx.Location().Push("format")
	name, ok := fragment.(string)
	if !ok {
		return nil, &CompileError{Location: location, Err: verr.ErrExpectedString}
	}
	check, ok := ctx.formats[name]
	if !ok {
		return nil, nil
	}
	return &formatValidator{name: name, check: check, location: location}, nil
}

func (v *formatValidator) IsValid(instance any) bool {
	return v.check(instance)
}

func (v *formatValidator) Validate(instance any, location ptr.Pointer) iter.Seq[ValidationError] {
	if v.check(instance) {
		return noErrors()
	}
	return oneError(newFormatError(v.location, location, instance, v.name))
}
