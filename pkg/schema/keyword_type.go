package schema

import (
	"encoding/json"
	"iter"
	"math"

	verr "github.com/jpmckinney/jsonschema/pkg/err"
	"github.com/jpmckinney/jsonschema/pkg/ptr"
)

var typeNames = map[string]struct{}{
	"array":   {},
	"boolean": {},
	"integer": {},
	"null":    {},
	"number":  {},
	"object":  {},
	"string":  {},
}

// typeValidator accepts instances matching any of its permitted type
// names.
type typeValidator struct {
	types    []string
	location ptr.Pointer
}

// compileType accepts a single type name or an array of type names.
func compileType(ctx Context, _ map[string]any, fragment any) (Validator, error) {
	location := ctx.Location().Push("type")
	var types []string
	switch t := fragment.(type) {
	case string:
		types = []string{t}
	case []any:
		for _, item := range t {
			name, ok := item.(string)
			if !ok {
				return nil, &CompileError{Location: location, Err: verr.ErrExpectedString}
			}
			types = append(types, name)
		}
	default:
		return nil, &CompileError{Location: location, Err: verr.ErrExpectedString}
	}
	for _, name := range types {
		if _, ok := typeNames[name]; !ok {
			return nil, &CompileError{Location: location, Err: verr.ErrUnknownType}
		}
	}
	return &typeValidator{types: types, location: location}, nil
}

func (v *typeValidator) IsValid(instance any) bool {
	for _, name := range v.types {
		if hasType(instance, name) {
			return true
		}
	}
	return false
}

func (v *typeValidator) Validate(instance any, location ptr.Pointer) iter.Seq[ValidationError] {
	if v.IsValid(instance) {
		return noErrors()
	}
	return oneError(newTypeError(v.location, location, instance, v.types))
}

func hasType(instance any, name string) bool {
	switch name {
	case "array":
		_, ok := instance.([]any)
		return ok
	case "boolean":
		_, ok := instance.(bool)
		return ok
	case "integer":
		return isInteger(instance)
	case "null":
		return instance == nil
	case "number":
		return isNumber(instance)
	case "object":
		_, ok := instance.(map[string]any)
		return ok
	case "string":
		_, ok := instance.(string)
		return ok
	}
	return false
}

func isNumber(instance any) bool {
	switch instance.(type) {
	case json.Number, float64, int, int64, uint64:
		return true
	}
	return false
}

func isInteger(instance any) bool {
	switch n := instance.(type) {
	case int, int64, uint64:
		return true
	case json.Number:
		if _, err := n.Int64(); err == nil {
			return true
		}
		f, err := n.Float64()
		return err == nil && math.Trunc(f) == f
	case float64:
		return math.Trunc(n) == n
	}
	return false
}

// TypeName returns the schema-language name of an instance's type,
// for diagnostics.
func TypeName(instance any) string {
	switch instance.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	case json.Number, float64, int, int64, uint64:
		if isInteger(instance) {
			return "integer"
		}
		return "number"
	default:
		return "unknown"
	}
}
