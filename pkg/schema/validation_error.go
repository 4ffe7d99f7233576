// Package schema compiles schema documents into immutable trees of
// keyword validators and executes them against instance documents.
package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jpmckinney/jsonschema/pkg/ptr"
)

// ErrorKind discriminates the closed set of validation failure kinds.
//
// Values:
//
//	KindBacktrackLimit | KindFalseSchema | KindFormat | KindMinItems |
//	KindNot | KindPattern | KindType
type ErrorKind string

const (
	KindBacktrackLimit ErrorKind = "backtrack_limit"
	KindFalseSchema    ErrorKind = "false_schema"
	KindFormat         ErrorKind = "format"
	KindMinItems       ErrorKind = "min_items"
	KindNot            ErrorKind = "not"
	KindPattern        ErrorKind = "pattern"
	KindType           ErrorKind = "type"
)

// ValidationError is a single validation failure. It is an ordinary
// value, not a control-flow signal: failing validation is an expected,
// high-frequency outcome. Every error pinpoints the violated
// constraint in the schema and the offending value in the instance.
type ValidationError struct {
	Kind        ErrorKind
	SchemaPtr   ptr.Pointer
	InstancePtr ptr.Pointer
	// Instance is the offending instance value.
	Instance any

	// Pattern is the original, untranslated pattern for KindPattern.
	Pattern string
	// Limit is the violated bound for KindMinItems.
	Limit uint64
	// Schema is the operand echoed in source form for KindNot.
	Schema any
	// Types are the permitted type names for KindType.
	Types []string
	// Format is the format name for KindFormat.
	Format string
	// Cause is the matcher's failure for KindBacktrackLimit.
	Cause error
}

// Error renders a human-readable description of the failure.
func (e ValidationError) Error() string {
	switch e.Kind {
	case KindBacktrackLimit:
		return fmt.Sprintf("backtracking limit exceeded while matching %s: %v", renderValue(e.Instance), e.Cause)
	case KindFalseSchema:
		return fmt.Sprintf("false schema does not allow %s", renderValue(e.Instance))
	case KindFormat:
		return fmt.Sprintf("%s is not a %q", renderValue(e.Instance), e.Format)
	case KindMinItems:
		return fmt.Sprintf("%s has less than %d items", renderValue(e.Instance), e.Limit)
	case KindNot:
		return fmt.Sprintf("%s is not allowed for %s", renderValue(e.Schema), renderValue(e.Instance))
	case KindPattern:
		return fmt.Sprintf("%s does not match %q", renderValue(e.Instance), e.Pattern)
	case KindType:
		return fmt.Sprintf(`%s is not of type "%s"`, renderValue(e.Instance), strings.Join(e.Types, `", "`))
	default:
		return string(e.Kind)
	}
}

func newBacktrackLimitError(schemaPtr, instancePtr ptr.Pointer, instance any, cause error) ValidationError {
	return ValidationError{
		Kind:        KindBacktrackLimit,
		SchemaPtr:   schemaPtr,
		InstancePtr: instancePtr,
		Instance:    instance,
		Cause:       cause,
	}
}

func newFalseSchemaError(schemaPtr, instancePtr ptr.Pointer, instance any) ValidationError {
	return ValidationError{
		Kind:        KindFalseSchema,
		SchemaPtr:   schemaPtr,
		InstancePtr: instancePtr,
		Instance:    instance,
	}
}

func newFormatError(schemaPtr, instancePtr ptr.Pointer, instance any, format string) ValidationError {
	return ValidationError{
		Kind:        KindFormat,
		SchemaPtr:   schemaPtr,
		InstancePtr: instancePtr,
		Instance:    instance,
		Format:      format,
	}
}

func newMinItemsError(schemaPtr, instancePtr ptr.Pointer, instance any, limit uint64) ValidationError {
	return ValidationError{
		Kind:        KindMinItems,
		SchemaPtr:   schemaPtr,
		InstancePtr: instancePtr,
		Instance:    instance,
		Limit:       limit,
	}
}

func newNotError(schemaPtr, instancePtr ptr.Pointer, instance, original any) ValidationError {
	return ValidationError{
		Kind:        KindNot,
		SchemaPtr:   schemaPtr,
		InstancePtr: instancePtr,
		Instance:    instance,
		Schema:      original,
	}
}

func newPatternError(schemaPtr, instancePtr ptr.Pointer, instance any, pattern string) ValidationError {
	return ValidationError{
		Kind:        KindPattern,
		SchemaPtr:   schemaPtr,
		InstancePtr: instancePtr,
		Instance:    instance,
		Pattern:     pattern,
	}
}

func newTypeError(schemaPtr, instancePtr ptr.Pointer, instance any, types []string) ValidationError {
	return ValidationError{
		Kind:        KindType,
		SchemaPtr:   schemaPtr,
		InstancePtr: instancePtr,
		Instance:    instance,
		Types:       types,
	}
}

// renderValue echoes a generic value in JSON form where possible.
func renderValue(v any) string {
	if data, err := json.Marshal(v); err == nil {
		return string(data)
	}
	return fmt.Sprintf("%v", v)
}
