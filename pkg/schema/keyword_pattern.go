package schema

import (
	"iter"

	"github.com/dlclark/regexp2"

	verr "github.com/jpmckinney/jsonschema/pkg/err"
	"github.com/jpmckinney/jsonschema/pkg/ptr"
)

// patternValidator matches string instances against a translated,
// compiled pattern. The original pattern is retained for error
// rendering; the compiled matcher comes from the shared cache.
type patternValidator struct {
	original string
	re       *regexp2.Regexp
	location ptr.Pointer
}

func compilePattern(ctx Context, _ map[string]any, fragment any) (Validator, error) {
	location := ctx.Location().Push("pattern")
	pattern, ok := fragment.(string)
	if !ok {
		return nil, &CompileError{Location: location, Err: verr.ErrExpectedString}
	}
	re, err := ctx.regexes.Compile(pattern)
	if err != nil {
		return nil, &CompileError{Location: location, Err: verr.ErrRegexCompile(pattern, err)}
	}
	return &patternValidator{original: pattern, re: re, location: location}, nil
}

// IsValid treats a matcher-internal failure as not valid; only
// Validate distinguishes the failure from an ordinary mismatch.
func (v *patternValidator) IsValid(instance any) bool {
	s, ok := instance.(string)
	if !ok {
		// Pattern only constrains strings.
		return true
	}
	matched, err := v.re.MatchString(s)
	return err == nil && matched
}

func (v *patternValidator) Validate(instance any, location ptr.Pointer) iter.Seq[ValidationError] {
	s, ok := instance.(string)
	if !ok {
		return noErrors()
	}
	matched, err := v.re.MatchString(s)
	if err != nil {
		// Exceeding the backtracking budget is reported as its own
		// kind: it signals a potentially hostile pattern, not an
		// ordinary mismatch.
		return oneError(newBacktrackLimitError(v.location, location, instance, err))
	}
	if !matched {
		return oneError(newPatternError(v.location, location, instance, v.original))
	}
	return noErrors()
}
