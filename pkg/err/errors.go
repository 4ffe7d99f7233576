// Package err defines common errors for schema compilation.
package err

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSchema   = errors.New("schema must be an object or a boolean")
	ErrExpectedString  = errors.New("expected string")
	ErrInvalidLimit    = errors.New("expected a non-negative integer limit")
	ErrLimitOutOfRange = errors.New("limit exceeds the exact integer range of a float64")
	ErrUnknownType     = errors.New("unknown type name")
)

// ErrRegexCompile returns an error for a pattern that is not a valid
// regular expression after dialect translation.
//
// Parameters:
//
//	pattern string: The original, untranslated pattern.
//	cause error: The matcher compiler's error.
//
// Returns:
//
//	error: The formatted error.
func ErrRegexCompile(pattern string, cause error) error {
	return fmt.Errorf("pattern %q is not a valid regular expression: %w", pattern, cause)
}
