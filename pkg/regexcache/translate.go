// Package regexcache translates ECMA 262 regular expressions into the
// dialect of the backtracking matcher and caches compiled matchers
// under a bounded least-recently-used policy shared by all schema
// compilations.
package regexcache

import (
	"regexp"
	"strings"
)

// controlGroupRe matches ECMA 262 control escapes such as `\cJ`.
var controlGroupRe = regexp.MustCompile(`\\c[A-Za-z]`)

// ECMA 262 class semantics differ from the matcher's native shorthand
// classes, so the shorthands are expanded to explicit sets.
const (
	digitChars = "0-9"
	wordChars  = "A-Za-z0-9_"
	spaceChars = " \t\n\r\v\f\u2003\uFEFF\u2029\u00A0"

	whitespaceClass    = "[" + spaceChars + "]"
	nonWhitespaceClass = "[^" + spaceChars + "]"
)

// Convert rewrites an ECMA 262 pattern into the matcher's dialect. The
// transform is pure and deterministic: control escapes become their
// control characters and the shorthand classes \d \w \s become
// explicit sets, emitted as bracket expressions outside a character
// class and as bare set contents inside one, since the matcher
// dialect does not nest bracket expressions. Negated shorthands
// inside a class have no bare-set spelling and pass through to the
// matcher's native classes, whose word and whitespace sets follow the
// matcher's Unicode tables rather than the explicit sets above.
// Every other escape passes through untouched, and a lone backslash
// at end of input is preserved as-is so that the matcher compiler
// rejects the incomplete escape.
//
// Parameters:
//
//	pattern string: The original ECMA 262 pattern.
//
// Returns:
//
//	string: The translated pattern.
func Convert(pattern string) string {
	pattern = controlGroupRe.ReplaceAllStringFunc(pattern, replaceControlGroup)
	var out strings.Builder
	out.Grow(len(pattern))
	runes := []rune(pattern)
	inClass := false
	for i := 0; i < len(runes); i++ {
		current := runes[i]
		if current != '\\' {
			if current == '[' {
				inClass = true
			} else if current == ']' {
				inClass = false
			}
			out.WriteRune(current)
			continue
		}
		if i == len(runes)-1 {
			// Incomplete escape at end of input.
			out.WriteRune(current)
			break
		}
		i++
		next := runes[i]
		if inClass {
			switch next {
			case 'd':
				out.WriteString(digitChars)
			case 'w':
				out.WriteString(wordChars)
			case 's':
				out.WriteString(spaceChars)
			default:
				// Negated shorthands have no bare-set spelling; the
				// matcher's native classes stand in.
				out.WriteRune(current)
				out.WriteRune(next)
			}
			continue
		}
		switch next {
		case 'd':
			out.WriteString("[" + digitChars + "]")
		case 'D':
			out.WriteString("[^" + digitChars + "]")
		case 'w':
			out.WriteString("[" + wordChars + "]")
		case 'W':
			out.WriteString("[^" + wordChars + "]")
		case 's':
			out.WriteString(whitespaceClass)
		case 'S':
			out.WriteString(nonWhitespaceClass)
		default:
			out.WriteRune(current)
			out.WriteRune(next)
		}
	}
	return out.String()
}

// replaceControlGroup maps a `\cX` escape to the control character
// whose code is the uppercased letter's code minus 64, i.e. `\cA` is
// U+0001 and `\cZ` is U+001A.
func replaceControlGroup(group string) string {
	letter := rune(group[2])
	if letter >= 'a' && letter <= 'z' {
		letter -= 'a' - 'A'
	}
	return string(letter - 64)
}
