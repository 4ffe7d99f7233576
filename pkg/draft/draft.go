// Package draft enumerates the supported JSON Schema revisions and
// their compile-time semantic differences.
package draft

import "strings"

// Draft selects a revision of the schema language. Keyword compile
// behavior may differ between drafts; runtime validation does not.
type Draft int

const (
	Draft4 Draft = iota + 4
	Draft6
	Draft7
	Draft201909
	Draft202012
)

// Default is the revision assumed when a schema document carries no
// recognizable "$schema" and the caller forces none.
const Default = Draft202012

// String returns the conventional short name of the draft.
func (d Draft) String() string {
	switch d {
	case Draft4:
		return "draft4"
	case Draft6:
		return "draft6"
	case Draft7:
		return "draft7"
	case Draft201909:
		return "draft2019-09"
	case Draft202012:
		return "draft2020-12"
	default:
		return "unknown"
	}
}

// AllowsDecimalLimits reports whether numeric keywords such as
// minItems accept a whole-valued decimal literal (e.g. 1.0) in place
// of an integer. Draft 4 requires a true integer; every later draft
// is lenient.
func (d Draft) AllowsDecimalLimits() bool {
	return d != Draft4
}

var bySchemaURI = map[string]Draft{
	"http://json-schema.org/draft-04/schema":       Draft4,
	"http://json-schema.org/draft-06/schema":       Draft6,
	"http://json-schema.org/draft-07/schema":       Draft7,
	"https://json-schema.org/draft/2019-09/schema": Draft201909,
	"https://json-schema.org/draft/2020-12/schema": Draft202012,
}

// FromSchemaURI maps a "$schema" value to its draft. A trailing empty
// fragment is tolerated, as older meta-schema URIs carry one.
//
// Parameters:
//
//	uri string: The "$schema" value from a schema document.
//
// Returns:
//
//	Draft: The matching draft, if any.
//	bool: True when the URI is recognized.
func FromSchemaURI(uri string) (Draft, bool) {
	d, ok := bySchemaURI[strings.TrimSuffix(uri, "#")]
	return d, ok
}
