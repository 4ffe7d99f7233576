package schema

import (
	"encoding/json"
	"math"

	"github.com/jpmckinney/jsonschema/pkg/draft"
	verr "github.com/jpmckinney/jsonschema/pkg/err"
)

// maxExactLimit is the largest magnitude a float64 represents exactly
// as an integer (2^53). Decimal limits beyond it are rejected at
// compile time instead of being truncated to a nearby value.
const maxExactLimit = uint64(1) << 53

// uintLimit extracts a non-negative integral limit from a numeric
// keyword fragment. Integral values are used directly. A decimal
// value whose fractional part is zero is accepted and truncated, but
// only under drafts that permit the leniency; Draft 4 requires a true
// integer.
func uintLimit(fragment any, d draft.Draft) (uint64, error) {
	switch n := fragment.(type) {
	case int:
		if n >= 0 {
			return uint64(n), nil
		}
		return 0, verr.ErrInvalidLimit
	case int64:
		if n >= 0 {
			return uint64(n), nil
		}
		return 0, verr.ErrInvalidLimit
	case uint64:
		return n, nil
	case json.Number:
		if i, err := n.Int64(); err == nil {
			if i >= 0 {
				return uint64(i), nil
			}
			return 0, verr.ErrInvalidLimit
		}
		f, err := n.Float64()
		if err != nil {
			return 0, verr.ErrInvalidLimit
		}
		return decimalLimit(f, d)
	case float64:
		return decimalLimit(n, d)
	default:
		return 0, verr.ErrInvalidLimit
	}
}

func decimalLimit(f float64, d draft.Draft) (uint64, error) {
	if !d.AllowsDecimalLimits() {
		return 0, verr.ErrInvalidLimit
	}
	if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) || math.Trunc(f) != f {
		return 0, verr.ErrInvalidLimit
	}
	if f > float64(maxExactLimit) {
		return 0, verr.ErrLimitOutOfRange
	}
	return uint64(f), nil
}
