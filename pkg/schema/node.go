package schema

import (
	"iter"

	"github.com/jpmckinney/jsonschema/pkg/ptr"
)

// Validator is the runtime contract every compiled keyword obeys.
// Implementations are immutable after compilation and safe for
// concurrent use.
type Validator interface {
	// IsValid reports whether instance satisfies the keyword. It must
	// not allocate error detail.
	IsValid(instance any) bool

	// Validate lazily yields every failure of instance against the
	// keyword, with location identifying the instance value within
	// the document being validated. The returned sequence is
	// restartable and safe to consume partially.
	Validate(instance any, location ptr.Pointer) iter.Seq[ValidationError]
}

// Node is a compiled (sub)schema: the schema location it was compiled
// at plus the keyword validators active there. A node is immutable
// once compilation returns and may be used for unboundedly many
// validations, concurrently, without further synchronization.
type Node struct {
	location   ptr.Pointer
	validators []Validator
}

// Location returns the schema pointer this node was compiled at.
func (n *Node) Location() ptr.Pointer {
	return n.location
}

// IsValid reports whether instance satisfies every keyword at this
// node, short-circuiting on the first failure. It allocates no error
// detail and is the hot-path membership check.
func (n *Node) IsValid(instance any) bool {
	for _, v := range n.validators {
		if !v.IsValid(instance) {
			return false
		}
	}
	return true
}

// Validate lazily yields every failure of instance against this node,
// rooted at the instance document root. Stopping after the first
// error costs no more than IsValid; draining the sequence produces
// the complete diagnostic trail.
func (n *Node) Validate(instance any) iter.Seq[ValidationError] {
	return n.ValidateAt(instance, ptr.Pointer{})
}

// ValidateAt is Validate with an explicit instance location, for
// callers validating a sub-value of a larger document.
func (n *Node) ValidateAt(instance any, location ptr.Pointer) iter.Seq[ValidationError] {
	return func(yield func(ValidationError) bool) {
		for _, v := range n.validators {
			for e := range v.Validate(instance, location) {
				if !yield(e) {
					return
				}
			}
		}
	}
}

// noErrors is the empty validation outcome.
func noErrors() iter.Seq[ValidationError] {
	return func(func(ValidationError) bool) {}
}

// oneError yields exactly one failure.
func oneError(e ValidationError) iter.Seq[ValidationError] {
	return func(yield func(ValidationError) bool) {
		yield(e)
	}
}
