// Package ptr implements immutable JSON Pointers (RFC 6901) used to
// identify positions within schema and instance documents.
package ptr

import (
	"strconv"
	"strings"
)

// Segment is a single pointer step: either an object key or an array
// index.
type Segment struct {
	key   string
	index int
	isKey bool
}

// Key creates a segment referring to an object member.
//
// Parameters:
//
//	k string: The member name.
//
// Returns:
//
//	Segment: A key segment.
func Key(k string) Segment {
	return Segment{key: k, isKey: true}
}

// Index creates a segment referring to an array element.
//
// Parameters:
//
//	i int: The element position.
//
// Returns:
//
//	Segment: An index segment.
func Index(i int) Segment {
	return Segment{index: i}
}

// String renders the segment as an RFC 6901 reference token, escaping
// "~" and "/" in keys.
func (s Segment) String() string {
	if s.isKey {
		return escape(s.key)
	}
	return strconv.Itoa(s.index)
}

// Pointer is an ordered sequence of segments. The zero value refers to
// the document root. Pointers are immutable: Push and PushIndex copy
// the segment list, so extending a parent can never corrupt a pointer
// that was derived from it earlier.
type Pointer struct {
	segments []Segment
}

// Push returns a new pointer extended with an object-key segment. The
// receiver is unchanged.
func (p Pointer) Push(key string) Pointer {
	return p.push(Key(key))
}

// PushIndex returns a new pointer extended with an array-index
// segment. The receiver is unchanged.
func (p Pointer) PushIndex(i int) Pointer {
	return p.push(Index(i))
}

func (p Pointer) push(s Segment) Pointer {
	segments := make([]Segment, len(p.segments)+1)
	copy(segments, p.segments)
	segments[len(p.segments)] = s
	return Pointer{segments: segments}
}

// Len returns the number of segments.
func (p Pointer) Len() int {
	return len(p.segments)
}

// IsRoot reports whether the pointer refers to the document root.
func (p Pointer) IsRoot() bool {
	return len(p.segments) == 0
}

// Equal reports whether two pointers consist of the same segments.
func (p Pointer) Equal(other Pointer) bool {
	if len(p.segments) != len(other.segments) {
		return false
	}
	for i := range p.segments {
		if p.segments[i] != other.segments[i] {
			return false
		}
	}
	return true
}

// String renders the pointer in RFC 6901 form. The root pointer
// renders as the empty string.
func (p Pointer) String() string {
	if len(p.segments) == 0 {
		return ""
	}
	var b strings.Builder
	for _, s := range p.segments {
		b.WriteByte('/')
		b.WriteString(s.String())
	}
	return b.String()
}

func escape(s string) string {
	s = strings.ReplaceAll(s, "~", "~0")
	return strings.ReplaceAll(s, "/", "~1")
}
