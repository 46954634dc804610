// Package pagespec implements the page specification language shared by the
// cat, move, spin and burst operations: ranges, reversed ranges, rotation
// suffixes, even/odd qualifiers, exclusion sub-ranges, bracketed compound
// groups and document handle prefixes.
package pagespec

import (
	"fmt"
)

// Rotation is a clockwise rotation delta in degrees, applied on top of
// whatever rotation a page already carries. North is a documented no-op.
type Rotation int

const (
	North Rotation = 0
	East  Rotation = 90
	South Rotation = 180
	West  Rotation = 270
)

func (r Rotation) String() string {
	switch r {
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "north"
	}
}

// PageRef is one bound of a range: either a literal 1-based page number or
// the end-of-document sentinel. The sentinel stays symbolic until Resolve is
// given a page count, so the same spec can be reused against documents of
// different lengths.
type PageRef struct {
	n   int
	end bool
}

// Literal returns a PageRef for a concrete 1-based page number.
func Literal(n int) PageRef { return PageRef{n: n} }

// End is the end-of-document sentinel.
var End = PageRef{end: true}

// IsEnd reports whether the ref is the end-of-document sentinel.
func (r PageRef) IsEnd() bool { return r.end }

// value substitutes the sentinel with the document's page count.
func (r PageRef) value(pageCount int) int {
	if r.end {
		return pageCount
	}
	return r.n
}

func (r PageRef) String() string {
	if r.end {
		return "end"
	}
	return fmt.Sprintf("%d", r.n)
}

// Omission is a sub-range subtracted from an expanded selection. The bounds
// are treated as an inclusive numeric interval regardless of which bound is
// written first.
type Omission struct {
	Start PageRef
	End   PageRef
}

// PageSpec is the parsed form of one spec token. It is pure data: resolving
// it against a page count is a separate, pure step (see Resolve).
type PageSpec struct {
	// Handle names the document the range applies to. Empty means the
	// default (first) document.
	Handle string

	Start PageRef
	End   PageRef

	// Rotation is the delta attached to every selected page. The zero
	// value (North) means no change.
	Rotation Rotation

	// Even and Odd filter the expanded range. Both set is a
	// contradiction and selects no pages.
	Even bool
	Odd  bool

	// Omissions are subtracted after qualifier filtering, in textual
	// order.
	Omissions []Omission

	// Raw preserves the original token for diagnostics.
	Raw string
}

// Selected is one entry of a resolved selection.
type Selected struct {
	Page     int // 1-based
	Rotation Rotation
}

// SyntaxError reports a spec token that cannot be parsed.
type SyntaxError struct {
	Token  string
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid page spec %q: %s", e.Token, e.Reason)
}

// RangeError reports a page bound outside the target document.
type RangeError struct {
	Spec      string
	Page      int
	PageCount int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("page %d in spec %q is out of range: document has %d pages",
		e.Page, e.Spec, e.PageCount)
}
