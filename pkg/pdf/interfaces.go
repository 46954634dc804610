package pdf

// Document is the read-side capability the resolution engine needs from a
// PDF backend: just a page count and a lifecycle hook. Resolution itself
// never touches page content.
type Document interface {
	// PageCount returns the total number of pages.
	PageCount() int

	// Close releases resources associated with the document.
	Close() error
}

// Editor extends Document with the in-place mutations the single-input
// operations (move, spin) perform.
type Editor interface {
	Document

	// Collect replaces the document's page sequence with the given
	// 1-based page numbers, in order. Duplicates produce copies; pages
	// not listed are dropped.
	Collect(order []int) error

	// Rotate adds a clockwise rotation delta, in degrees, to the stated
	// rotation of the given pages.
	Rotate(delta int, pages []int) error

	// Spin prepends a content-stream transform rotating each page's
	// drawn content by angle degrees counter-clockwise about the visible
	// area center. The page's stated media size is untouched.
	Spin(angle float64, pages []int) error

	// SaveAs writes the document to path.
	SaveAs(path string) error
}

// Assembler builds a new document out of page runs taken from existing
// documents, as cat and burst do.
type Assembler interface {
	// Append schedules the given 1-based pages of src, in order, with a
	// clockwise rotation delta in degrees applied to each. An empty page
	// list is a no-op.
	Append(src Document, pages []int, rotate int) error

	// WriteTo assembles the scheduled runs into path.
	WriteTo(path string) error
}
