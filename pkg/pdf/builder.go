package pdf

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// run is one scheduled stretch of pages from a single source document
// sharing one rotation delta.
type run struct {
	src    *PDFDocument
	pages  []int
	rotate int
}

// Builder implements Assembler on top of pdfcpu: each run is collected from
// its source, rotated if needed, and the runs are merged in order.
type Builder struct {
	runs []run
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Append schedules pages of src with a clockwise rotation delta in degrees.
func (b *Builder) Append(src Document, pages []int, rotate int) error {
	d, ok := src.(*PDFDocument)
	if !ok {
		return fmt.Errorf("unsupported document implementation %T", src)
	}
	if len(pages) == 0 {
		return nil
	}
	b.runs = append(b.runs, run{src: d, pages: pages, rotate: rotate})
	return nil
}

// WriteTo assembles the scheduled runs into path.
func (b *Builder) WriteTo(path string) error {
	if len(b.runs) == 0 {
		return fmt.Errorf("no pages selected for output")
	}

	parts := make([]io.ReadSeeker, 0, len(b.runs))
	for _, r := range b.runs {
		part, err := b.assembleRun(r)
		if err != nil {
			return err
		}
		parts = append(parts, part)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := api.MergeRaw(parts, f, false, nil); err != nil {
		return fmt.Errorf("failed to merge page runs into %s: %w", path, err)
	}
	return nil
}

func (b *Builder) assembleRun(r run) (io.ReadSeeker, error) {
	rs, err := r.src.reader()
	if err != nil {
		return nil, err
	}
	var collected bytes.Buffer
	if err := api.Collect(rs, &collected, pageStrings(r.pages), nil); err != nil {
		return nil, fmt.Errorf("failed to collect pages from %s: %w", r.src.filepath, err)
	}
	if r.rotate%360 == 0 {
		return bytes.NewReader(collected.Bytes()), nil
	}
	// A nil page selection rotates every page of the collected run.
	var rotated bytes.Buffer
	if err := api.Rotate(bytes.NewReader(collected.Bytes()), &rotated, r.rotate, nil, nil); err != nil {
		return nil, fmt.Errorf("failed to rotate pages from %s: %w", r.src.filepath, err)
	}
	return bytes.NewReader(rotated.Bytes()), nil
}
