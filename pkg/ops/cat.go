// Package ops implements the page operations built on the spec language:
// cat, move, spin, burst and dump_text. Every operation resolves its specs
// against the original page count before any document mutation begins, so
// numbering stays stable within one command.
package ops

import (
	"fmt"

	"github.com/pdftl/pdftl/pkg/handles"
	"github.com/pdftl/pdftl/pkg/observability"
	"github.com/pdftl/pdftl/pkg/pagespec"
	"github.com/pdftl/pdftl/pkg/pdf"
)

// Cat concatenates page selections from one or more input documents into
// out. docs holds the open documents in handle-table slot order. Without
// specs every input is appended in full, in argument order. A spec matching
// zero pages contributes nothing and is not an error.
func Cat(docs []pdf.Document, table *handles.Table, specs []string, out pdf.Assembler, log observability.Logger) error {
	if len(docs) != table.Len() {
		return fmt.Errorf("have %d open documents for %d input slots", len(docs), table.Len())
	}

	if len(specs) == 0 {
		for _, doc := range docs {
			all := make([]int, doc.PageCount())
			for i := range all {
				all[i] = i + 1
			}
			if err := out.Append(doc, all, 0); err != nil {
				return err
			}
		}
		return nil
	}

	parsed, err := pagespec.ParseSpecs(specs)
	if err != nil {
		return err
	}
	for _, ps := range parsed {
		slot, err := table.Lookup(ps.Handle)
		if err != nil {
			return err
		}
		doc := docs[slot]
		sel, err := pagespec.Resolve(ps, doc.PageCount())
		if err != nil {
			return err
		}
		if len(sel) == 0 {
			log.Debug("spec matched no pages", observability.String("spec", ps.Raw))
			continue
		}
		for _, r := range rotationRuns(sel) {
			if err := out.Append(doc, r.pages, r.rotate); err != nil {
				return err
			}
		}
	}
	return nil
}

type pageRun struct {
	pages  []int
	rotate int
}

// rotationRuns groups a selection into maximal stretches sharing one
// rotation delta, preserving order.
func rotationRuns(sel []pagespec.Selected) []pageRun {
	var runs []pageRun
	for _, s := range sel {
		n := len(runs)
		if n > 0 && runs[n-1].rotate == int(s.Rotation) {
			runs[n-1].pages = append(runs[n-1].pages, s.Page)
			continue
		}
		runs = append(runs, pageRun{pages: []int{s.Page}, rotate: int(s.Rotation)})
	}
	return runs
}
