package ops

import (
	"fmt"
	"io"

	"github.com/pdftl/pdftl/pkg/handles"
	"github.com/pdftl/pdftl/pkg/pagespec"
	"github.com/pdftl/pdftl/pkg/pdf"
)

// extractText is swappable for tests.
var extractText = pdf.ExtractText

// DumpText prints the plain text of each selected page (default: every
// page) to w, with a page banner between pages.
func DumpText(doc pdf.Document, table *handles.Table, filepath string, specs []string, w io.Writer) error {
	sel, err := resolveSingle(table, specs, doc.PageCount())
	if err != nil {
		return err
	}
	if len(sel) == 0 {
		return nil
	}

	texts, err := extractText(filepath, pagespec.PageNumbers(sel))
	if err != nil {
		return fmt.Errorf("failed to extract text from %s: %w", filepath, err)
	}
	for i, s := range sel {
		if _, err := fmt.Fprintf(w, "--- page %d ---\n%s\n", s.Page, texts[i]); err != nil {
			return err
		}
	}
	return nil
}
