package ops

import (
	"fmt"
	"strings"

	"github.com/pdftl/pdftl/pkg/handles"
	"github.com/pdftl/pdftl/pkg/observability"
	"github.com/pdftl/pdftl/pkg/pdf"
)

// DefaultBurstTemplate names burst output files by page number.
const DefaultBurstTemplate = "pg_%04d.pdf"

// Burst writes each selected page (default: every page) to its own file.
// template must contain a %d-style verb receiving the page number.
// newAssembler supplies one output assembler per page file.
func Burst(doc pdf.Document, table *handles.Table, specs []string, template string, newAssembler func() pdf.Assembler, log observability.Logger) error {
	if template == "" {
		template = DefaultBurstTemplate
	}
	if !strings.Contains(template, "%") {
		return fmt.Errorf("burst output template %q has no page number placeholder", template)
	}
	sel, err := resolveSingle(table, specs, doc.PageCount())
	if err != nil {
		return err
	}

	for _, s := range sel {
		out := newAssembler()
		if err := out.Append(doc, []int{s.Page}, int(s.Rotation)); err != nil {
			return err
		}
		name := fmt.Sprintf(template, s.Page)
		if err := out.WriteTo(name); err != nil {
			return err
		}
		log.Debug("wrote page", observability.Int("page", s.Page), observability.String("file", name))
	}
	return nil
}
