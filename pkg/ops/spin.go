package ops

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pdftl/pdftl/pkg/handles"
	"github.com/pdftl/pdftl/pkg/observability"
	"github.com/pdftl/pdftl/pkg/pagespec"
	"github.com/pdftl/pdftl/pkg/pdf"
)

// Spin rotates the content of selected pages about their centers. Each raw
// spec has the form <page-selection>:<angle>, angle in degrees, positive
// counter-clockwise. A spec without a colon is skipped with a warning; a
// non-numeric angle is fatal.
func Spin(doc pdf.Editor, table *handles.Table, specs []string, log observability.Logger) error {
	type job struct {
		pages []int
		angle float64
	}

	// Resolve everything against the original page count before the
	// first mutation.
	n := doc.PageCount()
	var jobs []job
	for _, raw := range specs {
		colon := strings.LastIndex(raw, ":")
		if colon < 0 {
			log.Warn("invalid spin spec (missing :angle), skipping",
				observability.String("spec", raw))
			continue
		}
		angle, err := strconv.ParseFloat(raw[colon+1:], 64)
		if err != nil {
			return fmt.Errorf("invalid spin angle in spec %q: %s", raw, raw[colon+1:])
		}
		sel, err := resolveSingle(table, []string{raw[:colon]}, n)
		if err != nil {
			return err
		}
		if len(sel) == 0 {
			continue
		}
		jobs = append(jobs, job{pages: pagespec.PageNumbers(sel), angle: angle})
	}

	for _, j := range jobs {
		if err := doc.Spin(j.angle, j.pages); err != nil {
			return err
		}
	}
	return nil
}
