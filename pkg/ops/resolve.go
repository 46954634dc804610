package ops

import (
	"fmt"

	"github.com/pdftl/pdftl/pkg/handles"
	"github.com/pdftl/pdftl/pkg/pagespec"
)

// resolveSingle parses a spec list (defaulting to the whole document) and
// resolves it against the page count of an operation's only input. Handles
// still go through the table, so a spec naming an undeclared handle fails
// the same way it would under cat, and a handle bound to another document
// is rejected rather than silently read as the input.
func resolveSingle(table *handles.Table, specs []string, pageCount int) ([]pagespec.Selected, error) {
	if len(specs) == 0 {
		specs = []string{"1-end"}
	}
	parsed, err := pagespec.ParseSpecs(specs)
	if err != nil {
		return nil, err
	}
	var sel []pagespec.Selected
	for _, ps := range parsed {
		slot, err := table.Lookup(ps.Handle)
		if err != nil {
			return nil, err
		}
		if slot != 0 {
			return nil, fmt.Errorf("spec %q selects a different document than the operation's input", ps.Raw)
		}
		s, err := pagespec.Resolve(ps, pageCount)
		if err != nil {
			return nil, err
		}
		sel = append(sel, s...)
	}
	return sel, nil
}
