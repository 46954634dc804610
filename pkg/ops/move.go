package ops

import (
	"fmt"
	"strings"

	"github.com/pdftl/pdftl/pkg/handles"
	"github.com/pdftl/pdftl/pkg/observability"
	"github.com/pdftl/pdftl/pkg/pagespec"
	"github.com/pdftl/pdftl/pkg/pdf"
)

// MoveMode says which side of the target anchor the block lands on.
type MoveMode string

const (
	Before MoveMode = "before"
	After  MoveMode = "after"
)

// MoveSpec is the parsed form of a move command's arguments.
type MoveSpec struct {
	Source string
	Mode   MoveMode
	Target string
}

// ParseMoveArgs splits a move argument list on the first before/after
// keyword. Both halves are re-joined with spaces so ranges written with
// spaces ("1 - 5") survive.
func ParseMoveArgs(args []string) (MoveSpec, error) {
	if len(args) == 0 {
		return MoveSpec{}, fmt.Errorf("move requires arguments: <source> {before|after} <target>")
	}

	pivot := -1
	var mode MoveMode
	for i, arg := range args {
		switch strings.ToLower(arg) {
		case "before":
			pivot, mode = i, Before
		case "after":
			pivot, mode = i, After
		}
		if pivot >= 0 {
			break
		}
	}
	switch {
	case pivot < 0:
		return MoveSpec{}, fmt.Errorf("move must include a 'before' or 'after' keyword")
	case pivot == 0:
		return MoveSpec{}, fmt.Errorf("move is missing a source specification")
	case pivot == len(args)-1:
		return MoveSpec{}, fmt.Errorf("move is missing a target specification after %q", string(mode))
	}

	return MoveSpec{
		Source: strings.Join(args[:pivot], " "),
		Mode:   mode,
		Target: strings.Join(args[pivot+1:], " "),
	}, nil
}

// Move relocates the pages matching spec.Source to just before or after the
// anchor defined by spec.Target. The source selection order defines the
// order of the moved block; duplicates travel as separate copies. An empty
// source match is a logged no-op, an empty target match is an error since
// the target defines the mandatory insertion anchor.
func Move(doc pdf.Editor, table *handles.Table, spec MoveSpec, log observability.Logger) error {
	n := doc.PageCount()

	source, err := resolveSingle(table, []string{spec.Source}, n)
	if err != nil {
		return err
	}
	if len(source) == 0 {
		log.Warn("move source matched no pages, no changes made",
			observability.String("source", spec.Source))
		return nil
	}

	target, err := resolveSingle(table, []string{spec.Target}, n)
	if err != nil {
		return err
	}
	if len(target) == 0 {
		return fmt.Errorf("move target %q matched no pages", spec.Target)
	}

	order := movedOrder(pagespec.PageNumbers(source), spec.Mode, pagespec.PageNumbers(target), n)
	if err := doc.Collect(order); err != nil {
		return err
	}

	log.Info("moved pages",
		observability.Int("count", len(source)),
		observability.String("mode", string(spec.Mode)),
		observability.Int("anchor", target[0].Page))
	return nil
}

// movedOrder computes the final page sequence, in original 1-based
// numbering, after relocating the source block.
//
// The anchor is the position of the first target page (before) or one past
// the last target page (after). Every distinct source page strictly below
// the anchor shifts it left by one once removed. Behavior when source and
// target ranges overlap follows from this arithmetic alone and carries no
// further guarantees.
func movedOrder(source []int, mode MoveMode, target []int, pageCount int) []int {
	inSource := make(map[int]bool, len(source))
	for _, p := range source {
		inSource[p] = true
	}

	// 0-based anchor into the original sequence.
	anchor := target[0] - 1
	if mode == After {
		anchor = target[len(target)-1]
	}

	adjustment := 0
	for p := range inSource {
		if p-1 < anchor {
			adjustment++
		}
	}
	at := anchor - adjustment

	remaining := make([]int, 0, pageCount-len(inSource))
	for p := 1; p <= pageCount; p++ {
		if !inSource[p] {
			remaining = append(remaining, p)
		}
	}

	order := make([]int, 0, len(remaining)+len(source))
	order = append(order, remaining[:at]...)
	order = append(order, source...)
	order = append(order, remaining[at:]...)
	return order
}
