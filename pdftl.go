// Package pdftl provides the page specification language and resolution
// engine behind the pdftl command line tool: parsing textual page-selection
// expressions and resolving them into ordered page sequences with per-page
// rotation deltas.
package pdftl

import (
	"github.com/pdftl/pdftl/pkg/handles"
	"github.com/pdftl/pdftl/pkg/ops"
	"github.com/pdftl/pdftl/pkg/pagespec"
	"github.com/pdftl/pdftl/pkg/pdf"
)

// Re-export the spec language types for public API use.
type (
	PageSpec = pagespec.PageSpec
	PageRef  = pagespec.PageRef
	Omission = pagespec.Omission
	Rotation = pagespec.Rotation
	Selected = pagespec.Selected

	HandleTable = handles.Table
	MoveSpec    = ops.MoveSpec

	Document = pdf.Document
)

const (
	North = pagespec.North
	East  = pagespec.East
	South = pagespec.South
	West  = pagespec.West
)

// Re-export the engine entry points.
var (
	ParseSpec      = pagespec.Parse
	ParseSpecs     = pagespec.ParseSpecs
	ExpandBrackets = pagespec.ExpandBrackets
	Resolve        = pagespec.Resolve

	ParseMoveArgs = ops.ParseMoveArgs

	Open = pdf.Open
)
