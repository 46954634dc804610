// Package cli parses the pdftl command line: input documents (optionally
// bound to handles), one operation keyword, its arguments, and an optional
// output clause. Dispatch is a fixed switch, not a runtime registry.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pdftl/pdftl/pkg/handles"
	"github.com/pdftl/pdftl/pkg/observability"
	"github.com/pdftl/pdftl/pkg/ops"
	"github.com/pdftl/pdftl/pkg/pdf"
)

// UsageError is a command-line level mistake: unknown operation, missing
// output, dangling keyword. The binary maps it to exit code 2.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }

func usageErrorf(format string, args ...interface{}) error {
	return &UsageError{Msg: fmt.Sprintf(format, args...)}
}

// Command is one parsed invocation.
type Command struct {
	Inputs    []string // handle bindings and bare paths, in order
	Operation string
	Args      []string
	Output    string
	HasOutput bool
}

var operations = map[string]bool{
	"cat":       true,
	"move":      true,
	"spin":      true,
	"burst":     true,
	"dump_text": true,
}

// ParseCommand splits the raw argument list on the operation keyword and
// the output clause.
//
//	pdftl [<handle>=<file> | <file>]... <operation> [<arg>...] [output <file>]
func ParseCommand(args []string) (*Command, error) {
	cmd := &Command{}

	i := 0
	for ; i < len(args); i++ {
		if operations[strings.ToLower(args[i])] {
			break
		}
		cmd.Inputs = append(cmd.Inputs, args[i])
	}
	if i == len(args) {
		return nil, usageErrorf("no operation given (expected one of cat, move, spin, burst, dump_text)")
	}
	cmd.Operation = strings.ToLower(args[i])
	i++

	for ; i < len(args); i++ {
		if strings.ToLower(args[i]) == "output" {
			if i == len(args)-1 {
				return nil, usageErrorf("'output' must be followed by a file name")
			}
			if len(args) > i+2 {
				return nil, usageErrorf("unexpected arguments after output file: %s",
					strings.Join(args[i+2:], " "))
			}
			cmd.Output = args[i+1]
			cmd.HasOutput = true
			return cmd, nil
		}
		cmd.Args = append(cmd.Args, args[i])
	}
	return cmd, nil
}

// Run executes a parsed command. Page text output (dump_text) goes to
// stdout unless an output file was given.
func Run(cmd *Command, stdout io.Writer, log observability.Logger) error {
	b := handles.NewBuilder()
	for _, in := range cmd.Inputs {
		b.Add(in)
	}
	table, err := b.Build()
	if err != nil {
		return err
	}

	docs := make([]*pdf.PDFDocument, table.Len())
	for i, slot := range table.Slots() {
		doc, err := pdf.Open(slot.Path)
		if err != nil {
			return fmt.Errorf("input %s: %w", slot.Path, err)
		}
		defer doc.Close()
		docs[i] = doc
	}

	switch cmd.Operation {
	case "cat":
		return runCat(cmd, table, docs, log)
	case "move":
		return runMove(cmd, table, docs, log)
	case "spin":
		return runSpin(cmd, table, docs, log)
	case "burst":
		return runBurst(cmd, table, docs, log)
	case "dump_text":
		return runDumpText(cmd, table, docs, stdout)
	}
	return usageErrorf("unknown operation %q", cmd.Operation)
}

func runCat(cmd *Command, table *handles.Table, docs []*pdf.PDFDocument, log observability.Logger) error {
	if !cmd.HasOutput {
		return usageErrorf("cat requires an output file")
	}
	out := pdf.NewBuilder()
	if err := ops.Cat(asDocuments(docs), table, cmd.Args, out, log); err != nil {
		return err
	}
	return out.WriteTo(cmd.Output)
}

func runMove(cmd *Command, table *handles.Table, docs []*pdf.PDFDocument, log observability.Logger) error {
	doc, err := singleInput(docs, "move")
	if err != nil {
		return err
	}
	if !cmd.HasOutput {
		return usageErrorf("move requires an output file")
	}
	spec, err := ops.ParseMoveArgs(cmd.Args)
	if err != nil {
		return &UsageError{Msg: err.Error()}
	}
	if err := ops.Move(doc, table, spec, log); err != nil {
		return err
	}
	return doc.SaveAs(cmd.Output)
}

func runSpin(cmd *Command, table *handles.Table, docs []*pdf.PDFDocument, log observability.Logger) error {
	doc, err := singleInput(docs, "spin")
	if err != nil {
		return err
	}
	if !cmd.HasOutput {
		return usageErrorf("spin requires an output file")
	}
	if err := ops.Spin(doc, table, cmd.Args, log); err != nil {
		return err
	}
	return doc.SaveAs(cmd.Output)
}

func runBurst(cmd *Command, table *handles.Table, docs []*pdf.PDFDocument, log observability.Logger) error {
	doc, err := singleInput(docs, "burst")
	if err != nil {
		return err
	}
	template := ""
	if cmd.HasOutput {
		template = cmd.Output
	}
	newAssembler := func() pdf.Assembler { return pdf.NewBuilder() }
	return ops.Burst(doc, table, cmd.Args, template, newAssembler, log)
}

func runDumpText(cmd *Command, table *handles.Table, docs []*pdf.PDFDocument, stdout io.Writer) error {
	doc, err := singleInput(docs, "dump_text")
	if err != nil {
		return err
	}
	w := stdout
	if cmd.HasOutput {
		f, err := os.Create(cmd.Output)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", cmd.Output, err)
		}
		defer f.Close()
		w = f
	}
	return ops.DumpText(doc, table, doc.Filepath(), cmd.Args, w)
}

func singleInput(docs []*pdf.PDFDocument, op string) (*pdf.PDFDocument, error) {
	if len(docs) != 1 {
		return nil, usageErrorf("%s takes exactly one input document, got %d", op, len(docs))
	}
	return docs[0], nil
}

func asDocuments(docs []*pdf.PDFDocument) []pdf.Document {
	out := make([]pdf.Document, len(docs))
	for i, d := range docs {
		out[i] = d
	}
	return out
}
