package main

import (
	"errors"
	"fmt"
	stdlog "log"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdftl/pdftl/pkg/cli"
	"github.com/pdftl/pdftl/pkg/observability"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "pdftl [<handle>=<file> | <file>]... <operation> [<arg>...] [output <file>]",
	Short: "Select, reorder, rotate and spin PDF pages",
	Long: `pdftl applies page-selection expressions to PDF documents.

Operations:
  cat        Concatenate page selections across one or more inputs
  move       Relocate a page block before or after an anchor
  spin       Rotate page content about its center by an arbitrary angle
  burst      Write each selected page to its own file
  dump_text  Print the plain text of selected pages

Page specs combine a handle, a range, a rotation, even/odd qualifiers and
~exclusions, e.g. B2-endeast odd~5-6.`,
	Example: `  pdftl in.pdf cat 1-3 end-4 output out.pdf
  pdftl A=one.pdf B=two.pdf cat B A output merged.pdf
  pdftl in.pdf move 3-5 before 10 output out.pdf
  pdftl in.pdf spin 1-3:45 6-end:-20 output out.pdf`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(c *cobra.Command, args []string) error {
		cmd, err := cli.ParseCommand(args)
		if err != nil {
			return err
		}
		log := observability.NewStdLogger(stdlog.New(os.Stderr, "pdftl: ", 0), verbose)
		return cli.Run(cmd, os.Stdout, log)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "pdftl: %v\n", err)
		var ue *cli.UsageError
		if errors.As(err, &ue) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
