package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	tracker "github.com/GLADIATORTR/LoveableTracker-sub000"
	"github.com/google/subcommands"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the ledger as a JSON document" }
func (*exportCmd) Usage() string {
	return `lvt export [-o <file>]

  Writes the whole ledger as a single {"properties": [...]} JSON
  document, the same format 'lvt import' reads by default. Without -o
  the document goes to stdout.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file. Defaults to stdout.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	properties, err := DecodeProperties()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	var w io.Writer = os.Stdout
	if c.output != "" {
		out, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
			return subcommands.ExitFailure
		}
		defer out.Close()
		w = out
	}

	if err := tracker.ExportProperties(w, properties); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting properties: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
