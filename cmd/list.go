package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/GLADIATORTR/LoveableTracker-sub000/renderer"
	"github.com/google/subcommands"
)

// listCmd holds the flags for the 'list' subcommand.
type listCmd struct {
	date string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list all properties in the ledger" }
func (*listCmd) Usage() string {
	return `lvt list [-d <date>]

  Lists every property with its market value, outstanding balance, rent
  and expenses on the given date.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date for the balances (YYYY-MM-DD). Defaults to today.")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseOn(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	properties, err := DecodeProperties()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(properties) == 0 {
		fmt.Println("The ledger is empty. Add a property with 'lvt add'.")
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.PropertiesMarkdown(properties, on))
	return subcommands.ExitSuccess
}
