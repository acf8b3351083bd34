package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	tracker "github.com/GLADIATORTR/LoveableTracker-sub000"
	"github.com/GLADIATORTR/LoveableTracker-sub000/renderer"
	"github.com/google/subcommands"
)

// compareCmd holds the flags for the 'compare' subcommand.
type compareCmd struct {
	name string
	date string
}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "compare what-if scenarios for a property" }
func (*compareCmd) Usage() string {
	return `lvt compare -name <name> [-d <date>]

  Evaluates the what-if scenarios of a property side by side: base case,
  accelerated appreciation, full mortgage paid, increased debt, and rent
  appreciation variants.
`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the property.")
	f.StringVar(&c.date, "d", "", "Date for the comparison (YYYY-MM-DD). Defaults to today.")
}

func (c *compareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	rates, err := DecodeRates()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding rates: %v\n", err)
		return subcommands.ExitFailure
	}

	p, err := findProperty(properties, c.name)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	results := tracker.CompareScenarios(*p, rates.For(p.Country), on)
	printMarkdown(renderer.ComparisonMarkdown(p.Name, p.Currency, results))
	return subcommands.ExitSuccess
}
