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

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	name  string
	date  string
	years int
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the investment summary of a property" }
func (*summaryCmd) Usage() string {
	return `lvt summary -name <name> [-d <date>] [-years <horizon>]

  Displays the investment summary of a property: equity, cash flow,
  yields, cap rate, cash on cash, IRR, NPV and tax benefits.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the property. Omit to summarize the whole ledger.")
	f.StringVar(&c.date, "d", "", "Date for the summary (YYYY-MM-DD). Defaults to today.")
	f.IntVar(&c.years, "years", tracker.DefaultHorizonYears, "Holding horizon in years for IRR and NPV.")
}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	// A single property, or the whole ledger.
	if c.name != "" {
		p, err := findProperty(properties, c.name)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		properties = []tracker.PropertyFacts{*p}
	}

	summaries, err := tracker.BatchSummaries(ctx, properties, rates, on, c.years)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing summaries: %v\n", err)
		return subcommands.ExitFailure
	}

	for _, s := range summaries {
		printMarkdown(renderer.SummaryMarkdown(s))
	}
	return subcommands.ExitSuccess
}
