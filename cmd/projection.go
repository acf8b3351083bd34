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

// projectionCmd holds the flags for the 'projection' subcommand.
type projectionCmd struct {
	name  string
	date  string
	years int
	pv    bool
}

func (*projectionCmd) Name() string     { return "projection" }
func (*projectionCmd) Synopsis() string { return "project net equity year by year" }
func (*projectionCmd) Usage() string {
	return `lvt projection -name <name> [-years <horizon>] [-pv] [-d <date>]

  Produces the year-by-year ledger of a property: market value, balance,
  after-tax net equity, cumulative yield and mortgage, and net gain.
  With -pv, cumulative amounts are restated in today's purchasing power.
`
}

func (c *projectionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the property. Omit to project the whole ledger.")
	f.StringVar(&c.date, "d", "", "Start date for the projection (YYYY-MM-DD). Defaults to today.")
	f.IntVar(&c.years, "years", tracker.DefaultHorizonYears, "Horizon in years.")
	f.BoolVar(&c.pv, "pv", false, "Report cumulative amounts in today's purchasing power.")
}

func (c *projectionCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if c.name != "" {
		p, err := findProperty(properties, c.name)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		properties = []tracker.PropertyFacts{*p}
	}

	projections, err := tracker.BatchProjections(ctx, properties, rates, c.years, c.pv, on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing projections: %v\n", err)
		return subcommands.ExitFailure
	}

	for i, rows := range projections {
		printMarkdown(renderer.ProjectionMarkdown(properties[i].Name, properties[i].Currency, rows, c.pv))
	}
	return subcommands.ExitSuccess
}
