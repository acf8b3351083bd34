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

// cashflowCmd holds the flags for the 'cashflow' subcommand.
type cashflowCmd struct {
	name  string
	date  string
	years int
}

func (*cashflowCmd) Name() string     { return "cashflow" }
func (*cashflowCmd) Synopsis() string { return "display the holding-period cash-flow series" }
func (*cashflowCmd) Usage() string {
	return `lvt cashflow -name <name> [-years <horizon>] [-d <date>]

  Prints the cash-flow series of a property over the holding period: the
  initial outlay, the annual operating flows and the sale proceeds, with
  the IRR and NPV of the series.
`
}

func (c *cashflowCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the property.")
	f.StringVar(&c.date, "d", "", "Date anchoring the series (YYYY-MM-DD). Defaults to today.")
	f.IntVar(&c.years, "years", tracker.DefaultHorizonYears, "Holding period in years.")
}

func (c *cashflowCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	config := rates.For(p.Country)
	flows, err := tracker.GenerateCashFlows(*p, config, c.years, on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating cash flows: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.CashFlowMarkdown(p.Name, p.Currency, flows, config.Inflation))
	return subcommands.ExitSuccess
}
