package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/GLADIATORTR/LoveableTracker-sub000/renderer"
	"github.com/google/subcommands"
)

// ratesCmd holds the flags for the 'rates' subcommand.
type ratesCmd struct{}

func (*ratesCmd) Name() string     { return "rates" }
func (*ratesCmd) Synopsis() string { return "show the active rate configuration" }
func (*ratesCmd) Usage() string {
	return `lvt rates

  Shows the active rate configuration: the default rates and the
  per-country overrides, as they apply to the properties in the ledger.
`
}

func (c *ratesCmd) SetFlags(f *flag.FlagSet) {}

func (c *ratesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rates, err := DecodeRates()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding rates: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RatesMarkdown(rates))
	return subcommands.ExitSuccess
}
