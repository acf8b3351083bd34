package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	tracker "github.com/GLADIATORTR/LoveableTracker-sub000"
	"github.com/google/subcommands"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	name     string
	country  string
	currency string
	ptype    string
	date     string

	price   float64
	value   float64
	down    float64
	loan    float64
	balance float64
	rate    float64
	term    int
	payment float64
	months  int

	rent          float64
	potentialRent float64
	expenses      float64

	appreciation float64
	costBasis    float64
	taxes        float64
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a property to the ledger" }
func (*addCmd) Usage() string {
	return `lvt add -name <name> -type <type> -price <amount> -value <amount> [options]

  Appends a property record to the ledger. The type is one of
  single-family, multi-family, condo or commercial.

Usage Examples:
# A 300k single-family rental with an 80% loan.
$ lvt add -name "Maple Street" -type single-family -price 300000 -value 350000 \
    -down 60000 -loan 240000 -rate 0.05 -term 360 -rent 2500 -expenses 800

`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the property.")
	f.StringVar(&c.country, "country", "", "Country the property is in. Decides which rate configuration applies.")
	f.StringVar(&c.currency, "currency", "USD", "Currency of all amounts.")
	f.StringVar(&c.ptype, "type", string(tracker.SingleFamily), "Property type: single-family, multi-family, condo or commercial.")
	f.StringVar(&c.date, "date", "", "Purchase date (YYYY-MM-DD).")

	f.Float64Var(&c.price, "price", 0, "Purchase price.")
	f.Float64Var(&c.value, "value", 0, "Current market value.")
	f.Float64Var(&c.down, "down", 0, "Down payment.")
	f.Float64Var(&c.loan, "loan", 0, "Original loan principal.")
	f.Float64Var(&c.balance, "balance", 0, "Recorded outstanding balance. Overrides the amortization schedule.")
	f.Float64Var(&c.rate, "rate", 0, "Annual mortgage interest rate as a fraction (0.05 for 5%).")
	f.IntVar(&c.term, "term", 0, "Loan term in months.")
	f.Float64Var(&c.payment, "payment", 0, "Recorded monthly mortgage payment. Computed from the loan when omitted.")
	f.IntVar(&c.months, "months", 0, "Months elapsed on the loan. Derived from the purchase date when omitted.")

	f.Float64Var(&c.rent, "rent", 0, "Actual monthly rent.")
	f.Float64Var(&c.potentialRent, "potential-rent", 0, "Potential monthly rent for a vacant property.")
	f.Float64Var(&c.expenses, "expenses", 0, "Total monthly expenses.")

	f.Float64Var(&c.appreciation, "appreciation", 0, "Per-property appreciation override as a fraction.")
	f.Float64Var(&c.costBasis, "cost-basis", 0, "Depreciable cost basis. Defaults to 80% of the purchase price.")
	f.Float64Var(&c.taxes, "taxes", 0, "Annual property taxes.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p := tracker.PropertyFacts{
		Name:                 c.name,
		Country:              c.country,
		Currency:             c.currency,
		Type:                 tracker.PropertyType(c.ptype),
		PurchasePrice:        c.price,
		CurrentValue:         c.value,
		DownPayment:          c.down,
		LoanAmount:           c.loan,
		OutstandingBalance:   c.balance,
		InterestRate:         c.rate,
		TermMonths:           c.term,
		MonthlyMortgage:      c.payment,
		MonthsElapsed:        c.months,
		MonthlyRent:          c.rent,
		PotentialRent:        c.potentialRent,
		MonthlyExpenses:      c.expenses,
		AppreciationOverride: c.appreciation,
		CostBasis:            c.costBasis,
		AnnualPropertyTaxes:  c.taxes,
	}

	if c.date != "" {
		purchased, err := tracker.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing purchase date: %v\n", err)
			return subcommands.ExitUsageError
		}
		p.PurchaseDate = purchased
	}

	if err := p.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid property: %v\n", err)
		return subcommands.ExitUsageError
	}

	return AppendProperty(p)
}
