package renderer

import (
	"bytes"
	"fmt"

	tracker "github.com/GLADIATORTR/LoveableTracker-sub000"
	md "github.com/nao1215/markdown"
)

func SummaryMarkdown(s *tracker.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Summary for %s on %s", s.Name, s.On))
	doc.PlainText(fmt.Sprintf("Market Value: %s", money(s.MarketValue, s.Currency)))

	doc.H2("Position")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
		Rows: [][]string{
			{"Outstanding Balance", money(s.Balance, s.Currency)},
			{"After-Tax Net Equity", money(s.AfterTaxNetEquity, s.Currency)},
			{"Monthly Cash Flow", signedMoney(s.MonthlyCashFlow, s.Currency)},
		},
	})

	doc.H2("Returns")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
		Rows: [][]string{
			{"Gross Yield (annual)", money(s.GrossYield, s.Currency)},
			{"Net Yield (annual)", money(s.NetYield, s.Currency)},
			{"Cap Rate", rate(s.CapRate)},
			{"Cash on Cash", rate(s.CashOnCash)},
			{fmt.Sprintf("IRR (%d years)", s.Horizon), percent(s.IRR)},
			{fmt.Sprintf("NPV (%d years)", s.Horizon), money(s.NPV, s.Currency)},
		},
	})

	doc.H2("Annual Tax Benefits")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Deduction", "Amount"},
		Rows: [][]string{
			{"Depreciation", money(s.TaxBenefits.Depreciation, s.Currency)},
			{"Mortgage Interest", money(s.TaxBenefits.MortgageInterest, s.Currency)},
			{"Property Tax", money(s.TaxBenefits.PropertyTax, s.Currency)},
			{"Maintenance", money(s.TaxBenefits.Maintenance, s.Currency)},
			{"Total", money(s.TaxBenefits.Total, s.Currency)},
		},
	})

	if s.Exchange.Eligible {
		doc.H2("1031 Exchange")
		doc.PlainText(fmt.Sprintf("Eligible. Deferred gains %s, minimum replacement %s.",
			money(s.Exchange.DeferredGains, s.Currency),
			money(s.Exchange.MinimumReplacement, s.Currency)))
	}

	return doc.String()
}
