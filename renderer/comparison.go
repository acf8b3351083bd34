package renderer

import (
	"bytes"
	"fmt"

	tracker "github.com/GLADIATORTR/LoveableTracker-sub000"
	md "github.com/nao1215/markdown"
)

func ComparisonMarkdown(name, currency string, results []tracker.ScenarioResult) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Scenario comparison for %s", name))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Scenario", "Market Value", "Debt", "Net Yield", "After-Tax Equity", "Yield / Asset", "CoC"},
		Rows:   [][]string{},
	}
	for _, r := range results {
		table.Rows = append(table.Rows, []string{
			string(r.Scenario),
			money(r.MarketValue, currency),
			money(r.Debt, currency),
			money(r.NetYield, currency),
			money(r.AfterTaxNetEquity, currency),
			rate(r.NetYieldAssetEfficiency),
			rate(r.CoCInvestmentPerformance),
		})
	}
	doc.Table(table)

	return doc.String()
}
