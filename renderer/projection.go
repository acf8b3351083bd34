package renderer

import (
	"bytes"
	"fmt"

	tracker "github.com/GLADIATORTR/LoveableTracker-sub000"
	md "github.com/nao1215/markdown"
)

func ProjectionMarkdown(name, currency string, rows []tracker.ProjectionRow, presentValue bool) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Projection for %s", name))
	if presentValue {
		doc.PlainText("Cumulative amounts and net gain are in today's purchasing power.")
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Year", "Market Value", "Balance", "Net Equity", "Net Equity (PV)", "Cum. Net Yield", "Cum. Mortgage", "Net Gain"},
		Rows:   [][]string{},
	}
	for _, row := range rows {
		table.Rows = append(table.Rows, []string{
			year(row.Year),
			money(row.MarketValue, currency),
			money(row.Balance, currency),
			money(row.NetEquity, currency),
			money(row.NetEquityPV, currency),
			money(row.CumulativeNetYield, currency),
			money(row.CumulativeMortgage, currency),
			signedMoney(row.NetGain, currency),
		})
	}
	doc.Table(table)

	return doc.String()
}
