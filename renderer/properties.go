package renderer

import (
	"bytes"

	tracker "github.com/GLADIATORTR/LoveableTracker-sub000"
	md "github.com/nao1215/markdown"
)

func PropertiesMarkdown(properties []tracker.PropertyFacts, on tracker.Date) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Properties")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Name", "Country", "Type", "Market Value", "Balance", "Rent", "Expenses"},
		Rows:   [][]string{},
	}
	for _, p := range properties {
		table.Rows = append(table.Rows, []string{
			p.Name,
			p.Country,
			string(p.Type),
			money(p.CurrentValue, p.Currency),
			money(p.Balance(on), p.Currency),
			money(p.Rent(), p.Currency),
			money(p.OperatingExpenses(), p.Currency),
		})
	}
	doc.Table(table)

	return doc.String()
}
