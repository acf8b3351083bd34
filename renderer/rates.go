package renderer

import (
	"bytes"
	"sort"

	tracker "github.com/GLADIATORTR/LoveableTracker-sub000"
	md "github.com/nao1215/markdown"
)

func RatesMarkdown(set tracker.RateSet) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Rates")

	countries := make([]string, 0, len(set.Countries))
	for country := range set.Countries {
		countries = append(countries, country)
	}
	sort.Strings(countries)

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Country", "Appreciation", "Inflation", "Selling Costs", "Capital Gains", "Mortgage"},
		Rows:   [][]string{ratesRow("(default)", set.Default)},
	}
	for _, country := range countries {
		table.Rows = append(table.Rows, ratesRow(country, set.Countries[country]))
	}
	doc.Table(table)

	return doc.String()
}

func ratesRow(label string, r tracker.RateConfig) []string {
	return []string{
		label,
		rate(r.Appreciation),
		rate(r.Inflation),
		rate(r.SellingCosts),
		rate(r.CapitalGains),
		rate(r.MortgageRate),
	}
}
