package renderer

import (
	"bytes"
	"fmt"

	tracker "github.com/GLADIATORTR/LoveableTracker-sub000"
	md "github.com/nao1215/markdown"
)

func CashFlowMarkdown(name, currency string, flows tracker.CashFlowSeries, discountRate float64) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Cash flows for %s", name))

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Period", "Cash Flow"},
		Rows:      [][]string{},
	}
	for i, f := range flows {
		label := "Purchase"
		if i > 0 {
			label = year(i)
		}
		if i == len(flows)-1 && i > 0 {
			label += " (sale)"
		}
		table.Rows = append(table.Rows, []string{label, signedMoney(f, currency)})
	}
	doc.Table(table)

	doc.PlainText(fmt.Sprintf("IRR: %s, NPV at %s: %s",
		percent(tracker.SafeIRR(flows)),
		rate(discountRate),
		money(tracker.NPV(flows, discountRate*100), currency)))

	return doc.String()
}
