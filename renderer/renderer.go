// Package renderer turns engine results into markdown reports. It owns all
// formatting decisions: the engine hands over raw float64 figures and the
// renderer decides rounding, currency symbols and table layout.
package renderer

import (
	"fmt"

	tracker "github.com/GLADIATORTR/LoveableTracker-sub000"
)

// money formats an engine figure in the property's currency.
func money(v float64, currency string) string {
	return tracker.M(v, currency).String()
}

// signedMoney formats an engine figure with an explicit sign, "-" for zero.
func signedMoney(v float64, currency string) string {
	return tracker.M(v, currency).SignedString()
}

// rate formats a fractional rate (0.05) as a percentage (5.00%).
func rate(v float64) string {
	return tracker.AsPercent(v).String()
}

// percent formats a value already in percent units (an IRR of 8.3).
func percent(v float64) string {
	return tracker.Percent(v).String()
}

// year formats a projection year as an offset label.
func year(y int) string {
	if y == 0 {
		return "Today"
	}
	return fmt.Sprintf("Year %d", y)
}
