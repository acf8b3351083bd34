package tracker

import (
	"math"
	"time"
)

// testDate is the fixed as-of date used by tests, so that nothing depends on
// the wall clock.
var testDate = NewDate(2025, time.June, 15)

// testRates is the rate configuration used by tests unless stated otherwise.
var testRates = RateConfig{
	Appreciation: 0.035,
	Inflation:    0.025,
	SellingCosts: 0.06,
	CapitalGains: 0.15,
	MortgageRate: 0.065,
}

// testProperty is the reference fixture: a 300k single-family purchase with
// an 80% loan at 5% over 30 years, 60 months in.
func testProperty() PropertyFacts {
	return PropertyFacts{
		Name:            "Maple Street",
		Country:         "USA",
		Currency:        "USD",
		Type:            SingleFamily,
		PurchasePrice:   300000,
		CurrentValue:    350000,
		DownPayment:     60000,
		LoanAmount:      240000,
		InterestRate:    0.05,
		TermMonths:      360,
		MonthsElapsed:   60,
		MonthlyRent:     2500,
		MonthlyExpenses: 800,
	}
}

// almostEqual reports whether two floats agree within the tolerance.
func almostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}
