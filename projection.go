package tracker

import "math"

// ProjectionRow is one year of the investment ledger produced by [Project].
// Rows depend only on their own year and on cumulative sums of earlier
// years; no row mutates a prior row.
type ProjectionRow struct {
	Year            int
	MarketValue     float64
	Balance         float64
	CapitalGainsTax float64
	SellingCosts    float64
	// NetEquity is the nominal after-tax net equity of the year.
	NetEquity float64
	// NetEquityPV is NetEquity converted to today's purchasing power.
	NetEquityPV float64
	// CumulativeNetYield accumulates rent minus expenses over years 1..Year.
	CumulativeNetYield float64
	// CumulativeMortgage accumulates the mortgage payments of years whose
	// starting balance was still positive.
	CumulativeMortgage float64
	NetGain            float64
}

// Project produces the per-year ledger of a property over the horizon,
// year 0 (today) through horizonYears inclusive.
//
// When presentValue is set, every cumulative amount and the net gain are
// discounted to today's purchasing power with the single uniform rule
// (1+inflation)^(-year). Market value, balance, and the nominal equity
// column are always reported nominal.
//
// Rent grows with the appreciation rate; expenses grow with the inflation
// rate. Mortgage payments stop accruing once the loan is paid off, decided
// on the balance at the start of each year.
func Project(p PropertyFacts, rates RateConfig, horizonYears int, presentValue bool, on Date) []ProjectionRow {
	if horizonYears < 0 {
		horizonYears = 0
	}

	appreciation := rates.AppreciationFor(p)
	elapsed := p.ElapsedMonths(on)
	annualRent := p.Rent() * 12
	annualExpenses := p.OperatingExpenses() * 12
	annualMortgage := p.Payment() * 12

	pvFactor := func(year int) float64 {
		if !presentValue {
			return 1
		}
		return math.Pow(1+rates.Inflation, -float64(year))
	}

	rows := make([]ProjectionRow, 0, horizonYears+1)
	var cumulativeYield, cumulativeMortgage float64

	for y := 0; y <= horizonYears; y++ {
		if y > 0 {
			rent := annualRent * math.Pow(1+appreciation, float64(y-1))
			expenses := annualExpenses * math.Pow(1+rates.Inflation, float64(y-1))
			cumulativeYield += (rent - expenses) * pvFactor(y)

			if OutstandingBalance(p.LoanAmount, p.InterestRate, p.TermMonths, elapsed+12*(y-1)) > 0 {
				cumulativeMortgage += annualMortgage * pvFactor(y)
			}
		}

		marketValue := p.CurrentValue * math.Pow(1+appreciation, float64(y))
		balance := OutstandingBalance(p.LoanAmount, p.InterestRate, p.TermMonths, elapsed+12*y)
		netEquity := AfterTaxNetEquity(marketValue, balance, p.PurchasePrice, rates)

		row := ProjectionRow{
			Year:               y,
			MarketValue:        marketValue,
			Balance:            balance,
			CapitalGainsTax:    math.Max(0, marketValue-p.PurchasePrice) * rates.CapitalGains,
			SellingCosts:       marketValue * rates.SellingCosts,
			NetEquity:          netEquity,
			NetEquityPV:        netEquity * math.Pow(1+rates.Inflation, -float64(y)),
			CumulativeNetYield: cumulativeYield,
			CumulativeMortgage: cumulativeMortgage,
		}

		equity := row.NetEquity
		if presentValue {
			equity = row.NetEquityPV
		}
		// At year 0 there are no cumulative terms yet.
		row.NetGain = equity + row.CumulativeNetYield - row.CumulativeMortgage

		rows = append(rows, row)
	}
	return rows
}
