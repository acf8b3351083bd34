package tracker

import "math"

// closingCostRate is the closing-cost assumption applied to the purchase
// price in the initial outlay.
const closingCostRate = 0.03

// minRentGrowth floors the annual rent growth assumption.
const minRentGrowth = 0.02

// rentGrowthRate returns the annual rent growth used by the cash-flow
// generator: max(2%, inflation - 2%).
func rentGrowthRate(inflation float64) float64 {
	return math.Max(minRentGrowth, inflation-minRentGrowth)
}

// GenerateCashFlows builds the nominal cash-flow series of holding the
// property for the given number of years starting at date on, then selling.
//
// Period 0 is the initial outlay: down payment plus closing costs, negative.
// Periods 1..years are annual net cash flows: rent minus operating expenses
// minus mortgage payments plus tax savings, with rent growing at
// max(2%, inflation-2%) and expenses growing at the inflation rate. The final
// period additionally receives the net sale proceeds: sale price minus the
// mortgage balance at sale, selling costs, and capital-gains tax.
//
// The mortgage balance at sale comes from the exact amortization schedule,
// the same one every other consumer uses.
func GenerateCashFlows(p PropertyFacts, rates RateConfig, years int, on Date) (CashFlowSeries, error) {
	if years <= 0 {
		return CashFlowSeries{}, nil
	}

	benefits, err := CalculateTaxBenefits(p, on)
	if err != nil {
		return nil, err
	}
	taxSavings := benefits.Total * rates.CapitalGains

	appreciation := rates.AppreciationFor(p)
	rentGrowth := rentGrowthRate(rates.Inflation)
	annualRent := p.Rent() * 12
	annualExpenses := p.OperatingExpenses() * 12
	annualMortgage := p.Payment() * 12
	elapsed := p.ElapsedMonths(on)

	flows := make(CashFlowSeries, years+1)
	flows[0] = -(p.DownPayment + p.PurchasePrice*closingCostRate)

	for k := 1; k <= years; k++ {
		rent := annualRent * math.Pow(1+rentGrowth, float64(k-1))
		expenses := annualExpenses * math.Pow(1+rates.Inflation, float64(k-1))

		// Mortgage payments stop once the loan is paid off; the balance at
		// the start of the year decides whether this year still pays.
		var mortgage float64
		if OutstandingBalance(p.LoanAmount, p.InterestRate, p.TermMonths, elapsed+12*(k-1)) > 0 {
			mortgage = annualMortgage
		}

		flows[k] = rent - expenses - mortgage + taxSavings
	}

	salePrice := p.CurrentValue * math.Pow(1+appreciation, float64(years))
	balanceAtSale := OutstandingBalance(p.LoanAmount, p.InterestRate, p.TermMonths, elapsed+12*years)
	sellingCosts := salePrice * rates.SellingCosts
	capitalGainsTax := math.Max(0, salePrice-p.PurchasePrice) * rates.CapitalGains
	flows[years] += salePrice - balanceAtSale - sellingCosts - capitalGainsTax

	return flows, nil
}
