package tracker

import "math"

// Scenario names a what-if variant of a property's financial position.
// A scenario is a pure parameter transform applied before metric
// computation: every scenario shares the exact same formulas as the base
// case, only the transformed inputs differ.
type Scenario string

const (
	Base                     Scenario = "Base"
	AcceleratedAppreciation  Scenario = "Accelerated appreciation ×1.5"
	FullMortgagePaid         Scenario = "Full mortgage paid"
	IncreasedDebt            Scenario = "Increased debt +25%"
	RentAppreciation         Scenario = "Rent appreciation ×1.5"
	RentAndValueAppreciation Scenario = "Rent and value appreciation ×1.5"
)

// Scenarios returns the named variants in comparison-table order.
func Scenarios() []Scenario {
	return []Scenario{
		Base,
		AcceleratedAppreciation,
		FullMortgagePaid,
		IncreasedDebt,
		RentAppreciation,
		RentAndValueAppreciation,
	}
}

// scenarioInput holds the transformed inputs a scenario's metrics are
// computed from.
type scenarioInput struct {
	marketValue  float64
	debt         float64
	grossYield   float64 // annual rent
	expenses     float64 // annual operating expenses
	appreciation float64
}

// transform applies the scenario's parameter changes to the base inputs.
func (s Scenario) transform(in scenarioInput) scenarioInput {
	switch s {
	case AcceleratedAppreciation:
		in.appreciation *= 1.5
	case FullMortgagePaid:
		in.debt = 0
	case IncreasedDebt:
		in.debt *= 1.25
	case RentAppreciation:
		in.grossYield *= 1.5
	case RentAndValueAppreciation:
		in.grossYield *= 1.5
		in.appreciation *= 1.5
	}
	return in
}

// ScenarioResult holds the metrics of one scenario variant.
type ScenarioResult struct {
	Scenario     Scenario
	MarketValue  float64
	Debt         float64
	GrossYield   float64
	NetYield     float64
	Appreciation float64

	AfterTaxNetEquity float64
	// NetYieldAssetEfficiency is net yield over market value.
	NetYieldAssetEfficiency float64
	// CoCInvestmentPerformance is net yield over after-tax net equity,
	// 0 when the equity is not positive.
	CoCInvestmentPerformance float64
}

// AfterTaxNetEquity is the single implementation of the after-tax equity
// formula: market value minus debt, capital-gains tax, and selling costs.
// Scenario comparisons, projections, and summaries all call it.
func AfterTaxNetEquity(marketValue, debt, purchasePrice float64, rates RateConfig) float64 {
	capitalGainsTax := math.Max(0, marketValue-purchasePrice) * rates.CapitalGains
	sellingCosts := marketValue * rates.SellingCosts
	return marketValue - debt - capitalGainsTax - sellingCosts
}

// EvaluateScenario computes the metrics of one scenario for a property.
func EvaluateScenario(p PropertyFacts, rates RateConfig, s Scenario, on Date) ScenarioResult {
	in := s.transform(scenarioInput{
		marketValue:  p.CurrentValue,
		debt:         p.Balance(on),
		grossYield:   p.Rent() * 12,
		expenses:     p.OperatingExpenses() * 12,
		appreciation: rates.AppreciationFor(p),
	})

	r := ScenarioResult{
		Scenario:     s,
		MarketValue:  in.marketValue,
		Debt:         in.debt,
		GrossYield:   in.grossYield,
		NetYield:     in.grossYield - in.expenses,
		Appreciation: in.appreciation,
	}
	r.AfterTaxNetEquity = AfterTaxNetEquity(in.marketValue, in.debt, p.PurchasePrice, rates)
	if in.marketValue > 0 {
		r.NetYieldAssetEfficiency = r.NetYield / in.marketValue
	}
	if r.AfterTaxNetEquity > 0 {
		r.CoCInvestmentPerformance = r.NetYield / r.AfterTaxNetEquity
	}
	return r
}

// CompareScenarios evaluates all named scenarios for a property, in order.
func CompareScenarios(p PropertyFacts, rates RateConfig, on Date) []ScenarioResult {
	results := make([]ScenarioResult, 0, len(Scenarios()))
	for _, s := range Scenarios() {
		results = append(results, EvaluateScenario(p, rates, s, on))
	}
	return results
}
