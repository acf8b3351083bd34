package tracker

// DefaultHorizonYears is the holding horizon assumed by summaries when the
// caller does not choose one.
const DefaultHorizonYears = 10

// Summary provides a comprehensive, at-a-glance overview of a property's
// investment performance on a given date. Every figure comes from the shared
// engine functions; the summary never re-derives a formula of its own.
type Summary struct {
	Name     string
	Currency string
	On       Date
	Horizon  int

	MarketValue       float64
	Balance           float64
	AfterTaxNetEquity float64
	MonthlyCashFlow   float64

	// GrossYield and NetYield are annual figures.
	GrossYield float64
	NetYield   float64

	// CapRate is net operating income over current value, 0 when the value
	// is not positive.
	CapRate float64
	// CashOnCash is annual net cash flow over cash invested, 0 when no cash
	// was invested.
	CashOnCash float64

	// IRR and NPV are computed over the generated cash-flow series for the
	// horizon; IRR is in percent, NPV is discounted at the inflation rate.
	IRR float64
	NPV float64

	TaxBenefits TaxBenefitResult
	Exchange    Exchange1031
}

// NewSummary computes the summary of a property under a rate configuration.
func NewSummary(p PropertyFacts, rates RateConfig, on Date, horizonYears int) (*Summary, error) {
	if horizonYears <= 0 {
		horizonYears = DefaultHorizonYears
	}

	benefits, err := CalculateTaxBenefits(p, on)
	if err != nil {
		return nil, err
	}

	flows, err := GenerateCashFlows(p, rates, horizonYears, on)
	if err != nil {
		return nil, err
	}

	balance := p.Balance(on)
	grossYield := p.Rent() * 12
	netYield := grossYield - p.OperatingExpenses()*12
	monthlyCashFlow := p.Rent() - p.OperatingExpenses() - p.Payment()

	s := &Summary{
		Name:              p.Name,
		Currency:          p.Currency,
		On:                on,
		Horizon:           horizonYears,
		MarketValue:       p.CurrentValue,
		Balance:           balance,
		AfterTaxNetEquity: AfterTaxNetEquity(p.CurrentValue, balance, p.PurchasePrice, rates),
		MonthlyCashFlow:   monthlyCashFlow,
		GrossYield:        grossYield,
		NetYield:          netYield,
		IRR:               SafeIRR(flows),
		NPV:               NPV(flows, rates.Inflation*100),
		TaxBenefits:       benefits,
		Exchange:          Exchange1031Opportunity(p, on),
	}

	// Every ratio guards its denominator and reports 0 instead of a
	// non-finite value.
	if p.CurrentValue > 0 {
		s.CapRate = netYield / p.CurrentValue
	}
	if invested := p.CashInvested(); invested > 0 {
		s.CashOnCash = monthlyCashFlow * 12 / invested
	}
	return s, nil
}
