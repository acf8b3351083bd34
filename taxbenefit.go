package tracker

import "math"

// TaxBenefitResult is the annual tax benefit decomposition of a property.
// It is recomputed on demand and never persisted.
type TaxBenefitResult struct {
	Depreciation     float64
	MortgageInterest float64
	PropertyTax      float64
	Maintenance      float64
	Total            float64
}

// recaptureRate is the statutory-style depreciation recapture tax rate.
// It is deliberately not configurable.
const recaptureRate = 0.25

// escrowTaxShare estimates the property-tax share of an escrow payment when
// no itemized annual figure is recorded.
const escrowTaxShare = 0.70

// CalculateTaxBenefits computes the annual tax benefits of a property as of
// the given date.
//
// A positive manual override on the record short-circuits the calculation
// entirely: the override becomes the total and every sub-component is zero.
//
// The mortgage-interest deduction annualizes a single interest split at the
// current balance (balance × monthly rate × 12). This is a deliberate
// approximation, not a full-year sum of the actual monthly interest of the
// schedule.
func CalculateTaxBenefits(p PropertyFacts, on Date) (TaxBenefitResult, error) {
	if p.TaxBenefitOverride > 0 {
		return TaxBenefitResult{Total: p.TaxBenefitOverride}, nil
	}

	divisor, err := p.Type.DepreciationDivisor()
	if err != nil {
		return TaxBenefitResult{}, err
	}

	var r TaxBenefitResult
	r.Depreciation = p.costBasisOrDefault() / divisor

	balance := p.Balance(on)
	r.MortgageInterest = SplitPayment(balance, p.InterestRate, p.Payment()).Interest * 12

	if p.AnnualPropertyTaxes > 0 {
		r.PropertyTax = p.AnnualPropertyTaxes
	} else if p.Expenses != nil {
		r.PropertyTax = escrowTaxShare * p.Expenses.Escrow * 12
	}

	// Only itemized maintenance is deductible: management, association and
	// other categories are operating expenses but not tax deductions.
	if p.Expenses != nil {
		r.Maintenance = p.Expenses.Maintenance * 12
	}

	r.Total = r.Depreciation + r.MortgageInterest + r.PropertyTax + r.Maintenance
	return r, nil
}

// DepreciationRecapture returns the recapture tax due on sale after
// yearsHeld years: the straight-line depreciation taken so far, taxed at the
// fixed 25% recapture rate.
func DepreciationRecapture(p PropertyFacts, yearsHeld int) (float64, error) {
	if yearsHeld <= 0 {
		return 0, nil
	}
	divisor, err := p.Type.DepreciationDivisor()
	if err != nil {
		return 0, err
	}
	totalDepreciation := p.costBasisOrDefault() / divisor * float64(yearsHeld)
	return totalDepreciation * recaptureRate, nil
}

// Exchange1031 describes a like-kind exchange opportunity for a property.
type Exchange1031 struct {
	Eligible           bool
	DeferredGains      float64
	MinimumReplacement float64
}

// Exchange1031Opportunity evaluates whether a property qualifies for a 1031
// like-kind exchange and what a replacement would need to cost. Investment
// use is inferred: anything that is not an owner-occupied single-family home,
// or that produces rent, qualifies.
func Exchange1031Opportunity(p PropertyFacts, on Date) Exchange1031 {
	return Exchange1031{
		Eligible:           p.Type != SingleFamily || p.Rent() > 0,
		DeferredGains:      math.Max(0, p.CurrentValue-p.PurchasePrice),
		MinimumReplacement: p.CurrentValue - p.Balance(on),
	}
}
