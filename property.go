package tracker

import (
	"errors"
	"fmt"
	"math"
)

// PropertyType classifies a property for depreciation purposes.
type PropertyType string

const (
	SingleFamily PropertyType = "single-family"
	MultiFamily  PropertyType = "multi-family"
	Condo        PropertyType = "condo"
	Commercial   PropertyType = "commercial"
)

// ErrUnknownPropertyType is returned when a depreciation divisor is requested
// for a property type that has none. This is the only hard error in the
// engine: every other degenerate input resolves to a documented fallback.
var ErrUnknownPropertyType = errors.New("unknown property type")

// DepreciationDivisor returns the statutory depreciation period in years:
// 27.5 for residential property types, 39 for commercial.
func (t PropertyType) DepreciationDivisor() (float64, error) {
	switch t {
	case SingleFamily, MultiFamily, Condo:
		return 27.5, nil
	case Commercial:
		return 39, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPropertyType, string(t))
}

// defaultHoldingMonths is assumed when a property has neither a purchase date
// nor an explicit elapsed-month figure.
const defaultHoldingMonths = 12

// defaultCostBasisRatio is the share of the purchase price treated as the
// depreciable cost basis when none is recorded (the land share is excluded).
const defaultCostBasisRatio = 0.8

// ExpenseBreakdown itemizes the monthly expense categories of a property.
// When present, the total monthly expense is the sum of the categories.
type ExpenseBreakdown struct {
	Mortgage    float64 `json:"mortgage,omitempty"`
	Escrow      float64 `json:"escrow,omitempty"`
	Management  float64 `json:"management,omitempty"`
	Association float64 `json:"association,omitempty"`
	Maintenance float64 `json:"maintenance,omitempty"`
	HELOC       float64 `json:"heloc,omitempty"`
	Insurance   float64 `json:"insurance,omitempty"`
	PropertyTax float64 `json:"propertyTax,omitempty"`
	Other       float64 `json:"other,omitempty"`
}

// Total returns the sum of all monthly categories.
func (b ExpenseBreakdown) Total() float64 {
	return b.Mortgage + b.Escrow + b.Management + b.Association +
		b.Maintenance + b.HELOC + b.Insurance + b.PropertyTax + b.Other
}

// Operating returns the monthly operating expenses, excluding debt service.
func (b ExpenseBreakdown) Operating() float64 {
	return b.Total() - b.Mortgage - b.HELOC
}

// PropertyFacts is the immutable input record of the projection engine.
// All monetary fields are major units (dollars, not cents); all rates are
// fractions (0.05 for 5%); loan terms are months.
type PropertyFacts struct {
	ID       string       `json:"id,omitempty"`
	Name     string       `json:"name"`
	Country  string       `json:"country,omitempty"`
	Currency string       `json:"currency,omitempty"`
	Type     PropertyType `json:"type"`

	PurchasePrice float64 `json:"purchasePrice"`
	CurrentValue  float64 `json:"currentValue"`
	PurchaseDate  Date    `json:"purchaseDate,omitempty"`

	DownPayment float64 `json:"downPayment,omitempty"`
	LoanAmount  float64 `json:"loanAmount,omitempty"`
	// OutstandingBalance is the recorded balance, when the user tracks it
	// by hand. When zero it is derived from the amortization schedule.
	OutstandingBalance float64 `json:"outstandingBalance,omitempty"`
	InterestRate       float64 `json:"interestRate,omitempty"`
	TermMonths         int     `json:"termMonths,omitempty"`
	MonthlyMortgage    float64 `json:"monthlyMortgage,omitempty"`
	MonthsElapsed      int     `json:"monthsElapsed,omitempty"`

	MonthlyRent     float64           `json:"monthlyRent,omitempty"`
	PotentialRent   float64           `json:"potentialRent,omitempty"`
	MonthlyExpenses float64           `json:"monthlyExpenses,omitempty"`
	Expenses        *ExpenseBreakdown `json:"expenses,omitempty"`

	// AppreciationOverride, when nonzero, takes precedence over the
	// country rate configuration.
	AppreciationOverride float64 `json:"appreciationOverride,omitempty"`

	CostBasis           float64 `json:"costBasis,omitempty"`
	AnnualPropertyTaxes float64 `json:"annualPropertyTaxes,omitempty"`

	// TaxBenefitOverride, when positive, short-circuits the whole tax
	// benefit calculation.
	TaxBenefitOverride float64 `json:"taxBenefitOverride,omitempty"`
}

// Validate checks a property record for correctness. It is lenient by design:
// missing optional facts fall back to documented defaults at calculation
// time, so only contradictions are rejected here.
func (p PropertyFacts) Validate() error {
	if p.Name == "" {
		return errors.New("property has no name")
	}
	if p.PurchasePrice < 0 || p.CurrentValue < 0 || p.LoanAmount < 0 {
		return fmt.Errorf("property %q has negative amounts", p.Name)
	}
	if p.LoanAmount > 0 && p.TermMonths <= 0 {
		return fmt.Errorf("property %q has a loan but no term", p.Name)
	}
	if _, err := p.Type.DepreciationDivisor(); err != nil {
		return err
	}
	if p.Expenses != nil && p.MonthlyExpenses != 0 {
		if math.Abs(p.Expenses.Operating()-p.MonthlyExpenses) > 0.01 {
			return fmt.Errorf("property %q: monthly expenses %.2f disagree with breakdown sum %.2f",
				p.Name, p.MonthlyExpenses, p.Expenses.Operating())
		}
	}
	return nil
}

// Rent returns the monthly rent, preferring the actual over the potential.
func (p PropertyFacts) Rent() float64 {
	if p.MonthlyRent > 0 {
		return p.MonthlyRent
	}
	return p.PotentialRent
}

// OperatingExpenses returns the monthly operating expenses (debt service
// excluded), preferring the itemized breakdown when present.
func (p PropertyFacts) OperatingExpenses() float64 {
	if p.Expenses != nil {
		return p.Expenses.Operating()
	}
	return p.MonthlyExpenses
}

// Payment returns the monthly mortgage payment, computing it from the loan
// terms when it is not recorded.
func (p PropertyFacts) Payment() float64 {
	if p.MonthlyMortgage > 0 {
		return p.MonthlyMortgage
	}
	return MonthlyPayment(p.LoanAmount, p.InterestRate, p.TermMonths)
}

// ElapsedMonths returns the number of months since the loan started, as of
// the given date. It prefers the explicit figure, then the purchase date,
// then the one-year holding assumption.
func (p PropertyFacts) ElapsedMonths(on Date) int {
	if p.MonthsElapsed > 0 {
		return p.MonthsElapsed
	}
	if !p.PurchaseDate.IsZero() {
		return on.MonthsSince(p.PurchaseDate)
	}
	return defaultHoldingMonths
}

// Balance returns the outstanding loan balance as of the given date,
// preferring the recorded figure over the exact amortization schedule.
func (p PropertyFacts) Balance(on Date) float64 {
	if p.OutstandingBalance > 0 {
		return p.OutstandingBalance
	}
	return OutstandingBalance(p.LoanAmount, p.InterestRate, p.TermMonths, p.ElapsedMonths(on))
}

// costBasisOrDefault returns the depreciable cost basis, defaulting to 80%
// of the purchase price.
func (p PropertyFacts) costBasisOrDefault() float64 {
	if p.CostBasis > 0 {
		return p.CostBasis
	}
	return p.PurchasePrice * defaultCostBasisRatio
}

// CashInvested returns the cash actually put into the deal: the down payment
// plus the closing-cost assumption.
func (p PropertyFacts) CashInvested() float64 {
	return p.DownPayment + p.PurchasePrice*closingCostRate
}
