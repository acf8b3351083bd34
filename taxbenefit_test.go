package tracker

import (
	"errors"
	"testing"
)

func TestCalculateTaxBenefits_DepreciationDivisor(t *testing.T) {
	testCases := []struct {
		name      string
		typ       PropertyType
		costBasis float64
		want      float64
	}{
		{
			name:      "commercial uses 39 years",
			typ:       Commercial,
			costBasis: 390000,
			want:      10000,
		},
		{
			name:      "residential uses 27.5 years",
			typ:       SingleFamily,
			costBasis: 275000,
			want:      10000,
		},
		{
			name:      "condo is residential",
			typ:       Condo,
			costBasis: 275000,
			want:      10000,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := testProperty()
			p.Type = tc.typ
			p.CostBasis = tc.costBasis
			r, err := CalculateTaxBenefits(p, testDate)
			if err != nil {
				t.Fatalf("CalculateTaxBenefits() error = %v", err)
			}
			if !almostEqual(r.Depreciation, tc.want, 1e-9) {
				t.Errorf("Depreciation = %v, want %v", r.Depreciation, tc.want)
			}
		})
	}
}

func TestCalculateTaxBenefits_DefaultCostBasis(t *testing.T) {
	// Without a recorded cost basis, 80% of the purchase price depreciates.
	p := testProperty()
	r, err := CalculateTaxBenefits(p, testDate)
	if err != nil {
		t.Fatalf("CalculateTaxBenefits() error = %v", err)
	}
	want := 300000 * 0.8 / 27.5
	if !almostEqual(r.Depreciation, want, 1e-9) {
		t.Errorf("Depreciation = %v, want %v", r.Depreciation, want)
	}
}

func TestCalculateTaxBenefits_MortgageInterest(t *testing.T) {
	// The deduction annualizes a single split at the current balance:
	// balance × annual rate. Balance after 60 months of the fixture loan.
	p := testProperty()
	r, err := CalculateTaxBenefits(p, testDate)
	if err != nil {
		t.Fatalf("CalculateTaxBenefits() error = %v", err)
	}
	want := 220388.95700407636 * 0.05
	if !almostEqual(r.MortgageInterest, want, 0.01) {
		t.Errorf("MortgageInterest = %v, want %v", r.MortgageInterest, want)
	}
}

func TestCalculateTaxBenefits_PropertyTax(t *testing.T) {
	p := testProperty()
	p.AnnualPropertyTaxes = 3600
	r, err := CalculateTaxBenefits(p, testDate)
	if err != nil {
		t.Fatalf("CalculateTaxBenefits() error = %v", err)
	}
	if r.PropertyTax != 3600 {
		t.Errorf("PropertyTax = %v, want the itemized 3600", r.PropertyTax)
	}

	// Without an itemized figure, 70% of the escrow estimates the taxes.
	p = testProperty()
	p.MonthlyExpenses = 0
	p.Expenses = &ExpenseBreakdown{Escrow: 500, Management: 150, Maintenance: 150}
	r, err = CalculateTaxBenefits(p, testDate)
	if err != nil {
		t.Fatalf("CalculateTaxBenefits() error = %v", err)
	}
	if want := 0.7 * 500 * 12; !almostEqual(r.PropertyTax, want, 1e-9) {
		t.Errorf("PropertyTax = %v, want %v", r.PropertyTax, want)
	}
}

func TestCalculateTaxBenefits_MaintenanceOnly(t *testing.T) {
	// Management and association fees are operating expenses but not tax
	// deductions. Only itemized maintenance counts.
	p := testProperty()
	p.MonthlyExpenses = 0
	p.Expenses = &ExpenseBreakdown{Management: 200, Association: 100, Maintenance: 150, Other: 50}
	r, err := CalculateTaxBenefits(p, testDate)
	if err != nil {
		t.Fatalf("CalculateTaxBenefits() error = %v", err)
	}
	if want := 150.0 * 12; !almostEqual(r.Maintenance, want, 1e-9) {
		t.Errorf("Maintenance = %v, want %v", r.Maintenance, want)
	}
}

func TestCalculateTaxBenefits_OverrideShortCircuits(t *testing.T) {
	p := testProperty()
	p.TaxBenefitOverride = 5000
	r, err := CalculateTaxBenefits(p, testDate)
	if err != nil {
		t.Fatalf("CalculateTaxBenefits() error = %v", err)
	}
	if r.Total != 5000 {
		t.Errorf("Total = %v, want the override 5000", r.Total)
	}
	if r.Depreciation != 0 || r.MortgageInterest != 0 || r.PropertyTax != 0 || r.Maintenance != 0 {
		t.Errorf("sub-components = %+v, want all zero under an override", r)
	}
}

func TestCalculateTaxBenefits_UnknownType(t *testing.T) {
	p := testProperty()
	p.Type = "houseboat"
	_, err := CalculateTaxBenefits(p, testDate)
	if !errors.Is(err, ErrUnknownPropertyType) {
		t.Errorf("CalculateTaxBenefits() error = %v, want ErrUnknownPropertyType", err)
	}
}

func TestDepreciationRecapture(t *testing.T) {
	p := testProperty()
	p.CostBasis = 275000
	got, err := DepreciationRecapture(p, 5)
	if err != nil {
		t.Fatalf("DepreciationRecapture() error = %v", err)
	}
	// 10000 a year for 5 years, recaptured at 25%.
	if want := 12500.0; !almostEqual(got, want, 1e-9) {
		t.Errorf("DepreciationRecapture() = %v, want %v", got, want)
	}

	if got, _ := DepreciationRecapture(p, 0); got != 0 {
		t.Errorf("DepreciationRecapture(0 years) = %v, want 0", got)
	}
}

func TestExchange1031Opportunity(t *testing.T) {
	p := testProperty()
	x := Exchange1031Opportunity(p, testDate)
	if !x.Eligible {
		t.Errorf("Eligible = false, want true for a rented property")
	}
	if want := 50000.0; x.DeferredGains != want {
		t.Errorf("DeferredGains = %v, want %v", x.DeferredGains, want)
	}
	wantReplacement := 350000 - 220388.95700407636
	if !almostEqual(x.MinimumReplacement, wantReplacement, 0.01) {
		t.Errorf("MinimumReplacement = %v, want %v", x.MinimumReplacement, wantReplacement)
	}

	// An owner-occupied single-family home without rent does not qualify.
	p.MonthlyRent = 0
	p.PotentialRent = 0
	if x := Exchange1031Opportunity(p, testDate); x.Eligible {
		t.Errorf("Eligible = true, want false for a single-family home without rent")
	}

	// A depreciated property defers no gains.
	p = testProperty()
	p.CurrentValue = 250000
	if x := Exchange1031Opportunity(p, testDate); x.DeferredGains != 0 {
		t.Errorf("DeferredGains = %v, want 0 when value fell", x.DeferredGains)
	}
}
