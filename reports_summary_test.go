package tracker

import (
	"errors"
	"math"
	"testing"
)

func TestNewSummary(t *testing.T) {
	s, err := NewSummary(testProperty(), testRates, testDate, 10)
	if err != nil {
		t.Fatalf("NewSummary() error = %v", err)
	}

	if s.Name != "Maple Street" || s.Horizon != 10 {
		t.Errorf("header = %q/%d, want Maple Street/10", s.Name, s.Horizon)
	}
	if !almostEqual(s.Balance, 220388.95700407636, 0.01) {
		t.Errorf("Balance = %v, want the schedule balance", s.Balance)
	}
	if !almostEqual(s.AfterTaxNetEquity, 101111.04299592364, 0.01) {
		t.Errorf("AfterTaxNetEquity = %v, want %v", s.AfterTaxNetEquity, 101111.04299592364)
	}

	// Cap rate: (30000 - 9600) / 350000.
	if want := 20400.0 / 350000; !almostEqual(s.CapRate, want, 1e-9) {
		t.Errorf("CapRate = %v, want %v", s.CapRate, want)
	}

	// Cash on cash: annual cash flow over invested cash (down + closing).
	wantCashFlow := 2500.0 - 800 - 1288.3718952291354
	if !almostEqual(s.MonthlyCashFlow, wantCashFlow, 1e-6) {
		t.Errorf("MonthlyCashFlow = %v, want %v", s.MonthlyCashFlow, wantCashFlow)
	}
	if want := wantCashFlow * 12 / 69000; !almostEqual(s.CashOnCash, want, 1e-9) {
		t.Errorf("CashOnCash = %v, want %v", s.CashOnCash, want)
	}

	// IRR/NPV come from the shared cash-flow series.
	if math.IsNaN(s.IRR) || math.IsInf(s.IRR, 0) || s.IRR <= 0 {
		t.Errorf("IRR = %v, want a positive finite percent", s.IRR)
	}
	flows, _ := GenerateCashFlows(testProperty(), testRates, 10, testDate)
	if want := NPV(flows, testRates.Inflation*100); !almostEqual(s.NPV, want, 1e-9) {
		t.Errorf("NPV = %v, want %v from the same series", s.NPV, want)
	}
}

func TestNewSummary_GuardsDenominators(t *testing.T) {
	// A gift property with no value, no cash invested: every ratio reports
	// 0 instead of Inf.
	p := PropertyFacts{
		Name:        "Donated Shed",
		Type:        SingleFamily,
		MonthlyRent: 100,
	}
	s, err := NewSummary(p, testRates, testDate, 5)
	if err != nil {
		t.Fatalf("NewSummary() error = %v", err)
	}
	if s.CapRate != 0 {
		t.Errorf("CapRate = %v, want 0 for zero value", s.CapRate)
	}
	if s.CashOnCash != 0 {
		t.Errorf("CashOnCash = %v, want 0 for zero invested cash", s.CashOnCash)
	}
	if math.IsNaN(s.IRR) || math.IsInf(s.IRR, 0) {
		t.Errorf("IRR = %v, want a finite sentinel", s.IRR)
	}
}

func TestNewSummary_DefaultHorizon(t *testing.T) {
	s, err := NewSummary(testProperty(), testRates, testDate, 0)
	if err != nil {
		t.Fatalf("NewSummary() error = %v", err)
	}
	if s.Horizon != DefaultHorizonYears {
		t.Errorf("Horizon = %d, want the default %d", s.Horizon, DefaultHorizonYears)
	}
}

func TestNewSummary_UnknownType(t *testing.T) {
	p := testProperty()
	p.Type = "windmill"
	if _, err := NewSummary(p, testRates, testDate, 10); !errors.Is(err, ErrUnknownPropertyType) {
		t.Errorf("NewSummary() error = %v, want ErrUnknownPropertyType", err)
	}
}
