package tracker

import "math"

// This file is the single implementation of mortgage arithmetic. Every other
// surface (cash flows, projections, tax benefits, renderers) calls down here
// rather than re-deriving its own copy of the annuity formula.

// MonthlyPayment returns the level monthly payment for a loan, using the
// standard annuity formula P·r(1+r)^n / ((1+r)^n - 1) with monthly rate r.
// A zero-rate loan pays the principal in equal installments.
func MonthlyPayment(loanAmount, annualRate float64, termMonths int) float64 {
	if loanAmount <= 0 || termMonths <= 0 {
		return 0
	}
	if annualRate == 0 {
		return loanAmount / float64(termMonths)
	}
	r := annualRate / 12
	pow := math.Pow(1+r, float64(termMonths))
	return loanAmount * r * pow / (pow - 1)
}

// OutstandingBalance returns the remaining principal of a loan after
// elapsedMonths periods, simulating the amortization schedule period by
// period. It returns loanAmount unchanged before the first period and 0 once
// the term is over.
func OutstandingBalance(loanAmount, annualRate float64, termMonths, elapsedMonths int) float64 {
	if elapsedMonths <= 0 {
		return loanAmount
	}
	if loanAmount <= 0 || elapsedMonths >= termMonths {
		return 0
	}
	if annualRate == 0 {
		// Equal principal installments, fully linear paydown.
		return loanAmount * (1 - float64(elapsedMonths)/float64(termMonths))
	}

	payment := MonthlyPayment(loanAmount, annualRate, termMonths)
	r := annualRate / 12
	balance := loanAmount
	for i := 0; i < elapsedMonths; i++ {
		interest := balance * r
		balance -= payment - interest
	}
	return math.Max(0, balance)
}

// PaymentSplit is the interest/principal decomposition of a single payment.
type PaymentSplit struct {
	Interest  float64
	Principal float64
}

// SplitPayment splits a mortgage payment into its interest and principal
// parts at the given balance. The principal part is floored at 0 so that an
// interest-only shortfall never reports negative principal.
func SplitPayment(balance, annualRate, paymentAmount float64) PaymentSplit {
	interest := balance * annualRate / 12
	principal := paymentAmount - interest
	if principal < 0 {
		principal = 0
	}
	return PaymentSplit{Interest: interest, Principal: principal}
}
