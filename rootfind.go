package tracker

import (
	"log"
	"math"
)

// CashFlowSeries is an ordered sequence of per-period nominal cash flows.
// Index 0 is the initial outlay (negative); indexes 1..N are annual net cash
// flows, with terminal sale proceeds included in the final period. A series
// is produced fresh per call and never mutated in place.
type CashFlowSeries []float64

const (
	irrMaxIterations = 1000
	irrTolerance     = 1e-7
	irrDefaultGuess  = 0.10
)

// NPV returns the net present value of a cash-flow series at the given
// annual discount rate, expressed in percent (10 for 10%).
func NPV(cashFlows CashFlowSeries, discountRatePercent float64) float64 {
	rate := discountRatePercent / 100
	var npv float64
	for t, cf := range cashFlows {
		npv += cf / math.Pow(1+rate, float64(t))
	}
	return npv
}

// IRR returns the internal rate of return of a cash-flow series, in percent,
// found by Newton-Raphson from the default 10% guess.
//
// There is no convergence guarantee for pathological sign patterns (multiple
// sign changes). Callers must treat a non-finite or wildly out-of-range
// result as "no real solution" and substitute a sentinel; see [SafeIRR].
func IRR(cashFlows CashFlowSeries) float64 {
	return irrFrom(cashFlows, irrDefaultGuess)
}

func irrFrom(cashFlows CashFlowSeries, guess float64) float64 {
	rate := guess
	for i := 0; i < irrMaxIterations; i++ {
		var npv, dnpv float64
		for t, cf := range cashFlows {
			ft := float64(t)
			npv += cf / math.Pow(1+rate, ft)
			if t > 0 {
				dnpv += -ft * cf / math.Pow(1+rate, ft+1)
			}
		}
		if math.Abs(npv) < irrTolerance {
			return rate * 100
		}
		// A vanishing derivative would blow up the Newton step.
		if math.Abs(dnpv) < irrTolerance {
			return rate * 100
		}
		rate = rate - npv/dnpv
	}
	return rate * 100
}

// SafeIRR is IRR with the sentinel substitution applied: a non-finite result
// is logged and reported as 0. The failure is local and silent by design.
func SafeIRR(cashFlows CashFlowSeries) float64 {
	r := IRR(cashFlows)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		log.Printf("warning: IRR did not converge for a %d-period series, reporting 0", len(cashFlows))
		return 0
	}
	return r
}
