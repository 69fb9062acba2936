package irr

import (
	"fmt"
	"math"
	"time"
)

// DefaultGuess is the conventional Newton starting point for rate solving.
const DefaultGuess = 0.1

// IRR solves NPV(rate) = 0 for equally spaced cash flows by Newton-Raphson
// from the given starting guess.
//
// The series must contain at least one positive and one negative value
// (otherwise NPV has no real root and the answer would be meaningless);
// violations return ErrNoSignChange. Solver failures carry the tags
// documented on Solve.
func IRR(cashflows []float64, guess float64) (float64, error) {
	if err := checkSignChange(cashflows); err != nil {
		return 0, err
	}

	f := func(rate float64) (float64, error) {
		return NPV(rate, cashflows)
	}
	fprime := func(rate float64) (float64, error) {
		return NPVDerivative(rate, cashflows)
	}
	return Solve(f, fprime, guess)
}

// XIRR solves XNPV(rate) = 0 for dated cash flows by Newton-Raphson from
// the given starting guess. dates[0] is the discounting epoch.
//
// Validation mirrors XNPV (equal lengths, non-decreasing dates) plus the
// sign-change requirement of IRR.
func XIRR(cashflows []float64, dates []time.Time, guess float64) (float64, error) {
	if err := validateSchedule(cashflows, dates); err != nil {
		return 0, err
	}
	if err := checkSignChange(cashflows); err != nil {
		return 0, err
	}

	f := func(rate float64) (float64, error) {
		return XNPV(rate, cashflows, dates)
	}
	fprime := func(rate float64) (float64, error) {
		return XNPVDerivative(rate, cashflows, dates)
	}
	return Solve(f, fprime, guess)
}

// checkSignChange verifies the series mixes inflows and outflows.
func checkSignChange(cashflows []float64) error {
	if len(cashflows) < 2 {
		return fmt.Errorf("need at least 2 cash flows, got %d", len(cashflows))
	}
	min, max := minMax(cashflows)
	if min*max >= 0 {
		return ErrNoSignChange
	}
	return nil
}

func minMax(values []float64) (float64, float64) {
	min, max := math.MaxFloat64, -math.MaxFloat64
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
