// Package irr computes internal rates of return for cash-flow series:
// the periodic IRR over equally spaced periods and the date-weighted XIRR
// over actual calendar dates. Both solve for the discount rate that makes
// the (X)NPV of the series zero, using Newton-Raphson with analytic first
// derivatives; a closed-form polynomial-roots method is provided as an
// independent cross-check for the equal-period case.
package irr

import (
	"fmt"
	"math"
)

// NPV returns the net present value of equally spaced cash flows at the
// given discount rate.
//
//	NPV(r) = Σ cf_i / (1+r)^(i+1)
//
// The exponent is 1-based: the first cash flow is discounted by one full
// period (annuity convention). NPVDerivative is locked to the same
// convention; any change to one requires the matching change to the other.
//
// Rates with 1+rate <= 0 are rejected with ErrRateOutOfDomain.
func NPV(rate float64, cashflows []float64) (float64, error) {
	if err := checkRate(rate); err != nil {
		return 0, err
	}

	npv := 0.0
	for i, cf := range cashflows {
		npv += cf / math.Pow(1+rate, float64(i+1))
	}
	return npv, nil
}

// NPVDerivative returns d(NPV)/d(rate) in closed form.
//
//	dNPV/dr = Σ -cf_i · (i+1) / (1+r)^(i+2)
func NPVDerivative(rate float64, cashflows []float64) (float64, error) {
	if err := checkRate(rate); err != nil {
		return 0, err
	}

	dnpv := 0.0
	for i, cf := range cashflows {
		dnpv -= cf * float64(i+1) / math.Pow(1+rate, float64(i+2))
	}
	return dnpv, nil
}

// checkRate rejects rates for which (1+rate)^t is undefined.
func checkRate(rate float64) error {
	if 1+rate <= 0 {
		return fmt.Errorf("rate %v: %w", rate, ErrRateOutOfDomain)
	}
	return nil
}
