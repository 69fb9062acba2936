package irr

import (
	"fmt"
	"math"
	"time"

	"github.com/meenmo/fundperf/daycount"
)

// XNPV returns the net present value of dated cash flows at the given
// discount rate, discounting by actual calendar-day offsets instead of
// uniform periods.
//
//	XNPV(r) = Σ cf_i / (1+r)^(days_i / 365)
//
// days_i is the whole-day count from dates[0] to dates[i], so the first
// cash flow has exponent 0 and enters unscaled. The 365-day year is a
// fixed convention (see package daycount).
//
// cashflows and dates must have the same length and dates must be
// non-decreasing; rates with 1+rate <= 0 are rejected with
// ErrRateOutOfDomain.
func XNPV(rate float64, cashflows []float64, dates []time.Time) (float64, error) {
	if err := validateSchedule(cashflows, dates); err != nil {
		return 0, err
	}
	if err := checkRate(rate); err != nil {
		return 0, err
	}

	xnpv := 0.0
	for i, cf := range cashflows {
		t := daycount.YearFraction(dates[0], dates[i])
		xnpv += cf / math.Pow(1+rate, t)
	}
	return xnpv, nil
}

// XNPVDerivative returns d(XNPV)/d(rate) in closed form.
//
//	dXNPV/dr = Σ -cf_i · (days_i/365) / (1+r)^(days_i/365 + 1)
func XNPVDerivative(rate float64, cashflows []float64, dates []time.Time) (float64, error) {
	if err := validateSchedule(cashflows, dates); err != nil {
		return 0, err
	}
	if err := checkRate(rate); err != nil {
		return 0, err
	}

	dxnpv := 0.0
	for i, cf := range cashflows {
		t := daycount.YearFraction(dates[0], dates[i])
		dxnpv -= cf * t / math.Pow(1+rate, t+1)
	}
	return dxnpv, nil
}

// validateSchedule checks the cashflow/date alignment invariants shared by
// XNPV, XNPVDerivative and XIRR.
func validateSchedule(cashflows []float64, dates []time.Time) error {
	if len(cashflows) != len(dates) {
		return fmt.Errorf("cashflows and dates must have the same length, got %d and %d",
			len(cashflows), len(dates))
	}
	for i := 1; i < len(dates); i++ {
		if dates[i].Before(dates[i-1]) {
			return fmt.Errorf("dates must be non-decreasing: %s follows %s",
				dates[i].Format("2006-01-02"), dates[i-1].Format("2006-01-02"))
		}
	}
	return nil
}
