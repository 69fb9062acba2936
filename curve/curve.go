// Package curve samples net present value over a range of candidate
// discount rates. The resulting profile is plotting input only; root
// finding lives in package irr.
package curve

import (
	"fmt"

	"github.com/meenmo/fundperf/irr"
)

// Domain is an inclusive, evenly sampled range of discount rates.
type Domain struct {
	Min     float64
	Max     float64
	Samples int
}

// DefaultDomain covers -50% to +100% in 400 steps, wide enough to show the
// zero crossing of typical fund cash flows.
func DefaultDomain() Domain {
	return Domain{Min: -0.5, Max: 1.0, Samples: 400}
}

// Point is one sampled (rate, NPV) pair.
type Point struct {
	Rate float64
	NPV  float64
}

// Profile evaluates NPV for the cash flows at every rate in the domain.
// The domain must satisfy Min < Max, Samples >= 2 and Min > -1 (rates at
// or below -1 are outside the discounting domain).
func Profile(cashflows []float64, d Domain) ([]Point, error) {
	if d.Samples < 2 {
		return nil, fmt.Errorf("curve: need at least 2 samples, got %d", d.Samples)
	}
	if d.Min >= d.Max {
		return nil, fmt.Errorf("curve: min rate %v must be below max rate %v", d.Min, d.Max)
	}

	step := (d.Max - d.Min) / float64(d.Samples-1)
	points := make([]Point, d.Samples)
	for i := range points {
		rate := d.Min + float64(i)*step
		npv, err := irr.NPV(rate, cashflows)
		if err != nil {
			return nil, fmt.Errorf("curve: sample %d: %w", i, err)
		}
		points[i] = Point{Rate: rate, NPV: npv}
	}
	return points, nil
}
