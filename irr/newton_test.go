package irr_test

import (
	"errors"
	"math"
	"testing"

	"github.com/meenmo/fundperf/irr"
)

// exact wraps a plain function as an error-free solver input.
func exact(f func(float64) float64) irr.Func {
	return func(x float64) (float64, error) {
		return f(x), nil
	}
}

func TestSolve_Quadratic(t *testing.T) {
	f := exact(func(x float64) float64 { return x*x - 4 })
	fprime := exact(func(x float64) float64 { return 2 * x })

	got, err := irr.Solve(f, fprime, 3)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if math.Abs(got-2) > 1e-9 {
		t.Fatalf("Solve = %v, want 2", got)
	}
}

func TestSolve_ZeroDerivativeAtGuess(t *testing.T) {
	f := exact(func(x float64) float64 { return x*x - 4 })
	fprime := exact(func(x float64) float64 { return 2 * x })

	_, err := irr.Solve(f, fprime, 0)
	if !errors.Is(err, irr.ErrZeroDerivative) {
		t.Fatalf("error = %v, want ErrZeroDerivative", err)
	}
}

func TestSolve_TwoCycleHitsIterationCap(t *testing.T) {
	// x^3 - 2x + 2 from 0 is the textbook Newton two-cycle (0 -> 1 -> 0):
	// the step size never shrinks, so only the cap stops the iteration.
	f := exact(func(x float64) float64 { return x*x*x - 2*x + 2 })
	fprime := exact(func(x float64) float64 { return 3*x*x - 2 })

	_, err := irr.Solve(f, fprime, 0)
	if !errors.Is(err, irr.ErrNoConvergence) {
		t.Fatalf("error = %v, want ErrNoConvergence", err)
	}
}

func TestSolve_NoSignChangeSeriesTerminates(t *testing.T) {
	// All-positive flows have NPV > 0 everywhere; NPV only decays toward
	// zero as the rate grows, so the iterates run off to huge rates and
	// the cap must end the loop (never an infinite one).
	cashflows := []float64{100, 100}
	f := func(rate float64) (float64, error) { return irr.NPV(rate, cashflows) }
	fprime := func(rate float64) (float64, error) { return irr.NPVDerivative(rate, cashflows) }

	_, err := irr.Solve(f, fprime, irr.DefaultGuess)
	if !errors.Is(err, irr.ErrNoConvergence) {
		t.Fatalf("error = %v, want ErrNoConvergence", err)
	}
}

func TestSolve_EvaluatorErrorPropagates(t *testing.T) {
	cashflows := []float64{-100, 150}
	f := func(rate float64) (float64, error) { return irr.NPV(rate, cashflows) }
	fprime := func(rate float64) (float64, error) { return irr.NPVDerivative(rate, cashflows) }

	_, err := irr.Solve(f, fprime, -2)
	if !errors.Is(err, irr.ErrRateOutOfDomain) {
		t.Fatalf("error = %v, want ErrRateOutOfDomain", err)
	}
}
