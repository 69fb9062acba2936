package irr

import (
	"fmt"
	"math"
)

const (
	// MaxIterations caps the Newton-Raphson iteration. Series without a
	// real root never meet the step tolerance; the cap turns them into
	// ErrNoConvergence instead of an endless loop.
	MaxIterations = 100

	// StepTolerance ends the iteration once two successive estimates
	// differ by less than this.
	StepTolerance = 1e-10

	// derivEpsilon is the magnitude below which a derivative counts as
	// vanished.
	derivEpsilon = 1e-15
)

// Func evaluates a function of the discount rate. An error return (e.g.
// ErrRateOutOfDomain) aborts the iteration and is reported to the caller.
type Func func(rate float64) (float64, error)

// Solve runs Newton-Raphson iteration
//
//	x_{k+1} = x_k - f(x_k) / f'(x_k)
//
// from the given starting guess and returns the rate at which f is zero.
//
// Convergence is declared when the step size falls below StepTolerance
// (the function-value criterion would accept spurious "roots" at extreme
// rates where NPV merely decays toward zero). Failures are tagged:
// ErrZeroDerivative when f' vanishes at an iterate, ErrNoConvergence when
// MaxIterations is exhausted, and any error returned by f or fprime
// (typically ErrRateOutOfDomain when an iterate leaves the valid rate
// domain) is passed through. There is no retry and no projection back
// into the domain: a bad iterate is a reported failure.
//
// When f has several roots, the one found depends on the guess. That is
// inherent to Newton's method and accepted here; callers needing a
// specific root must supply a guess near it.
func Solve(f, fprime Func, guess float64) (float64, error) {
	x := guess
	for iter := 0; iter < MaxIterations; iter++ {
		fx, err := f(x)
		if err != nil {
			return 0, fmt.Errorf("iteration %d: %w", iter, err)
		}
		dfx, err := fprime(x)
		if err != nil {
			return 0, fmt.Errorf("iteration %d: %w", iter, err)
		}
		if math.Abs(dfx) < derivEpsilon {
			return 0, fmt.Errorf("iteration %d at rate %g: %w", iter, x, ErrZeroDerivative)
		}

		step := fx / dfx
		x -= step
		if math.Abs(step) < StepTolerance {
			return x, nil
		}
	}
	return 0, fmt.Errorf("%w after %d iterations", ErrNoConvergence, MaxIterations)
}
