package irr

import "errors"

// Failure kinds reported by the evaluators and solvers. They replace the
// usual NaN sentinel with tagged results so that callers can tell a domain
// violation from a non-converging iteration via errors.Is.
var (
	// ErrRateOutOfDomain reports a discount rate with 1+rate <= 0, for
	// which the discounting power is undefined.
	ErrRateOutOfDomain = errors.New("rate out of domain: 1+rate must be positive")

	// ErrZeroDerivative reports a vanishing derivative at the current
	// iterate, which leaves the next Newton step undefined.
	ErrZeroDerivative = errors.New("derivative vanished")

	// ErrNoConvergence reports that the iteration cap was reached before
	// the step tolerance was met.
	ErrNoConvergence = errors.New("did not converge")

	// ErrNoSignChange reports a cash-flow series without at least one
	// positive and one negative value; such a series has no real root.
	ErrNoSignChange = errors.New("cash flows must contain at least one positive and one negative value")
)
