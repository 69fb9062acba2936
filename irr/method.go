package irr

// Method is a strategy for computing the internal rate of return of an
// equally spaced cash-flow series. Two implementations exist: the
// Newton-Raphson iteration and the closed-form polynomial-roots method.
// Running both and comparing is a useful oracle; when they disagree (or
// one fails where the other succeeds) the divergence is worth surfacing
// to the user, not silently reconciling.
type Method interface {
	// Name identifies the strategy in output and error messages.
	Name() string
	// Rate returns the solved internal rate of return as a fraction.
	Rate(cashflows []float64) (float64, error)
}

// NewtonMethod solves NPV(rate) = 0 iteratively from Guess.
// A zero Guess means DefaultGuess.
type NewtonMethod struct {
	Guess float64
}

func (m NewtonMethod) Name() string { return "newton" }

func (m NewtonMethod) Rate(cashflows []float64) (float64, error) {
	guess := m.Guess
	if guess == 0 {
		guess = DefaultGuess
	}
	return IRR(cashflows, guess)
}

// PolynomialMethod solves NPV(rate) = 0 via the roots of the NPV
// polynomial.
type PolynomialMethod struct{}

func (PolynomialMethod) Name() string { return "polynomial" }

func (PolynomialMethod) Rate(cashflows []float64) (float64, error) {
	return PolynomialIRR(cashflows)
}
