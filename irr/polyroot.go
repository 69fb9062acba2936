package irr

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// imagTolerance is the relative imaginary-part threshold below which an
// eigenvalue counts as a real root.
const imagTolerance = 1e-7

// PolynomialIRR computes the internal rate of return of equally spaced
// cash flows in closed form, as a cross-check for the Newton-based IRR.
//
// Multiplying NPV(r) = Σ cf_i/(1+r)^(i+1) = 0 by (1+r)^n turns it into a
// polynomial in y = 1+r:
//
//	p(y) = cf_0·y^(n-1) + cf_1·y^(n-2) + ... + cf_{n-1} = 0
//
// whose roots are the eigenvalues of p's companion matrix. Among the real
// roots with y > 0, the rate closest to zero is returned, matching the
// usual closed-form IRR selection. This only exists for the equal-period
// case; XIRR day offsets are irregular and have no polynomial form.
func PolynomialIRR(cashflows []float64) (float64, error) {
	if err := checkSignChange(cashflows); err != nil {
		return 0, err
	}

	coeffs := trimZeros(cashflows)
	degree := len(coeffs) - 1

	// Monic companion matrix: ones on the subdiagonal, the negated
	// normalized coefficients in the last column. Row i carries the
	// coefficient of y^i.
	lead := coeffs[0]
	c := mat.NewDense(degree, degree, nil)
	for i := 1; i < degree; i++ {
		c.Set(i, i-1, 1)
	}
	for i := 0; i < degree; i++ {
		c.Set(i, degree-1, -coeffs[degree-i]/lead)
	}

	var eig mat.Eigen
	if ok := eig.Factorize(c, mat.EigenNone); !ok {
		return 0, fmt.Errorf("eigenvalue decomposition of the NPV polynomial failed")
	}

	best := math.NaN()
	for _, z := range eig.Values(nil) {
		if math.Abs(imag(z)) > imagTolerance*(1+math.Abs(real(z))) {
			continue
		}
		y := real(z)
		if y <= 0 {
			continue
		}
		rate := y - 1
		if math.IsNaN(best) || math.Abs(rate) < math.Abs(best) {
			best = rate
		}
	}
	if math.IsNaN(best) {
		return 0, fmt.Errorf("NPV polynomial has no real root with 1+rate > 0")
	}
	return best, nil
}

// trimZeros strips leading zero cash flows (which only lower the polynomial
// degree) and trailing ones (which only add roots at y = 0, i.e. rate -1).
// checkSignChange has already guaranteed a nonzero value exists.
func trimZeros(cashflows []float64) []float64 {
	lo, hi := 0, len(cashflows)
	for lo < hi && cashflows[lo] == 0 {
		lo++
	}
	for hi > lo && cashflows[hi-1] == 0 {
		hi--
	}
	return cashflows[lo:hi]
}
