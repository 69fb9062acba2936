package irr_test

import (
	"errors"
	"math"
	"testing"

	"github.com/meenmo/fundperf/irr"
)

func TestPolynomialIRR_ExactTwoFlow(t *testing.T) {
	rate, err := irr.PolynomialIRR([]float64{-100, 110})
	if err != nil {
		t.Fatalf("PolynomialIRR: %v", err)
	}
	if math.Abs(rate-0.1) > 1e-9 {
		t.Fatalf("PolynomialIRR = %v, want 0.1", rate)
	}
}

func TestPolynomialIRR_LeadingZerosIgnored(t *testing.T) {
	// A delayed series has the same root; leading zeros only lower the
	// polynomial degree.
	rate, err := irr.PolynomialIRR([]float64{0, -100, 110})
	if err != nil {
		t.Fatalf("PolynomialIRR: %v", err)
	}
	if math.Abs(rate-0.1) > 1e-9 {
		t.Fatalf("PolynomialIRR = %v, want 0.1", rate)
	}
}

func TestPolynomialIRR_TrailingZerosIgnored(t *testing.T) {
	// Trailing zeros only add roots at 1+r = 0, which are never valid
	// rates.
	rate, err := irr.PolynomialIRR([]float64{-100, 110, 0, 0})
	if err != nil {
		t.Fatalf("PolynomialIRR: %v", err)
	}
	if math.Abs(rate-0.1) > 1e-9 {
		t.Fatalf("PolynomialIRR = %v, want 0.1", rate)
	}
}

func TestPolynomialIRR_FundA(t *testing.T) {
	rate, err := irr.PolynomialIRR(fundA)
	if err != nil {
		t.Fatalf("PolynomialIRR: %v", err)
	}
	if math.Abs(rate-0.5188) > 1e-3 {
		t.Errorf("PolynomialIRR = %v, want ~0.5188", rate)
	}

	npv, err := irr.NPV(rate, fundA)
	if err != nil {
		t.Fatalf("NPV at root: %v", err)
	}
	if math.Abs(npv) > 1e-6 {
		t.Errorf("NPV at solved rate = %v, want ~0", npv)
	}
}

func TestPolynomialIRR_RequiresSignChange(t *testing.T) {
	_, err := irr.PolynomialIRR([]float64{10, 20, 30})
	if !errors.Is(err, irr.ErrNoSignChange) {
		t.Fatalf("error = %v, want ErrNoSignChange", err)
	}
}
