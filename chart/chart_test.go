package chart_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/meenmo/fundperf/chart"
	"github.com/meenmo/fundperf/curve"
	"github.com/meenmo/fundperf/irr"
)

func TestRender_WritesPNG(t *testing.T) {
	cashflows := []float64{-100, 150, 0, 0, 0, 10}
	points, err := curve.Profile(cashflows, curve.Domain{Min: -0.5, Max: 1.0, Samples: 50})
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	rate, err := irr.IRR(cashflows, irr.DefaultGuess)
	if err != nil {
		t.Fatalf("IRR: %v", err)
	}

	path := filepath.Join(t.TempDir(), "npv.png")
	series := []chart.Series{
		{Label: "Fund A", Points: points, Roots: []float64{rate}},
		{Label: "No roots", Points: points},
	}
	if err := chart.Render(series, path); err != nil {
		t.Fatalf("Render: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat chart: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("chart file is empty")
	}
}

func TestRender_NoSeries(t *testing.T) {
	if err := chart.Render(nil, filepath.Join(t.TempDir(), "npv.png")); err == nil {
		t.Error("empty series accepted")
	}
}
