package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/meenmo/fundperf/chart"
	"github.com/meenmo/fundperf/curve"
	"github.com/meenmo/fundperf/irr"
	"github.com/meenmo/fundperf/scenario"
)

// fundperf solves IRR (Newton and polynomial cross-check) and XIRR for
// every fund in a scenario, prints the comparison table and renders the
// NPV-vs-rate curve with the solved roots marked.
func main() {
	configPath := flag.String("config", "", "scenario YAML path (built-in demo scenario if omitted)")
	chartPath := flag.String("chart", "", "chart output path (overrides the scenario's setting)")
	noChart := flag.Bool("no-chart", false, "skip chart rendering")
	flag.Parse()

	sc, err := scenario.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *chartPath != "" {
		sc.ChartFile = *chartPath
	}

	newton := irr.NewtonMethod{Guess: sc.Guess}
	poly := irr.PolynomialMethod{}

	fmt.Println("--- IRR and XIRR ---")
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "fund\tIRR (newton)\tIRR (polynomial)\tXIRR\t")

	var series []chart.Series
	for _, fund := range sc.Funds {
		irrNewton, errNewton := newton.Rate(fund.Cashflows)
		irrPoly, errPoly := poly.Rate(fund.Cashflows)

		var xirr float64
		errXIRR := errors.New("no dates in scenario")
		if len(sc.Dates) > 0 {
			xirr, errXIRR = irr.XIRR(fund.Cashflows, sc.Dates, sc.Guess)
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n",
			fund.Name,
			formatRate(irrNewton, errNewton),
			formatRate(irrPoly, errPoly),
			formatRate(xirr, errXIRR))

		if errNewton == nil && errPoly == nil && !approxEqual(irrNewton, irrPoly, 1e-4) {
			fmt.Fprintf(os.Stderr, "warning: %s: newton IRR %.6f and polynomial IRR %.6f disagree\n",
				fund.Name, irrNewton, irrPoly)
		}

		points, err := curve.Profile(fund.Cashflows, sc.Domain)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %s: %v\n", fund.Name, err)
			continue
		}
		var roots []float64
		if errNewton == nil && inDomain(irrNewton, sc.Domain) {
			roots = append(roots, irrNewton)
		}
		if errPoly == nil && !containsClose(roots, irrPoly) && inDomain(irrPoly, sc.Domain) {
			roots = append(roots, irrPoly)
		}
		series = append(series, chart.Series{
			Label:  fundLabel(fund.Name, irrNewton, errNewton, xirr, errXIRR),
			Points: points,
			Roots:  roots,
		})
	}
	w.Flush()

	if *noChart || len(series) == 0 {
		return
	}
	if err := chart.Render(series, sc.ChartFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("chart written to %s\n", sc.ChartFile)
}

// formatRate renders a solved rate as a percentage, or the failure kind
// when the solver reported one.
func formatRate(rate float64, err error) string {
	if err != nil {
		return "undefined (" + failureKind(err) + ")"
	}
	return fmt.Sprintf("%.4f (%.2f%%)", rate, rate*100)
}

func failureKind(err error) string {
	switch {
	case errors.Is(err, irr.ErrRateOutOfDomain):
		return "left rate domain"
	case errors.Is(err, irr.ErrZeroDerivative):
		return "flat derivative"
	case errors.Is(err, irr.ErrNoConvergence):
		return "no convergence"
	case errors.Is(err, irr.ErrNoSignChange):
		return "no sign change"
	default:
		return err.Error()
	}
}

func fundLabel(name string, irrRate float64, irrErr error, xirr float64, xirrErr error) string {
	label := name + " (IRR "
	if irrErr != nil {
		label += "n/a"
	} else {
		label += fmt.Sprintf("%.2f%%", irrRate*100)
	}
	if xirrErr == nil {
		label += fmt.Sprintf(", XIRR %.2f%%", xirr*100)
	}
	return label + ")"
}

func approxEqual(a, b, tol float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}

func containsClose(rates []float64, r float64) bool {
	for _, v := range rates {
		if approxEqual(v, r, 1e-6) {
			return true
		}
	}
	return false
}

func inDomain(rate float64, d curve.Domain) bool {
	return rate >= d.Min && rate <= d.Max
}
