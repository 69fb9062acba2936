// Package chart renders NPV-vs-discount-rate curves with the solved rates
// marked on the zero line.
package chart

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/meenmo/fundperf/curve"
)

// Series is one fund's sampled NPV profile plus the solved rates to mark.
// Roots may be empty when every solver failed for the fund.
type Series struct {
	Label  string
	Points []curve.Point
	Roots  []float64
}

// Render writes the NPV curve chart to path. The image format follows the
// file extension (.png, .svg, .pdf, ...).
func Render(series []Series, path string) error {
	if len(series) == 0 {
		return fmt.Errorf("chart: no series to render")
	}

	p := plot.New()
	p.Title.Text = "NPV vs. discount rate"
	p.X.Label.Text = "Discount rate r"
	p.Y.Label.Text = "Net present value"
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	for i, s := range series {
		xys := make(plotter.XYs, len(s.Points))
		for j, pt := range s.Points {
			xys[j].X = pt.Rate
			xys[j].Y = pt.NPV
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("chart: %s: %w", s.Label, err)
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(s.Label, line)

		if len(s.Roots) == 0 {
			continue
		}
		roots := make(plotter.XYs, len(s.Roots))
		for j, r := range s.Roots {
			roots[j].X = r
			roots[j].Y = 0
		}
		scatter, err := plotter.NewScatter(roots)
		if err != nil {
			return fmt.Errorf("chart: %s roots: %w", s.Label, err)
		}
		scatter.Radius = vg.Points(4)
		scatter.Color = plotutil.Color(i)
		p.Add(scatter)
	}

	// Dashed y = 0 line: the solved rates sit where each curve meets it.
	zero := plotter.NewFunction(func(float64) float64 { return 0 })
	zero.LineStyle.Color = color.Gray{Y: 80}
	zero.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(zero)

	if err := p.Save(10*vg.Inch, 7*vg.Inch, path); err != nil {
		return fmt.Errorf("chart: save %s: %w", path, err)
	}
	return nil
}
