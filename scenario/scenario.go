// Package scenario loads the input of a fund-performance run: named
// cash-flow series, their shared payment dates, the rate domain for the
// NPV curve and the solver guess. Scenarios are plain YAML files; an empty
// path yields the built-in demo scenario.
package scenario

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/meenmo/fundperf/curve"
	"github.com/meenmo/fundperf/irr"
)

const dateLayout = "2006-01-02"

// Fund is one named cash-flow series. All funds in a scenario share the
// scenario's date schedule.
type Fund struct {
	Name      string
	Cashflows []float64
}

// Scenario is a fully parsed and validated run input.
type Scenario struct {
	Funds []Fund
	// Dates is the shared payment schedule for XIRR; empty means the
	// scenario is periodic-only and XIRR is skipped.
	Dates     []time.Time
	Domain    curve.Domain
	Guess     float64
	ChartFile string
}

// fileScenario is the YAML schema; dates travel as YYYY-MM-DD strings.
type fileScenario struct {
	Funds []struct {
		Name      string    `yaml:"name"`
		Cashflows []float64 `yaml:"cashflows"`
	} `yaml:"funds"`
	Dates []string `yaml:"dates"`
	Curve struct {
		MinRate float64 `yaml:"min_rate"`
		MaxRate float64 `yaml:"max_rate"`
		Samples int     `yaml:"samples"`
	} `yaml:"curve"`
	Solver struct {
		Guess float64 `yaml:"guess"`
	} `yaml:"solver"`
	Chart struct {
		File string `yaml:"file"`
	} `yaml:"chart"`
}

// Load reads and validates a scenario YAML file. An empty path returns
// Default().
func Load(path string) (*Scenario, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}

	var fs fileScenario
	if err := yaml.Unmarshal(data, &fs); err != nil {
		return nil, fmt.Errorf("scenario: parse %s: %w", path, err)
	}

	sc := &Scenario{
		Domain:    curve.Domain{Min: fs.Curve.MinRate, Max: fs.Curve.MaxRate, Samples: fs.Curve.Samples},
		Guess:     fs.Solver.Guess,
		ChartFile: fs.Chart.File,
	}
	if sc.Domain.Min == 0 && sc.Domain.Max == 0 {
		def := curve.DefaultDomain()
		sc.Domain.Min, sc.Domain.Max = def.Min, def.Max
	}
	if sc.Domain.Samples == 0 {
		sc.Domain.Samples = curve.DefaultDomain().Samples
	}
	if sc.Guess == 0 {
		sc.Guess = irr.DefaultGuess
	}
	if sc.ChartFile == "" {
		sc.ChartFile = "npv_curve.png"
	}

	for _, f := range fs.Funds {
		sc.Funds = append(sc.Funds, Fund{Name: f.Name, Cashflows: f.Cashflows})
	}
	for _, s := range fs.Dates {
		d, err := time.Parse(dateLayout, s)
		if err != nil {
			return nil, fmt.Errorf("scenario: invalid date %q: %w", s, err)
		}
		sc.Dates = append(sc.Dates, d)
	}

	if err := sc.validate(); err != nil {
		return nil, fmt.Errorf("scenario: %s: %w", path, err)
	}
	return sc, nil
}

func (sc *Scenario) validate() error {
	if len(sc.Funds) == 0 {
		return fmt.Errorf("no funds defined")
	}
	for _, f := range sc.Funds {
		if f.Name == "" {
			return fmt.Errorf("every fund needs a name")
		}
		if len(f.Cashflows) < 2 {
			return fmt.Errorf("fund %s: need at least 2 cash flows", f.Name)
		}
		if len(sc.Dates) > 0 && len(f.Cashflows) != len(sc.Dates) {
			return fmt.Errorf("fund %s: %d cash flows vs %d dates",
				f.Name, len(f.Cashflows), len(sc.Dates))
		}
	}
	for i := 1; i < len(sc.Dates); i++ {
		if sc.Dates[i].Before(sc.Dates[i-1]) {
			return fmt.Errorf("dates must be non-decreasing")
		}
	}
	if sc.Domain.Min <= -1 {
		return fmt.Errorf("curve min_rate %v must be above -1", sc.Domain.Min)
	}
	if sc.Domain.Min >= sc.Domain.Max {
		return fmt.Errorf("curve min_rate %v must be below max_rate %v", sc.Domain.Min, sc.Domain.Max)
	}
	if sc.Domain.Samples < 2 {
		return fmt.Errorf("curve needs at least 2 samples")
	}
	return nil
}

// Default returns the built-in demo scenario: three funds with identical
// payment dates. Fund A has a plain early recovery, fund B recovers too
// little (its NPV zero sits deep in negative rates) and fund C changes
// sign three times, so Newton may legitimately land on any of its roots.
func Default() *Scenario {
	mustDate := func(s string) time.Time {
		d, err := time.Parse(dateLayout, s)
		if err != nil {
			panic(err)
		}
		return d
	}
	return &Scenario{
		Funds: []Fund{
			{Name: "Fund A", Cashflows: []float64{-100, 150, 0, 0, 0, 10}},
			{Name: "Fund B", Cashflows: []float64{-100, 50, 0, 0, 0, 10}},
			{Name: "Fund C", Cashflows: []float64{-30, 60, 20, -10, 0, 20}},
		},
		Dates: []time.Time{
			mustDate("2019-06-15"),
			mustDate("2020-08-01"),
			mustDate("2021-02-14"),
			mustDate("2022-12-11"),
			mustDate("2023-01-04"),
			mustDate("2024-12-21"),
		},
		Domain:    curve.DefaultDomain(),
		Guess:     irr.DefaultGuess,
		ChartFile: "npv_curve.png",
	}
}
