package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/meenmo/fundperf/irr"
)

type rateInput struct {
	TaskID    string    `json:"task_id,omitempty"`
	Cashflows []float64 `json:"cashflows"`
	// Dates are YYYY-MM-DD strings aligned with Cashflows; when present,
	// XIRR is solved in addition to the periodic IRR.
	Dates []string `json:"dates,omitempty"`
	Guess float64  `json:"guess,omitempty"`
}

type rateOutput struct {
	TaskID string `json:"task_id,omitempty"`
	// Solved rates are fractions (0.1532 = 15.32%). A nil field with its
	// *_error sibling set means that solver reported a failure.
	IRRNewton          *float64 `json:"irr,omitempty"`
	IRRNewtonError     string   `json:"irr_error,omitempty"`
	IRRPolynomial      *float64 `json:"irr_polynomial,omitempty"`
	IRRPolynomialError string   `json:"irr_polynomial_error,omitempty"`
	XIRR               *float64 `json:"xirr,omitempty"`
	XIRRError          string   `json:"xirr_error,omitempty"`
	Error              string   `json:"error,omitempty"`
}

func main() {
	inputPath := flag.String("input", "", "JSON input path (reads stdin if omitted)")
	help := flag.Bool("h", false, "Show help")
	flag.BoolVar(help, "help", false, "Show help")
	flag.Parse()

	if *help {
		fmt.Fprintln(os.Stderr, "Usage: irrcalc -input <path>")
		fmt.Fprintln(os.Stderr, "Solve IRR (Newton + polynomial cross-check) and XIRR for JSON cash-flow tasks.")
		return
	}

	path := strings.TrimSpace(*inputPath)
	if path == "" {
		if stat, err := os.Stdin.Stat(); err == nil && (stat.Mode()&os.ModeCharDevice) != 0 {
			fmt.Fprintln(os.Stderr, "Usage: irrcalc -input <path>")
			os.Exit(2)
		}
	}

	raw, err := readInput(path)
	if err != nil {
		exitError(fmt.Sprintf("read input: %v", err))
	}

	inputs, isArray, err := parseInputs(raw)
	if err != nil {
		exitError(fmt.Sprintf("parse JSON: %v", err))
	}

	hadError := false
	outputs := make([]rateOutput, 0, len(inputs))
	for _, in := range inputs {
		out, err := process(in)
		if err != nil {
			hadError = true
			outputs = append(outputs, rateOutput{TaskID: in.TaskID, Error: err.Error()})
			continue
		}
		outputs = append(outputs, *out)
	}

	if isArray {
		b, _ := json.Marshal(outputs)
		fmt.Println(string(b))
	} else {
		b, _ := json.Marshal(outputs[0])
		fmt.Println(string(b))
	}

	if hadError {
		os.Exit(1)
	}
}

// process runs the solvers for one task. Invalid input is an error; a
// solver failure is a legitimate result and lands in the *_error fields.
func process(in rateInput) (*rateOutput, error) {
	if len(in.Cashflows) < 2 {
		return nil, fmt.Errorf("need at least 2 cashflows, got %d", len(in.Cashflows))
	}

	guess := in.Guess
	if guess == 0 {
		guess = irr.DefaultGuess
	}

	out := &rateOutput{TaskID: in.TaskID}

	if rate, err := irr.IRR(in.Cashflows, guess); err != nil {
		out.IRRNewtonError = err.Error()
	} else {
		out.IRRNewton = &rate
	}

	if rate, err := irr.PolynomialIRR(in.Cashflows); err != nil {
		out.IRRPolynomialError = err.Error()
	} else {
		out.IRRPolynomial = &rate
	}

	if len(in.Dates) > 0 {
		dates := make([]time.Time, 0, len(in.Dates))
		for _, s := range in.Dates {
			d, err := time.Parse("2006-01-02", s)
			if err != nil {
				return nil, fmt.Errorf("invalid date %s: %v", s, err)
			}
			dates = append(dates, d)
		}
		if rate, err := irr.XIRR(in.Cashflows, dates, guess); err != nil {
			out.XIRRError = err.Error()
		} else {
			out.XIRR = &rate
		}
	}

	return out, nil
}

func readInput(path string) ([]byte, error) {
	if path != "" {
		return os.ReadFile(path)
	}
	return io.ReadAll(os.Stdin)
}

func parseInputs(raw []byte) ([]rateInput, bool, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, false, fmt.Errorf("empty input")
	}
	if trimmed[0] == '[' {
		var inputs []rateInput
		if err := json.Unmarshal(trimmed, &inputs); err != nil {
			return nil, true, err
		}
		if len(inputs) == 0 {
			return nil, true, fmt.Errorf("empty input array")
		}
		return inputs, true, nil
	}
	var input rateInput
	if err := json.Unmarshal(trimmed, &input); err != nil {
		return nil, false, err
	}
	return []rateInput{input}, false, nil
}

func exitError(msg string) {
	b, _ := json.Marshal(rateOutput{Error: msg})
	fmt.Println(string(b))
	os.Exit(1)
}
