// Package output renders tolerance results for human and machine consumers.
// The engine itself never formats; display precision is a caller choice.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"isofit/core/types"
	"isofit/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given result
	Render(w io.Writer, result *types.ToleranceResult) error
}

// New returns a formatter for the given format, rendering millimetre values
// with the given number of decimal places
func New(f Format, decimals int) (Formatter, error) {
	switch f {
	case FormatCLI:
		return &cliFormatter{decimals: int32(decimals)}, nil
	case FormatJSON:
		return &jsonFormatter{decimals: int32(decimals)}, nil
	}
	return nil, errors.Newf(errors.TypeConfig, "unknown output format: %q", f)
}

func mm(v float64, decimals int32) string {
	return decimal.NewFromFloat(v).StringFixed(decimals)
}

func signedMicrons(v float64) string {
	um := decimal.NewFromFloat(v).Shift(3)
	s := um.StringFixed(1)
	if um.Sign() >= 0 {
		s = "+" + s
	}
	return s
}

// cliFormatter renders a boxed summary table
type cliFormatter struct {
	decimals int32
}

func (f *cliFormatter) Format() Format { return FormatCLI }

func (f *cliFormatter) Render(w io.Writer, r *types.ToleranceResult) error {
	kind := "shaft"
	if r.Hole() {
		kind = "hole"
	}

	fmt.Fprintln(w, "┌──────────────────────────────────────────────────────┐")
	fmt.Fprintf(w, "│ %-52s │\n", fmt.Sprintf("Ø%g %s%d  (%s, %s mode)", r.Nominal, r.Letter, r.Grade, kind, r.Mode))
	fmt.Fprintln(w, "├──────────────────────────────────────────────────────┤")
	fmt.Fprintf(w, "│ %-30s %21s │\n", "Max limit", mm(r.MaxLimit, f.decimals)+" mm")
	fmt.Fprintf(w, "│ %-30s %21s │\n", "Min limit", mm(r.MinLimit, f.decimals)+" mm")
	fmt.Fprintf(w, "│ %-30s %21s │\n", "IT width", fmt.Sprintf("%d µm", r.ITWidthMicrons))
	fmt.Fprintf(w, "│ %-30s %21s │\n", "Upper deviation (ES/es)", signedMicrons(r.UpperDeviation)+" µm")
	fmt.Fprintf(w, "│ %-30s %21s │\n", "Lower deviation (EI/ei)", signedMicrons(r.LowerDeviation)+" µm")
	fmt.Fprintf(w, "│ %-30s %21s │\n", "Fit class", r.Fit.String())
	fmt.Fprintln(w, "└──────────────────────────────────────────────────────┘")
	return nil
}

// jsonFormatter renders the result record as indented JSON with
// fixed-decimal strings alongside the raw numbers
type jsonFormatter struct {
	decimals int32
}

func (f *jsonFormatter) Format() Format { return FormatJSON }

type jsonView struct {
	*types.ToleranceResult

	// Display carries pre-rounded strings so consumers do not repeat the
	// rounding rules
	Display struct {
		MaxLimit       string `json:"max_limit"`
		MinLimit       string `json:"min_limit"`
		UpperDeviation string `json:"upper_deviation"`
		LowerDeviation string `json:"lower_deviation"`
	} `json:"display"`
}

func (f *jsonFormatter) Render(w io.Writer, r *types.ToleranceResult) error {
	view := jsonView{ToleranceResult: r}
	view.Display.MaxLimit = mm(r.MaxLimit, f.decimals)
	view.Display.MinLimit = mm(r.MinLimit, f.decimals)
	view.Display.UpperDeviation = mm(r.UpperDeviation, f.decimals)
	view.Display.LowerDeviation = mm(r.LowerDeviation, f.decimals)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(view)
}
