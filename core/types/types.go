// Package types contains the shared value records of the tolerance engine.
// Everything here is an immutable value computed fresh per query; there is
// no persisted or shared mutable state.
package types

import (
	"isofit/internal/errors"
)

// Mode selects the IT-width calculation strategy
type Mode string

const (
	// ModeTable looks tolerances up in the ISO 286-2 grid (0-500 mm, IT5-IT13)
	ModeTable Mode = "table"

	// ModeFormula uses the closed-form tolerance factor on the raw nominal
	// size (0-3150 mm, IT6-IT14)
	ModeFormula Mode = "formula"

	// ModeFormulaBracketed uses the closed-form tolerance factor on the
	// bracket's geometric-mean diameter instead of the raw size
	ModeFormulaBracketed Mode = "formula_bracketed"
)

// ParseMode converts a mode name to a Mode
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeTable, ModeFormula, ModeFormulaBracketed:
		return Mode(s), nil
	}
	return "", errors.Newf(errors.TypeConfig, "unknown calculation mode: %q", s)
}

// String returns the mode name
func (m Mode) String() string {
	return string(m)
}

// FitClass classifies a tolerance zone against the nominal (zero) line
type FitClass string

const (
	// FitClearance - both deviations on or above the zero line
	FitClearance FitClass = "clearance"

	// FitTransition - the tolerance zone straddles the zero line
	FitTransition FitClass = "transition"

	// FitInterference - both deviations below the zero line
	FitInterference FitClass = "interference"
)

// String returns the class name
func (f FitClass) String() string {
	return string(f)
}

// ToleranceResult is the complete result of one tolerance query.
// Invariants: UpperDeviation >= LowerDeviation, MaxLimit = Nominal +
// UpperDeviation, MinLimit = Nominal + LowerDeviation.
type ToleranceResult struct {
	// Nominal is the queried nominal size in mm
	Nominal float64 `json:"nominal"`

	// Letter is the deviation letter as given (case preserved)
	Letter string `json:"letter"`

	// Grade is the IT tolerance grade
	Grade int `json:"grade"`

	// Mode is the calculation mode that produced this result
	Mode Mode `json:"mode"`

	// ITWidthMicrons is the standard tolerance width in integer microns
	ITWidthMicrons int `json:"it_width_microns"`

	// UpperDeviation is ES/es in mm
	UpperDeviation float64 `json:"upper_deviation"`

	// LowerDeviation is EI/ei in mm
	LowerDeviation float64 `json:"lower_deviation"`

	// MaxLimit is the maximum limiting dimension in mm
	MaxLimit float64 `json:"max_limit"`

	// MinLimit is the minimum limiting dimension in mm
	MinLimit float64 `json:"min_limit"`

	// Fit is the classification against the zero line
	Fit FitClass `json:"fit"`
}

// Hole reports whether the result is for a hole-type designation
// (uppercase letter)
func (r *ToleranceResult) Hole() bool {
	if r.Letter == "" {
		return false
	}
	c := r.Letter[0]
	return c >= 'A' && c <= 'Z'
}
