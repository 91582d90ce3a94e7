// Package catalog is the authoritative list of supported deviation letters.
// It records each letter's anchoring category, which calculation modes cover
// it, and any accuracy caveat. This is the source of truth the CLI renders
// and the documentation of what the engine does and does not model.
package catalog

import (
	"sort"

	"isofit/core/deviation"
)

// Entry describes one supported deviation letter
type Entry struct {
	// Letter is the canonical lowercase code; the uppercase form designates
	// the hole-type fit
	Letter string

	// Category is the anchoring rule of the letter family
	Category deviation.Category

	// TableMode reports whether the ISO 286-2 grid covers the letter
	TableMode bool

	// FormulaMode reports whether a fitted continuous curve exists
	FormulaMode bool

	// Notes records accuracy caveats
	Notes string
}

var entries = map[string]Entry{
	"h": {
		Letter:      "h",
		Category:    deviation.ZeroBasis,
		TableMode:   true,
		FormulaMode: true,
		Notes:       "basis letter; deviation exactly 0",
	},
	"js": {
		Letter:      "js",
		Category:    deviation.Symmetric,
		TableMode:   true,
		FormulaMode: true,
		Notes:       "symmetric about the zero line; no signed fundamental deviation",
	},
	"e": {
		Letter:    "e",
		Category:  deviation.LowerAnchored,
		TableMode: true,
		Notes:     "stepped per-bracket constants; hole case is a sign mirror",
	},
	"f": {
		Letter:      "f",
		Category:    deviation.LowerAnchored,
		TableMode:   true,
		FormulaMode: true,
		Notes:       "continuous curve is a fitted 2.5*d^0.34 approximation",
	},
	"g": {
		Letter:      "g",
		Category:    deviation.LowerAnchored,
		TableMode:   true,
		FormulaMode: true,
		Notes:       "continuous curve is a fitted 2.5*d^0.34 approximation",
	},
	"k": {
		Letter:      "k",
		Category:    deviation.UpperAnchored,
		TableMode:   true,
		FormulaMode: true,
		Notes:       "continuous curve is a crude near-zero shift, not a delta-value lookup",
	},
	"m": {
		Letter:    "m",
		Category:  deviation.UpperAnchored,
		TableMode: true,
		Notes:     "stepped per-bracket constants; hole case omits the delta correction",
	},
	"n": {
		Letter:    "n",
		Category:  deviation.UpperAnchored,
		TableMode: true,
		Notes:     "stepped per-bracket constants; hole case omits the delta correction",
	},
	"p": {
		Letter:    "p",
		Category:  deviation.UpperAnchored,
		TableMode: true,
		Notes:     "stepped per-bracket constants; hole case omits the delta correction",
	},
}

// PreferredZones are the commonly requested tolerance zones, in the order
// a machine-shop reference lists them
var PreferredZones = []string{
	"H7", "H8",
	"h7", "h8", "h12", "h14",
	"F7", "G7", "K7",
	"g8",
}

// Lookup returns the entry for a lowercase letter code
func Lookup(letter string) (Entry, bool) {
	e, ok := entries[letter]
	return e, ok
}

// Entries returns all catalog entries sorted by letter
func Entries() []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Letter < out[j].Letter
	})
	return out
}
