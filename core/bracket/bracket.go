// Package bracket resolves nominal sizes to standard ISO 286 size brackets.
// Tolerance formulas are defined on a bracket's geometric mean, not on the
// literal nominal size: two parts at 21 mm and 29 mm sit in the same bracket
// (18, 30] and must receive identical standard tolerance widths.
package bracket

import (
	"math"

	"isofit/internal/errors"
)

const (
	// MaxSize is the largest nominal size covered by the standard brackets
	MaxSize = 3150.0

	// MaxTableSize is the largest nominal size covered by the ISO 286-2
	// lookup grid
	MaxTableSize = 500.0
)

// boundaries are the standard upper bracket limits, with an implicit 0 floor.
// Brackets are half-open intervals (lower, upper].
var boundaries = []float64{
	3, 6, 10, 18, 30, 50, 80, 120, 180, 250, 315, 400, 500,
	630, 800, 1000, 1250, 1600, 2000, 2500, 3150,
}

// Range is one standard size bracket (Lower, Upper]
type Range struct {
	Lower float64
	Upper float64
}

// Contains reports whether d falls inside the half-open interval
func (r Range) Contains(d float64) bool {
	return d > r.Lower && d <= r.Upper
}

// GeomMean returns the bracket's representative diameter. The first bracket
// has no usable lower bound, so by convention it uses sqrt(1*3).
func (r Range) GeomMean() float64 {
	if r.Lower == 0 {
		return math.Sqrt(1 * r.Upper)
	}
	return math.Sqrt(r.Lower * r.Upper)
}

// Resolve returns the unique bracket containing d over the full standard
// range (0, 3150]
func Resolve(d float64) (Range, error) {
	r, _, err := resolve(d, MaxSize)
	return r, err
}

// ResolveTable returns the bracket containing d over the ISO 286-2 grid
// range (0, 500], along with its row index into the grid
func ResolveTable(d float64) (Range, int, error) {
	return resolve(d, MaxTableSize)
}

func resolve(d, max float64) (Range, int, error) {
	if d <= 0 || d > max {
		return Range{}, 0, errors.OutOfRange(d, max)
	}
	lower := 0.0
	for i, upper := range boundaries {
		if d <= upper {
			return Range{Lower: lower, Upper: upper}, i, nil
		}
		lower = upper
	}
	// Unreachable: d <= max and max is the last boundary
	return Range{}, 0, errors.OutOfRange(d, max)
}
