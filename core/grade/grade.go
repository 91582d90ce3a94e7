// Package grade computes standard tolerance (IT) widths.
//
// Two methods are supported. The formula method covers the full 0-3150 mm
// range for IT6-IT14 but is an approximation; the lookup grid reproduces the
// published ISO 286-2 values for 0-500 mm, IT5-IT13, and is ground truth for
// the range it covers.
package grade

import (
	"math"

	"isofit/internal/errors"
)

const (
	// MinFormula and MaxFormula bound the grades the formula method accepts
	MinFormula = 6
	MaxFormula = 14

	// MinTable and MaxTable bound the grades the lookup grid covers
	MinTable = 5
	MaxTable = 13
)

// coefficients maps an IT grade to its multiple of the tolerance factor i
// (IT6 = 10i, IT7 = 16i, ...). Index 0 corresponds to IT6.
var coefficients = [...]int{10, 16, 25, 40, 64, 100, 160, 250, 400}

// grid is the ISO 286-2 standard tolerance grid in integer microns.
// Rows are the size brackets up to 500 mm in bracket order; columns are
// grades IT5 through IT13.
var grid = [13][9]int{
	{4, 6, 10, 14, 25, 40, 60, 100, 140},      // (0, 3]
	{5, 8, 12, 18, 30, 48, 75, 120, 180},      // (3, 6]
	{6, 9, 15, 22, 36, 58, 90, 150, 220},      // (6, 10]
	{8, 11, 18, 27, 43, 70, 110, 180, 270},    // (10, 18]
	{9, 13, 21, 33, 52, 84, 130, 210, 330},    // (18, 30]
	{11, 16, 25, 39, 62, 100, 160, 250, 390},  // (30, 50]
	{13, 19, 30, 46, 74, 120, 190, 300, 460},  // (50, 80]
	{15, 22, 35, 54, 87, 140, 220, 350, 540},  // (80, 120]
	{18, 25, 40, 63, 100, 160, 250, 400, 630}, // (120, 180]
	{20, 29, 46, 72, 115, 185, 290, 460, 720}, // (180, 250]
	{23, 32, 52, 81, 130, 210, 320, 520, 810}, // (250, 315]
	{25, 36, 57, 89, 140, 230, 360, 570, 890}, // (315, 400]
	{27, 40, 63, 97, 155, 250, 400, 630, 970}, // (400, 500]
}

// Factor computes the standard tolerance factor for a diameter: i for
// d <= 500 mm, I above. The diameter may be a raw nominal size or a bracket
// geometric mean, per the caller's mode.
func Factor(d float64) float64 {
	if d <= 500 {
		return 0.45*math.Cbrt(d) + 0.001*d
	}
	return 0.004*d + 2.1
}

// Formula computes the IT width in integer microns from the tolerance
// factor of d and the grade coefficient
func Formula(d float64, g int) (int, error) {
	if g < MinFormula || g > MaxFormula {
		return 0, errors.UnsupportedGrade(g, MinFormula, MaxFormula)
	}
	return int(math.Round(float64(coefficients[g-MinFormula]) * Factor(d))), nil
}

// Lookup returns the published ISO 286-2 IT width in microns for a grid row
// (from bracket.ResolveTable) and grade
func Lookup(row, g int) (int, error) {
	if g < MinTable || g > MaxTable {
		return 0, errors.UnsupportedGrade(g, MinTable, MaxTable)
	}
	if row < 0 || row >= len(grid) {
		return 0, errors.Newf(errors.TypeInternal, "grid row out of range: %d", row)
	}
	return grid[row][g-MinTable], nil
}
