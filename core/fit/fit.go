// Package fit converts deviation pairs into limiting dimensions and
// classifies the resulting fit.
package fit

import (
	"github.com/shopspring/decimal"

	"isofit/core/types"
)

// Limits computes the maximum and minimum limiting dimensions in mm.
// Deviations arrive as exact decimal millimetres so integer-micron inputs
// do not pick up binary-float artifacts.
func Limits(nominal float64, upperMM, lowerMM decimal.Decimal) (max, min float64) {
	n := decimal.NewFromFloat(nominal)
	return n.Add(upperMM).InexactFloat64(), n.Add(lowerMM).InexactFloat64()
}

// Classify places the tolerance zone against the nominal (zero) line.
// A deviation of exactly 0 counts as non-negative, so the basis-hole letters
// (lower deviation 0) classify as clearance rather than straddling.
func Classify(upperMM, lowerMM decimal.Decimal) types.FitClass {
	switch {
	case lowerMM.Sign() >= 0:
		return types.FitClearance
	case upperMM.Sign() < 0:
		return types.FitInterference
	default:
		return types.FitTransition
	}
}
