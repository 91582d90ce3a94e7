// Package engine composes the tolerance pipeline: bracket resolution,
// IT width, fundamental deviation, composition, limits and fit class.
// Every computation is a pure function of (nominal size, letter, grade,
// mode); the engine carries no state beyond its logger.
package engine

import (
	"go.uber.org/zap"

	"isofit/core/bracket"
	"isofit/core/designation"
	"isofit/core/deviation"
	"isofit/core/fit"
	"isofit/core/grade"
	"isofit/core/types"
	"isofit/internal/logging"
)

// Engine computes ISO 286 fit tolerances
type Engine struct {
	log *zap.Logger
}

// New creates an engine using the global logger
func New() *Engine {
	return &Engine{log: logging.Logger}
}

// NewWithLogger creates an engine with an explicit logger
func NewWithLogger(log *zap.Logger) *Engine {
	return &Engine{log: log}
}

// Compute runs one tolerance query. Any error aborts the query; no partial
// result is returned.
func (e *Engine) Compute(nominal float64, letterCode string, g int, mode types.Mode) (*types.ToleranceResult, error) {
	letter, err := deviation.ParseLetter(letterCode)
	if err != nil {
		return nil, err
	}

	var (
		it   int
		fund deviation.Fundamental
	)

	switch mode {
	case types.ModeTable:
		_, row, err := bracket.ResolveTable(nominal)
		if err != nil {
			return nil, err
		}
		if it, err = grade.Lookup(row, g); err != nil {
			return nil, err
		}
		if fund, err = deviation.ResolveTable(row, letter); err != nil {
			return nil, err
		}

	case types.ModeFormula, types.ModeFormulaBracketed:
		r, err := bracket.Resolve(nominal)
		if err != nil {
			return nil, err
		}
		// The continuous mode uses the raw size; the bracketed mode
		// substitutes the bracket's representative diameter.
		d := nominal
		if mode == types.ModeFormulaBracketed {
			d = r.GeomMean()
		}
		if it, err = grade.Formula(d, g); err != nil {
			return nil, err
		}
		if fund, err = deviation.ResolveFormula(d, letter); err != nil {
			return nil, err
		}

	default:
		_, err := types.ParseMode(string(mode))
		return nil, err
	}

	upperUm, lowerUm := deviation.Compose(letter, it, fund)
	upperMM := upperUm.Shift(-3)
	lowerMM := lowerUm.Shift(-3)

	max, min := fit.Limits(nominal, upperMM, lowerMM)

	result := &types.ToleranceResult{
		Nominal:        nominal,
		Letter:         letter.String(),
		Grade:          g,
		Mode:           mode,
		ITWidthMicrons: it,
		UpperDeviation: upperMM.InexactFloat64(),
		LowerDeviation: lowerMM.InexactFloat64(),
		MaxLimit:       max,
		MinLimit:       min,
		Fit:            fit.Classify(upperMM, lowerMM),
	}

	e.log.Debug("tolerance computed",
		zap.Float64("nominal", nominal),
		zap.String("letter", result.Letter),
		zap.Int("grade", g),
		zap.String("mode", mode.String()),
		zap.Int("it_microns", it),
		zap.String("fit", result.Fit.String()),
	)

	return result, nil
}

// ComputeDesignation parses a designation string like "25JS9" and computes it
func (e *Engine) ComputeDesignation(s string, mode types.Mode) (*types.ToleranceResult, error) {
	d, err := designation.Parse(s)
	if err != nil {
		return nil, err
	}
	return e.Compute(d.Size, d.Letter, d.Grade, mode)
}
