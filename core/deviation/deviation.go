// Package deviation resolves fundamental deviations and composes them with
// IT widths into (upper, lower) deviation pairs.
//
// Accuracy caveats, preserved deliberately: the continuous curves for the
// f/g family and the K shift are fitted approximations, not the ISO 286-1
// delta-value tables, and hole letters are treated as exact sign mirrors of
// their shaft counterparts (true ISO values for F vs f or G vs g are not
// exact mirrors). Table-mode constants for the K/M/N/P holes likewise omit
// the delta correction.
package deviation

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"isofit/internal/errors"
)

// Category classifies how a letter family anchors its tolerance zone
// relative to the zero line. The anchoring choice is the defining invariant
// of each family: anchoring K at EI instead of ES produces wrong results
// even when the IT width is correct.
type Category int

const (
	// ZeroBasis - h/H, the basis letters; one deviation is exactly 0
	ZeroBasis Category = iota

	// LowerAnchored - e/f/g family; the fundamental deviation is the one
	// closest to the zero line on the clearance side
	LowerAnchored

	// UpperAnchored - k/m/n/p family; the fundamental deviation sits on the
	// transition/interference side
	UpperAnchored

	// Symmetric - js/JS; the zone is centred on the zero line with no
	// signed fundamental deviation
	Symmetric
)

// String returns the category name
func (c Category) String() string {
	switch c {
	case ZeroBasis:
		return "zero_basis"
	case LowerAnchored:
		return "lower_anchored"
	case UpperAnchored:
		return "upper_anchored"
	case Symmetric:
		return "symmetric"
	default:
		return "unknown"
	}
}

// categories is the static letter-category dispatch table; lookup replaces
// per-letter string branching
var categories = map[string]Category{
	"h":  ZeroBasis,
	"js": Symmetric,
	"e":  LowerAnchored,
	"f":  LowerAnchored,
	"g":  LowerAnchored,
	"k":  UpperAnchored,
	"m":  UpperAnchored,
	"n":  UpperAnchored,
	"p":  UpperAnchored,
}

// continuous marks the letters the formula mode has a fitted curve for
var continuous = map[string]bool{
	"h":  true,
	"js": true,
	"f":  true,
	"g":  true,
	"k":  true,
}

// Letter is a validated deviation letter. Code is the canonical lowercase
// form; Hole records whether the designation used the uppercase (hole-type)
// case.
type Letter struct {
	Code string
	Hole bool
}

// ParseLetter validates a deviation letter code. Case decides the fit side:
// uppercase designates a hole, lowercase a shaft. Mixed case is rejected.
func ParseLetter(code string) (Letter, error) {
	lower := strings.ToLower(code)
	if _, ok := categories[lower]; !ok {
		return Letter{}, errors.UnsupportedLetter(code)
	}
	switch code {
	case lower:
		return Letter{Code: lower, Hole: false}, nil
	case strings.ToUpper(code):
		return Letter{Code: lower, Hole: true}, nil
	}
	return Letter{}, errors.UnsupportedLetter(code)
}

// Category returns the letter's anchoring category
func (l Letter) Category() Category {
	return categories[l.Code]
}

// HasContinuousCurve reports whether the formula mode supports the letter
func (l Letter) HasContinuousCurve() bool {
	return continuous[l.Code]
}

// String renders the letter in its designation case
func (l Letter) String() string {
	if l.Hole {
		return strings.ToUpper(l.Code)
	}
	return l.Code
}

// Fundamental is a resolved base deviation. For symmetric letters no signed
// value exists and Microns is meaningless.
type Fundamental struct {
	Symmetric bool

	// Microns is the signed fundamental deviation: EI for lower-anchored
	// holes, es for lower-anchored shafts, ES for upper-anchored holes,
	// ei for upper-anchored shafts.
	Microns int
}

// Stepped per-bracket shaft constants in microns, one value per ISO 286-2
// grid row up to 500 mm. Lower-anchored letters store the magnitude of es
// (applied negative); upper-anchored letters store ei directly.
var shaftTable = map[string][13]int{
	"e": {14, 20, 25, 32, 40, 50, 60, 72, 85, 100, 110, 125, 135},
	"f": {6, 10, 13, 16, 20, 25, 30, 36, 43, 50, 56, 62, 68},
	"g": {2, 4, 5, 6, 7, 9, 10, 12, 14, 15, 17, 18, 20},
	"k": {0, 1, 1, 1, 2, 2, 2, 3, 3, 4, 4, 4, 5},
	"m": {2, 4, 6, 7, 8, 9, 11, 13, 15, 17, 20, 21, 23},
	"n": {4, 8, 10, 12, 15, 17, 20, 23, 27, 31, 34, 37, 40},
	"p": {6, 12, 15, 18, 22, 26, 32, 37, 43, 50, 56, 62, 68},
}

// ResolveTable returns the fundamental deviation for a grid row (from
// bracket.ResolveTable). Hole values are the sign mirror of the shaft
// values; see the package comment for the accuracy caveat.
func ResolveTable(row int, l Letter) (Fundamental, error) {
	switch l.Category() {
	case ZeroBasis:
		return Fundamental{}, nil
	case Symmetric:
		return Fundamental{Symmetric: true}, nil
	}

	table, ok := shaftTable[l.Code]
	if !ok {
		return Fundamental{}, errors.UnsupportedLetter(l.String())
	}
	if row < 0 || row >= len(table) {
		return Fundamental{}, errors.Newf(errors.TypeInternal, "deviation row out of range: %d", row)
	}

	v := table[row]
	switch l.Category() {
	case LowerAnchored:
		// shaft es is negative, hole EI is the positive mirror
		if l.Hole {
			return Fundamental{Microns: v}, nil
		}
		return Fundamental{Microns: -v}, nil
	default:
		// shaft ei is positive, hole ES is the negative mirror
		if l.Hole {
			return Fundamental{Microns: -v}, nil
		}
		return Fundamental{Microns: v}, nil
	}
}

// ResolveFormula returns the fundamental deviation from the fitted
// continuous curves. Letters without a curve (e, m, n, p) are rejected; the
// grid is the only source for them.
func ResolveFormula(d float64, l Letter) (Fundamental, error) {
	if !l.HasContinuousCurve() {
		return Fundamental{}, errors.UnsupportedLetter(l.String()).
			WithContext("reason", "no fitted continuous curve; use table mode")
	}

	switch l.Category() {
	case ZeroBasis:
		return Fundamental{}, nil
	case Symmetric:
		return Fundamental{Symmetric: true}, nil
	case LowerAnchored:
		// fitted power law for the f/g family
		mag := int(math.Round(2.5 * math.Pow(d, 0.34)))
		if l.Hole {
			return Fundamental{Microns: mag}, nil
		}
		return Fundamental{Microns: -mag}, nil
	default:
		// K/k only. Crude placeholder shift: the true standard value is
		// small and sign-variable; the fitted -1.2*d^0.3 stands in for the
		// delta-value computation and collapses to zero below 3 mm.
		if d < 3 {
			return Fundamental{}, nil
		}
		shift := int(math.Round(-1.2 * math.Pow(d, 0.3)))
		if l.Hole {
			return Fundamental{Microns: shift}, nil
		}
		return Fundamental{Microns: -shift}, nil
	}
}

// Compose combines an IT width and a fundamental deviation into the
// (upper, lower) deviation pair in microns, applying the letter family's
// anchoring rule. The result always satisfies upper >= lower and
// upper - lower == it.
func Compose(l Letter, it int, fd Fundamental) (upper, lower decimal.Decimal) {
	width := decimal.NewFromInt(int64(it))

	if fd.Symmetric {
		half := width.Div(decimal.NewFromInt(2))
		return half, half.Neg()
	}

	base := decimal.NewFromInt(int64(fd.Microns))

	switch l.Category() {
	case ZeroBasis:
		if l.Hole {
			return width, decimal.Zero // EI = 0, ES = IT
		}
		return decimal.Zero, width.Neg() // es = 0, ei = -IT
	case LowerAnchored:
		if l.Hole {
			return base.Add(width), base // EI = fund, ES = EI + IT
		}
		return base, base.Sub(width) // es = fund, ei = es - IT
	default:
		if l.Hole {
			return base, base.Sub(width) // ES = fund, EI = ES - IT
		}
		return base.Add(width), base // ei = fund, es = ei + IT
	}
}
