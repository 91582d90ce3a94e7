package engine

import (
	"math"
	"testing"

	"isofit/core/types"
	"isofit/internal/errors"
)

func approx(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// TestBasisHoleScenario: 50 H7 under table mode
func TestBasisHoleScenario(t *testing.T) {
	r, err := New().Compute(50, "H", 7, types.ModeTable)
	if err != nil {
		t.Fatalf("Compute(50, H, 7, table) returned error: %v", err)
	}
	if r.ITWidthMicrons != 25 {
		t.Errorf("IT width = %d um, want 25 um", r.ITWidthMicrons)
	}
	approx(t, "upper deviation", r.UpperDeviation, 0.025)
	approx(t, "lower deviation", r.LowerDeviation, 0)
	approx(t, "max limit", r.MaxLimit, 50.025)
	approx(t, "min limit", r.MinLimit, 50.000)
	if r.Fit != types.FitClearance {
		t.Errorf("fit = %s, want clearance", r.Fit)
	}
	if !r.Hole() {
		t.Error("H designation should report hole")
	}
}

// TestShaftScenario: 50 g6 under table mode
func TestShaftScenario(t *testing.T) {
	r, err := New().Compute(50, "g", 6, types.ModeTable)
	if err != nil {
		t.Fatalf("Compute(50, g, 6, table) returned error: %v", err)
	}
	if r.ITWidthMicrons != 16 {
		t.Errorf("IT width = %d um, want 16 um", r.ITWidthMicrons)
	}
	approx(t, "upper deviation", r.UpperDeviation, -0.009)
	approx(t, "lower deviation", r.LowerDeviation, -0.025)
	if r.Fit != types.FitInterference {
		t.Errorf("fit = %s, want interference", r.Fit)
	}
}

// TestSymmetricScenario: 25 JS9 under table mode
func TestSymmetricScenario(t *testing.T) {
	r, err := New().Compute(25, "JS", 9, types.ModeTable)
	if err != nil {
		t.Fatalf("Compute(25, JS, 9, table) returned error: %v", err)
	}
	if r.ITWidthMicrons != 52 {
		t.Errorf("IT width = %d um, want 52 um", r.ITWidthMicrons)
	}
	approx(t, "upper deviation", r.UpperDeviation, 0.026)
	approx(t, "lower deviation", r.LowerDeviation, -0.026)
	if r.UpperDeviation != -r.LowerDeviation {
		t.Errorf("JS deviations not symmetric: %v / %v", r.UpperDeviation, r.LowerDeviation)
	}
	if r.Fit != types.FitTransition {
		t.Errorf("fit = %s, want transition", r.Fit)
	}
}

// TestWidthInvariant proves upper - lower == IT width across letters and
// modes, within one rounding unit.
func TestWidthInvariant(t *testing.T) {
	letters := []string{"h", "H", "g", "G", "f", "F", "e", "k", "K", "m", "n", "p", "P", "js", "JS"}
	for _, letter := range letters {
		r, err := New().Compute(40, letter, 8, types.ModeTable)
		if err != nil {
			t.Fatalf("Compute(40, %s, 8, table) returned error: %v", letter, err)
		}
		width := (r.UpperDeviation - r.LowerDeviation) * 1000
		if math.Abs(width-float64(r.ITWidthMicrons)) > 1 {
			t.Errorf("%s: upper-lower = %v um, IT = %d um", letter, width, r.ITWidthMicrons)
		}
		if r.UpperDeviation < r.LowerDeviation {
			t.Errorf("%s: upper %v < lower %v", letter, r.UpperDeviation, r.LowerDeviation)
		}
	}
}

// TestBasisZeroDeviation proves h/H always pin one deviation to exactly 0
func TestBasisZeroDeviation(t *testing.T) {
	r, err := New().Compute(15, "H", 7, types.ModeTable)
	if err != nil {
		t.Fatalf("Compute returned error: %v", err)
	}
	if r.LowerDeviation != 0 {
		t.Errorf("H lower deviation = %v, want exactly 0", r.LowerDeviation)
	}

	r, err = New().Compute(15, "h", 7, types.ModeFormula)
	if err != nil {
		t.Fatalf("Compute returned error: %v", err)
	}
	if r.UpperDeviation != 0 {
		t.Errorf("h upper deviation = %v, want exactly 0", r.UpperDeviation)
	}
}

// TestModes proves the three modes are distinct and all usable
func TestModes(t *testing.T) {
	table, err := New().Compute(45, "H", 7, types.ModeTable)
	if err != nil {
		t.Fatalf("table mode returned error: %v", err)
	}
	raw, err := New().Compute(45, "H", 7, types.ModeFormula)
	if err != nil {
		t.Fatalf("formula mode returned error: %v", err)
	}
	bracketed, err := New().Compute(45, "H", 7, types.ModeFormulaBracketed)
	if err != nil {
		t.Fatalf("bracketed formula mode returned error: %v", err)
	}

	// Table value for (30, 50] IT7 is exact
	if table.ITWidthMicrons != 25 {
		t.Errorf("table IT = %d um, want 25 um", table.ITWidthMicrons)
	}

	// Bracketed mode must give the same width anywhere inside the bracket
	other, err := New().Compute(31, "H", 7, types.ModeFormulaBracketed)
	if err != nil {
		t.Fatalf("bracketed formula mode returned error: %v", err)
	}
	if other.ITWidthMicrons != bracketed.ITWidthMicrons {
		t.Errorf("bracketed IT differs within one bracket: %d vs %d um",
			other.ITWidthMicrons, bracketed.ITWidthMicrons)
	}

	// The continuous mode tracks the raw size, so 31 and 45 mm differ
	raw31, err := New().Compute(31, "H", 7, types.ModeFormula)
	if err != nil {
		t.Fatalf("formula mode returned error: %v", err)
	}
	if raw31.ITWidthMicrons == raw.ITWidthMicrons {
		t.Errorf("continuous IT identical at 31 and 45 mm: %d um", raw.ITWidthMicrons)
	}
}

// TestFormulaRange proves the formula modes cover sizes the grid does not
func TestFormulaRange(t *testing.T) {
	if _, err := New().Compute(800, "H", 8, types.ModeTable); !errors.IsType(err, errors.TypeOutOfRange) {
		t.Errorf("table mode at 800 mm: expected out-of-range error, got %v", err)
	}

	r, err := New().Compute(800, "H", 8, types.ModeFormula)
	if err != nil {
		t.Fatalf("formula mode at 800 mm returned error: %v", err)
	}
	// I = 0.004*800 + 2.1 = 5.3; IT8 = 25*5.3 = 132.5 -> 133 um
	if r.ITWidthMicrons != 133 {
		t.Errorf("IT8 at 800 mm = %d um, want 133 um", r.ITWidthMicrons)
	}
}

func TestIdempotence(t *testing.T) {
	first, err := New().Compute(25, "JS", 9, types.ModeTable)
	if err != nil {
		t.Fatalf("Compute returned error: %v", err)
	}
	second, err := New().Compute(25, "JS", 9, types.ModeTable)
	if err != nil {
		t.Fatalf("Compute returned error: %v", err)
	}
	if *first != *second {
		t.Errorf("identical queries differ: %+v vs %+v", first, second)
	}
}

func TestComputeDesignation(t *testing.T) {
	r, err := New().ComputeDesignation("25JS9", types.ModeTable)
	if err != nil {
		t.Fatalf("ComputeDesignation(25JS9) returned error: %v", err)
	}
	if r.ITWidthMicrons != 52 || r.Letter != "JS" || r.Grade != 9 {
		t.Errorf("ComputeDesignation(25JS9) = %+v", r)
	}

	if _, err := New().ComputeDesignation("abcXY", types.ModeTable); !errors.IsType(err, errors.TypeParse) {
		t.Errorf("ComputeDesignation(abcXY): expected parse error, got %v", err)
	}
}

func TestErrorTaxonomy(t *testing.T) {
	eng := New()

	if _, err := eng.Compute(50, "q", 7, types.ModeTable); !errors.IsType(err, errors.TypeUnsupportedLetter) {
		t.Errorf("letter q: expected unsupported-letter error, got %v", err)
	}
	if _, err := eng.Compute(50, "H", 4, types.ModeTable); !errors.IsType(err, errors.TypeUnsupportedGrade) {
		t.Errorf("IT4 table: expected unsupported-grade error, got %v", err)
	}
	if _, err := eng.Compute(50, "p", 7, types.ModeFormula); !errors.IsType(err, errors.TypeUnsupportedLetter) {
		t.Errorf("p in formula mode: expected unsupported-letter error, got %v", err)
	}
	if _, err := eng.Compute(4000, "H", 7, types.ModeFormula); !errors.IsType(err, errors.TypeOutOfRange) {
		t.Errorf("4000 mm: expected out-of-range error, got %v", err)
	}
	if _, err := eng.Compute(50, "H", 7, types.Mode("bogus")); err == nil {
		t.Error("bogus mode: expected error")
	}
}
