package grade

import (
	"testing"

	"isofit/core/bracket"
	"isofit/internal/errors"
)

// golden is an independent copy of the published ISO 286-2 values, indexed
// by bracket upper boundary then grade
var golden = map[float64]map[int]int{
	3:   {5: 4, 6: 6, 7: 10, 8: 14, 9: 25, 10: 40, 11: 60, 12: 100, 13: 140},
	6:   {5: 5, 6: 8, 7: 12, 8: 18, 9: 30, 10: 48, 11: 75, 12: 120, 13: 180},
	10:  {5: 6, 6: 9, 7: 15, 8: 22, 9: 36, 10: 58, 11: 90, 12: 150, 13: 220},
	18:  {5: 8, 6: 11, 7: 18, 8: 27, 9: 43, 10: 70, 11: 110, 12: 180, 13: 270},
	30:  {5: 9, 6: 13, 7: 21, 8: 33, 9: 52, 10: 84, 11: 130, 12: 210, 13: 330},
	50:  {5: 11, 6: 16, 7: 25, 8: 39, 9: 62, 10: 100, 11: 160, 12: 250, 13: 390},
	80:  {5: 13, 6: 19, 7: 30, 8: 46, 9: 74, 10: 120, 11: 190, 12: 300, 13: 460},
	120: {5: 15, 6: 22, 7: 35, 8: 54, 9: 87, 10: 140, 11: 220, 12: 350, 13: 540},
	180: {5: 18, 6: 25, 7: 40, 8: 63, 9: 100, 10: 160, 11: 250, 12: 400, 13: 630},
	250: {5: 20, 6: 29, 7: 46, 8: 72, 9: 115, 10: 185, 11: 290, 12: 460, 13: 720},
	315: {5: 23, 6: 32, 7: 52, 8: 81, 9: 130, 10: 210, 11: 320, 12: 520, 13: 810},
	400: {5: 25, 6: 36, 7: 57, 8: 89, 9: 140, 10: 230, 11: 360, 12: 570, 13: 890},
	500: {5: 27, 6: 40, 7: 63, 8: 97, 9: 155, 10: 250, 11: 400, 12: 630, 13: 970},
}

// TestGoldenGrid proves every table lookup matches the published standard,
// resolving each bracket through its upper boundary size.
func TestGoldenGrid(t *testing.T) {
	for upper, grades := range golden {
		_, row, err := bracket.ResolveTable(upper)
		if err != nil {
			t.Fatalf("ResolveTable(%g) returned error: %v", upper, err)
		}
		for g, want := range grades {
			got, err := Lookup(row, g)
			if err != nil {
				t.Fatalf("Lookup(row %d, IT%d) returned error: %v", row, g, err)
			}
			if got != want {
				t.Errorf("bracket <=%g IT%d = %d um, want %d um", upper, g, got, want)
			}
		}
	}
}

func TestFormula(t *testing.T) {
	// i = 0.45*50^(1/3) + 0.001*50 = 1.7078; IT7 = 16i = 27.3 -> 27 um
	got, err := Formula(50, 7)
	if err != nil {
		t.Fatalf("Formula(50, 7) returned error: %v", err)
	}
	if got != 27 {
		t.Errorf("Formula(50, 7) = %d um, want 27 um", got)
	}

	// Above 500 mm the factor switches to I = 0.004*d + 2.1.
	// d=800: I = 5.3; IT8 = 25*5.3 = 132.5 -> 133 um
	got, err = Formula(800, 8)
	if err != nil {
		t.Fatalf("Formula(800, 8) returned error: %v", err)
	}
	if got != 133 {
		t.Errorf("Formula(800, 8) = %d um, want 133 um", got)
	}
}

func TestFormulaMonotonicInGrade(t *testing.T) {
	prev := 0
	for g := MinFormula; g <= MaxFormula; g++ {
		it, err := Formula(100, g)
		if err != nil {
			t.Fatalf("Formula(100, %d) returned error: %v", g, err)
		}
		if it <= prev {
			t.Errorf("IT%d = %d um not wider than IT%d = %d um", g, it, g-1, prev)
		}
		prev = it
	}
}

func TestUnsupportedGrades(t *testing.T) {
	if _, err := Formula(50, 5); !errors.IsType(err, errors.TypeUnsupportedGrade) {
		t.Errorf("Formula IT5: expected unsupported-grade error, got %v", err)
	}
	if _, err := Formula(50, 15); !errors.IsType(err, errors.TypeUnsupportedGrade) {
		t.Errorf("Formula IT15: expected unsupported-grade error, got %v", err)
	}
	if _, err := Lookup(0, 4); !errors.IsType(err, errors.TypeUnsupportedGrade) {
		t.Errorf("Lookup IT4: expected unsupported-grade error, got %v", err)
	}
	if _, err := Lookup(0, 14); !errors.IsType(err, errors.TypeUnsupportedGrade) {
		t.Errorf("Lookup IT14: expected unsupported-grade error, got %v", err)
	}
}
