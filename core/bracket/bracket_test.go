package bracket

import (
	"math"
	"testing"

	"isofit/internal/errors"
)

// TestBoundaryBelongsToLowerBracket proves the half-open convention: a size
// exactly on an upper boundary belongs to that bracket, not the next one.
func TestBoundaryBelongsToLowerBracket(t *testing.T) {
	r, err := Resolve(30)
	if err != nil {
		t.Fatalf("Resolve(30) returned error: %v", err)
	}
	if r.Lower != 18 || r.Upper != 30 {
		t.Errorf("Resolve(30) = (%g, %g], want (18, 30]", r.Lower, r.Upper)
	}

	r, err = Resolve(30.001)
	if err != nil {
		t.Fatalf("Resolve(30.001) returned error: %v", err)
	}
	if r.Lower != 30 || r.Upper != 50 {
		t.Errorf("Resolve(30.001) = (%g, %g], want (30, 50]", r.Lower, r.Upper)
	}
}

// TestPartition proves the brackets partition (0, 3150] without gaps or
// overlaps: every probe resolves to exactly one bracket that contains it.
func TestPartition(t *testing.T) {
	probes := []float64{0.01, 1, 3, 3.5, 6, 9.99, 10, 17, 18, 29, 30, 45,
		50, 79, 80, 119, 120, 180, 250, 315, 400, 500, 501, 630, 799, 800,
		1000, 1250, 1600, 2000, 2500, 3149, 3150}
	for _, d := range probes {
		r, err := Resolve(d)
		if err != nil {
			t.Fatalf("Resolve(%g) returned error: %v", d, err)
		}
		if !r.Contains(d) {
			t.Errorf("Resolve(%g) = (%g, %g] does not contain the size", d, r.Lower, r.Upper)
		}
	}
}

func TestOutOfRange(t *testing.T) {
	for _, d := range []float64{0, -1, 3150.01, 9999} {
		if _, err := Resolve(d); !errors.IsType(err, errors.TypeOutOfRange) {
			t.Errorf("Resolve(%g): expected out-of-range error, got %v", d, err)
		}
	}

	// The table grid stops at 500
	if _, _, err := ResolveTable(501); !errors.IsType(err, errors.TypeOutOfRange) {
		t.Errorf("ResolveTable(501): expected out-of-range error, got %v", err)
	}
	if _, _, err := ResolveTable(500); err != nil {
		t.Errorf("ResolveTable(500): unexpected error: %v", err)
	}
}

func TestGeomMean(t *testing.T) {
	r, _, err := ResolveTable(25)
	if err != nil {
		t.Fatalf("ResolveTable(25) returned error: %v", err)
	}
	want := math.Sqrt(18 * 30)
	if math.Abs(r.GeomMean()-want) > 1e-12 {
		t.Errorf("GeomMean of (18, 30] = %g, want %g", r.GeomMean(), want)
	}

	// First bracket has no usable lower bound; sqrt(1*3) by convention
	first, _, err := ResolveTable(1)
	if err != nil {
		t.Fatalf("ResolveTable(1) returned error: %v", err)
	}
	if math.Abs(first.GeomMean()-math.Sqrt(3)) > 1e-12 {
		t.Errorf("GeomMean of first bracket = %g, want sqrt(3)", first.GeomMean())
	}
}

func TestTableRowIndex(t *testing.T) {
	cases := []struct {
		size float64
		row  int
	}{
		{1, 0}, {3, 0}, {5, 1}, {25, 4}, {50, 5}, {50.5, 6}, {450, 12},
	}
	for _, tc := range cases {
		_, row, err := ResolveTable(tc.size)
		if err != nil {
			t.Fatalf("ResolveTable(%g) returned error: %v", tc.size, err)
		}
		if row != tc.row {
			t.Errorf("ResolveTable(%g) row = %d, want %d", tc.size, row, tc.row)
		}
	}
}
