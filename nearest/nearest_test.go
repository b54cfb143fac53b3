package nearest_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/gridkit/nearest"
)

//----------------------------------------------------------------------------//
// Closest Tests
//----------------------------------------------------------------------------//

// TestClosest_Contract drives the documented selection rules through a table:
// clamping at both ends, interior picks, and the tie-goes-high rule.
func TestClosest_Contract(t *testing.T) {
	scale := []float64{0, 10, 20, 40, 80}

	cases := []struct {
		name  string
		value float64
		want  float64
	}{
		{"BelowScale", -5, 0},
		{"AtFirst", 0, 0},
		{"NearLow", 12, 10},
		{"NearHigh", 17, 20},
		{"TieGoesHigh", 30, 40},
		{"ExactEntry", 40, 40},
		{"AboveScale", 200, 80},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := nearest.Closest(tc.value, scale); got != tc.want {
				t.Errorf("Closest(%v, %v) = %v; want %v", tc.value, scale, got, tc.want)
			}
		})
	}
}

// TestClosest_Degenerate covers the sentinel and single-entry contracts.
func TestClosest_Degenerate(t *testing.T) {
	if got := nearest.Closest(5, nil); !math.IsNaN(got) {
		t.Errorf("Closest on empty scale = %v; want NaN sentinel", got)
	}
	if got := nearest.Closest(999, []float64{7}); got != 7 {
		t.Errorf("Closest on single-entry scale = %v; want 7", got)
	}
	if got := nearest.ClosestIndex(5, nil); got != -1 {
		t.Errorf("ClosestIndex on empty scale = %d; want -1", got)
	}
}

// TestClosest_TieMidpoint pins the half-distance rule on a minimal scale.
func TestClosest_TieMidpoint(t *testing.T) {
	if got := nearest.Closest(2, []float64{1, 3}); got != 3 {
		t.Errorf("Closest(2, [1 3]) = %v; want 3 (ties favor the higher neighbor)", got)
	}
}

// TestClosestIndex_Duplicates verifies that among equal closest entries the
// first one wins.
func TestClosestIndex_Duplicates(t *testing.T) {
	if got := nearest.ClosestIndex(2, []float64{1, 2, 2, 3}); got != 1 {
		t.Errorf("ClosestIndex(2, [1 2 2 3]) = %d; want 1", got)
	}
}

// TestClosestIndex_AgreesWithClosest checks the two entry points stay in sync.
func TestClosestIndex_AgreesWithClosest(t *testing.T) {
	scale := []float64{-4, -1, 0, 2.5, 9}
	for _, v := range []float64{-10, -2.4, 0.1, 1.3, 2.5, 5, 100} {
		i := nearest.ClosestIndex(v, scale)
		if scale[i] != nearest.Closest(v, scale) {
			t.Errorf("ClosestIndex/Closest disagree at %v: index %d (%v) vs %v",
				v, i, scale[i], nearest.Closest(v, scale))
		}
	}
}

// TestClosest_WithinBounds is the randomized membership property: for any
// non-empty ascending scale the result is an element of the scale and lies
// in [scale[0], scale[last]].
func TestClosest_WithinBounds(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for trial := 0; trial < 200; trial++ {
		scale := make([]float64, 1+rnd.Intn(16))
		for i := range scale {
			scale[i] = rnd.NormFloat64() * 50
		}
		sort.Float64s(scale)

		v := rnd.NormFloat64() * 100
		got := nearest.Closest(v, scale)

		if got < scale[0] || got > scale[len(scale)-1] {
			t.Fatalf("Closest(%v, %v) = %v escapes the scale bounds", v, scale, got)
		}
		member := false
		for _, s := range scale {
			if s == got {
				member = true
				break
			}
		}
		if !member {
			t.Fatalf("Closest(%v, %v) = %v is not a scale entry", v, scale, got)
		}
	}
}
