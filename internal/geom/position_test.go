package geom

import (
	"math"
	"testing"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestPositionArithmetic(t *testing.T) {
	p1 := NewPosition(1, 2, 3)
	p2 := NewPosition(4, 5, 6)

	if got := p1.Add(p2); got != (Position{5, 7, 9}) {
		t.Errorf("Add = %v, want {5 7 9}", got)
	}
	if got := p1.Sub(p2); got != (Position{-3, -3, -3}) {
		t.Errorf("Sub = %v, want {-3 -3 -3}", got)
	}
}

func TestNormalizeZero(t *testing.T) {
	if got := (Position{}).Normalize(); got != (Position{}) {
		t.Errorf("Normalize of zero vector = %v, want zero vector", got)
	}
}

func TestDistance2D(t *testing.T) {
	a := NewPosition(0, 0, 0)
	b := NewPosition(3, 4, 100)
	if got := a.Distance2D(b); !approxEqual(got, 5) {
		t.Errorf("Distance2D = %v, want 5", got)
	}
}

func TestCanJumpToSelf(t *testing.T) {
	for _, p := range []Position{{0, 0, 0}, {10, -5, 200}} {
		if !p.CanJumpTo(p) {
			t.Errorf("CanJumpTo(%v, %v) = false, want true", p, p)
		}
	}
}

// TestCanJumpToApex reproduces spec.md §8 scenario 2: the apex credited by
// a standing jump is JUMP_HEIGHT + CROUCH_JUMP_HEIGHT_GAIN = 66.02, so a
// vertical-only jump reaches z=60 but not z=70.
func TestCanJumpToApex(t *testing.T) {
	origin := NewPosition(0, 0, 0)

	if !origin.CanJumpTo(NewPosition(0, 0, 60)) {
		t.Error("CanJumpTo(0,0,60) = false, want true")
	}
	if origin.CanJumpTo(NewPosition(0, 0, 70)) {
		t.Error("CanJumpTo(0,0,70) = true, want false")
	}
}

func TestInverseDistanceWeightingAtSample(t *testing.T) {
	samples := []WeightedSample{
		{X: 0, Y: 0, Z: 10},
		{X: 10, Y: 0, Z: 20},
		{X: 0, Y: 10, Z: 30},
	}
	got := InverseDistanceWeighting(samples, 10, 0)
	if got != 20 {
		t.Errorf("IDW at sample point = %v, want 20", got)
	}
}

func TestInverseDistanceWeightingInterpolates(t *testing.T) {
	samples := []WeightedSample{
		{X: -10, Y: 0, Z: 0},
		{X: 10, Y: 0, Z: 0},
	}
	// Equidistant from both z=0 samples: any weighting scheme gives 0.
	got := InverseDistanceWeighting(samples, 0, 5)
	if !approxEqual(got, 0) {
		t.Errorf("IDW = %v, want 0", got)
	}
}

func TestTriangleCentroid(t *testing.T) {
	tri := Triangle{
		P1: NewPosition(0, 0, 0),
		P2: NewPosition(3, 0, 0),
		P3: NewPosition(0, 3, 0),
	}
	want := NewPosition(1, 1, 0)
	if got := tri.Centroid(); got != want {
		t.Errorf("Centroid = %v, want %v", got, want)
	}
}
