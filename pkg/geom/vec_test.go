package geom

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestVecBasicOps(t *testing.T) {
	a := Vec2{X: 1, Y: 2}
	b := Vec2{X: 3, Y: -1}

	if got := a.Add(b); got != (Vec2{X: 4, Y: 1}) {
		t.Errorf("Add: got %v", got)
	}
	if got := b.Sub(a); got != (Vec2{X: 2, Y: -3}) {
		t.Errorf("Sub: got %v", got)
	}
	if got := a.Scale(2); got != (Vec2{X: 2, Y: 4}) {
		t.Errorf("Scale: got %v", got)
	}
	if got := a.Dot(b); got != 1 {
		t.Errorf("Dot: got %v", got)
	}
}

func TestDist(t *testing.T) {
	a := Vec2{X: 0, Y: 0}
	b := Vec2{X: 3, Y: 4}
	if got := Dist(a, b); !almostEqual(got, 5) {
		t.Errorf("Dist: expected 5, got %v", got)
	}
	if got := Dist(a, a); got != 0 {
		t.Errorf("Dist to self: expected 0, got %v", got)
	}
}

func TestNormalize(t *testing.T) {
	v := Vec2{X: 10, Y: 0}
	if got := v.Normalize(); !almostEqual(got.X, 1) || !almostEqual(got.Y, 0) {
		t.Errorf("Normalize: got %v", got)
	}

	// Zero vector degenerates to zero, not NaN.
	z := Vec2{}.Normalize()
	if z.X != 0 || z.Y != 0 {
		t.Errorf("Normalize zero: got %v", z)
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		v, lo, hi, want float64
	}{
		{-1, 0, 1, 0},
		{0.5, 0, 1, 0.5},
		{2, 0, 1, 1},
		{0, 0, 1, 0},
		{1, 0, 1, 1},
	}
	for _, c := range cases {
		if got := Clamp(c.v, c.lo, c.hi); got != c.want {
			t.Errorf("Clamp(%v, %v, %v): expected %v, got %v", c.v, c.lo, c.hi, c.want, got)
		}
	}
}

func TestAngleTo(t *testing.T) {
	origin := Vec2{}
	if got := AngleTo(origin, Vec2{X: 1, Y: 0}); !almostEqual(got, 0) {
		t.Errorf("AngleTo +X: got %v", got)
	}
	if got := AngleTo(origin, Vec2{X: 0, Y: 1}); !almostEqual(got, math.Pi/2) {
		t.Errorf("AngleTo +Y: got %v", got)
	}
	if got := AngleTo(origin, Vec2{X: -1, Y: 0}); !almostEqual(math.Abs(got), math.Pi) {
		t.Errorf("AngleTo -X: got %v", got)
	}
}

func TestNormalizeAngle(t *testing.T) {
	if got := NormalizeAngle(3 * math.Pi); !almostEqual(math.Abs(got), math.Pi) {
		t.Errorf("NormalizeAngle(3π): got %v", got)
	}
	if got := NormalizeAngle(-3 * math.Pi / 2); !almostEqual(got, math.Pi/2) {
		t.Errorf("NormalizeAngle(-3π/2): got %v", got)
	}
	if got := NormalizeAngle(0.5); !almostEqual(got, 0.5) {
		t.Errorf("NormalizeAngle(0.5): got %v", got)
	}
}

func TestLerpAngleShortestArc(t *testing.T) {
	// Interpolating across the ±π seam must take the short way round.
	from := math.Pi - 0.1
	to := -math.Pi + 0.1
	got := LerpAngle(from, to, 0.5)
	if !almostEqual(math.Abs(got), math.Pi) {
		t.Errorf("LerpAngle across seam: expected ±π, got %v", got)
	}

	// t is clamped to [0, 1].
	if got := LerpAngle(0, 1, 5); !almostEqual(got, 1) {
		t.Errorf("LerpAngle t>1: expected 1, got %v", got)
	}
	if got := LerpAngle(0, 1, -5); !almostEqual(got, 0) {
		t.Errorf("LerpAngle t<0: expected 0, got %v", got)
	}
}

func TestSegmentIntersectsCircle(t *testing.T) {
	a := Vec2{X: 0, Y: 0}
	b := Vec2{X: 10, Y: 0}

	// Circle straddling the middle of the segment.
	if !SegmentIntersectsCircle(a, b, Vec2{X: 5, Y: 1}, 2) {
		t.Error("expected intersection with circle near segment middle")
	}
	// Circle too far off to the side.
	if SegmentIntersectsCircle(a, b, Vec2{X: 5, Y: 5}, 2) {
		t.Error("expected no intersection with distant circle")
	}
	// Circle past the far endpoint: the segment (not the infinite line) must be tested.
	if SegmentIntersectsCircle(a, b, Vec2{X: 15, Y: 0}, 2) {
		t.Error("expected no intersection beyond the segment end")
	}
	// Degenerate segment: a == b.
	if !SegmentIntersectsCircle(a, a, Vec2{X: 1, Y: 0}, 2) {
		t.Error("expected point-in-circle to intersect")
	}
	if SegmentIntersectsCircle(a, a, Vec2{X: 5, Y: 0}, 2) {
		t.Error("expected distant point to miss")
	}
}
