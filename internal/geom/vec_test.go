package geom

import (
	"math"
	"testing"
)

func TestVecArithmetic(t *testing.T) {
	a := Vec2{X: 3, Y: 4}
	b := Vec2{X: 1, Y: -2}

	if got := a.Add(b); got != (Vec2{X: 4, Y: 2}) {
		t.Fatalf("Add = %+v", got)
	}
	if got := a.Sub(b); got != (Vec2{X: 2, Y: 6}) {
		t.Fatalf("Sub = %+v", got)
	}
	if got := a.Scale(2); got != (Vec2{X: 6, Y: 8}) {
		t.Fatalf("Scale = %+v", got)
	}
	if got := a.Mag(); got != 5 {
		t.Fatalf("Mag = %v, want 5", got)
	}
}

func TestNormalize(t *testing.T) {
	v := Vec2{X: 0, Y: -7}.Normalize()
	if v != (Vec2{X: 0, Y: -1}) {
		t.Fatalf("Normalize = %+v, want (0, -1)", v)
	}

	// The zero vector stays zero instead of producing NaN.
	z := Vec2{}.Normalize()
	if z != (Vec2{}) || math.IsNaN(z.X) {
		t.Fatalf("zero Normalize = %+v", z)
	}
}

func TestDist(t *testing.T) {
	if d := Dist(Vec2{X: 1, Y: 1}, Vec2{X: 4, Y: 5}); d != 5 {
		t.Fatalf("Dist = %v, want 5", d)
	}
}

func TestClampRect(t *testing.T) {
	lo := Vec2{X: 15, Y: 15}
	hi := Vec2{X: 585, Y: 285}

	inside := Vec2{X: 100, Y: 100}
	if got := inside.ClampRect(lo, hi); got != inside {
		t.Fatalf("inside point moved: %+v", got)
	}

	outside := Vec2{X: -10, Y: 400}
	if got := outside.ClampRect(lo, hi); got != (Vec2{X: 15, Y: 285}) {
		t.Fatalf("ClampRect = %+v, want (15, 285)", got)
	}
}
