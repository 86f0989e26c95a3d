package devour

import (
	"math"
	"testing"
)

func TestVec2Dist(t *testing.T) {
	a := Vec2{X: 0, Y: 0}
	b := Vec2{X: 3, Y: 4}

	if d := a.Dist(b); math.Abs(d-5) > 1e-12 {
		t.Errorf("Dist = %f, want 5", d)
	}
	if d := b.Dist(b); d != 0 {
		t.Errorf("Dist to self = %f, want 0", d)
	}
}

func TestVec2Sub(t *testing.T) {
	d := Vec2{X: 5, Y: 7}.Sub(Vec2{X: 2, Y: 3})
	if d.X != 3 || d.Y != 4 {
		t.Errorf("Sub = %+v, want {3 4}", d)
	}
}
