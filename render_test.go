package devour

import (
	"testing"
)

func testScene() Scene {
	return Scene{
		Eater: Ball{
			Radius:  30,
			Center:  Vec2{X: 100, Y: 100},
			Role:    RoleEater,
			Visible: true,
		},
		Targets: []Ball{
			{Radius: 20, Center: Vec2{X: 200, Y: 200}, Role: RoleTarget, Visible: true},
			{Radius: 25, Center: Vec2{X: 60, Y: 220}, Role: RoleTarget, Visible: false},
		},
	}
}

func TestRenderColors(t *testing.T) {
	r := NewRenderer(256, 256)
	img := r.Render(testScene())

	if got := img.NRGBAAt(10, 10); got != colorBackground {
		t.Errorf("background pixel = %+v, want white", got)
	}
	if got := img.NRGBAAt(100, 100); got != colorEater {
		t.Errorf("eater center pixel = %+v, want black", got)
	}
	if got := img.NRGBAAt(200, 200); got != colorTarget {
		t.Errorf("target center pixel = %+v, want red", got)
	}
}

func TestRenderSkipsInvisibleTargets(t *testing.T) {
	r := NewRenderer(256, 256)
	img := r.Render(testScene())

	// The second target is invisible; its center stays background.
	if got := img.NRGBAAt(60, 220); got != colorBackground {
		t.Errorf("invisible target pixel = %+v, want white", got)
	}
}

func TestRenderEaterDrawsOverTargets(t *testing.T) {
	s := Scene{
		Eater: Ball{Radius: 30, Center: Vec2{X: 100, Y: 100}, Role: RoleEater, Visible: true},
		Targets: []Ball{
			// Fully under the eater.
			{Radius: 10, Center: Vec2{X: 100, Y: 100}, Role: RoleTarget, Visible: true},
		},
	}

	r := NewRenderer(256, 256)
	img := r.Render(s)
	if got := img.NRGBAAt(100, 100); got != colorEater {
		t.Errorf("overlapped pixel = %+v, want eater on top", got)
	}
}

func TestRenderDiscStaysInsideItsBounds(t *testing.T) {
	s := Scene{
		Eater: Ball{Radius: 40, Center: Vec2{X: 128, Y: 128}, Role: RoleEater, Visible: true},
	}

	r := NewRenderer(256, 256)
	img := r.Render(s)

	// Just outside the disc on the horizontal axis: background, allowing a
	// few pixels for anti-aliased falloff.
	if got := img.NRGBAAt(128+44, 128); got != colorBackground {
		t.Errorf("pixel outside disc = %+v, want white", got)
	}
	// Well inside: eater color.
	if got := img.NRGBAAt(128+36, 128); got != colorEater {
		t.Errorf("pixel inside disc = %+v, want black", got)
	}
}

func TestRenderDeterministic(t *testing.T) {
	r := NewRenderer(128, 128)
	s := testScene()

	a := r.Render(s)
	b := r.Render(s)
	if len(a.Pix) != len(b.Pix) {
		t.Fatal("pixel buffers differ in length")
	}
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("pixel byte %d differs", i)
		}
	}
}
