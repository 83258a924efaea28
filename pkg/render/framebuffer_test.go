package render

import (
	"math"
	"math/rand"
	"testing"
)

func TestFramebufferClear(t *testing.T) {
	fb := NewFramebuffer(16, 8)
	fb.SetBackground(RGB(10, 20, 30))

	fb.Submit(Fragment{X: 3, Y: 4, Depth: 0.5}, White)
	fb.Clear()

	if got := fb.ColorAt(3, 4); got != RGB(10, 20, 30) {
		t.Errorf("ColorAt after clear = %v, want background", got)
	}
	if got := fb.DepthAt(3, 4); !math.IsInf(got, 1) {
		t.Errorf("DepthAt after clear = %v, want +Inf", got)
	}
}

func TestSubmitDepthTest(t *testing.T) {
	fb := NewFramebuffer(8, 8)

	if !fb.Submit(Fragment{X: 2, Y: 2, Depth: 0.9}, RGB(1, 0, 0)) {
		t.Fatal("first fragment rejected")
	}
	if !fb.Submit(Fragment{X: 2, Y: 2, Depth: 0.1}, RGB(2, 0, 0)) {
		t.Fatal("nearer fragment rejected")
	}
	if fb.Submit(Fragment{X: 2, Y: 2, Depth: 0.5}, RGB(3, 0, 0)) {
		t.Error("farther fragment accepted")
	}
	if fb.Submit(Fragment{X: 2, Y: 2, Depth: 0.1}, RGB(4, 0, 0)) {
		t.Error("equal-depth fragment accepted, want strict test")
	}

	if got := fb.ColorAt(2, 2); got != RGB(2, 0, 0) {
		t.Errorf("ColorAt = %v, want the nearest fragment's color", got)
	}
	if got := fb.DepthAt(2, 2); got != 0.1 {
		t.Errorf("DepthAt = %v, want 0.1", got)
	}
}

func TestSubmitOrderIndependence(t *testing.T) {
	near := Fragment{X: 1, Y: 1, Depth: 0.1}
	far := Fragment{X: 1, Y: 1, Depth: 0.9}

	a := NewFramebuffer(4, 4)
	a.Submit(near, RGB(1, 1, 1))
	a.Submit(far, RGB(9, 9, 9))

	b := NewFramebuffer(4, 4)
	b.Submit(far, RGB(9, 9, 9))
	b.Submit(near, RGB(1, 1, 1))

	if a.ColorAt(1, 1) != b.ColorAt(1, 1) {
		t.Errorf("composited color depends on submission order: %v vs %v",
			a.ColorAt(1, 1), b.ColorAt(1, 1))
	}
	if a.ColorAt(1, 1) != RGB(1, 1, 1) {
		t.Errorf("ColorAt = %v, want the near fragment", a.ColorAt(1, 1))
	}
}

func TestSubmitOutOfBounds(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	frags := []Fragment{
		{X: -1, Y: 0, Depth: 0},
		{X: 4, Y: 0, Depth: 0},
		{X: 0, Y: -1, Depth: 0},
		{X: 0, Y: 4, Depth: 0},
	}
	for _, f := range frags {
		if fb.Submit(f, White) {
			t.Errorf("fragment at (%d,%d) accepted, want dropped", f.X, f.Y)
		}
	}
}

func TestSeedStarsHaveNoDepth(t *testing.T) {
	fb := NewFramebuffer(32, 32)
	rng := rand.New(rand.NewSource(42))
	fb.SeedStars(10, rng)

	var stars int
	for y := range 32 {
		for x := range 32 {
			if fb.ColorAt(x, y) != White {
				continue
			}
			stars++
			if !math.IsInf(fb.DepthAt(x, y), 1) {
				t.Errorf("star at (%d,%d) carries depth %v", x, y, fb.DepthAt(x, y))
			}
			// Geometry at any depth draws over a star.
			if !fb.Submit(Fragment{X: x, Y: y, Depth: 0.99}, RGB(5, 5, 5)) {
				t.Errorf("fragment rejected over star at (%d,%d)", x, y)
			}
		}
	}
	if stars == 0 || stars > 10 {
		t.Errorf("star count = %d, want 1..10", stars)
	}
}

func TestPackedLayout(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.Submit(Fragment{X: 1, Y: 0, Depth: 0}, RGB(0x11, 0x22, 0x33))

	packed := fb.Packed()
	if len(packed) != 4 {
		t.Fatalf("len(Packed()) = %d, want 4", len(packed))
	}
	if packed[1] != 0x112233 {
		t.Errorf("packed[1] = %#x, want 0x112233", packed[1])
	}
	if packed[0] != 0 {
		t.Errorf("packed[0] = %#x, want black", packed[0])
	}
}
