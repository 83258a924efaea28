package render

import "testing"

// insideTestTriangle is an independent point-in-triangle check for the
// triangle (400,100), (200,500), (600,500) using half-plane inequalities,
// deliberately not routed through the rasterizer's edge function.
func insideTestTriangle(px, py float64) bool {
	// Left edge (400,100)-(200,500): 2x + y >= 900 on the inside.
	if 2*px+py < 900 {
		return false
	}
	// Right edge (400,100)-(600,500): 2x - y <= 700 on the inside.
	if 2*px-py > 700 {
		return false
	}
	// Bottom edge y <= 500.
	return py <= 500
}

func TestWhiteTriangleEndToEnd(t *testing.T) {
	fb := NewFramebuffer(800, 600)

	v0 := screenVertex(400, 100, 0.5)
	v1 := screenVertex(200, 500, 0.5)
	v2 := screenVertex(600, 500, 0.5)

	frags := AppendFragments(nil, v0, v1, v2, 800, 600, testLight)
	for _, f := range frags {
		fb.Submit(f, White)
	}

	for y := range 600 {
		for x := range 800 {
			want := Black
			if insideTestTriangle(float64(x)+0.5, float64(y)+0.5) {
				want = White
			}
			if got := fb.ColorAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestFragmentCountMatchesCoveredCenters(t *testing.T) {
	v0 := screenVertex(400, 100, 0.5)
	v1 := screenVertex(200, 500, 0.5)
	v2 := screenVertex(600, 500, 0.5)

	frags := AppendFragments(nil, v0, v1, v2, 800, 600, testLight)

	var want int
	for y := range 600 {
		for x := range 800 {
			if insideTestTriangle(float64(x)+0.5, float64(y)+0.5) {
				want++
			}
		}
	}
	if len(frags) != want {
		t.Errorf("emitted %d fragments, want %d covered pixel centers", len(frags), want)
	}
}

func TestOverlappingTrianglesDepthOrder(t *testing.T) {
	v := func(z float64) [3]Vertex {
		return [3]Vertex{
			screenVertex(400, 100, z),
			screenVertex(200, 500, z),
			screenVertex(600, 500, z),
		}
	}
	near := v(0.1)
	far := v(0.9)
	nearColor := RGB(10, 20, 30)
	farColor := RGB(200, 100, 50)

	submit := func(fb *Framebuffer, tri [3]Vertex, c Color) {
		frags := AppendFragments(nil, tri[0], tri[1], tri[2], 800, 600, testLight)
		for _, f := range frags {
			fb.Submit(f, c)
		}
	}

	nearFirst := NewFramebuffer(800, 600)
	submit(nearFirst, near, nearColor)
	submit(nearFirst, far, farColor)

	farFirst := NewFramebuffer(800, 600)
	submit(farFirst, far, farColor)
	submit(farFirst, near, nearColor)

	for _, fb := range []*Framebuffer{nearFirst, farFirst} {
		if got := fb.ColorAt(400, 300); got != nearColor {
			t.Errorf("interior pixel = %v, want the near triangle's color %v", got, nearColor)
		}
		if got := fb.DepthAt(400, 300); got != 0.1 {
			t.Errorf("interior depth = %v, want 0.1", got)
		}
	}
}
