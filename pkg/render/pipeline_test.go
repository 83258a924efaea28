package render

import (
	"math"
	"testing"

	"github.com/taigrr/orrery/pkg/math3d"
)

func testUniforms(width, height float64) *Uniforms {
	cam := NewCamera(math3d.V3(0, 0, 10), math3d.Zero3(), math3d.Up())
	return &Uniforms{
		Model:      math3d.Identity(),
		View:       cam.ViewMatrix(),
		Projection: ProjectionMatrix(width, height),
		Viewport:   ViewportMatrix(width, height),
	}
}

func TestModelMatrixOrder(t *testing.T) {
	// Rotation applies first, then scale, then translation.
	m := ModelMatrix(math3d.V3(5, 0, 0), 2, math3d.V3(0, math.Pi/2, 0))
	got := m.MulVec3(math3d.V3(0, 0, 1))
	want := math3d.V3(7, 0, 0)
	if got.Distance(want) > 1e-9 {
		t.Errorf("model matrix maps (0,0,1) to %v, want %v", got, want)
	}
}

func TestTransformVertexCenter(t *testing.T) {
	u := testUniforms(800, 600)
	v := Vertex{Position: math3d.Zero3(), Normal: math3d.V3(0, 0, 1)}

	out, ok := TransformVertex(v, u)
	if !ok {
		t.Fatal("origin vertex discarded")
	}
	if math.Abs(out.ScreenPosition.X-400) > 1e-6 || math.Abs(out.ScreenPosition.Y-300) > 1e-6 {
		t.Errorf("screen position = %v, want (400,300,_)", out.ScreenPosition)
	}
	if out.ScreenPosition.Z <= 0 || out.ScreenPosition.Z >= 1 {
		t.Errorf("depth = %v, want inside (0,1)", out.ScreenPosition.Z)
	}
	if out.TransformedNormal.Distance(math3d.V3(0, 0, 1)) > 1e-9 {
		t.Errorf("identity model changed normal: %v", out.TransformedNormal)
	}
}

func TestTransformVertexDiscardsAtEyePlane(t *testing.T) {
	u := &Uniforms{
		Model:      math3d.Identity(),
		View:       math3d.Identity(),
		Projection: ProjectionMatrix(800, 600),
		Viewport:   ViewportMatrix(800, 600),
	}
	// View-space z = 0 gives clip w = 0: no safe perspective divide.
	v := Vertex{Position: math3d.V3(1, 1, 0)}
	if _, ok := TransformVertex(v, u); ok {
		t.Error("vertex at the eye plane not discarded")
	}
}

func TestNormalMatrixNonUniformScale(t *testing.T) {
	nm := NormalMatrix(math3d.Scale(math3d.V3(2, 1, 1)))
	got := nm.MulVec3(math3d.V3(1, 0, 0))
	want := math3d.V3(0.5, 0, 0)
	if got.Distance(want) > 1e-12 {
		t.Errorf("normal (1,0,0) under x2 scale = %v, want %v", got, want)
	}
}

func TestNormalMatrixSingularFallback(t *testing.T) {
	nm := NormalMatrix(math3d.Scale(math3d.V3(0, 1, 1)))
	if nm != math3d.Identity3() {
		t.Errorf("singular model normal matrix = %v, want identity fallback", nm)
	}
}

func TestPipelineRendersTriangle(t *testing.T) {
	fb := NewFramebuffer(800, 600)
	p := NewPipeline(fb)
	u := testUniforms(800, 600)

	white := func(Fragment, *Uniforms) Color { return White }
	vertices := []Vertex{
		{Position: math3d.V3(-2, -2, 0), Normal: math3d.V3(0, 0, 1)},
		{Position: math3d.V3(2, -2, 0), Normal: math3d.V3(0, 0, 1)},
		{Position: math3d.V3(0, 2, 0), Normal: math3d.V3(0, 0, 1)},
	}
	p.Render(vertices, u, white)

	if got := fb.ColorAt(400, 300); got != White {
		t.Errorf("interior pixel = %v, want white", got)
	}
	if got := fb.ColorAt(10, 10); got != Black {
		t.Errorf("exterior pixel = %v, want background", got)
	}
	if math.IsInf(fb.DepthAt(400, 300), 1) {
		t.Error("interior pixel has no depth")
	}
}

func TestPipelineTruncatesPartialTriangle(t *testing.T) {
	fb := NewFramebuffer(800, 600)
	p := NewPipeline(fb)
	u := testUniforms(800, 600)

	white := func(Fragment, *Uniforms) Color { return White }
	vertices := []Vertex{
		{Position: math3d.V3(-2, -2, 0), Normal: math3d.V3(0, 0, 1)},
		{Position: math3d.V3(2, -2, 0), Normal: math3d.V3(0, 0, 1)},
		{Position: math3d.V3(0, 2, 0), Normal: math3d.V3(0, 0, 1)},
		// Trailing pair does not complete a triangle.
		{Position: math3d.V3(100, 100, 0), Normal: math3d.V3(0, 0, 1)},
		{Position: math3d.V3(101, 100, 0), Normal: math3d.V3(0, 0, 1)},
	}
	p.Render(vertices, u, white)

	if got := fb.ColorAt(400, 300); got != White {
		t.Errorf("interior pixel = %v, want white", got)
	}
}

func TestPipelineSkipsTriangleWithDegenerateVertex(t *testing.T) {
	fb := NewFramebuffer(800, 600)
	p := NewPipeline(fb)
	u := &Uniforms{
		Model:      math3d.Identity(),
		View:       math3d.Identity(),
		Projection: ProjectionMatrix(800, 600),
		Viewport:   ViewportMatrix(800, 600),
	}

	white := func(Fragment, *Uniforms) Color { return White }
	// One vertex sits on the eye plane; the whole triangle must be skipped.
	vertices := []Vertex{
		{Position: math3d.V3(-2, -2, -5), Normal: math3d.V3(0, 0, 1)},
		{Position: math3d.V3(2, -2, -5), Normal: math3d.V3(0, 0, 1)},
		{Position: math3d.V3(0, 2, 0), Normal: math3d.V3(0, 0, 1)},
	}
	p.Render(vertices, u, white)

	for y := range 600 {
		for x := range 800 {
			if fb.ColorAt(x, y) != Black {
				t.Fatalf("pixel (%d,%d) written by a discarded triangle", x, y)
			}
		}
	}
}
