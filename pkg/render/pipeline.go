package render

import (
	"log/slog"
	"math"

	"github.com/taigrr/orrery/pkg/math3d"
)

// Projection constants, fixed for the whole run.
const (
	fovY     = 45 * math.Pi / 180
	nearClip = 0.1
	farClip  = 1000.0
)

// Vertices whose clip-space |w| falls below this are degenerate (at or behind
// the eye plane) and are discarded along with their triangle.
const wEpsilon = 1e-9

// ModelMatrix builds the model matrix from a translation, uniform scale, and
// Euler rotation applied in Z, Y, X order: T·S · Rz·Ry·Rx.
func ModelMatrix(translation math3d.Vec3, scale float64, rotation math3d.Vec3) math3d.Mat4 {
	rot := math3d.RotateZ(rotation.Z).
		Mul(math3d.RotateY(rotation.Y)).
		Mul(math3d.RotateX(rotation.X))
	return math3d.Translate(translation).Mul(math3d.ScaleUniform(scale)).Mul(rot)
}

// ProjectionMatrix builds the fixed-FOV perspective matrix for a viewport of
// the given pixel dimensions.
func ProjectionMatrix(width, height float64) math3d.Mat4 {
	return math3d.Perspective(fovY, width/height, nearClip, farClip)
}

// ViewportMatrix maps NDC to pixel coordinates with Y flipped.
func ViewportMatrix(width, height float64) math3d.Mat4 {
	return math3d.Viewport(width, height)
}

// NormalMatrix returns the transpose-inverse of the model matrix's upper 3x3
// block. A singular model matrix falls back to the identity (logged, not
// fatal) so a degenerate object renders with untransformed normals instead of
// crashing the frame.
func NormalMatrix(model math3d.Mat4) math3d.Mat3 {
	inv, ok := math3d.Mat3FromMat4(model).Transpose().Inverse()
	if !ok {
		slog.Warn("singular model matrix, normals use identity transform")
		return math3d.Identity3()
	}
	return inv
}

// TransformVertex runs one vertex through the full transform stage:
// projection·view·model, perspective divide, and viewport mapping. It returns
// a fresh copy with ScreenPosition (pixel x,y and NDC depth) and
// TransformedNormal populated, and false when the clip-space w is too close
// to zero to divide safely.
func TransformVertex(v Vertex, u *Uniforms) (Vertex, bool) {
	pvm := u.Projection.Mul(u.View).Mul(u.Model)
	return transformVertex(v, pvm, NormalMatrix(u.Model), u.Viewport)
}

func transformVertex(v Vertex, pvm math3d.Mat4, normalMat math3d.Mat3, viewport math3d.Mat4) (Vertex, bool) {
	clip := pvm.MulVec4(math3d.V4FromV3(v.Position, 1))
	if math.Abs(clip.W) < wEpsilon {
		return v, false
	}

	ndc := math3d.V4(clip.X/clip.W, clip.Y/clip.W, clip.Z/clip.W, 1)
	screen := viewport.MulVec4(ndc)

	out := v
	out.ScreenPosition = math3d.V3(screen.X, screen.Y, screen.Z)
	out.TransformedNormal = normalMat.MulVec3(v.Normal)
	return out, true
}

// Pipeline renders vertex arrays into a framebuffer: transform, primitive
// assembly, rasterization, shading, and depth-tested composition, in that
// order, one object at a time.
type Pipeline struct {
	fb *Framebuffer

	// LightDir is the fixed directional light used for vertex intensities.
	LightDir math3d.Vec3

	// Scratch buffers reused across Render calls.
	transformed []Vertex
	valid       []bool
	frags       []Fragment
}

// NewPipeline creates a pipeline writing into fb.
func NewPipeline(fb *Framebuffer) *Pipeline {
	return &Pipeline{
		fb:       fb,
		LightDir: math3d.V3(0, 0, 1),
	}
}

// Render draws one object. vertices is a triangle list: consecutive
// non-overlapping triples form triangles, and trailing vertices that do not
// complete a triple are intentionally truncated. Every fragment is shaded by
// shade and submitted to the framebuffer's depth test.
func (p *Pipeline) Render(vertices []Vertex, u *Uniforms, shade Shader) {
	pvm := u.Projection.Mul(u.View).Mul(u.Model)
	normalMat := NormalMatrix(u.Model)

	p.transformed = p.transformed[:0]
	p.valid = p.valid[:0]
	for _, v := range vertices {
		tv, ok := transformVertex(v, pvm, normalMat, u.Viewport)
		p.transformed = append(p.transformed, tv)
		p.valid = append(p.valid, ok)
	}

	for i := 0; i+2 < len(p.transformed); i += 3 {
		if !p.valid[i] || !p.valid[i+1] || !p.valid[i+2] {
			continue
		}
		p.frags = AppendFragments(p.frags[:0],
			p.transformed[i], p.transformed[i+1], p.transformed[i+2],
			p.fb.Width, p.fb.Height, p.LightDir)
		for _, f := range p.frags {
			p.fb.Submit(f, shade(f, u))
		}
	}
}
