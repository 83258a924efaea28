package render

import (
	"github.com/taigrr/orrery/pkg/math3d"
	"github.com/taigrr/orrery/pkg/noise"
)

// Vertex carries the object-space attributes of one mesh vertex, plus two
// derived fields filled in by the transform stage. The object-space fields
// are immutable after load; each frame the transform stage produces fresh
// copies with the derived fields set, so stale results never leak between
// frames.
type Vertex struct {
	Position math3d.Vec3 // Object-space position
	Normal   math3d.Vec3 // Object-space normal
	UV       math3d.Vec2 // Texture coordinates
	Color    Color       // Base vertex color

	// Derived by the transform stage; undefined until then.
	ScreenPosition    math3d.Vec3 // x,y in pixels, z = NDC depth
	TransformedNormal math3d.Vec3 // Model-transformed normal
}

// Fragment is one candidate pixel sample produced by rasterizing a triangle.
// Fragments are transient: emitted by the rasterizer, shaded, submitted to
// the framebuffer, and discarded.
type Fragment struct {
	X, Y      int         // Screen pixel coordinate
	Depth     float64     // Interpolated NDC depth
	Intensity float64     // Interpolated light intensity
	Position  math3d.Vec3 // Shader-space position (normalized-screen x,y and depth)
}

// Uniforms is the read-only per-object, per-frame parameter bundle passed to
// every transform and shading call. It is constructed fresh for each object
// each frame and never mutated during that object's render.
type Uniforms struct {
	Model      math3d.Mat4
	View       math3d.Mat4
	Projection math3d.Mat4
	Viewport   math3d.Mat4
	Time       int
	Noise      *noise.Source
}

// Shader maps a rasterized fragment to a color under the given uniforms.
// Shaders must be pure: no mutable state beyond the read-only noise source.
type Shader func(Fragment, *Uniforms) Color
