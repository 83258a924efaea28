// Package scene assembles the orrery: a set of orbiting bodies around a
// shared camera, rendered one body per pipeline pass into a framebuffer.
package scene

import (
	"math"
	"math/rand"

	"github.com/taigrr/orrery/pkg/math3d"
	"github.com/taigrr/orrery/pkg/noise"
	"github.com/taigrr/orrery/pkg/render"
	"github.com/taigrr/orrery/pkg/shading"
)

const bodySpinRate = 0.01

// Body is one object in the system. Offset is its position at time zero;
// the body sweeps around the world origin in the XY plane at
// AngularVelocity radians per tick.
type Body struct {
	Name            string
	Shade           render.Shader
	Offset          math3d.Vec3
	Scale           float64
	AngularVelocity float64
}

// OrbitPosition returns the body's world position at the given time.
func (b Body) OrbitPosition(time int) math3d.Vec3 {
	angle := float64(time) * b.AngularVelocity
	sin, cos := math.Sincos(angle)
	return math3d.V3(
		b.Offset.X*cos-b.Offset.Y*sin,
		b.Offset.X*sin+b.Offset.Y*cos,
		b.Offset.Z,
	)
}

// System holds the bodies, the camera, and per-frame render state.
type System struct {
	Bodies []Body
	Camera *render.Camera
	Noise  *noise.Source

	ShowOrbits bool
	Stars      int

	mesh     []render.Vertex
	pipeline *render.Pipeline
	target   *render.Framebuffer
	time     int
}

// NewSystem creates a system rendering the given triangle list with every
// body. The mesh is shared; each body only differs in model transform and
// shader.
func NewSystem(mesh []render.Vertex, bodies []Body) *System {
	return &System{
		Bodies: bodies,
		Camera: render.NewCamera(
			math3d.V3(0, 0, 10),
			math3d.Zero3(),
			math3d.Up(),
		),
		Noise: noise.NewCloud(),
		Stars: 15,
		mesh:  mesh,
	}
}

// DefaultBodies returns the stock planetary roster: a star at the origin
// and six bodies on staggered orbits, one per shader.
func DefaultBodies() []Body {
	return []Body{
		{Name: "sol", Shade: shading.StarShader, Offset: math3d.Zero3(), Scale: 1.5, AngularVelocity: 0},
		{Name: "dune", Shade: shading.DesertShader, Offset: math3d.V3(3, 0, 0), Scale: 0.5, AngularVelocity: 0.01},
		{Name: "glacier", Shade: shading.IceShader, Offset: math3d.V3(5, 0, 0), Scale: 0.4, AngularVelocity: 0.012},
		{Name: "tempest", Shade: shading.StormShader, Offset: math3d.V3(0, 6, 0), Scale: 0.6, AngularVelocity: 0.014},
		{Name: "station", Shade: shading.StationShader, Offset: math3d.V3(0, -4, 0), Scale: 0.7, AngularVelocity: 0.016},
		{Name: "stratos", Shade: shading.BandedShader, Offset: math3d.V3(7, 0, 0), Scale: 0.8, AngularVelocity: 0.008},
		{Name: "verdant", Shade: shading.ForestShader, Offset: math3d.V3(0, 8, 0), Scale: 0.45, AngularVelocity: 0.018},
	}
}

// Time returns the current tick.
func (s *System) Time() int { return s.time }

// Advance steps the simulation clock by one tick.
func (s *System) Advance() { s.time++ }

// FocusBody snaps the camera center to the body at index i, keeping the
// current eye offset so the viewing angle is preserved.
func (s *System) FocusBody(i int) {
	if i < 0 || i >= len(s.Bodies) {
		return
	}
	s.Camera.FocusOn(s.Bodies[i].OrbitPosition(s.time))
}

// RenderFrame draws the whole system for the current tick into fb. The rng
// drives starfield placement; pass a fixed-seed source for reproducible
// frames.
func (s *System) RenderFrame(fb *render.Framebuffer, rng *rand.Rand) {
	if s.pipeline == nil || s.target != fb {
		s.pipeline = render.NewPipeline(fb)
		s.target = fb
	}

	fb.Clear()
	if s.Stars > 0 && rng != nil {
		fb.SeedStars(s.Stars, rng)
	}

	view := s.Camera.ViewMatrix()
	projection := render.ProjectionMatrix(float64(fb.Width), float64(fb.Height))
	viewport := render.ViewportMatrix(float64(fb.Width), float64(fb.Height))

	if s.ShowOrbits {
		rings := render.NewRingRenderer(fb)
		for _, b := range s.Bodies {
			if b.AngularVelocity == 0 {
				continue
			}
			rings.DrawOrbit(b.Offset, view, projection, viewport, render.RGB(64, 64, 64))
		}
	}

	for _, b := range s.Bodies {
		model := render.ModelMatrix(
			b.OrbitPosition(s.time),
			b.Scale,
			math3d.V3(0, float64(s.time)*bodySpinRate, 0),
		)
		u := render.Uniforms{
			Model:      model,
			View:       view,
			Projection: projection,
			Viewport:   viewport,
			Time:       s.time,
			Noise:      s.Noise,
		}
		s.pipeline.Render(s.mesh, &u, b.Shade)
	}
}
