package render

import (
	"math"

	"github.com/taigrr/orrery/pkg/math3d"
)

// ringSegments is how many line segments approximate one orbit circle.
const ringSegments = 96

// RingRenderer draws the projected circular path a body's orbital offset
// traces around the system origin. Rings go through the same camera transform
// as geometry and are depth-tested, so bodies occlude them correctly.
type RingRenderer struct {
	fb *Framebuffer
}

// NewRingRenderer creates a ring renderer writing into fb.
func NewRingRenderer(fb *Framebuffer) *RingRenderer {
	return &RingRenderer{fb: fb}
}

// DrawOrbit draws the orbit traced by offset rotating in its orbital plane.
// The parametrization matches the orbital placement formula: the offset's
// x,y components rotate while z is carried through.
func (r *RingRenderer) DrawOrbit(offset math3d.Vec3, view, projection, viewport math3d.Mat4, c Color) {
	pv := projection.Mul(view)

	var prev math3d.Vec3
	prevOK := false
	for i := 0; i <= ringSegments; i++ {
		angle := 2 * math.Pi * float64(i) / ringSegments
		sin, cos := math.Sincos(angle)
		world := math3d.V3(
			offset.X*cos-offset.Y*sin,
			offset.X*sin+offset.Y*cos,
			offset.Z,
		)

		cur, ok := projectPoint(world, pv, viewport)
		if ok && prevOK {
			r.drawDepthLine(prev, cur, c)
		}
		prev, prevOK = cur, ok
	}
}

// projectPoint maps a world point to screen space, reporting false for
// points at or behind the eye plane.
func projectPoint(world math3d.Vec3, pv, viewport math3d.Mat4) (math3d.Vec3, bool) {
	clip := pv.MulVec4(math3d.V4FromV3(world, 1))
	if clip.W < wEpsilon {
		return math3d.Vec3{}, false
	}
	ndc := math3d.V4(clip.X/clip.W, clip.Y/clip.W, clip.Z/clip.W, 1)
	screen := viewport.MulVec4(ndc)
	return math3d.V3(screen.X, screen.Y, screen.Z), true
}

// drawDepthLine draws a line between two screen-space points using
// Bresenham's algorithm, submitting each pixel as a fragment with linearly
// interpolated depth.
func (r *RingRenderer) drawDepthLine(a, b math3d.Vec3, c Color) {
	x0, y0 := int(a.X), int(a.Y)
	x1, y1 := int(b.X), int(b.Y)

	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	steps := max(dx, -dy)
	step := 0
	for {
		t := 0.0
		if steps > 0 {
			t = float64(step) / float64(steps)
		}
		r.fb.Submit(Fragment{
			X:         x0,
			Y:         y0,
			Depth:     a.Z + (b.Z-a.Z)*t,
			Intensity: 1,
		}, c)

		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
		step++
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
