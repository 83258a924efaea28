package render

import (
	"math"

	"github.com/taigrr/orrery/pkg/math3d"
)

// ambientFloor is the minimum light intensity at any vertex.
const ambientFloor = 0.1

// AppendFragments rasterizes one transformed triangle and appends the
// resulting fragments to dst. Vertices must carry screen-space positions from
// the transform stage.
//
// Coverage uses the edge-function barycentric formulation sampled at pixel
// centers (x+0.5, y+0.5): a pixel is covered when all three weights are
// non-negative. Triangles with zero or negative signed area emit nothing.
// Depth, intensity, and the shader-space position are interpolated affinely
// in screen space; this is not perspective-correct, which is a known
// simplification of this renderer, not a bug.
func AppendFragments(dst []Fragment, v0, v1, v2 Vertex, width, height int, lightDir math3d.Vec3) []Fragment {
	x0, y0 := v0.ScreenPosition.X, v0.ScreenPosition.Y
	x1, y1 := v1.ScreenPosition.X, v1.ScreenPosition.Y
	x2, y2 := v2.ScreenPosition.X, v2.ScreenPosition.Y

	area := edge(x0, y0, x1, y1, x2, y2)
	if area <= 0 {
		return dst
	}

	// Screen bounding box, clipped to the framebuffer.
	minX := int(math.Max(0, math.Floor(min3(x0, x1, x2))))
	maxX := int(math.Min(float64(width-1), math.Ceil(max3(x0, x1, x2))))
	minY := int(math.Max(0, math.Floor(min3(y0, y1, y2))))
	maxY := int(math.Min(float64(height-1), math.Ceil(max3(y0, y1, y2))))

	i0 := vertexIntensity(v0, lightDir)
	i1 := vertexIntensity(v1, lightDir)
	i2 := vertexIntensity(v2, lightDir)

	z0, z1, z2 := v0.ScreenPosition.Z, v1.ScreenPosition.Z, v2.ScreenPosition.Z
	fw, fh := float64(width), float64(height)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5

			w0 := edge(x1, y1, x2, y2, px, py)
			w1 := edge(x2, y2, x0, y0, px, py)
			w2 := edge(x0, y0, x1, y1, px, py)
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			b0, b1, b2 := w0/area, w1/area, w2/area
			depth := b0*z0 + b1*z1 + b2*z2

			dst = append(dst, Fragment{
				X:         x,
				Y:         y,
				Depth:     depth,
				Intensity: b0*i0 + b1*i1 + b2*i2,
				Position:  math3d.V3(px/fw-0.5, py/fh-0.5, depth),
			})
		}
	}
	return dst
}

// edge is the signed edge function of (a, b) evaluated at p: positive when p
// lies to the left of the directed edge in Y-down screen space.
func edge(ax, ay, bx, by, px, py float64) float64 {
	return (px-ax)*(by-ay) - (py-ay)*(bx-ax)
}

// vertexIntensity is the diffuse term of the transformed normal against the
// light direction, clamped to the ambient floor.
func vertexIntensity(v Vertex, lightDir math3d.Vec3) float64 {
	return math.Max(ambientFloor, v.TransformedNormal.Normalize().Dot(lightDir))
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}

func max3(a, b, c float64) float64 {
	return math.Max(a, math.Max(b, c))
}
