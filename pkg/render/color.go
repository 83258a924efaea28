// Package render implements the software rendering pipeline for the orrery:
// vertex transformation, triangle rasterization, fragment shading dispatch,
// and frame composition.
package render

// Color is an RGB triple with 8-bit channels. All arithmetic saturates each
// channel to [0, 255] instead of wrapping.
type Color struct {
	R, G, B uint8
}

// Predefined colors.
var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
)

// RGB creates a color from RGB values.
func RGB(r, g, b uint8) Color {
	return Color{r, g, b}
}

// Unpack creates a color from a packed 0xRRGGBB integer.
func Unpack(p uint32) Color {
	return Color{
		R: uint8(p >> 16),
		G: uint8(p >> 8),
		B: uint8(p),
	}
}

// Pack returns the color as a packed integer: R<<16 | G<<8 | B.
func (c Color) Pack() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Add returns the saturating channel-wise sum of two colors.
func (c Color) Add(o Color) Color {
	return Color{
		R: clampChannel(float64(c.R) + float64(o.R)),
		G: clampChannel(float64(c.G) + float64(o.G)),
		B: clampChannel(float64(c.B) + float64(o.B)),
	}
}

// Scale returns the color with every channel multiplied by f, saturating.
func (c Color) Scale(f float64) Color {
	return Color{
		R: clampChannel(float64(c.R) * f),
		G: clampChannel(float64(c.G) * f),
		B: clampChannel(float64(c.B) * f),
	}
}

// Lerp returns the channel-wise linear interpolation from c to o by t.
// t is clamped to [0, 1], so every output channel stays between the two
// endpoints.
func (c Color) Lerp(o Color, t float64) Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return Color{
		R: clampChannel(float64(c.R) + (float64(o.R)-float64(c.R))*t),
		G: clampChannel(float64(c.G) + (float64(o.G)-float64(c.G))*t),
		B: clampChannel(float64(c.B) + (float64(o.B)-float64(c.B))*t),
	}
}

func clampChannel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
