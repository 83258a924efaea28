package render

import (
	"math"
	"math/rand"
)

// Framebuffer owns a width×height color buffer and a parallel per-pixel depth
// buffer. No other component writes pixels directly: rasterized fragments are
// submitted through Submit, which performs the depth test.
type Framebuffer struct {
	Width  int
	Height int

	pixels     []Color   // Row-major color data
	depth      []float64 // Row-major depth data, +Inf = empty
	background Color
}

// NewFramebuffer creates a framebuffer with the given dimensions, cleared to
// black.
func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{
		Width:  width,
		Height: height,
		pixels: make([]Color, width*height),
		depth:  make([]float64, width*height),
	}
	fb.Clear()
	return fb
}

// SetBackground sets the color the buffer is cleared to.
func (fb *Framebuffer) SetBackground(c Color) {
	fb.background = c
}

// Clear resets the color buffer to the background and every depth to the
// infinitely-far sentinel. Call once per frame before submitting fragments.
func (fb *Framebuffer) Clear() {
	if len(fb.pixels) == 0 {
		return
	}
	// Copy-doubling for faster clearing.
	fb.pixels[0] = fb.background
	for i := 1; i < len(fb.pixels); i *= 2 {
		copy(fb.pixels[i:], fb.pixels[:i])
	}
	fb.depth[0] = math.Inf(1)
	for i := 1; i < len(fb.depth); i *= 2 {
		copy(fb.depth[i:], fb.depth[:i])
	}
}

// SeedStars scatters n bright background pixels across the cleared buffer.
// Stars are part of the background: they carry no depth, so any geometry
// draws over them.
func (fb *Framebuffer) SeedStars(n int, rng *rand.Rand) {
	for range n {
		x := rng.Intn(fb.Width)
		y := rng.Intn(fb.Height)
		fb.pixels[y*fb.Width+x] = White
	}
}

// Submit depth-tests one shaded fragment. Fragments outside the buffer are
// silently dropped (expected at triangle edges), and a fragment only lands
// when its depth is strictly smaller than the stored depth. Reports whether
// the fragment was written.
func (fb *Framebuffer) Submit(f Fragment, c Color) bool {
	if f.X < 0 || f.X >= fb.Width || f.Y < 0 || f.Y >= fb.Height {
		return false
	}
	i := f.Y*fb.Width + f.X
	if f.Depth >= fb.depth[i] {
		return false
	}
	fb.depth[i] = f.Depth
	fb.pixels[i] = c
	return true
}

// ColorAt returns the color at (x, y), or the background if out of bounds.
func (fb *Framebuffer) ColorAt(x, y int) Color {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return fb.background
	}
	return fb.pixels[y*fb.Width+x]
}

// DepthAt returns the stored depth at (x, y), or +Inf if out of bounds.
func (fb *Framebuffer) DepthAt(x, y int) float64 {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return math.Inf(1)
	}
	return fb.depth[y*fb.Width+x]
}

// PackInto appends the color buffer as packed 0xRRGGBB integers, row-major.
// This is the form presentation sinks consume.
func (fb *Framebuffer) PackInto(dst []uint32) []uint32 {
	for _, c := range fb.pixels {
		dst = append(dst, c.Pack())
	}
	return dst
}

// Packed returns a freshly allocated packed color buffer.
func (fb *Framebuffer) Packed() []uint32 {
	return fb.PackInto(make([]uint32, 0, len(fb.pixels)))
}
