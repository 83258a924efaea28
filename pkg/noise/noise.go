// Package noise provides the seeded coherent-noise source used by the
// procedural surface shaders.
package noise

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// DefaultSeed is the seed used for the shared cloud-noise source.
const DefaultSeed = 1337

// defaultFrequency scales input coordinates before sampling, so shader zoom
// constants stay in a convenient range.
const defaultFrequency = 0.01

// Source is a deterministic coherent-noise generator. Sampling holds no
// mutable state, so a single Source may be shared read-only across all
// shading calls of a frame (or across goroutines).
type Source struct {
	gen  opensimplex.Noise
	freq float64
}

// New creates a noise source with the given seed.
func New(seed int64) *Source {
	return &Source{
		gen:  opensimplex.New(seed),
		freq: defaultFrequency,
	}
}

// NewCloud creates the default cloud-noise source shared by the planet
// shaders.
func NewCloud() *Source {
	return New(DefaultSeed)
}

// SetFrequency overrides the coordinate scale applied before sampling.
func (s *Source) SetFrequency(f float64) {
	s.freq = f
}

// Sample2 returns 2D noise in roughly [-1, 1].
func (s *Source) Sample2(x, y float64) float64 {
	return s.gen.Eval2(x*s.freq, y*s.freq)
}

// Sample3 returns 3D noise in roughly [-1, 1].
func (s *Source) Sample3(x, y, z float64) float64 {
	return s.gen.Eval3(x*s.freq, y*s.freq, z*s.freq)
}
