// Package shading implements the procedural surface shaders for the orrery's
// bodies. Every shader is a pure function of (Fragment, Uniforms): it samples
// the shared read-only noise source at coordinates derived from the
// fragment's shader-space position, blends a small fixed palette, and scales
// the result by the fragment's light intensity.
package shading

import (
	"math"

	"github.com/taigrr/orrery/pkg/math3d"
	"github.com/taigrr/orrery/pkg/render"
)

// ID selects a shader for the dynamic dispatch path. Bodies normally bind a
// shader function directly at construction; ByID serves callers that carry a
// numeric tag instead.
type ID uint8

// Shader identifiers.
const (
	Desert ID = iota
	Station
	Banded
	Storm
	Star
	Ice
	Forest
)

// ByID returns the shader for a numeric tag. Unknown tags shade black.
func ByID(id ID) render.Shader {
	switch id {
	case Desert:
		return DesertShader
	case Station:
		return StationShader
	case Banded:
		return BandedShader
	case Storm:
		return StormShader
	case Star:
		return StarShader
	case Ice:
		return IceShader
	case Forest:
		return ForestShader
	default:
		return func(render.Fragment, *render.Uniforms) render.Color {
			return render.Black
		}
	}
}

// StarShader renders a pulsating sun: two 3D noise octaves animated by a slow
// sine, lerped between a dark red and a bright yellow, brightened toward the
// disc center.
func StarShader(f render.Fragment, u *render.Uniforms) render.Color {
	bright := render.RGB(255, 255, 204)
	dark := render.RGB(255, 51, 0)

	pos := f.Position
	t := float64(u.Time) * 0.01

	const (
		baseFrequency    = 0.2
		pulsateAmplitude = 0.5
		zoom             = 1000.0
	)
	pulsate := math.Sin(t*baseFrequency) * pulsateAmplitude

	n1 := u.Noise.Sample3(pos.X*zoom, pos.Y*zoom, (pos.Z+pulsate)*zoom)
	n2 := u.Noise.Sample3((pos.X+1000)*zoom, (pos.Y+1000)*zoom, (pos.Z+1000+pulsate)*zoom)
	n := (n1 + n2) * 0.5

	base := dark.Lerp(bright, n)

	// Radial brightening toward the disc center.
	dist := math.Hypot(pos.X, pos.Y)
	const radius = 0.5
	falloff := 1 - math.Min(dist/radius, 1)
	falloff *= falloff

	return base.Scale(1 + falloff*2).Scale(f.Intensity)
}

// DesertShader renders a dry rocky world from three 2D noise layers:
// mountains, slowly drifting continents, and open plains.
func DesertShader(f render.Fragment, u *render.Uniforms) render.Color {
	const zoom = 1000.0
	t := float64(u.Time) * 0.01
	x, y := f.Position.X, f.Position.Y

	baseRock := render.RGB(139, 69, 19)
	mountain := render.RGB(105, 105, 105)
	plain := render.RGB(205, 133, 63)
	lowland := render.RGB(163, 163, 117)

	baseNoise := u.Noise.Sample2(x*zoom*0.5+t, y*zoom*0.5+t)
	mountainNoise := u.Noise.Sample2(x*zoom+t*0.5, y*zoom+t*0.5)

	shift := math.Sin(float64(u.Time)*0.005) * 0.1
	continental := u.Noise.Sample2((x+shift)*zoom*0.8, (y+shift)*zoom*0.8)

	var c render.Color
	switch {
	case baseNoise > 0.6:
		c = mountain.Lerp(baseRock, mountainNoise)
	case continental < -0.3:
		c = lowland
	default:
		c = plain.Lerp(baseRock, continental)
	}
	return c.Scale(f.Intensity)
}

// IceShader renders a frozen world: 3D noise thresholded between snow and
// ice, with a slight noise-driven intensity variation.
func IceShader(f render.Fragment, u *render.Uniforms) render.Color {
	snow := render.RGB(255, 255, 255)
	ice := render.RGB(173, 216, 230)

	pos := f.Position
	const zoom = 500.0
	t := float64(u.Time) * 0.01

	n := u.Noise.Sample3(pos.X*zoom, pos.Y*zoom, pos.Z*zoom+t)

	base := snow
	if n > 0.3 {
		base = ice
	}
	variation := 0.9 + n*0.1
	return base.Scale(f.Intensity * variation)
}

// StormShader renders a storm-wrapped world: animated 2D cloud noise over a
// dark sea, with occasional lightning brightening the heaviest cloud banks.
func StormShader(f render.Fragment, u *render.Uniforms) render.Color {
	const (
		zoom = 1000.0
		ox   = 100.0
		oy   = 100.0
	)
	x, y := f.Position.X, f.Position.Y
	t := float64(u.Time) * 0.8

	n := u.Noise.Sample2(x*zoom+ox+t, y*zoom+oy)

	detail := u.Noise.Sample2(x*zoom*2+ox+t, y*zoom*2+oy)
	stormIntensity := detail*0.5 + 0.5

	lightning := math.Sin(float64(u.Time)) * 10
	cloud := render.RGB(144, 144, 144).Scale(0.5)
	if stormIntensity > 0.7 && lightning > 0.9 {
		cloud = cloud.Scale(2)
	}

	sky := render.RGB(0, 61, 102)
	stormySky := sky.Scale(1 - stormIntensity*0.5)

	c := stormySky
	if n > 0.3 {
		c = cloud
	}
	return c.Scale(f.Intensity)
}

// BandedShader renders a banded gas giant: anisotropic 2D noise stretches the
// bands horizontally, with a second noise layer punching in storms.
func BandedShader(f render.Fragment, u *render.Uniforms) render.Color {
	const (
		zoom = 1000.0
		ox   = 50.0
		oy   = 50.0
	)
	x, y := f.Position.X, f.Position.Y
	t := float64(u.Time) * 0.1

	base := render.RGB(128, 0, 0)
	band := render.RGB(255, 204, 153)
	storm := render.RGB(192, 57, 43)

	bandNoise := u.Noise.Sample2(x*zoom+ox, y*zoom*0.5+oy+t)
	bandIntensity := bandNoise*0.5 + 0.5

	stormNoise := u.Noise.Sample2(x*zoom*1.5+ox, y*zoom*1.5+oy+t)
	stormIntensity := stormNoise*0.5 + 0.5

	c := base
	switch {
	case bandIntensity > 0.6:
		c = base.Lerp(band, bandIntensity)
	case stormIntensity > 0.7:
		c = storm
	}
	return c.Scale(f.Intensity)
}

// ForestShader renders a vegetated world: 3D noise split into tiers of green
// canopy over bare terrain.
func ForestShader(f render.Fragment, u *render.Uniforms) render.Color {
	lightGreen := render.RGB(144, 238, 144)
	mediumGreen := render.RGB(34, 139, 34)
	darkGreen := render.RGB(139, 69, 19)
	terrain := render.RGB(0, 100, 0)

	pos := f.Position
	const zoom = 300.0
	t := float64(u.Time) * 0.01

	n := u.Noise.Sample3(pos.X*zoom, pos.Y*zoom, pos.Z*zoom+t)

	var c render.Color
	switch {
	case n > 0.7:
		c = darkGreen.Lerp(mediumGreen, (n-0.7)*3)
	case n > 0.5:
		c = mediumGreen.Lerp(lightGreen, (n-0.5)*2)
	case n > 0.3:
		c = lightGreen
	default:
		c = terrain
	}
	variation := 0.9 + n*0.1
	return c.Scale(f.Intensity * variation)
}

// StationShader renders an artificial sphere with deterministic geometry
// instead of noise: a periodic panel grid and a circular dish cutout.
func StationShader(f render.Fragment, _ *render.Uniforms) render.Color {
	x, y := f.Position.X, f.Position.Y

	const (
		lineSpacing  = 0.1
		lineWidth    = 0.02
		circleRadius = 0.16
	)
	center := math3d.V2(0, 0.17)

	line := render.RGB(128, 128, 128)
	dish := render.RGB(64, 64, 64)
	hull := render.RGB(102, 102, 102)

	inVertical := math.Abs(fract(x/lineSpacing)) < lineWidth
	inHorizontal := math.Abs(fract(y/lineSpacing)) < lineWidth
	inDish := math.Hypot(x-center.X, y-center.Y) <= circleRadius

	var c render.Color
	switch {
	case inDish:
		c = dish
	case inVertical || inHorizontal:
		c = line
	default:
		c = hull
	}
	return c.Scale(f.Intensity)
}

// fract returns the fractional part of v, keeping its sign.
func fract(v float64) float64 {
	return v - math.Trunc(v)
}
