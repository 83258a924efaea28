package render

import (
	"math"

	"github.com/taigrr/orrery/pkg/math3d"
)

// Pitch stops just short of the poles so the view basis never degenerates.
const maxPitch = math.Pi/2 - 0.01

// defaultMinDistance is how close a zoom may bring the eye to the center.
const defaultMinDistance = 1.0

// Camera is an orbit camera: the eye moves around a look-at center, with
// movement expressed as rotation around, panning of, and distance change to
// that center. The world up axis is +Y.
type Camera struct {
	eye    math3d.Vec3
	center math3d.Vec3
	up     math3d.Vec3

	// MinDistance is the closest the eye may approach the center via Zoom.
	MinDistance float64

	// Cached view matrix (computed on demand)
	viewMatrix math3d.Mat4
	viewDirty  bool
}

// NewCamera creates a camera at eye looking at center. up must not be
// parallel to (eye - center).
func NewCamera(eye, center, up math3d.Vec3) *Camera {
	return &Camera{
		eye:         eye,
		center:      center,
		up:          up.Normalize(),
		MinDistance: defaultMinDistance,
		viewDirty:   true,
	}
}

// Eye returns the camera position.
func (c *Camera) Eye() math3d.Vec3 { return c.eye }

// Center returns the look-at target.
func (c *Camera) Center() math3d.Vec3 { return c.center }

// Up returns the up vector.
func (c *Camera) Up() math3d.Vec3 { return c.up }

// Distance returns |eye - center|.
func (c *Camera) Distance() float64 {
	return c.eye.Distance(c.center)
}

// ViewMatrix returns the look-at view matrix.
func (c *Camera) ViewMatrix() math3d.Mat4 {
	if c.viewDirty {
		c.viewMatrix = math3d.LookAt(c.eye, c.center, c.up)
		c.viewDirty = false
	}
	return c.viewMatrix
}

// Orbit rotates the eye around the center: deltaYaw about the world up axis
// and deltaPitch about the camera's local right axis. The eye-center distance
// is preserved and pitch is clamped short of the poles so the view never
// flips.
func (c *Camera) Orbit(deltaYaw, deltaPitch float64) {
	offset := c.eye.Sub(c.center)
	radius := offset.Len()
	if radius == 0 {
		return
	}

	yaw := math.Atan2(offset.X, offset.Z)
	pitch := math.Asin(offset.Y / radius)

	yaw += deltaYaw
	pitch += deltaPitch
	if pitch > maxPitch {
		pitch = maxPitch
	}
	if pitch < -maxPitch {
		pitch = -maxPitch
	}

	sinYaw, cosYaw := math.Sincos(yaw)
	sinPitch, cosPitch := math.Sincos(pitch)
	c.eye = c.center.Add(math3d.V3(
		radius*cosPitch*sinYaw,
		radius*sinPitch,
		radius*cosPitch*cosYaw,
	))
	c.viewDirty = true
}

// MoveCenter pans the camera rigidly: center and eye translate by the same
// delta, preserving their relative offset.
func (c *Camera) MoveCenter(delta math3d.Vec3) {
	c.center = c.center.Add(delta)
	c.eye = c.eye.Add(delta)
	c.viewDirty = true
}

// Zoom moves the eye along the view axis. Positive delta approaches the
// center; the eye never comes closer than MinDistance, so it cannot cross or
// invert past the center.
func (c *Camera) Zoom(delta float64) {
	radius := c.Distance()
	if radius == 0 {
		return
	}
	dist := radius - delta
	if dist < c.MinDistance {
		dist = c.MinDistance
	}
	forward := c.center.Sub(c.eye).Scale(1 / radius)
	c.eye = c.center.Sub(forward.Scale(dist))
	c.viewDirty = true
}

// FocusOn retargets the center to the given world position, translating the
// eye by the same amount so the viewing offset is preserved.
func (c *Camera) FocusOn(target math3d.Vec3) {
	offset := c.eye.Sub(c.center)
	c.center = target
	c.eye = target.Add(offset)
	c.viewDirty = true
}
