// Package models provides triangle-mesh loading and representation for the
// orrery.
package models

import (
	"math"

	"github.com/taigrr/orrery/pkg/math3d"
	"github.com/taigrr/orrery/pkg/render"
)

// Mesh represents a triangle mesh with indexed vertices.
type Mesh struct {
	Name     string
	Vertices []MeshVertex
	Faces    []Face

	// Bounding box (calculated on load)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// MeshVertex holds all vertex attributes.
type MeshVertex struct {
	Position math3d.Vec3
	Normal   math3d.Vec3
	UV       math3d.Vec2
}

// Face is a triangle face of vertex indices.
type Face struct {
	V [3]int // Indices into Mesh.Vertices
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: make([]MeshVertex, 0),
		Faces:    make([]Face, 0),
	}
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		return
	}

	m.BoundsMin = m.Vertices[0].Position
	m.BoundsMax = m.Vertices[0].Position

	for _, v := range m.Vertices[1:] {
		m.BoundsMin = m.BoundsMin.Min(v.Position)
		m.BoundsMax = m.BoundsMax.Max(v.Position)
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// CalculateNormals computes face normals and assigns them to each face's
// vertices (flat shading). Vertices shared across faces take the normal of
// the last face visited.
func (m *Mesh) CalculateNormals() {
	for _, f := range m.Faces {
		v0 := m.Vertices[f.V[0]].Position
		v1 := m.Vertices[f.V[1]].Position
		v2 := m.Vertices[f.V[2]].Position

		n := v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()
		for _, i := range f.V {
			m.Vertices[i].Normal = n
		}
	}
}

// Normalize recenters the mesh on the origin and uniformly scales it so its
// largest radius is 1, making any loaded model usable as an orrery body.
func (m *Mesh) Normalize() {
	m.CalculateBounds()
	center := m.Center()
	size := m.Size()
	maxDim := math.Max(size.X, math.Max(size.Y, size.Z))
	if maxDim == 0 {
		return
	}
	scale := 2.0 / maxDim
	for i := range m.Vertices {
		m.Vertices[i].Position = m.Vertices[i].Position.Sub(center).Scale(scale)
	}
	m.CalculateBounds()
}

// VertexArray flattens the indexed mesh into the triangle-list vertex stream
// the render pipeline consumes: three consecutive vertices per face. The
// result is treated as immutable for the rest of the run.
func (m *Mesh) VertexArray(base render.Color) []render.Vertex {
	out := make([]render.Vertex, 0, len(m.Faces)*3)
	for _, f := range m.Faces {
		for _, i := range f.V {
			v := m.Vertices[i]
			out = append(out, render.Vertex{
				Position: v.Position,
				Normal:   v.Normal,
				UV:       v.UV,
				Color:    base,
			})
		}
	}
	return out
}
