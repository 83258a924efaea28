package models

import (
	"math"

	"github.com/taigrr/orrery/pkg/math3d"
)

// UVSphere builds a unit sphere mesh with the given number of latitude
// stacks and longitude slices. Faces wind counter-clockwise when viewed
// from outside, so they face the camera after projection.
func UVSphere(stacks, slices int) *Mesh {
	if stacks < 2 {
		stacks = 2
	}
	if slices < 3 {
		slices = 3
	}

	mesh := NewMesh("sphere")
	for i := 0; i <= stacks; i++ {
		// phi sweeps from the north pole (0) to the south pole (pi).
		phi := math.Pi * float64(i) / float64(stacks)
		y := math.Cos(phi)
		r := math.Sin(phi)
		for j := 0; j <= slices; j++ {
			theta := 2 * math.Pi * float64(j) / float64(slices)
			p := math3d.V3(r*math.Cos(theta), y, r*math.Sin(theta))
			mesh.Vertices = append(mesh.Vertices, MeshVertex{
				Position: p,
				Normal:   p,
				UV:       math3d.V2(float64(j)/float64(slices), 1-float64(i)/float64(stacks)),
			})
		}
	}

	cols := slices + 1
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			a := i*cols + j
			b := a + cols
			if i > 0 {
				mesh.Faces = append(mesh.Faces, Face{V: [3]int{a, a + 1, b}})
			}
			if i < stacks-1 {
				mesh.Faces = append(mesh.Faces, Face{V: [3]int{a + 1, b + 1, b}})
			}
		}
	}

	mesh.CalculateBounds()
	return mesh
}
