package models

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/taigrr/orrery/pkg/math3d"
)

// LoadOBJ loads a Wavefront OBJ file as a triangle mesh. Polygonal faces are
// fan-triangulated. Materials and groups are ignored.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj: %w", err)
	}
	defer f.Close()

	mesh, err := ParseOBJ(f, filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("parse obj %s: %w", path, err)
	}
	return mesh, nil
}

// ParseOBJ parses OBJ data from a reader.
func ParseOBJ(r io.Reader, name string) (*Mesh, error) {
	mesh := NewMesh(name)

	var (
		positions []math3d.Vec3
		normals   []math3d.Vec3
		uvs       []math3d.Vec2
	)

	// OBJ indexes positions/uvs/normals independently; the mesh wants one
	// index per vertex, so each unique triple becomes a mesh vertex.
	seen := make(map[[3]int]int)

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			v, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: vertex: %w", line, err)
			}
			positions = append(positions, v)

		case "vn":
			v, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: normal: %w", line, err)
			}
			normals = append(normals, v)

		case "vt":
			if len(fields) < 3 {
				return nil, fmt.Errorf("line %d: texcoord needs 2 components", line)
			}
			u, err1 := strconv.ParseFloat(fields[1], 64)
			v, err2 := strconv.ParseFloat(fields[2], 64)
			if err1 != nil || err2 != nil {
				return nil, fmt.Errorf("line %d: bad texcoord", line)
			}
			uvs = append(uvs, math3d.V2(u, v))

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices", line)
			}
			idx := make([]int, 0, len(fields)-1)
			for _, ref := range fields[1:] {
				i, err := resolveVertex(ref, positions, uvs, normals, seen, mesh)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", line, err)
				}
				idx = append(idx, i)
			}
			// Fan triangulation for quads and larger polygons.
			for i := 1; i+1 < len(idx); i++ {
				mesh.Faces = append(mesh.Faces, Face{V: [3]int{idx[0], idx[i], idx[i+1]}})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read obj: %w", err)
	}
	if len(mesh.Faces) == 0 {
		return nil, fmt.Errorf("no faces found")
	}

	if normals == nil {
		mesh.CalculateNormals()
	}
	mesh.CalculateBounds()
	return mesh, nil
}

// resolveVertex turns one "v", "v/vt", "v//vn", or "v/vt/vn" face component
// into a mesh vertex index, reusing vertices for repeated triples.
func resolveVertex(ref string, positions []math3d.Vec3, uvs []math3d.Vec2, normals []math3d.Vec3, seen map[[3]int]int, mesh *Mesh) (int, error) {
	parts := strings.Split(ref, "/")

	pi, err := objIndex(parts[0], len(positions))
	if err != nil {
		return 0, fmt.Errorf("position index %q: %w", parts[0], err)
	}

	ti, ni := -1, -1
	if len(parts) > 1 && parts[1] != "" {
		if ti, err = objIndex(parts[1], len(uvs)); err != nil {
			return 0, fmt.Errorf("texcoord index %q: %w", parts[1], err)
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		if ni, err = objIndex(parts[2], len(normals)); err != nil {
			return 0, fmt.Errorf("normal index %q: %w", parts[2], err)
		}
	}

	key := [3]int{pi, ti, ni}
	if i, ok := seen[key]; ok {
		return i, nil
	}

	v := MeshVertex{Position: positions[pi]}
	if ti >= 0 {
		v.UV = uvs[ti]
	}
	if ni >= 0 {
		v.Normal = normals[ni]
	}

	i := len(mesh.Vertices)
	mesh.Vertices = append(mesh.Vertices, v)
	seen[key] = i
	return i, nil
}

// objIndex converts a 1-based (or negative, relative-to-end) OBJ index to a
// 0-based slice index.
func objIndex(s string, n int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	switch {
	case i > 0 && i <= n:
		return i - 1, nil
	case i < 0 && -i <= n:
		return n + i, nil
	default:
		return 0, fmt.Errorf("index %d out of range (have %d)", i, n)
	}
}

func parseVec3(fields []string) (math3d.Vec3, error) {
	if len(fields) < 3 {
		return math3d.Vec3{}, fmt.Errorf("need 3 components, have %d", len(fields))
	}
	x, err1 := strconv.ParseFloat(fields[0], 64)
	y, err2 := strconv.ParseFloat(fields[1], 64)
	z, err3 := strconv.ParseFloat(fields[2], 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return math3d.Vec3{}, fmt.Errorf("bad float component")
	}
	return math3d.V3(x, y, z), nil
}
