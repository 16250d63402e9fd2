// Package geometry loads 3D model files into an owned triangle-soup mesh
// and computes the normalization data (bounds, center, scale) the renderer
// needs to place an arbitrarily sized model in a stable view.
package geometry

import (
	"errors"

	"github.com/seiya-kumada/meshview/pkg/math"
)

// Import errors.
var (
	ErrOpenFailed   = errors.New("failed to open or parse model file")
	ErrNoGeometry   = errors.New("no mesh data found in file")
	ErrNoTriangles  = errors.New("no triangles could be extracted from file")
	ErrInvalidIndex = errors.New("face references an out-of-range vertex index")
)

// degenerateEpsilon is the extent below which a mesh is treated as
// degenerate (a single point or a coplanar sliver). Dividing by such an
// extent would blow up the scale, so the fallback scale of 1.0 is used
// instead.
const degenerateEpsilon = 1e-6

// defaultScale is the normalization scale applied to degenerate meshes.
const defaultScale = 1.0

// Triangle is a single triangle with a flat per-face normal.
// Immutable once created.
type Triangle struct {
	V      [3]math.Vec3
	Normal math.Vec3
}

// Mesh is an ordered triangle collection plus derived normalization data.
// Built once per load and read-only afterward.
type Mesh struct {
	Triangles []Triangle

	MinBounds math.Vec3
	MaxBounds math.Vec3
	Center    math.Vec3
	Scale     float32
}

// Extent returns the bounding-box size per axis (MaxBounds - MinBounds).
func (m *Mesh) Extent() math.Vec3 {
	return m.MaxBounds.Sub(m.MinBounds)
}

// ComputeBounds calculates the axis-aligned bounding box over every vertex
// of every triangle. No-op for an empty mesh.
func (m *Mesh) ComputeBounds() {
	if len(m.Triangles) == 0 {
		return
	}

	m.MinBounds = m.Triangles[0].V[0]
	m.MaxBounds = m.Triangles[0].V[0]

	for i := range m.Triangles {
		for _, v := range m.Triangles[i].V {
			if v.X < m.MinBounds.X {
				m.MinBounds.X = v.X
			}
			if v.Y < m.MinBounds.Y {
				m.MinBounds.Y = v.Y
			}
			if v.Z < m.MinBounds.Z {
				m.MinBounds.Z = v.Z
			}
			if v.X > m.MaxBounds.X {
				m.MaxBounds.X = v.X
			}
			if v.Y > m.MaxBounds.Y {
				m.MaxBounds.Y = v.Y
			}
			if v.Z > m.MaxBounds.Z {
				m.MaxBounds.Z = v.Z
			}
		}
	}
}

// ComputeCenterAndScale derives the geometric center and the unit-fitting
// scale factor from the bounding box. ComputeBounds must run first.
func (m *Mesh) ComputeCenterAndScale() {
	if len(m.Triangles) == 0 {
		return
	}

	m.Center = m.MinBounds.Add(m.MaxBounds).Scale(0.5)

	maxExtent := m.Extent().MaxComponent()
	if maxExtent > degenerateEpsilon {
		m.Scale = defaultScale / maxExtent
	} else {
		m.Scale = defaultScale
	}
}

// FaceNormal returns the unit normal of a triangle given its vertices in
// winding order: normalize((v1-v0) x (v2-v0)).
func FaceNormal(v0, v1, v2 math.Vec3) math.Vec3 {
	e1 := v1.Sub(v0)
	e2 := v2.Sub(v0)
	return e1.Cross(e2).Normalize()
}

// newTriangle builds a Triangle, synthesizing the face normal when the
// source did not supply one.
func newTriangle(v0, v1, v2 math.Vec3, normal math.Vec3, hasNormal bool) Triangle {
	if !hasNormal {
		normal = FaceNormal(v0, v1, v2)
	}
	return Triangle{V: [3]math.Vec3{v0, v1, v2}, Normal: normal}
}
