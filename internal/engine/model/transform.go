package model

import (
	"github.com/seiya-kumada/meshview/pkg/geometry"
	"github.com/seiya-kumada/meshview/pkg/math"
)

const degenerateExtent = 1e-6

// ModelMatrix builds the transform that scales the mesh so its largest
// extent equals desiredSize and moves its center to the origin. The
// scale is applied first, then the translation, so the matrix is
// Scale(s) * Translate(-center).
func ModelMatrix(mesh *geometry.Mesh, desiredSize float32) math.Mat4 {
	maxExtent := mesh.Extent().MaxComponent()

	scale := float32(1.0)
	if maxExtent > degenerateExtent {
		scale = desiredSize / maxExtent
	}

	c := mesh.Center
	return math.Scale(scale, scale, scale).
		Mul(math.Translate(-c.X, -c.Y, -c.Z))
}
