// Package model converts loaded meshes into GPU-ready vertex data and
// owns the OpenGL buffers that hold it.
package model

import (
	"github.com/seiya-kumada/meshview/pkg/geometry"
	"github.com/seiya-kumada/meshview/pkg/math"
)

const (
	// VertexComponents is the number of floats per vertex:
	// position (3) + color (3) + normal (3).
	VertexComponents = 9

	// AxisVertexCount is the number of vertices in the axis gizmo:
	// two endpoints per axis, three axes.
	AxisVertexCount = 6
)

// Uniform surface color applied to every model vertex.
var modelColor = math.Vec3{X: 0.8, Y: 0.8, Z: 0.8}

// BuildVertexStream flattens a mesh into an interleaved float32 slice.
// Every vertex of a triangle carries the triangle's face normal, so
// the surface shades flat.
func BuildVertexStream(mesh *geometry.Mesh) []float32 {
	stream := make([]float32, 0, len(mesh.Triangles)*3*VertexComponents)
	for _, tri := range mesh.Triangles {
		for _, v := range tri.V {
			stream = append(stream,
				v.X, v.Y, v.Z,
				modelColor.X, modelColor.Y, modelColor.Z,
				tri.Normal.X, tri.Normal.Y, tri.Normal.Z,
			)
		}
	}
	return stream
}

// AxesVertices returns the vertex stream for the world-axis gizmo:
// X red, Y green, Z blue, each from the origin to length along its
// axis. Lines are drawn unlit, so the normal slot is a placeholder.
func AxesVertices(length float32) []float32 {
	return []float32{
		// X axis - red
		0, 0, 0, 1, 0, 0, 0, 0, 1,
		length, 0, 0, 1, 0, 0, 0, 0, 1,
		// Y axis - green
		0, 0, 0, 0, 1, 0, 0, 0, 1,
		0, length, 0, 0, 1, 0, 0, 0, 1,
		// Z axis - blue
		0, 0, 0, 0, 0, 1, 0, 0, 1,
		0, 0, length, 0, 0, 1, 0, 0, 1,
	}
}
