package geometry

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/seiya-kumada/meshview/pkg/math"
)

// LoadGLTF reads a glTF or GLB file and returns the raw triangle soup.
// Only triangle primitives contribute geometry; points and lines are
// skipped, matching the triangulated output of the other importers.
func LoadGLTF(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrOpenFailed, err)
	}

	if len(doc.Meshes) == 0 {
		return nil, fmt.Errorf("%w: glTF document has no meshes", ErrNoGeometry)
	}

	mesh := &Mesh{}
	for _, m := range doc.Meshes {
		for _, prim := range m.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
				continue
			}
			if err := appendPrimitive(mesh, doc, prim); err != nil {
				return nil, fmt.Errorf("mesh %q: %w", m.Name, err)
			}
		}
	}

	return mesh, nil
}

func appendPrimitive(mesh *Mesh, doc *gltf.Document, prim *gltf.Primitive) error {
	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return nil
	}

	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return fmt.Errorf("%w: reading positions: %s", ErrOpenFailed, err)
	}

	var normals [][3]float32
	if normIdx, ok := prim.Attributes[gltf.NORMAL]; ok {
		normals, err = modeler.ReadNormal(doc, doc.Accessors[normIdx], nil)
		if err != nil {
			return fmt.Errorf("%w: reading normals: %s", ErrOpenFailed, err)
		}
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return fmt.Errorf("%w: reading indices: %s", ErrOpenFailed, err)
		}
	} else {
		// Non-indexed primitive: vertices come in sequential triples.
		indices = make([]uint32, len(positions))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]
		for _, idx := range [3]uint32{i0, i1, i2} {
			if int(idx) >= len(positions) {
				return fmt.Errorf("%w: index %d, vertex count %d", ErrInvalidIndex, idx, len(positions))
			}
		}

		v0 := toVec3(positions[i0])
		v1 := toVec3(positions[i1])
		v2 := toVec3(positions[i2])

		// Flat-shading approximation: the first indexed vertex normal
		// stands in for the whole triangle.
		var normal math.Vec3
		hasNormal := int(i0) < len(normals)
		if hasNormal {
			normal = toVec3(normals[i0]).Normalize()
		}

		mesh.Triangles = append(mesh.Triangles, newTriangle(v0, v1, v2, normal, hasNormal))
	}

	return nil
}

func toVec3(v [3]float32) math.Vec3 {
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}
