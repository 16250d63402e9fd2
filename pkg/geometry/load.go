package geometry

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Load reads the model file at path and returns a fully populated Mesh
// with bounds, center and scale computed. The format is chosen by file
// extension; unknown extensions are treated as STL, the common case for
// this viewer.
//
// Load is a single blocking call. On failure the returned error wraps one
// of ErrOpenFailed, ErrNoGeometry, ErrNoTriangles or ErrInvalidIndex and
// no partially built mesh is returned.
func Load(path string) (*Mesh, error) {
	var (
		mesh *Mesh
		err  error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		mesh, err = LoadOBJ(path)
	case ".gltf", ".glb":
		mesh, err = LoadGLTF(path)
	default:
		mesh, err = LoadSTL(path)
	}
	if err != nil {
		return nil, err
	}

	return finalize(mesh)
}

// finalize validates the extracted triangle soup and computes the derived
// normalization fields. Bounds must be computed before center and scale.
func finalize(mesh *Mesh) (*Mesh, error) {
	if len(mesh.Triangles) == 0 {
		return nil, fmt.Errorf("%w: model might contain only points or lines", ErrNoTriangles)
	}

	mesh.ComputeBounds()
	mesh.ComputeCenterAndScale()
	return mesh, nil
}
