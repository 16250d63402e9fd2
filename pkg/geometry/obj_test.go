package geometry

import (
	"errors"
	"testing"

	"github.com/seiya-kumada/meshview/pkg/math"
)

func TestLoadOBJ_QuadFanTriangulation(t *testing.T) {
	src := `# unit quad in the xy plane
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`
	path := writeTempFile(t, "quad.obj", []byte(src))

	mesh, err := LoadOBJ(path)
	if err != nil {
		t.Fatalf("LoadOBJ failed: %v", err)
	}

	if len(mesh.Triangles) != 2 {
		t.Fatalf("quad should fan into 2 triangles, got %d", len(mesh.Triangles))
	}
	// No source normals: both triangles get a synthesized +Z normal.
	for i, tri := range mesh.Triangles {
		if !approxVec(tri.Normal, (math.Vec3{Z: 1})) {
			t.Errorf("triangle %d Normal = %v, want (0,0,1)", i, tri.Normal)
		}
	}
}

func TestLoadOBJ_FlatNormalFromFirstVertex(t *testing.T) {
	// The face references two different normals; the first one wins for
	// the whole face.
	src := `v 0 0 0
v 1 0 0
v 0 1 0
vn 1 0 0
vn 0 1 0
f 1//1 2//2 3//2
`
	path := writeTempFile(t, "flat.obj", []byte(src))

	mesh, err := LoadOBJ(path)
	if err != nil {
		t.Fatalf("LoadOBJ failed: %v", err)
	}

	want := math.Vec3{X: 1}
	if !approxVec(mesh.Triangles[0].Normal, want) {
		t.Errorf("Normal = %v, want first referenced normal %v", mesh.Triangles[0].Normal, want)
	}
}

func TestLoadOBJ_NegativeIndices(t *testing.T) {
	src := `v 0 0 0
v 1 0 0
v 0 1 0
f -3 -2 -1
`
	path := writeTempFile(t, "neg.obj", []byte(src))

	mesh, err := LoadOBJ(path)
	if err != nil {
		t.Fatalf("LoadOBJ failed: %v", err)
	}
	if len(mesh.Triangles) != 1 {
		t.Fatalf("expected 1 triangle, got %d", len(mesh.Triangles))
	}
	if !approxVec(mesh.Triangles[0].V[1], (math.Vec3{X: 1})) {
		t.Errorf("V[1] = %v, want (1,0,0)", mesh.Triangles[0].V[1])
	}
}

func TestLoadOBJ_InvalidIndex(t *testing.T) {
	src := `v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 9
`
	path := writeTempFile(t, "bad.obj", []byte(src))

	_, err := LoadOBJ(path)
	if !errors.Is(err, ErrInvalidIndex) {
		t.Errorf("expected ErrInvalidIndex, got %v", err)
	}
}

func TestLoadOBJ_NoGeometry(t *testing.T) {
	path := writeTempFile(t, "empty.obj", []byte("# nothing here\n"))

	_, err := LoadOBJ(path)
	if !errors.Is(err, ErrNoGeometry) {
		t.Errorf("expected ErrNoGeometry, got %v", err)
	}
}
