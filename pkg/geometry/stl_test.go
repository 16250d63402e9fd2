package geometry

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/seiya-kumada/meshview/pkg/math"
)

// binaryTriangle is one input triangle for the binary STL fixture builder.
type binaryTriangle struct {
	normal [3]float32
	verts  [3][3]float32
}

// buildBinarySTL assembles a valid binary STL file in memory.
func buildBinarySTL(tris []binaryTriangle) []byte {
	buf := new(bytes.Buffer)

	var header [stlHeaderSize]byte
	copy(header[:], "meshview test fixture")
	buf.Write(header[:])

	binary.Write(buf, binary.LittleEndian, uint32(len(tris)))
	for _, tri := range tris {
		binary.Write(buf, binary.LittleEndian, tri.normal)
		binary.Write(buf, binary.LittleEndian, tri.verts)
		binary.Write(buf, binary.LittleEndian, uint16(0))
	}

	return buf.Bytes()
}

// cubeTriangles returns the 12 triangles of a 2x2x2 cube centered at the
// origin, without source normals.
func cubeTriangles() []binaryTriangle {
	quads := [6][4][3]float32{
		{{-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}, {1, -1, -1}},     // -Z
		{{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}},         // +Z
		{{-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}},     // -X
		{{1, -1, -1}, {1, 1, -1}, {1, 1, 1}, {1, -1, 1}},         // +X
		{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}},     // -Y
		{{-1, 1, -1}, {-1, 1, 1}, {1, 1, 1}, {1, 1, -1}},         // +Y
	}

	var tris []binaryTriangle
	for _, q := range quads {
		tris = append(tris,
			binaryTriangle{verts: [3][3]float32{q[0], q[1], q[2]}},
			binaryTriangle{verts: [3][3]float32{q[0], q[2], q[3]}},
		)
	}
	return tris
}

func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestParseSTL_Binary(t *testing.T) {
	data := buildBinarySTL([]binaryTriangle{{
		normal: [3]float32{0, 0, 1},
		verts:  [3][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
	}})

	mesh, err := ParseSTL(data)
	if err != nil {
		t.Fatalf("ParseSTL failed: %v", err)
	}

	if len(mesh.Triangles) != 1 {
		t.Fatalf("expected 1 triangle, got %d", len(mesh.Triangles))
	}
	tri := mesh.Triangles[0]
	if !approxVec(tri.Normal, (math.Vec3{X: 0, Y: 0, Z: 1})) {
		t.Errorf("Normal = %v, want (0,0,1)", tri.Normal)
	}
	if !approxVec(tri.V[1], (math.Vec3{X: 1})) {
		t.Errorf("V[1] = %v, want (1,0,0)", tri.V[1])
	}
}

func TestParseSTL_BinaryZeroNormalSynthesized(t *testing.T) {
	data := buildBinarySTL([]binaryTriangle{{
		// Zero normal: parser must synthesize from the edges.
		verts: [3][3]float32{{0, 0, 0}, {2, 0, 0}, {0, 2, 0}},
	}})

	mesh, err := ParseSTL(data)
	if err != nil {
		t.Fatalf("ParseSTL failed: %v", err)
	}

	want := math.Vec3{X: 0, Y: 0, Z: 1}
	if !approxVec(mesh.Triangles[0].Normal, want) {
		t.Errorf("synthesized Normal = %v, want %v", mesh.Triangles[0].Normal, want)
	}
}

func TestParseSTL_ASCII(t *testing.T) {
	src := `solid fixture
  facet normal 0 0 1
    outer loop
      vertex 0 0 0
      vertex 1 0 0
      vertex 0 1 0
    endloop
  endfacet
endsolid fixture
`
	mesh, err := ParseSTL([]byte(src))
	if err != nil {
		t.Fatalf("ParseSTL failed: %v", err)
	}

	if len(mesh.Triangles) != 1 {
		t.Fatalf("expected 1 triangle, got %d", len(mesh.Triangles))
	}
	if !approxVec(mesh.Triangles[0].Normal, (math.Vec3{Z: 1})) {
		t.Errorf("Normal = %v, want (0,0,1)", mesh.Triangles[0].Normal)
	}
}

func TestParseSTL_Garbage(t *testing.T) {
	_, err := ParseSTL([]byte("definitely not a model"))
	if !errors.Is(err, ErrOpenFailed) {
		t.Errorf("expected ErrOpenFailed, got %v", err)
	}
}

func TestLoadSTL_MissingFile(t *testing.T) {
	_, err := LoadSTL(filepath.Join(t.TempDir(), "missing.stl"))
	if !errors.Is(err, ErrOpenFailed) {
		t.Errorf("expected ErrOpenFailed, got %v", err)
	}
}

func TestLoad_ZeroTrianglesRejected(t *testing.T) {
	// A valid but empty ASCII STL file: parseable, zero triangles.
	path := writeTempFile(t, "empty.stl", []byte("solid empty\nendsolid empty\n"))

	mesh, err := Load(path)
	if !errors.Is(err, ErrNoTriangles) {
		t.Errorf("expected ErrNoTriangles, got %v", err)
	}
	if mesh != nil {
		t.Error("failed load must not return a partially built mesh")
	}
}

func TestLoad_Cube(t *testing.T) {
	path := writeTempFile(t, "cube.stl", buildBinarySTL(cubeTriangles()))

	mesh, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(mesh.Triangles) != 12 {
		t.Fatalf("expected 12 triangles, got %d", len(mesh.Triangles))
	}
	if !approxVec(mesh.Center, math.Vec3{}) {
		t.Errorf("Center = %v, want origin", mesh.Center)
	}
	if !approx(mesh.Scale, 0.5) {
		t.Errorf("Scale = %v, want 0.5", mesh.Scale)
	}
	if !approxVec(mesh.MinBounds, (math.Vec3{X: -1, Y: -1, Z: -1})) {
		t.Errorf("MinBounds = %v, want (-1,-1,-1)", mesh.MinBounds)
	}
	if !approxVec(mesh.MaxBounds, (math.Vec3{X: 1, Y: 1, Z: 1})) {
		t.Errorf("MaxBounds = %v, want (1,1,1)", mesh.MaxBounds)
	}
}
