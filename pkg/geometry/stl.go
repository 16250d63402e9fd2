package geometry

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/seiya-kumada/meshview/pkg/math"
)

// Binary STL layout: 80-byte header, uint32 triangle count, then one
// 50-byte record per triangle (normal, three vertices, attribute word).
const (
	stlHeaderSize   = 80
	stlCountSize    = 4
	stlTriangleSize = 50
)

// stlRecord is one triangle record of a binary STL file.
type stlRecord struct {
	Normal [3]float32
	Vertex [3][3]float32
	Attr   uint16
}

// LoadSTL reads an STL file (binary or ASCII, autodetected) and returns
// the raw triangle soup. Derived fields are left for Load to compute.
func LoadSTL(path string) (*Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrOpenFailed, err)
	}
	return ParseSTL(data)
}

// ParseSTL parses STL data, detecting the binary and ASCII variants.
// ASCII files start with "solid", but so do some binary exports, so the
// binary size arithmetic is checked first.
func ParseSTL(data []byte) (*Mesh, error) {
	if isBinarySTL(data) {
		return parseBinarySTL(data)
	}
	if bytes.HasPrefix(bytes.TrimLeft(data, " \t\r\n"), []byte("solid")) {
		return parseASCIISTL(data)
	}
	return nil, fmt.Errorf("%w: not a recognizable STL file", ErrOpenFailed)
}

// isBinarySTL reports whether the declared triangle count matches the
// binary file size exactly.
func isBinarySTL(data []byte) bool {
	if len(data) < stlHeaderSize+stlCountSize {
		return false
	}
	count := binary.LittleEndian.Uint32(data[stlHeaderSize:])
	return len(data) == stlHeaderSize+stlCountSize+int(count)*stlTriangleSize
}

func parseBinarySTL(data []byte) (*Mesh, error) {
	count := binary.LittleEndian.Uint32(data[stlHeaderSize:])
	r := bytes.NewReader(data[stlHeaderSize+stlCountSize:])

	mesh := &Mesh{Triangles: make([]Triangle, 0, count)}
	for i := uint32(0); i < count; i++ {
		var rec stlRecord
		if err := binary.Read(r, binary.LittleEndian, &rec); err != nil {
			return nil, fmt.Errorf("%w: truncated triangle record %d: %s", ErrOpenFailed, i, err)
		}

		v0 := math.Vec3{X: rec.Vertex[0][0], Y: rec.Vertex[0][1], Z: rec.Vertex[0][2]}
		v1 := math.Vec3{X: rec.Vertex[1][0], Y: rec.Vertex[1][1], Z: rec.Vertex[1][2]}
		v2 := math.Vec3{X: rec.Vertex[2][0], Y: rec.Vertex[2][1], Z: rec.Vertex[2][2]}

		normal := math.Vec3{X: rec.Normal[0], Y: rec.Normal[1], Z: rec.Normal[2]}
		hasNormal := normal.Length() > degenerateEpsilon
		if hasNormal {
			normal = normal.Normalize()
		}

		mesh.Triangles = append(mesh.Triangles, newTriangle(v0, v1, v2, normal, hasNormal))
	}

	return mesh, nil
}

func parseASCIISTL(data []byte) (*Mesh, error) {
	mesh := &Mesh{}

	var (
		normal    math.Vec3
		hasNormal bool
		verts     []math.Vec3
	)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "facet":
			// "facet normal nx ny nz"
			if len(fields) >= 5 && fields[1] == "normal" {
				n, err := parseVec3(fields[2:5])
				if err != nil {
					return nil, fmt.Errorf("%w: line %d: %s", ErrOpenFailed, line, err)
				}
				hasNormal = n.Length() > degenerateEpsilon
				if hasNormal {
					normal = n.Normalize()
				}
			}
			verts = verts[:0]

		case "vertex":
			if len(fields) < 4 {
				return nil, fmt.Errorf("%w: line %d: short vertex statement", ErrOpenFailed, line)
			}
			v, err := parseVec3(fields[1:4])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %s", ErrOpenFailed, line, err)
			}
			verts = append(verts, v)

		case "endfacet":
			if len(verts) != 3 {
				return nil, fmt.Errorf("%w: line %d: facet with %d vertices", ErrOpenFailed, line, len(verts))
			}
			mesh.Triangles = append(mesh.Triangles, newTriangle(verts[0], verts[1], verts[2], normal, hasNormal))
			hasNormal = false
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrOpenFailed, err)
	}

	return mesh, nil
}

func parseVec3(fields []string) (math.Vec3, error) {
	var out [3]float32
	for i, f := range fields[:3] {
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return math.Vec3{}, fmt.Errorf("bad float %q", f)
		}
		out[i] = float32(v)
	}
	return math.Vec3{X: out[0], Y: out[1], Z: out[2]}, nil
}
