package geometry

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/seiya-kumada/meshview/pkg/math"
)

// LoadOBJ reads a Wavefront OBJ file and returns the raw triangle soup.
// Polygons with more than three vertices are fan-triangulated. When the
// face carries vertex-normal references, the normal of the face's first
// vertex is used flat for every produced triangle; otherwise the face
// normal is synthesized from the edges.
func LoadOBJ(path string) (*Mesh, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrOpenFailed, err)
	}
	defer file.Close()

	var (
		positions []math.Vec3
		normals   []math.Vec3
		mesh      = &Mesh{}
	)

	scanner := bufio.NewScanner(file)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if len(text) < 2 || text[0] == '#' {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("%w: line %d: short vertex statement", ErrOpenFailed, line)
			}
			v, err := parseVec3(fields[1:4])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %s", ErrOpenFailed, line, err)
			}
			positions = append(positions, v)

		case "vn":
			if len(fields) < 4 {
				return nil, fmt.Errorf("%w: line %d: short normal statement", ErrOpenFailed, line)
			}
			n, err := parseVec3(fields[1:4])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %s", ErrOpenFailed, line, err)
			}
			normals = append(normals, n)

		case "f":
			if err := appendFace(mesh, fields[1:], positions, normals, line); err != nil {
				return nil, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrOpenFailed, err)
	}

	if len(positions) == 0 {
		return nil, fmt.Errorf("%w: no vertex data in OBJ file", ErrNoGeometry)
	}

	return mesh, nil
}

// appendFace fan-triangulates one "f" statement into the mesh.
func appendFace(mesh *Mesh, args []string, positions, normals []math.Vec3, line int) error {
	if len(args) < 3 {
		return fmt.Errorf("%w: line %d: face with %d vertices", ErrOpenFailed, line, len(args))
	}

	posIdx := make([]int, len(args))
	normIdx := make([]int, len(args))
	for i, arg := range args {
		// Reference formats: v, v/vt, v//vn, v/vt/vn.
		parts := strings.Split(arg+"//", "/")

		pi, err := resolveIndex(parts[0], len(positions))
		if err != nil {
			return fmt.Errorf("%w: line %d: vertex %s", ErrInvalidIndex, line, arg)
		}
		posIdx[i] = pi

		ni := -1
		if parts[2] != "" {
			ni, err = resolveIndex(parts[2], len(normals))
			if err != nil {
				return fmt.Errorf("%w: line %d: normal %s", ErrInvalidIndex, line, arg)
			}
		}
		normIdx[i] = ni
	}

	// Flat-shading approximation: the first referenced vertex normal is
	// used for the whole face.
	var faceNormal math.Vec3
	hasNormal := normIdx[0] >= 0
	if hasNormal {
		faceNormal = normals[normIdx[0]].Normalize()
	}

	for i := 1; i < len(posIdx)-1; i++ {
		mesh.Triangles = append(mesh.Triangles, newTriangle(
			positions[posIdx[0]],
			positions[posIdx[i]],
			positions[posIdx[i+1]],
			faceNormal,
			hasNormal,
		))
	}
	return nil
}

// resolveIndex converts a one-based OBJ index (possibly negative, counting
// from the end) to a zero-based slice index, rejecting out-of-range values.
func resolveIndex(s string, length int) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		n += length
	} else {
		n--
	}
	if n < 0 || n >= length {
		return 0, fmt.Errorf("index %s out of range (%d elements)", s, length)
	}
	return n, nil
}
