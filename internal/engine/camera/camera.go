// Package camera provides the camera used for model viewing.
package camera

import (
	"github.com/seiya-kumada/meshview/pkg/math"
)

// FixedCamera looks at the scene along a direction locked at
// construction time. Scrolling dollies the camera along that
// direction without re-aiming it.
type FixedCamera struct {
	Position math.Vec3
	Front    math.Vec3
	Up       math.Vec3

	// Sensitivity applied to scroll deltas in Dolly.
	ScrollSensitivity float32
}

// NewFixedCamera places the camera at (distance, distance, distance)
// aimed at the origin. The front vector is captured once and never
// recomputed, so dollying past the origin keeps the same heading.
func NewFixedCamera(distance, scrollSensitivity float32) *FixedCamera {
	position := math.Vec3{X: distance, Y: distance, Z: distance}
	front := position.Negate().Normalize()

	return &FixedCamera{
		Position:          position,
		Front:             front,
		Up:                math.Vec3{X: 0, Y: 1, Z: 0},
		ScrollSensitivity: scrollSensitivity,
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c *FixedCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Position.Add(c.Front), c.Up)
}

// Dolly moves the camera along its front vector by delta scaled with
// the scroll sensitivity. Positive deltas move toward the model. The
// motion is unclamped: successive deltas accumulate additively.
func (c *FixedCamera) Dolly(delta float32) {
	c.Position = c.Position.Add(c.Front.Scale(delta * c.ScrollSensitivity))
}
