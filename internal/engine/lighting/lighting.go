// Package lighting provides the Phong light used for model shading.
package lighting

import (
	"github.com/seiya-kumada/meshview/internal/engine/shader"
	"github.com/seiya-kumada/meshview/pkg/math"
)

// Light is a single white point light with Phong shading terms.
type Light struct {
	Position math.Vec3
	Color    math.Vec3

	AmbientStrength  float32
	SpecularStrength float32
	Shininess        float32
}

// NewDefault returns the viewer's fixed light: white, above and to the
// side of the model, with moderate ambient and specular terms.
func NewDefault() *Light {
	return &Light{
		Position:         math.Vec3{X: 2, Y: 2, Z: 2},
		Color:            math.Vec3{X: 1, Y: 1, Z: 1},
		AmbientStrength:  0.1,
		SpecularStrength: 0.5,
		Shininess:        32.0,
	}
}

// Apply pushes the light's parameters to the program's uniforms. The
// program must be in use.
func (l *Light) Apply(program *shader.Program) {
	program.SetVec3("lightPos", l.Position)
	program.SetVec3("lightColor", l.Color)
	program.SetFloat("ambientStrength", l.AmbientStrength)
	program.SetFloat("specularStrength", l.SpecularStrength)
	program.SetFloat("shininess", l.Shininess)
}
