// Package shader provides OpenGL shader compilation and uniform access.
package shader

import (
	"fmt"
	"os"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/seiya-kumada/meshview/pkg/math"
)

// Program wraps a linked GLSL program with cached uniform locations.
type Program struct {
	id       uint32
	uniforms map[string]int32
}

// Compile compiles vertex and fragment sources and links them into a
// program. Returns an error naming the failing stage with the compiler
// diagnostic, or the linker diagnostic on link failure.
func Compile(vertexSrc, fragmentSrc string) (*Program, error) {
	vertShader, err := compileStage(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vertShader)

	fragShader, err := compileStage(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(fragShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertShader)
	gl.AttachShader(program, fragShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetProgramInfoLog(program, logLen, nil, &log[0])
		gl.DeleteProgram(program)
		return nil, fmt.Errorf("shader program linking failed: %s", string(log))
	}

	return &Program{
		id:       program,
		uniforms: make(map[string]int32),
	}, nil
}

// CompileFromFiles reads GLSL sources from disk and compiles them.
func CompileFromFiles(vertexPath, fragmentPath string) (*Program, error) {
	vertexSrc, err := os.ReadFile(vertexPath)
	if err != nil {
		return nil, fmt.Errorf("reading vertex shader %s: %w", vertexPath, err)
	}
	fragmentSrc, err := os.ReadFile(fragmentPath)
	if err != nil {
		return nil, fmt.Errorf("reading fragment shader %s: %w", fragmentPath, err)
	}
	return Compile(string(vertexSrc), string(fragmentSrc))
}

// compileStage compiles a single shader of the given type.
func compileStage(source string, shaderType uint32, name string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetShaderInfoLog(shader, logLen, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader compilation failed: %s", name, string(log))
	}

	return shader, nil
}

// Use activates the program.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// Delete releases the program.
func (p *Program) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}

// SetBool sets a boolean uniform.
func (p *Program) SetBool(name string, value bool) {
	v := int32(0)
	if value {
		v = 1
	}
	gl.Uniform1i(p.location(name), v)
}

// SetInt sets an integer uniform.
func (p *Program) SetInt(name string, value int32) {
	gl.Uniform1i(p.location(name), value)
}

// SetFloat sets a float uniform.
func (p *Program) SetFloat(name string, value float32) {
	gl.Uniform1f(p.location(name), value)
}

// SetVec3 sets a vec3 uniform.
func (p *Program) SetVec3(name string, value math.Vec3) {
	gl.Uniform3f(p.location(name), value.X, value.Y, value.Z)
}

// SetMat4 sets a mat4 uniform.
func (p *Program) SetMat4(name string, value math.Mat4) {
	gl.UniformMatrix4fv(p.location(name), 1, false, value.Ptr())
}

// location returns the uniform location for name, caching the lookup
// after the first use.
func (p *Program) location(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	p.uniforms[name] = loc
	return loc
}
