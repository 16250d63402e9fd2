// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// BasicVertexShader is the vertex shader for lit model rendering.
//
//go:embed basic.vert
var BasicVertexShader string

// BasicFragmentShader is the fragment shader for lit model rendering.
//
//go:embed basic.frag
var BasicFragmentShader string
