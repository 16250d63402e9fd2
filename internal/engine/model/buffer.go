package model

import (
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"go.uber.org/zap"

	"github.com/seiya-kumada/meshview/internal/logger"
)

// Buffer owns a VAO/VBO pair holding an interleaved vertex stream.
type Buffer struct {
	vao         uint32
	vbo         uint32
	vertexCount int32
}

// NewBuffer uploads the vertex stream to the GPU and configures the
// attribute layout: position at location 0, color at 1, normal at 2.
func NewBuffer(vertices []float32) *Buffer {
	b := &Buffer{
		vertexCount: int32(len(vertices) / VertexComponents),
	}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	stride := int32(VertexComponents * 4)

	// Position attribute (location = 0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, nil)
	gl.EnableVertexAttribArray(0)

	// Color attribute (location = 1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(3*4)))
	gl.EnableVertexAttribArray(1)

	// Normal attribute (location = 2)
	gl.VertexAttribPointer(2, 3, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(6*4)))
	gl.EnableVertexAttribArray(2)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	logger.Debug("vertex buffer uploaded",
		zap.Uint32("vao", b.vao),
		zap.Uint32("vbo", b.vbo),
		zap.Int32("vertices", b.vertexCount),
	)
	return b
}

// Bind makes the buffer's VAO current.
func (b *Buffer) Bind() {
	gl.BindVertexArray(b.vao)
}

// Unbind clears the current VAO binding.
func (b *Buffer) Unbind() {
	gl.BindVertexArray(0)
}

// VertexCount returns the number of vertices in the buffer.
func (b *Buffer) VertexCount() int32 {
	return b.vertexCount
}

// Delete releases the GL objects.
func (b *Buffer) Delete() {
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
		b.vbo = 0
	}
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
		b.vao = 0
	}
}
