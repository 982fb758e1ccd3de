package graphics

import "image"

// QuadBuffers holds the GPU objects backing a single textured quad
type QuadBuffers struct {
	VAO         uint32
	PositionVBO uint32
	TexCoordVBO uint32
}

// Device is the subset of the graphics API the renderables need.
// GLDevice is the real implementation; graphicstest.Device records calls for tests.
type Device interface {
	// Resource creation and destruction
	CompileProgram(vertexSrc, fragmentSrc string) (uint32, error)
	DeleteProgram(program uint32)
	CreateQuad(positions, texCoords []float32) (QuadBuffers, error)
	DeleteQuad(q QuadBuffers)
	CreateTexture(img *image.RGBA) (uint32, error)
	DeleteTexture(texture uint32)

	// Per-draw state
	UniformLocation(program uint32, name string) int32
	UseProgram(program uint32)
	Uniform1i(location int32, v int32)
	Uniform2f(location int32, x, y float32)
	BindTexture2D(unit uint32, texture uint32)
	BindVertexArray(vao uint32)
	SetBlend(enabled bool)
	DrawTriangleFan(first, count int32)

	// Frame state
	ClearColor(r, g, b, a float32)
	Clear()
	Viewport(width, height int32)
}
