package quad

import (
	"fmt"

	"mini-2d/internal/graphics"
	renderer "mini-2d/internal/graphics/renderer"
)

// VertexCount is the number of vertices in a quad drawn as a triangle fan
const VertexCount = 4

// Options describe one textured quad
type Options struct {
	Name           string
	VertexShader   string
	FragmentShader string
	Texture        string

	// Positions holds 4 vec3 corners in fan order; TexCoords the matching vec2s
	Positions []float32
	TexCoords []float32

	// Blend enables alpha blending for this quad's draw only
	Blend bool

	// Uniforms sets per-instance uniforms while the program is bound
	Uniforms func(s *graphics.Shader)
}

// Quad is a textured quad with its own program and buffers.
// The texture belongs to the cache it came from.
type Quad struct {
	device  graphics.Device
	shader  *graphics.Shader
	buffers graphics.QuadBuffers
	texture graphics.TextureHandle
	blend   bool
	setup   func(s *graphics.Shader)

	disposed bool
}

var _ renderer.Renderable = (*Quad)(nil)

// New compiles the program, uploads the vertex data and acquires the texture.
// On any failure everything created so far is released and the error returned.
func New(device graphics.Device, textures *graphics.TextureCache, opts Options) (*Quad, error) {
	if len(opts.Positions) != VertexCount*3 || len(opts.TexCoords) != VertexCount*2 {
		return nil, fmt.Errorf("%s: quad needs %d vec3 positions and vec2 texture coordinates", opts.Name, VertexCount)
	}

	shader, err := graphics.NewShader(device, opts.VertexShader, opts.FragmentShader)
	if err != nil {
		return nil, fmt.Errorf("%s shader: %w", opts.Name, err)
	}

	buffers, err := device.CreateQuad(opts.Positions, opts.TexCoords)
	if err != nil {
		shader.Delete()
		return nil, fmt.Errorf("%s buffers: %w", opts.Name, err)
	}

	texture, err := textures.Acquire(opts.Texture)
	if err != nil {
		device.DeleteQuad(buffers)
		shader.Delete()
		return nil, fmt.Errorf("%s texture: %w", opts.Name, err)
	}

	return &Quad{
		device:  device,
		shader:  shader,
		buffers: buffers,
		texture: texture,
		blend:   opts.Blend,
		setup:   opts.Uniforms,
	}, nil
}

// Texture returns the cached texture this quad samples
func (q *Quad) Texture() graphics.TextureHandle { return q.texture }

// Shader exposes the quad's program
func (q *Quad) Shader() *graphics.Shader { return q.shader }

// Render draws the quad and leaves program, texture and vertex array unbound.
// Rendering a disposed quad is a no-op.
func (q *Quad) Render() {
	if q.disposed {
		return
	}

	q.shader.Use()
	if q.setup != nil {
		q.setup(q.shader)
	}
	q.shader.SetInt("textureSampler", 0)
	q.device.BindTexture2D(0, uint32(q.texture))
	q.device.BindVertexArray(q.buffers.VAO)

	if q.blend {
		q.device.SetBlend(true)
	}
	q.device.DrawTriangleFan(0, VertexCount)
	if q.blend {
		q.device.SetBlend(false)
	}

	q.device.BindVertexArray(0)
	q.device.BindTexture2D(0, 0)
	q.device.UseProgram(0)
}

// Dispose deletes the buffers, vertex array and program once
func (q *Quad) Dispose() {
	if q.disposed {
		return
	}
	q.disposed = true
	q.device.DeleteQuad(q.buffers)
	q.shader.Delete()
}

// Rect returns positions for a w×h quad centred on the origin:
// top-left, top-right, bottom-right, bottom-left.
func Rect(w, h float32) []float32 {
	return []float32{
		-w / 2, h / 2, 0,
		w / 2, h / 2, 0,
		w / 2, -h / 2, 0,
		-w / 2, -h / 2, 0,
	}
}

// FullScreen covers the whole viewport in NDC
func FullScreen() []float32 {
	return Rect(2, 2)
}

// TexCoordsTopDown maps image row 0 to the top edge of the quad
func TexCoordsTopDown() []float32 {
	return []float32{
		0, 0,
		1, 0,
		1, 1,
		0, 1,
	}
}
