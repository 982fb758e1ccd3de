package graphics

import (
	"fmt"
	"image"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// GLDevice implements Device on an OpenGL 4.1 core context.
// The context must be current on the calling thread.
type GLDevice struct{}

// NewGLDevice loads the OpenGL function pointers for the current context
func NewGLDevice() (*GLDevice, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("init OpenGL bindings: %w", err)
	}
	return &GLDevice{}, nil
}

// Version returns the driver's GL_VERSION string
func (d *GLDevice) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// CompileProgram compiles both stages and links them into a program
func (d *GLDevice) CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertexShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fragmentShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	// Shaders are no longer needed once linking was attempted
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)

		return 0, &ShaderLinkError{Log: log}
	}
	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)

		stage := "vertex"
		if shaderType == gl.FRAGMENT_SHADER {
			stage = "fragment"
		}
		return 0, &ShaderCompileError{Stage: stage, Log: log}
	}
	return shader, nil
}

// DeleteProgram deletes a linked program
func (d *GLDevice) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

// CreateQuad uploads vec3 positions to attribute 0 and vec2 texture coordinates to attribute 1
func (d *GLDevice) CreateQuad(positions, texCoords []float32) (QuadBuffers, error) {
	if len(positions) == 0 || len(positions)%3 != 0 {
		return QuadBuffers{}, fmt.Errorf("positions must be non-empty vec3 data, got %d floats", len(positions))
	}
	if len(texCoords)/2 != len(positions)/3 || len(texCoords)%2 != 0 {
		return QuadBuffers{}, fmt.Errorf("texture coordinates do not match %d vertices", len(positions)/3)
	}

	var q QuadBuffers
	gl.GenVertexArrays(1, &q.VAO)
	gl.BindVertexArray(q.VAO)

	gl.GenBuffers(1, &q.PositionVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, q.PositionVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(positions)*4, gl.Ptr(positions), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.GenBuffers(1, &q.TexCoordVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, q.TexCoordVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(texCoords)*4, gl.Ptr(texCoords), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 2*4, 0)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return q, nil
}

// DeleteQuad deletes the quad's buffers and vertex array
func (d *GLDevice) DeleteQuad(q QuadBuffers) {
	if q.PositionVBO != 0 {
		gl.DeleteBuffers(1, &q.PositionVBO)
	}
	if q.TexCoordVBO != 0 {
		gl.DeleteBuffers(1, &q.TexCoordVBO)
	}
	if q.VAO != 0 {
		gl.DeleteVertexArrays(1, &q.VAO)
	}
}

// CreateTexture uploads RGBA pixels with repeat wrapping, linear filtering and mipmaps
func (d *GLDevice) CreateTexture(img *image.RGBA) (uint32, error) {
	size := img.Rect.Size()
	if size.X == 0 || size.Y == 0 {
		return 0, fmt.Errorf("empty image")
	}

	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(size.X),
		int32(size.Y),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pix),
	)
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)

	return texture, nil
}

// DeleteTexture deletes a texture
func (d *GLDevice) DeleteTexture(texture uint32) {
	gl.DeleteTextures(1, &texture)
}

// UniformLocation looks up a uniform in program
func (d *GLDevice) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

// UseProgram binds program; 0 unbinds
func (d *GLDevice) UseProgram(program uint32) { gl.UseProgram(program) }

// Uniform1i sets an int or sampler uniform on the bound program
func (d *GLDevice) Uniform1i(location int32, v int32) { gl.Uniform1i(location, v) }

// Uniform2f sets a vec2 uniform on the bound program
func (d *GLDevice) Uniform2f(location int32, x, y float32) { gl.Uniform2f(location, x, y) }

// BindTexture2D binds texture to the given texture unit
func (d *GLDevice) BindTexture2D(unit uint32, texture uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, texture)
}

// BindVertexArray binds vao; 0 unbinds
func (d *GLDevice) BindVertexArray(vao uint32) { gl.BindVertexArray(vao) }

// SetBlend toggles standard alpha blending
func (d *GLDevice) SetBlend(enabled bool) {
	if enabled {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
		return
	}
	gl.Disable(gl.BLEND)
}

// DrawTriangleFan draws count vertices of the bound vertex array
func (d *GLDevice) DrawTriangleFan(first, count int32) {
	gl.DrawArrays(gl.TRIANGLE_FAN, first, count)
}

// ClearColor sets the colour used by Clear
func (d *GLDevice) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }

// Clear clears the colour and depth buffers
func (d *GLDevice) Clear() { gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT) }

// Viewport maps NDC to a width x height framebuffer
func (d *GLDevice) Viewport(width, height int32) { gl.Viewport(0, 0, width, height) }
