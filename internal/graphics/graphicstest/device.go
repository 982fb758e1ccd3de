// Package graphicstest provides a recording graphics.Device for tests that
// cannot open a GL context.
package graphicstest

import (
	"fmt"
	"image"

	"mini-2d/internal/graphics"
)

// Draw captures the bound state at the time of a DrawTriangleFan call
type Draw struct {
	Program uint32
	VAO     uint32
	Texture uint32
	Blend   bool
	First   int32
	Count   int32
}

// Device records every call and tracks live resources and bindings
type Device struct {
	// Errors returned by the next matching call, when set
	CompileErr error
	QuadErr    error
	TextureErr error

	Calls []string
	Draws []Draw

	LivePrograms map[uint32]bool
	LiveQuads    map[uint32]graphics.QuadBuffers
	LiveTextures map[uint32]bool

	DeletedPrograms map[uint32]int
	DeletedQuads    map[uint32]int
	DeletedTextures map[uint32]int
	TextureUploads  int

	BoundProgram  uint32
	BoundVAO      uint32
	BoundTextures map[uint32]uint32
	Blend         bool

	ClearedTo [4]float32
	Clears    int
	ViewportW int32
	ViewportH int32

	nextID    uint32
	locations map[string]int32
	names     map[int32]string
	uniforms  map[string][2]float32
	ints      map[string]int32
}

// NewDevice returns an empty recording device
func NewDevice() *Device {
	return &Device{
		LivePrograms:    make(map[uint32]bool),
		LiveQuads:       make(map[uint32]graphics.QuadBuffers),
		LiveTextures:    make(map[uint32]bool),
		DeletedPrograms: make(map[uint32]int),
		DeletedQuads:    make(map[uint32]int),
		DeletedTextures: make(map[uint32]int),
		BoundTextures:   make(map[uint32]uint32),
		locations:       make(map[string]int32),
		names:           make(map[int32]string),
		uniforms:        make(map[string][2]float32),
		ints:            make(map[string]int32),
	}
}

func (d *Device) id() uint32 {
	d.nextID++
	return d.nextID
}

func (d *Device) record(format string, args ...any) {
	d.Calls = append(d.Calls, fmt.Sprintf(format, args...))
}

// Reset forgets recorded calls and draws but keeps resource state
func (d *Device) Reset() {
	d.Calls = nil
	d.Draws = nil
}

func (d *Device) CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	if d.CompileErr != nil {
		err := d.CompileErr
		d.CompileErr = nil
		d.record("CompileProgram error")
		return 0, err
	}
	p := d.id()
	d.LivePrograms[p] = true
	d.record("CompileProgram %d", p)
	return p, nil
}

func (d *Device) DeleteProgram(program uint32) {
	d.DeletedPrograms[program]++
	delete(d.LivePrograms, program)
	d.record("DeleteProgram %d", program)
}

func (d *Device) CreateQuad(positions, texCoords []float32) (graphics.QuadBuffers, error) {
	if d.QuadErr != nil {
		err := d.QuadErr
		d.QuadErr = nil
		return graphics.QuadBuffers{}, err
	}
	q := graphics.QuadBuffers{VAO: d.id(), PositionVBO: d.id(), TexCoordVBO: d.id()}
	d.LiveQuads[q.VAO] = q
	d.record("CreateQuad %d", q.VAO)
	return q, nil
}

func (d *Device) DeleteQuad(q graphics.QuadBuffers) {
	d.DeletedQuads[q.VAO]++
	delete(d.LiveQuads, q.VAO)
	d.record("DeleteQuad %d", q.VAO)
}

func (d *Device) CreateTexture(img *image.RGBA) (uint32, error) {
	if d.TextureErr != nil {
		err := d.TextureErr
		d.TextureErr = nil
		return 0, err
	}
	t := d.id()
	d.LiveTextures[t] = true
	d.TextureUploads++
	d.record("CreateTexture %d", t)
	return t, nil
}

func (d *Device) DeleteTexture(texture uint32) {
	d.DeletedTextures[texture]++
	delete(d.LiveTextures, texture)
	d.record("DeleteTexture %d", texture)
}

func (d *Device) UniformLocation(program uint32, name string) int32 {
	key := fmt.Sprintf("%d/%s", program, name)
	if loc, ok := d.locations[key]; ok {
		return loc
	}
	loc := int32(len(d.locations))
	d.locations[key] = loc
	d.names[loc] = key
	return loc
}

func (d *Device) UseProgram(program uint32) {
	d.BoundProgram = program
	d.record("UseProgram %d", program)
}

func (d *Device) Uniform1i(location int32, v int32) {
	d.ints[d.names[location]] = v
	d.record("Uniform1i %s %d", d.names[location], v)
}

func (d *Device) Uniform2f(location int32, x, y float32) {
	d.uniforms[d.names[location]] = [2]float32{x, y}
	d.record("Uniform2f %s %g %g", d.names[location], x, y)
}

// Vec2 returns the last value written to a vec2 uniform of program
func (d *Device) Vec2(program uint32, name string) ([2]float32, bool) {
	v, ok := d.uniforms[fmt.Sprintf("%d/%s", program, name)]
	return v, ok
}

// Int returns the last value written to an int uniform of program
func (d *Device) Int(program uint32, name string) (int32, bool) {
	v, ok := d.ints[fmt.Sprintf("%d/%s", program, name)]
	return v, ok
}

func (d *Device) BindTexture2D(unit uint32, texture uint32) {
	d.BoundTextures[unit] = texture
	d.record("BindTexture2D %d %d", unit, texture)
}

func (d *Device) BindVertexArray(vao uint32) {
	d.BoundVAO = vao
	d.record("BindVertexArray %d", vao)
}

func (d *Device) SetBlend(enabled bool) {
	d.Blend = enabled
	d.record("SetBlend %t", enabled)
}

func (d *Device) DrawTriangleFan(first, count int32) {
	d.Draws = append(d.Draws, Draw{
		Program: d.BoundProgram,
		VAO:     d.BoundVAO,
		Texture: d.BoundTextures[0],
		Blend:   d.Blend,
		First:   first,
		Count:   count,
	})
	d.record("DrawTriangleFan %d %d", first, count)
}

func (d *Device) ClearColor(r, g, b, a float32) {
	d.ClearedTo = [4]float32{r, g, b, a}
	d.record("ClearColor")
}

func (d *Device) Clear() {
	d.Clears++
	d.record("Clear")
}

func (d *Device) Viewport(width, height int32) {
	d.ViewportW, d.ViewportH = width, height
	d.record("Viewport %d %d", width, height)
}

// SolidImage returns a w×h opaque RGBA image, handy as a fake decode result
func SolidImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}
	return img
}
