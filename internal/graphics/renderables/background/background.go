package background

import (
	_ "embed"

	"mini-2d/internal/graphics"
	"mini-2d/internal/graphics/renderables/quad"
	renderer "mini-2d/internal/graphics/renderer"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	//go:embed shaders/background.vert
	VertShader string
	//go:embed shaders/background.frag
	FragShader string
)

// ScrollState is the background's texture offset. Offset.X stays in [0, 1).
type ScrollState struct {
	Speed  float32
	Offset mgl32.Vec2
}

// Advance moves the offset by Speed*dt and snaps back to 0 once it reaches 1.
// The snap is a reset, not a modulo: 0.5 speed over 3s lands on 0, not 0.5.
func (s *ScrollState) Advance(dt float32) {
	if s.Speed <= 0 || dt <= 0 {
		return
	}
	s.Offset[0] += s.Speed * dt
	if s.Offset[0] >= 1.0 {
		s.Offset[0] = 0
	}
}

// Background is a full-screen textured quad that scrolls horizontally
type Background struct {
	quad   *quad.Quad
	scroll ScrollState
}

var (
	_ renderer.Renderable = (*Background)(nil)
	_ renderer.Updater    = (*Background)(nil)
)

// New creates the background for texture; scrollSpeed 0 gives a static image
func New(device graphics.Device, textures *graphics.TextureCache, texture string, scrollSpeed float32) (*Background, error) {
	b := &Background{}
	b.SetScrollSpeed(scrollSpeed)

	q, err := quad.New(device, textures, quad.Options{
		Name:           "background",
		VertexShader:   VertShader,
		FragmentShader: FragShader,
		Texture:        texture,
		Positions:      quad.FullScreen(),
		TexCoords:      quad.TexCoordsTopDown(),
		Uniforms: func(s *graphics.Shader) {
			s.SetVector2("texOffset", b.scroll.Offset)
		},
	})
	if err != nil {
		return nil, err
	}
	b.quad = q
	return b, nil
}

// SetScrollSpeed sets texture widths per second; negative speeds are treated as 0
func (b *Background) SetScrollSpeed(speed float32) {
	if speed < 0 {
		speed = 0
	}
	b.scroll.Speed = speed
}

// Scroll returns the current scroll state
func (b *Background) Scroll() ScrollState { return b.scroll }

// Update advances the scroll offset by dt seconds
func (b *Background) Update(dt float64) {
	b.scroll.Advance(float32(dt))
}

// Render draws the background at its current scroll offset
func (b *Background) Render() {
	b.quad.Render()
}

// Dispose cleans up OpenGL resources
func (b *Background) Dispose() {
	b.quad.Dispose()
}
