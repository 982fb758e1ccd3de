package sprite

import (
	_ "embed"

	"mini-2d/internal/graphics"
	"mini-2d/internal/graphics/renderables/quad"
	renderer "mini-2d/internal/graphics/renderer"
	"mini-2d/internal/player"
)

var (
	//go:embed shaders/sprite.vert
	VertShader string
	//go:embed shaders/sprite.frag
	FragShader string
)

// Sprite draws a player as an alpha-blended textured quad at its position
type Sprite struct {
	player *player.Player
	quad   *quad.Quad
}

var _ renderer.Renderable = (*Sprite)(nil)

// New builds the quad from the player's size; later size changes are not picked up
func New(device graphics.Device, textures *graphics.TextureCache, p *player.Player, texture string) (*Sprite, error) {
	s := &Sprite{player: p}

	q, err := quad.New(device, textures, quad.Options{
		Name:           "player",
		VertexShader:   VertShader,
		FragmentShader: FragShader,
		Texture:        texture,
		Positions:      quad.Rect(p.Size.X(), p.Size.Y()),
		TexCoords:      quad.TexCoordsTopDown(),
		Blend:          true,
		Uniforms: func(sh *graphics.Shader) {
			sh.SetVector2("offset", s.player.Position)
		},
	})
	if err != nil {
		return nil, err
	}
	s.quad = q
	return s, nil
}

// Render draws the sprite at the player position
func (s *Sprite) Render() {
	s.quad.Render()
}

// Dispose cleans up OpenGL resources
func (s *Sprite) Dispose() {
	s.quad.Dispose()
}
