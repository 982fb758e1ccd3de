package sprite

import (
	"errors"
	"image"
	"testing"

	"mini-2d/internal/graphics"
	"mini-2d/internal/graphics/graphicstest"
	"mini-2d/internal/input"
	"mini-2d/internal/player"

	"github.com/go-gl/mathgl/mgl32"
)

func TestRenderFollowsPlayer(t *testing.T) {
	dev := graphicstest.NewDevice()
	cache := graphics.NewTextureCache(dev, "textures", graphics.WithDecoder(func(string) (*image.RGBA, error) {
		return graphicstest.SolidImage(8, 8), nil
	}))
	p := player.New(mgl32.Vec2{}, mgl32.Vec2{0.2, 0.3}, 0.01)

	s, err := New(dev, cache, p, "robot.png")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	p.Apply(input.ActionMoveRight)
	s.Render()

	d := dev.Draws[0]
	if !d.Blend {
		t.Error("player sprite must be drawn with blending")
	}
	if dev.Blend {
		t.Error("blending must be off after the sprite draw")
	}
	if v, ok := dev.Vec2(d.Program, "offset"); !ok || v != [2]float32{0.01, 0} {
		t.Errorf("offset = %v (set=%t)", v, ok)
	}
}

func TestNewMissingTexture(t *testing.T) {
	dev := graphicstest.NewDevice()
	cache := graphics.NewTextureCache(dev, t.TempDir())
	p := player.New(mgl32.Vec2{}, mgl32.Vec2{0.2, 0.3}, 0.01)

	s, err := New(dev, cache, p, "robot.png")
	if s != nil {
		t.Error("expected no sprite")
	}
	var loadErr *graphics.LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *LoadError, got %T: %v", err, err)
	}
}
