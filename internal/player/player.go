package player

import (
	"mini-2d/internal/input"

	"github.com/go-gl/mathgl/mgl32"
)

// Player is the keyboard-driven sprite's state in normalized device coordinates
type Player struct {
	Position mgl32.Vec2
	Size     mgl32.Vec2

	// Speed is the distance moved per key press or repeat event.
	// It is not scaled by frame time.
	Speed float32
}

// New creates a player at pos
func New(pos, size mgl32.Vec2, speed float32) *Player {
	return &Player{Position: pos, Size: size, Speed: speed}
}

// Apply moves the player one step for a movement action; other actions are ignored
func (p *Player) Apply(action input.Action) {
	switch action {
	case input.ActionMoveUp:
		p.Position[1] += p.Speed
	case input.ActionMoveDown:
		p.Position[1] -= p.Speed
	case input.ActionMoveLeft:
		p.Position[0] -= p.Speed
	case input.ActionMoveRight:
		p.Position[0] += p.Speed
	}
}
