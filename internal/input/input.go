package input

import "github.com/go-gl/glfw/v3.3/glfw"

// Action represents a logical game action, not a physical key
type Action int

// Action constants using iota
const (
	ActionMoveUp Action = iota
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionQuit
	ActionCount // Sentinel value for array sizing
)

var actionNames = [ActionCount]string{
	ActionMoveUp:    "move_up",
	ActionMoveDown:  "move_down",
	ActionMoveLeft:  "move_left",
	ActionMoveRight: "move_right",
	ActionQuit:      "quit",
}

func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// IsMovement reports whether the action moves the player
func (a Action) IsMovement() bool {
	return a >= ActionMoveUp && a <= ActionMoveRight
}

// InputManager tracks keyboard state and maps physical keys to logical actions.
// It is driven from glfw callbacks on the main thread.
type InputManager struct {
	// Key to action mapping (one key can map to multiple actions)
	keyToActions map[glfw.Key][]Action

	// Current frame state (indexed by Action)
	currentState [ActionCount]bool

	// Just released flags (reset each frame)
	justReleased [ActionCount]bool
}

// NewInputManager creates a new InputManager with default key bindings
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions: make(map[glfw.Key][]Action),
	}

	im.BindKey(glfw.KeyW, ActionMoveUp)
	im.BindKey(glfw.KeyS, ActionMoveDown)
	im.BindKey(glfw.KeyA, ActionMoveLeft)
	im.BindKey(glfw.KeyD, ActionMoveRight)
	im.BindKey(glfw.KeyEscape, ActionQuit)

	return im
}

// BindKey binds a physical key to a logical action
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}

	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// HandleKeyEvent processes a key event, updates internal state and returns the
// actions bound to the key
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) []Action {
	actions, exists := im.keyToActions[key]
	if !exists {
		return nil
	}

	isPressed := action == glfw.Press || action == glfw.Repeat
	for _, act := range actions {
		// Detect release edge immediately when event arrives
		if !isPressed && im.currentState[act] {
			im.justReleased[act] = true
		}
		im.currentState[act] = isPressed
	}
	return actions
}

// PostUpdate must be called at the end of each frame to reset edge flags
func (im *InputManager) PostUpdate() {
	for i := range ActionCount {
		im.justReleased[i] = false
	}
}

// IsActive returns true if the action is currently being held down
func (im *InputManager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	return im.currentState[action]
}

// JustReleased returns true only if the action was released in the current frame
func (im *InputManager) JustReleased(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	return im.justReleased[action]
}
