package input

import "github.com/go-gl/glfw/v3.3/glfw"

// Controller receives movement actions as they arrive
type Controller interface {
	Apply(action Action)
}

// CloseRequester is the part of a window that can be asked to close
type CloseRequester interface {
	SetShouldClose(value bool)
}

// Router forwards key events synchronously: movement while a key is down goes
// to the controller, releasing a held quit key closes the window.
type Router struct {
	inputs *InputManager
	target Controller
	window CloseRequester
}

// NewRouter creates a router; a nil target or window drops the matching events
func NewRouter(im *InputManager, target Controller, window CloseRequester) *Router {
	return &Router{inputs: im, target: target, window: window}
}

// HandleKey routes one key event
func (r *Router) HandleKey(key glfw.Key, action glfw.Action) {
	for _, act := range r.inputs.HandleKeyEvent(key, action) {
		switch {
		case act == ActionQuit:
			// A release without a tracked press is ignored
			if action == glfw.Release && r.inputs.JustReleased(act) && r.window != nil {
				r.window.SetShouldClose(true)
			}
		case act.IsMovement():
			if r.inputs.IsActive(act) && r.target != nil {
				r.target.Apply(act)
			}
		}
	}
}

// KeyCallback adapts HandleKey for glfw.Window.SetKeyCallback
func (r *Router) KeyCallback() glfw.KeyCallback {
	return func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		r.HandleKey(key, action)
	}
}
