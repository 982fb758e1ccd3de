package input

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type recorder struct{ actions []Action }

func (r *recorder) Apply(a Action) { r.actions = append(r.actions, a) }

type fakeWindow struct{ closeRequests int }

func (w *fakeWindow) SetShouldClose(v bool) {
	if v {
		w.closeRequests++
	}
}

func TestEdgeDetection(t *testing.T) {
	im := NewInputManager()

	im.HandleKeyEvent(glfw.KeyW, glfw.Press)
	if !im.IsActive(ActionMoveUp) || im.JustReleased(ActionMoveUp) {
		t.Fatal("W press should mark move_up active")
	}

	im.HandleKeyEvent(glfw.KeyW, glfw.Repeat)
	if !im.IsActive(ActionMoveUp) {
		t.Error("repeat keeps the action active")
	}

	im.HandleKeyEvent(glfw.KeyW, glfw.Release)
	if im.IsActive(ActionMoveUp) || !im.JustReleased(ActionMoveUp) {
		t.Error("release should clear active and set just released")
	}

	im.PostUpdate()
	if im.JustReleased(ActionMoveUp) {
		t.Error("just-released must reset after PostUpdate")
	}
}

func TestReleaseWithoutPress(t *testing.T) {
	im := NewInputManager()
	im.HandleKeyEvent(glfw.KeyEscape, glfw.Release)
	if im.JustReleased(ActionQuit) {
		t.Error("a release that was never pressed is not an edge")
	}
}

func TestUnboundKey(t *testing.T) {
	im := NewInputManager()
	if got := im.HandleKeyEvent(glfw.KeyZ, glfw.Press); got != nil {
		t.Errorf("unbound key returned %v", got)
	}
	if im.IsActive(ActionCount) || im.JustReleased(-1) {
		t.Error("out-of-range actions are never active")
	}
}

func TestBindKey(t *testing.T) {
	im := NewInputManager()
	im.BindKey(glfw.KeyUp, ActionMoveUp)
	im.BindKey(glfw.KeyUp, ActionCount) // ignored

	got := im.HandleKeyEvent(glfw.KeyUp, glfw.Press)
	if len(got) != 1 || got[0] != ActionMoveUp {
		t.Fatalf("KeyUp actions = %v", got)
	}
	if !im.IsActive(ActionMoveUp) {
		t.Error("KeyUp should drive move_up")
	}
}

func TestRouterMovement(t *testing.T) {
	rec := &recorder{}
	r := NewRouter(NewInputManager(), rec, &fakeWindow{})

	r.HandleKey(glfw.KeyD, glfw.Press)
	r.HandleKey(glfw.KeyD, glfw.Repeat)
	r.HandleKey(glfw.KeyD, glfw.Release)
	r.HandleKey(glfw.KeyS, glfw.Press)

	want := []Action{ActionMoveRight, ActionMoveRight, ActionMoveDown}
	if len(rec.actions) != len(want) {
		t.Fatalf("got %v, want %v", rec.actions, want)
	}
	for i := range want {
		if rec.actions[i] != want[i] {
			t.Errorf("action %d = %v, want %v", i, rec.actions[i], want[i])
		}
	}
}

func TestRouterEscapeClosesOnRelease(t *testing.T) {
	w := &fakeWindow{}
	im := NewInputManager()
	r := NewRouter(im, nil, w)

	r.HandleKey(glfw.KeyEscape, glfw.Press)
	if w.closeRequests != 0 {
		t.Fatal("escape press must not close the window")
	}
	// Press and release land in different frames
	im.PostUpdate()

	r.HandleKey(glfw.KeyEscape, glfw.Release)
	if w.closeRequests != 1 {
		t.Errorf("escape release should request close once, got %d", w.closeRequests)
	}
	if !im.JustReleased(ActionQuit) {
		t.Error("quit release edge should be visible for the rest of the frame")
	}
}

func TestRouterIgnoresStrayEscapeRelease(t *testing.T) {
	w := &fakeWindow{}
	r := NewRouter(NewInputManager(), nil, w)

	r.HandleKey(glfw.KeyEscape, glfw.Release)
	if w.closeRequests != 0 {
		t.Errorf("release without press closed the window %d times", w.closeRequests)
	}

	// Pressing again after a release in the same frame is not a close
	r.HandleKey(glfw.KeyEscape, glfw.Press)
	r.HandleKey(glfw.KeyEscape, glfw.Release)
	r.HandleKey(glfw.KeyEscape, glfw.Press)
	if w.closeRequests != 1 {
		t.Errorf("expected exactly one close request, got %d", w.closeRequests)
	}
}

func TestRouterWithoutTarget(t *testing.T) {
	r := NewRouter(NewInputManager(), nil, nil)
	r.HandleKey(glfw.KeyW, glfw.Press)
	r.HandleKey(glfw.KeyEscape, glfw.Press)
	r.HandleKey(glfw.KeyEscape, glfw.Release)
}

func TestRouterKeyCallback(t *testing.T) {
	rec := &recorder{}
	r := NewRouter(NewInputManager(), rec, &fakeWindow{})
	cb := r.KeyCallback()
	cb(nil, glfw.KeyW, 0, glfw.Press, 0)
	if len(rec.actions) != 1 || rec.actions[0] != ActionMoveUp {
		t.Errorf("callback did not route W: %v", rec.actions)
	}
}
