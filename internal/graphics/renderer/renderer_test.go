package renderer

import (
	"testing"

	"mini-2d/internal/graphics/graphicstest"

	"github.com/go-gl/mathgl/mgl32"
)

type fakeRenderable struct {
	name string
	log  *[]string
}

func (f *fakeRenderable) Render()   { *f.log = append(*f.log, "render "+f.name) }
func (f *fakeRenderable) Dispose()  { *f.log = append(*f.log, "dispose "+f.name) }

type fakeUpdater struct {
	fakeRenderable
	dt float64
}

func (f *fakeUpdater) Update(dt float64) { f.dt += dt }

func TestRenderOrderAndDispose(t *testing.T) {
	var log []string
	dev := graphicstest.NewDevice()
	bg := &fakeUpdater{fakeRenderable: fakeRenderable{name: "background", log: &log}}
	fg := &fakeRenderable{name: "player", log: &log}

	r := NewRenderer(dev, mgl32.Vec4{0.2, 0.3, 0.3, 1}, bg, fg)
	if dev.ClearedTo != [4]float32{0.2, 0.3, 0.3, 1} {
		t.Errorf("clear color = %v", dev.ClearedTo)
	}

	r.Update(0.5)
	r.Render()
	r.Render()
	r.Dispose()

	want := []string{
		"render background", "render player",
		"render background", "render player",
		"dispose player", "dispose background",
	}
	if len(log) != len(want) {
		t.Fatalf("got %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("step %d: got %q, want %q", i, log[i], want[i])
		}
	}
	if dev.Clears != 2 {
		t.Errorf("expected one clear per frame, got %d", dev.Clears)
	}
	if bg.dt != 0.5 {
		t.Errorf("updater received dt %v", bg.dt)
	}
}

func TestUpdateViewport(t *testing.T) {
	dev := graphicstest.NewDevice()
	r := NewRenderer(dev, mgl32.Vec4{})

	r.UpdateViewport(1024, 768)
	if dev.ViewportW != 1024 || dev.ViewportH != 768 {
		t.Errorf("viewport = %dx%d", dev.ViewportW, dev.ViewportH)
	}

	r.UpdateViewport(0, 0)
	if dev.ViewportW != 1024 {
		t.Error("zero-size framebuffer must not change the viewport")
	}
}
