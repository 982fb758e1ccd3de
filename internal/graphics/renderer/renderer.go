package renderer

import (
	"mini-2d/internal/graphics"
	"mini-2d/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// Renderer draws its renderables back to front in registration order
type Renderer struct {
	device      graphics.Device
	renderables []Renderable
}

// NewRenderer creates a renderer; renderables are drawn in the given order
func NewRenderer(device graphics.Device, clearColor mgl32.Vec4, rs ...Renderable) *Renderer {
	device.ClearColor(clearColor[0], clearColor[1], clearColor[2], clearColor[3])
	return &Renderer{
		device:      device,
		renderables: rs,
	}
}

// Update advances every renderable that carries simulation state
func (r *Renderer) Update(dt float64) {
	for _, renderable := range r.renderables {
		if u, ok := renderable.(Updater); ok {
			u.Update(dt)
		}
	}
}

// Render clears the frame and draws all features
func (r *Renderer) Render() {
	defer profiling.Track("renderer.Render")()
	r.device.Clear()

	for _, renderable := range r.renderables {
		renderable.Render()
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}

// UpdateViewport resizes the GL viewport to the framebuffer size
func (r *Renderer) UpdateViewport(width, height int) {
	if width <= 0 || height <= 0 {
		// minimised
		return
	}
	r.device.Viewport(int32(width), int32(height))
}
