package renderer

// Renderable is a feature drawn once per frame. Dispose releases GPU resources
// and must tolerate being called more than once.
type Renderable interface {
	Render()
	Dispose()
}

// Updater is implemented by renderables with per-frame simulation state
type Updater interface {
	Update(dt float64)
}
