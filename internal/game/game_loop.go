package game

import (
	"fmt"
	"io"
	"time"

	"mini-2d/internal/config"
	"mini-2d/internal/graphics"
	"mini-2d/internal/graphics/renderables/background"
	"mini-2d/internal/graphics/renderables/sprite"
	renderer "mini-2d/internal/graphics/renderer"
	"mini-2d/internal/input"
	"mini-2d/internal/player"
	"mini-2d/internal/profiling"

	"github.com/charmbracelet/log"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// slowFrameThreshold is the CPU time per frame (excluding the buffer swap)
// above which the frame's top tasks are logged
const slowFrameThreshold = 16 * time.Millisecond

// Window is the part of *glfw.Window the loop drives
type Window interface {
	ShouldClose() bool
	SetShouldClose(value bool)
	SwapBuffers()
	GetFramebufferSize() (width, height int)
	SetKeyCallback(cbfun glfw.KeyCallback) glfw.KeyCallback
	SetFramebufferSizeCallback(cbfun glfw.FramebufferSizeCallback) glfw.FramebufferSizeCallback
	Destroy()
}

// Options configures a GameLoop
type Options struct {
	Window      Window
	PollEvents  func()
	Device      graphics.Device
	Config      config.Config
	TexturesDir string
	Logger      *log.Logger

	// Decoder overrides graphics.DecodeImage
	Decoder graphics.DecodeFunc
	// Now overrides time.Now for frame timing
	Now func() time.Time
}

// GameLoop owns the window, the renderables built on it and the per-frame loop.
// All methods must be called from the thread that owns the GL context.
type GameLoop struct {
	window      Window
	pollEvents  func()
	device      graphics.Device
	cfg         config.Config
	texturesDir string
	logger      *log.Logger
	decoder     graphics.DecodeFunc
	now         func() time.Time

	state State

	textures   *graphics.TextureCache
	background *background.Background
	player     *player.Player
	sprite     *sprite.Sprite
	renderer   *renderer.Renderer
	inputs     *input.InputManager
	router     *input.Router
	fpsLimiter *FPSLimiter

	// Timing
	frames           int
	lastFPSCheckTime time.Time
	lastTime         time.Time
}

// NewGameLoop creates an uninitialized loop
func NewGameLoop(opts Options) *GameLoop {
	g := &GameLoop{
		window:      opts.Window,
		pollEvents:  opts.PollEvents,
		device:      opts.Device,
		cfg:         opts.Config,
		texturesDir: opts.TexturesDir,
		logger:      opts.Logger,
		decoder:     opts.Decoder,
		now:         opts.Now,
		fpsLimiter:  NewFPSLimiter(opts.Config.Render.FPSLimit),
	}
	if g.pollEvents == nil {
		g.pollEvents = glfw.PollEvents
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	if g.now == nil {
		g.now = time.Now
	}
	return g
}

// State returns the current lifecycle stage
func (g *GameLoop) State() State { return g.state }

// Player returns the player once Init has succeeded
func (g *GameLoop) Player() *player.Player { return g.player }

// Background returns the background once Init has succeeded
func (g *GameLoop) Background() *background.Background { return g.background }

// Init builds the texture cache, background, player and input routing.
// On failure everything built so far is released and the loop stays uninitialized.
func (g *GameLoop) Init() error {
	if g.state != StateUninitialized {
		return fmt.Errorf("%w: Init called while %s", ErrInvalidState, g.state)
	}

	cacheOpts := []graphics.TextureCacheOption{graphics.WithLogger(g.logger)}
	if g.decoder != nil {
		cacheOpts = append(cacheOpts, graphics.WithDecoder(g.decoder))
	}
	textures := graphics.NewTextureCache(g.device, g.texturesDir, cacheOpts...)

	bg, err := background.New(g.device, textures, g.cfg.Background.Texture, g.cfg.Background.ScrollSpeed)
	if err != nil {
		textures.ReleaseAll()
		return fmt.Errorf("create background: %w", err)
	}

	p := player.New(g.cfg.Player.Position(), g.cfg.Player.Size(), g.cfg.Player.Speed)
	sp, err := sprite.New(g.device, textures, p, g.cfg.Player.Texture)
	if err != nil {
		bg.Dispose()
		textures.ReleaseAll()
		return fmt.Errorf("create player: %w", err)
	}

	g.textures = textures
	g.background = bg
	g.player = p
	g.sprite = sp

	// Back to front: the player composites over the background
	g.renderer = renderer.NewRenderer(g.device, g.cfg.Render.ClearColorVec(), bg, sp)

	g.inputs = input.NewInputManager()
	g.router = input.NewRouter(g.inputs, p, g.window)
	g.window.SetKeyCallback(g.router.KeyCallback())
	g.window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		g.renderer.UpdateViewport(width, height)
	})
	g.renderer.UpdateViewport(g.window.GetFramebufferSize())

	g.state = StateInitialized
	g.logger.Info("game initialized",
		"textures", textures.Len(),
		"dir", textures.Dir(),
		"fps_limiter", g.fpsLimiter.Enabled(),
		"fps_limit", g.cfg.Render.FPSLimit)
	return nil
}

// Run processes frames until the window is asked to close
func (g *GameLoop) Run() error {
	if g.state != StateInitialized {
		return fmt.Errorf("%w: Run called while %s", ErrInvalidState, g.state)
	}
	g.state = StateRunning
	g.logger.Info("game loop running")

	g.lastTime = g.now()
	g.lastFPSCheckTime = g.lastTime
	for !g.window.ShouldClose() {
		g.tick()
	}

	g.state = StateShuttingDown
	g.logger.Info("close requested", "frames", g.frames)
	return nil
}

func (g *GameLoop) tick() {
	profiling.ResetFrame()
	start := time.Now()
	now := g.now()
	dt := now.Sub(g.lastTime).Seconds()
	g.lastTime = now

	// Key callbacks run synchronously inside PollEvents
	func() { defer profiling.Track("glfw.PollEvents")(); g.pollEvents() }()

	func() { defer profiling.Track("renderer.Update")(); g.renderer.Update(dt) }()

	g.renderer.Render()

	func() { defer profiling.Track("glfw.SwapBuffers")(); g.window.SwapBuffers() }()

	// Clear edge flags at end of frame
	g.inputs.PostUpdate()

	g.frames++
	if now.Sub(g.lastFPSCheckTime) >= time.Second {
		g.logger.Debug("frame rate", "fps", g.frames)
		g.frames = 0
		g.lastFPSCheckTime = now
	}

	busy := time.Since(start) - profiling.Snapshot()["glfw.SwapBuffers"]
	if busy > slowFrameThreshold {
		g.logger.Warn("slow frame", "took", busy, "top", profiling.TopN(3))
	}

	g.fpsLimiter.Wait()
}

// Cleanup releases GPU resources in reverse order of creation and destroys
// the window. Calling it again after it completed does nothing.
func (g *GameLoop) Cleanup() error {
	switch g.state {
	case StateTerminated:
		return nil
	case StateRunning:
		return fmt.Errorf("%w: Cleanup called while %s", ErrInvalidState, g.state)
	}
	g.state = StateShuttingDown

	if g.renderer != nil {
		g.renderer.Dispose()
	}
	if g.textures != nil {
		g.textures.ReleaseAll()
	}
	if g.window != nil {
		g.window.SetKeyCallback(nil)
		g.window.SetFramebufferSizeCallback(nil)
		g.window.Destroy()
	}

	g.state = StateTerminated
	g.logger.Info("game terminated")
	return nil
}
