package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
)

// Config is the full game shell configuration
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Render     RenderConfig     `yaml:"render"`
	Resources  ResourcesConfig  `yaml:"resources"`
	Player     PlayerConfig     `yaml:"player"`
	Background BackgroundConfig `yaml:"background"`
	Log        LogConfig        `yaml:"log"`
}

// WindowConfig controls the glfw window
type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
	VSync     bool   `yaml:"vsync"`
}

// RenderConfig controls per-frame rendering
type RenderConfig struct {
	ClearColor [4]float32 `yaml:"clear_color"`
	// FPSLimit caps the frame rate in addition to vsync; 0 disables the limiter
	FPSLimit int `yaml:"fps_limit"`
}

// ResourcesConfig locates assets relative to the working directory
type ResourcesConfig struct {
	Root string `yaml:"root"`
}

// PlayerConfig sets the player's sprite and movement
type PlayerConfig struct {
	Texture string  `yaml:"texture"`
	X       float32 `yaml:"x"`
	Y       float32 `yaml:"y"`
	Width   float32 `yaml:"width"`
	Height  float32 `yaml:"height"`
	Speed   float32 `yaml:"speed"`
}

// BackgroundConfig sets the background texture and scroll speed
type BackgroundConfig struct {
	Texture     string  `yaml:"texture"`
	ScrollSpeed float32 `yaml:"scroll_speed"`
}

// LogConfig sets the log level name (debug, info, warn, error)
type LogConfig struct {
	Level string `yaml:"level"`
}

// ClearColorVec returns the clear colour as a vector
func (c RenderConfig) ClearColorVec() mgl32.Vec4 {
	return mgl32.Vec4(c.ClearColor)
}

// Position returns the player's start position
func (p PlayerConfig) Position() mgl32.Vec2 { return mgl32.Vec2{p.X, p.Y} }

// Size returns the player's quad extent
func (p PlayerConfig) Size() mgl32.Vec2 { return mgl32.Vec2{p.Width, p.Height} }

// TexturesDir resolves <workDir>/<resources root>/textures
func (c Config) TexturesDir(workDir string) string {
	root := c.Resources.Root
	if !filepath.IsAbs(root) {
		root = filepath.Join(workDir, root)
	}
	return filepath.Join(root, "textures")
}

// Validate reports every invalid field
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	for i, v := range c.Render.ClearColor {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("render.clear_color[%d] = %v outside [0, 1]", i, v))
		}
	}
	if c.Render.FPSLimit < 0 {
		errs = append(errs, fmt.Errorf("render.fps_limit must not be negative"))
	}
	if c.Player.Texture == "" {
		errs = append(errs, errors.New("player.texture is required"))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, fmt.Errorf("player size must be positive, got %vx%v", c.Player.Width, c.Player.Height))
	}
	if c.Player.Speed < 0 {
		errs = append(errs, fmt.Errorf("player.speed must not be negative"))
	}
	if c.Background.Texture == "" {
		errs = append(errs, errors.New("background.texture is required"))
	}
	if c.Background.ScrollSpeed < 0 {
		errs = append(errs, fmt.Errorf("background.scroll_speed must not be negative"))
	}
	return errors.Join(errs...)
}
