package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := Default()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults drifted from Default():\n%+v\n%+v", cfg, Default())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Errorf("window = %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Player.Speed != 0.01 {
		t.Errorf("player speed = %v", cfg.Player.Speed)
	}
}

func TestLoadLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.Mkdir("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join("configs", "mini-2d.yaml"), "background:\n  scroll_speed: 0.5\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Background.ScrollSpeed != 0.5 {
		t.Errorf("scroll speed = %v", cfg.Background.ScrollSpeed)
	}
	if cfg.Background.Texture != "background.png" {
		t.Errorf("unset fields keep defaults, got texture %q", cfg.Background.Texture)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	writeFile(t, path, `
window:
  width: 1024
  height: 768
player:
  texture: hero.png
  speed: 0.02
render:
  clear_color: [0, 0, 0, 1]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Window.Width != 1024 || cfg.Player.Texture != "hero.png" || cfg.Player.Speed != 0.02 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.Render.ClearColor != [4]float32{0, 0, 0, 1} {
		t.Errorf("clear color = %v", cfg.Render.ClearColor)
	}
	if cfg.Player.Width != 0.2 {
		t.Errorf("player width should keep default, got %v", cfg.Player.Width)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, path, "window: [not, a, map]\n")
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"window", func(c *Config) { c.Window.Width = 0 }, "window size"},
		{"clear color", func(c *Config) { c.Render.ClearColor[2] = 1.5 }, "clear_color[2]"},
		{"fps", func(c *Config) { c.Render.FPSLimit = -1 }, "fps_limit"},
		{"player texture", func(c *Config) { c.Player.Texture = "" }, "player.texture"},
		{"player size", func(c *Config) { c.Player.Height = 0 }, "player size"},
		{"player speed", func(c *Config) { c.Player.Speed = -0.1 }, "player.speed"},
		{"background texture", func(c *Config) { c.Background.Texture = "" }, "background.texture"},
		{"scroll speed", func(c *Config) { c.Background.ScrollSpeed = -1 }, "scroll_speed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}
}

func TestTexturesDir(t *testing.T) {
	cfg := Default()
	got := cfg.TexturesDir("/game")
	want := filepath.Join("/game", "src", "main", "resources", "textures")
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	cfg.Resources.Root = "/opt/assets"
	if got := cfg.TexturesDir("/game"); got != filepath.Join("/opt/assets", "textures") {
		t.Errorf("absolute root ignored: %q", got)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
