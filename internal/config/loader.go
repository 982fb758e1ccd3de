package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/mini-2d.yaml
var defaultYAML []byte

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:     800,
			Height:    600,
			Title:     "Mi Juego 2D",
			Resizable: true,
			VSync:     true,
		},
		Render: RenderConfig{
			ClearColor: [4]float32{0.2, 0.3, 0.3, 1.0},
		},
		Resources: ResourcesConfig{
			Root: filepath.Join("src", "main", "resources"),
		},
		Player: PlayerConfig{
			Texture: "robot.png",
			Width:   0.2,
			Height:  0.3,
			Speed:   0.01,
		},
		Background: BackgroundConfig{
			Texture: "background.png",
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads the configuration.
// Search order: customPath -> ~/.mini-2d/config.yaml -> ./configs/mini-2d.yaml -> embedded default
// Files only need to set the fields they change.
func Load(customPath string) (Config, error) {
	cfg := Default()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath, cfg); ok {
			return loaded, loaded.Validate()
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", "mini-2d.yaml"), cfg); ok {
		return loaded, loaded.Validate()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

func tryLoad(path string, base Config) (Config, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, false
	}
	if err := yaml.Unmarshal(data, &base); err != nil {
		return base, false
	}
	return base, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mini-2d", filename)
}
