// mini-2d opens a window with a scrolling background and a player sprite
// moved with the keyboard.
//
// Usage:
//
//	mini-2d [--config path] [--log-level debug] [--width 1024 --height 768]
//
// Controls:
//
//	W/A/S/D  - Move the player
//	Esc      - Quit
//
// Textures are read from <resources.root>/textures, relative to the working
// directory unless the root is absolute.
package main

import (
	"fmt"
	"os"
	"runtime"

	"mini-2d/internal/config"
	"mini-2d/internal/game"
	"mini-2d/internal/graphics"

	"github.com/charmbracelet/log"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagLogLevel string
	flagWidth    int
	flagHeight   int
)

func init() {
	// GLFW and GL calls must stay on the main thread
	runtime.LockOSThread()

	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.Flags().IntVar(&flagWidth, "width", 0, "Window width in pixels (overrides config)")
	rootCmd.Flags().IntVar(&flagHeight, "height", 0, "Window height in pixels (overrides config)")
}

var rootCmd = &cobra.Command{
	Use:           "mini-2d",
	Short:         "A minimal 2D game: scrolling background and a movable sprite",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cmd.Flags().Changed("width") {
		cfg.Window.Width = flagWidth
	}
	if cmd.Flags().Changed("height") {
		cfg.Window.Height = flagHeight
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, err := newLogger(cfg.Log.Level)
	if err != nil {
		return err
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}

	if err := glfw.Init(); err != nil {
		return &game.InitializationError{Op: "init glfw", Err: err}
	}
	defer glfw.Terminate()

	window, err := setupWindow(cfg.Window)
	if err != nil {
		return &game.InitializationError{Op: "create window", Err: err}
	}

	device, err := graphics.NewGLDevice()
	if err != nil {
		window.Destroy()
		return &game.InitializationError{Op: "load OpenGL", Err: err}
	}
	logger.Info("OpenGL ready", "version", device.Version())

	loop := game.NewGameLoop(game.Options{
		Window:      window,
		Device:      device,
		Config:      cfg,
		TexturesDir: cfg.TexturesDir(workDir),
		Logger:      logger,
	})

	runErr := loop.Init()
	if runErr == nil {
		runErr = loop.Run()
	}
	if err := loop.Cleanup(); err != nil {
		logger.Error("cleanup failed", "error", err)
	}
	if runErr != nil {
		logger.Error("game stopped", "error", runErr)
		return runErr
	}
	return nil
}

func newLogger(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "mini-2d",
		Level:           lvl,
	})
	return logger, nil
}
