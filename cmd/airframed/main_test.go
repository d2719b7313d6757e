package main

import (
	"path/filepath"
	"testing"

	"go.uber.org/fx"

	"airframe/internal/config"
)

// TestAppGraphValidity verifies that the dependency graph is resolvable.
// This test will fail if you forget an fx.Provide for a required interface.
func TestAppGraphValidity(t *testing.T) {
	// fx.ValidateApp checks that there are no missing or cyclic dependencies
	err := fx.ValidateApp(AppOptions)
	if err != nil {
		t.Errorf("Dependency graph is not valid: %v", err)
	}
}

// TestNewLogger specifically verifies the logger configuration
func TestNewLogger(t *testing.T) {
	t.Run("Success - Default Config", func(t *testing.T) {
		cfg := config.Default()
		logger, err := newLogger(&cfg)
		if err != nil {
			t.Fatalf("Failed to create logger: %v", err)
		}
		if logger == nil {
			t.Fatal("Logger should not be nil")
		}
		// We can verify it's a real logger by writing something (should not panic)
		logger.Info("Test logger initialization")
	})

	t.Run("Success - JSON Format", func(t *testing.T) {
		cfg := config.Default()
		cfg.Logging.Format = "json"
		cfg.Logging.Level = "warn"
		logger, err := newLogger(&cfg)
		if err != nil {
			t.Fatalf("Failed to create logger: %v", err)
		}
		if logger == nil {
			t.Fatal("Logger should not be nil")
		}
	})

	t.Run("Error - Invalid Level", func(t *testing.T) {
		cfg := config.Default()
		cfg.Logging.Level = "shouting"
		if _, err := newLogger(&cfg); err == nil {
			t.Error("Expected an error for an unknown log level")
		}
	})
}

// TestEndToEndStartup tries a real startup/stop in a controlled environment.
// The config is decorated so every path points into the test directory and
// the framebuffer probe falls back to the PNG sink.
func TestEndToEndStartup(t *testing.T) {
	dir := t.TempDir()

	app := fx.New(
		AppOptions,
		fx.Decorate(func(cfg *config.Config) *config.Config {
			cfg.Metadata.PipePath = filepath.Join(dir, "metadata")
			cfg.Artwork.CacheDir = filepath.Join(dir, "coverart")
			cfg.Display.Width = 96
			cfg.Display.Height = 64
			cfg.Display.FramebufferDevice = filepath.Join(dir, "fb0")
			cfg.Display.FrameOutput = filepath.Join(dir, "frame.png")
			return cfg
		}),
		fx.NopLogger, // Silence Fx logs during tests
	)

	// Verify that the app can start without errors
	if err := app.Start(t.Context()); err != nil {
		t.Fatalf("App failed to start: %v", err)
	}

	// Verify that the app can stop without errors
	if err := app.Stop(t.Context()); err != nil {
		t.Fatalf("App failed to stop: %v", err)
	}
}
