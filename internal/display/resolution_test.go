package display

import (
	"testing"

	"go.uber.org/zap"

	"airframe/internal/config"
)

// TestNewScreenResolution verifies the precedence: explicit config
// first, detection or panel default otherwise.
func TestNewScreenResolution(t *testing.T) {
	t.Run("Config Override Wins", func(t *testing.T) {
		cfg := config.Default()
		cfg.Display.Width = 800
		cfg.Display.Height = 480

		res := NewScreenResolution(zap.NewNop(), &cfg)
		if res.Width != 800 || res.Height != 480 {
			t.Errorf("expected 800x480, got %dx%d", res.Width, res.Height)
		}
	})

	t.Run("Unset Config Resolves To Something Usable", func(t *testing.T) {
		// Detection depends on the machine; headless boxes get the
		// panel default. Either way the result must be drawable.
		cfg := config.Default()

		res := NewScreenResolution(zap.NewNop(), &cfg)
		if res.Width <= 0 || res.Height <= 0 {
			t.Errorf("expected positive dimensions, got %dx%d", res.Width, res.Height)
		}
	})
}
