package display

import (
	"github.com/kbinani/screenshot"
	"go.uber.org/zap"

	"airframe/internal/config"
	"airframe/internal/domain"
)

// Panel dimensions assumed when nothing better is known. Matches the
// common 3.5 inch SPI touch screens this runs on.
const (
	defaultPanelWidth  = 480
	defaultPanelHeight = 320
)

// NewScreenResolution resolves the target resolution: explicit config
// first, then the active display, then the panel default. Headless
// boards report no active display, so the default is the common case
// in the field.
func NewScreenResolution(logger *zap.Logger, cfg *config.Config) *domain.ScreenResolution {
	if cfg.Display.Width > 0 && cfg.Display.Height > 0 {
		res := &domain.ScreenResolution{
			Width:  cfg.Display.Width,
			Height: cfg.Display.Height,
		}
		logger.Info("Screen resolution configured",
			zap.Int("width", res.Width),
			zap.Int("height", res.Height))
		return res
	}

	n := screenshot.NumActiveDisplays()
	if n <= 0 {
		logger.Info("No active displays detected, assuming panel",
			zap.Int("width", defaultPanelWidth),
			zap.Int("height", defaultPanelHeight))
		return &domain.ScreenResolution{
			Width:  defaultPanelWidth,
			Height: defaultPanelHeight,
		}
	}

	// Use primary monitor (index 0)
	bounds := screenshot.GetDisplayBounds(0)
	res := &domain.ScreenResolution{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}

	logger.Info("Screen resolution detected",
		zap.Int("width", res.Width),
		zap.Int("height", res.Height))

	return res
}
