//go:build !linux

package display

import (
	"fmt"

	"go.uber.org/zap"

	"airframe/internal/domain"
)

// OpenFramebuffer is unavailable off Linux; callers fall back to the
// image sink.
func OpenFramebuffer(logger *zap.Logger, device string) (domain.FrameSink, error) {
	return nil, fmt.Errorf("framebuffer output not supported on this platform")
}
