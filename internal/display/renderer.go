package display

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"airframe/internal/domain"
)

// Renderer glues the compositor to a frame sink
type Renderer struct {
	logger *zap.Logger
	comp   *Compositor
	sink   domain.FrameSink
}

// NewRenderer creates a renderer drawing through the given sink.
func NewRenderer(logger *zap.Logger, comp *Compositor, sink domain.FrameSink) *Renderer {
	return &Renderer{
		logger: logger,
		comp:   comp,
		sink:   sink,
	}
}

// Render composes and presents one frame for the given snapshot.
func (r *Renderer) Render(ctx context.Context, snapshot domain.NowPlaying) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	frame := r.comp.Compose(snapshot)
	if err := r.sink.Present(frame); err != nil {
		return fmt.Errorf("present frame: %w", err)
	}
	return nil
}
