package display

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
)

// ImageSink writes frames as PNG files. It is the degraded mode when no
// framebuffer is available and doubles as a development preview.
type ImageSink struct {
	logger *zap.Logger
	path   string
}

// NewImageSink creates a sink writing to path, creating the parent
// directory if needed.
func NewImageSink(logger *zap.Logger, path string) (*ImageSink, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create frame output directory: %w", err)
	}

	logger.Info("writing frames to file", zap.String("path", path))
	return &ImageSink{
		logger: logger,
		path:   path,
	}, nil
}

// Present writes the frame, replacing the previous one atomically so a
// reader of the preview file never sees a partial write.
func (s *ImageSink) Present(frame *image.RGBA) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), "frame-*.png")
	if err != nil {
		return fmt.Errorf("create frame temp file: %w", err)
	}

	if err := imaging.Encode(tmp, frame, imaging.PNG); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("encode frame: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close frame temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace frame file: %w", err)
	}
	return nil
}

// Close is a no-op; the sink holds no persistent resources.
func (s *ImageSink) Close() error {
	return nil
}
