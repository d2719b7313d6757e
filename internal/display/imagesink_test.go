package display

import (
	"image"
	"image/color"
	"image/draw"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
)

func solidFrame(w, h int, c color.RGBA) *image.RGBA {
	frame := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(frame, frame.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return frame
}

// TestImageSink_HappyPath verifies the standard scenario: Present
// leaves a decodable PNG of the frame at the configured path.
func TestImageSink_HappyPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	sink, err := NewImageSink(zap.NewNop(), path)
	if err != nil {
		t.Fatalf("NewImageSink: %v", err)
	}
	defer sink.Close()

	if err := sink.Present(solidFrame(96, 64, color.RGBA{R: 255, A: 255})); err != nil {
		t.Fatalf("Present: %v", err)
	}

	img, err := imaging.Open(path)
	if err != nil {
		t.Fatalf("written frame is not a readable image: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 96 || b.Dy() != 64 {
		t.Errorf("bounds: expected 96x64, got %dx%d", b.Dx(), b.Dy())
	}

	r, _, _, _ := img.At(10, 10).RGBA()
	if r>>8 != 0xFF {
		t.Errorf("pixel: expected red frame, got r=%02x", r>>8)
	}
}

// TestImageSink_ReplacesPreviousFrame verifies that each Present
// replaces the file whole; a reader never sees a stale or partial mix.
func TestImageSink_ReplacesPreviousFrame(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	sink, err := NewImageSink(zap.NewNop(), path)
	if err != nil {
		t.Fatalf("NewImageSink: %v", err)
	}
	defer sink.Close()

	if err := sink.Present(solidFrame(32, 32, color.RGBA{R: 255, A: 255})); err != nil {
		t.Fatalf("first Present: %v", err)
	}
	if err := sink.Present(solidFrame(32, 32, color.RGBA{B: 255, A: 255})); err != nil {
		t.Fatalf("second Present: %v", err)
	}

	img, err := imaging.Open(path)
	if err != nil {
		t.Fatalf("open frame: %v", err)
	}
	_, _, b, _ := img.At(5, 5).RGBA()
	if b>>8 != 0xFF {
		t.Errorf("pixel: expected the second (blue) frame, got b=%02x", b>>8)
	}

	// No temp files may survive a successful swap.
	leftovers, err := filepath.Glob(filepath.Join(filepath.Dir(path), "frame-*.png"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(leftovers) != 0 {
		t.Errorf("expected no leftover temp files, found %v", leftovers)
	}
}

// TestImageSink_CreatesParentDirectory verifies that a nested output
// path works without preparation.
func TestImageSink_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "frame.png")
	sink, err := NewImageSink(zap.NewNop(), path)
	if err != nil {
		t.Fatalf("NewImageSink: %v", err)
	}
	defer sink.Close()

	if err := sink.Present(solidFrame(16, 16, color.RGBA{G: 255, A: 255})); err != nil {
		t.Fatalf("Present: %v", err)
	}
	if _, err := imaging.Open(path); err != nil {
		t.Errorf("frame not written under the created directory: %v", err)
	}
}
