package display

import (
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
)

// TestPackRGB565 checks the 5-6-5 packing against known panel values.
func TestPackRGB565(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    uint16
	}{
		{name: "Black", r: 0x00, g: 0x00, b: 0x00, want: 0x0000},
		{name: "White", r: 0xFF, g: 0xFF, b: 0xFF, want: 0xFFFF},
		{name: "Red", r: 0xFF, g: 0x00, b: 0x00, want: 0xF800},
		{name: "Green", r: 0x00, g: 0xFF, b: 0x00, want: 0x07E0},
		{name: "Blue", r: 0x00, g: 0x00, b: 0xFF, want: 0x001F},
		{name: "Mid Gray", r: 0x80, g: 0x80, b: 0x80, want: 0x8410},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := packRGB565(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("packRGB565(%02x,%02x,%02x): expected %04x, got %04x", tt.r, tt.g, tt.b, tt.want, got)
			}
		})
	}
}

// TestToRGBA verifies conversion from the decoder's native image types.
func TestToRGBA(t *testing.T) {
	t.Run("Passthrough For RGBA", func(t *testing.T) {
		src := image.NewRGBA(image.Rect(0, 0, 8, 8))
		if got := toRGBA(src); got != src {
			t.Error("an *image.RGBA input should be returned as is")
		}
	})

	t.Run("Converts NRGBA", func(t *testing.T) {
		src := imaging.New(8, 6, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
		got := toRGBA(src)

		if b := got.Bounds(); b.Dx() != 8 || b.Dy() != 6 {
			t.Fatalf("bounds: expected 8x6, got %dx%d", b.Dx(), b.Dy())
		}
		r, g, b, _ := got.At(3, 3).RGBA()
		if r>>8 != 10 || g>>8 != 20 || b>>8 != 30 {
			t.Errorf("pixel: expected (10,20,30), got (%d,%d,%d)", r>>8, g>>8, b>>8)
		}
	})
}
