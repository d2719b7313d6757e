package display

import (
	"os"

	"github.com/fogleman/gg"
	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"airframe/internal/domain"
)

// Font sizes at the 480x320 reference panel; other resolutions scale
// proportionally by height.
const (
	fontSizeTitle   = 26.0
	fontSizeArtist  = 20.0
	fontSizeAlbum   = 18.0
	fontSizeCaption = 14.0

	referenceHeight = 320.0
)

// fallbackFontPaths are tried in order when no font path is configured.
var fallbackFontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	"/usr/share/fonts/truetype/freefont/FreeSans.ttf",
}

// FontSet holds the faces the compositor draws with, one per text role
type FontSet struct {
	Title   font.Face
	Artist  font.Face
	Album   font.Face
	Caption font.Face
}

// NewFontSet loads TrueType faces scaled to the screen height. The
// configured path wins; otherwise common system locations are tried.
// When nothing loads, the bitmap fallback keeps the display usable.
func NewFontSet(logger *zap.Logger, configPath string, res *domain.ScreenResolution) *FontSet {
	scale := float64(res.Height) / referenceHeight

	paths := fallbackFontPaths
	if configPath != "" {
		paths = append([]string{configPath}, fallbackFontPaths...)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		set, err := loadFontSet(path, scale)
		if err != nil {
			logger.Warn("cannot load font", zap.String("path", path), zap.Error(err))
			continue
		}
		logger.Info("fonts loaded", zap.String("path", path))
		return set
	}

	logger.Warn("no TrueType font found, using bitmap fallback")
	face := basicfont.Face7x13
	return &FontSet{
		Title:   face,
		Artist:  face,
		Album:   face,
		Caption: face,
	}
}

func loadFontSet(path string, scale float64) (*FontSet, error) {
	title, err := gg.LoadFontFace(path, fontSizeTitle*scale)
	if err != nil {
		return nil, err
	}
	artist, err := gg.LoadFontFace(path, fontSizeArtist*scale)
	if err != nil {
		return nil, err
	}
	album, err := gg.LoadFontFace(path, fontSizeAlbum*scale)
	if err != nil {
		return nil, err
	}
	caption, err := gg.LoadFontFace(path, fontSizeCaption*scale)
	if err != nil {
		return nil, err
	}
	return &FontSet{
		Title:   title,
		Artist:  artist,
		Album:   album,
		Caption: caption,
	}, nil
}
