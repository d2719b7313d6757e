package display

import (
	"fmt"
	"image"
	"os"
	"time"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"go.uber.org/zap"

	"airframe/internal/domain"
)

// placeholderText substitutes for fields the sender has not filled yet
const placeholderText = "—"

// waitingCaption is the on-screen wording of the waiting state
const waitingCaption = "Waiting for connection"

// Compositor composes now-playing frames: square artwork pane on the
// left, text column on the right. It is not goroutine safe; the engine
// is its only caller.
type Compositor struct {
	logger   *zap.Logger
	res      *domain.ScreenResolution
	theme    Theme
	fonts    *FontSet
	receiver string
	cache    coverCache
}

type coverCache struct {
	path  string
	mod   time.Time
	cover image.Image
}

// NewCompositor creates a compositor for the given resolution, theme
// and fonts. receiver is the AirPlay receiver name shown in the
// connect prompt.
func NewCompositor(logger *zap.Logger, res *domain.ScreenResolution, theme Theme, fonts *FontSet, receiver string) *Compositor {
	return &Compositor{
		logger:   logger,
		res:      res,
		theme:    theme,
		fonts:    fonts,
		receiver: receiver,
	}
}

// Compose renders the snapshot into a frame sized for the screen.
func (c *Compositor) Compose(snap domain.NowPlaying) *image.RGBA {
	w := float64(c.res.Width)
	h := float64(c.res.Height)

	dc := gg.NewContext(c.res.Width, c.res.Height)
	dc.SetHexColor(c.theme.Background)
	dc.Clear()

	if snap.Connection == domain.StateWaiting && snap.Title == "" {
		// Nothing has ever played; show how to connect instead of a
		// screen full of placeholders.
		c.drawConnectPrompt(dc, w, h)
		return dc.Image().(*image.RGBA)
	}

	margin := h / 16
	pane := h * 0.625
	paneY := (h - pane) / 2

	c.drawArtworkPane(dc, margin, paneY, pane, snap.ArtworkPath)

	textX := margin*2 + pane
	maxWidth := w - textX - margin

	dc.SetFontFace(c.fonts.Title)
	dc.SetHexColor(c.theme.Primary)
	dc.DrawStringAnchored(truncateText(dc, textOrPlaceholder(snap.Title), maxWidth), textX, h*0.32, 0, 0.5)

	dc.SetFontFace(c.fonts.Artist)
	dc.SetHexColor(c.theme.Secondary)
	dc.DrawStringAnchored(truncateText(dc, textOrPlaceholder(snap.Artist), maxWidth), textX, h*0.47, 0, 0.5)

	dc.SetFontFace(c.fonts.Album)
	dc.SetHexColor(c.theme.Secondary)
	dc.DrawStringAnchored(truncateText(dc, textOrPlaceholder(snap.Album), maxWidth), textX, h*0.60, 0, 0.5)

	if snap.Connection == domain.StateWaiting {
		// The last track stays up; only the caption flags the idle
		// sender.
		dc.SetFontFace(c.fonts.Caption)
		dc.SetHexColor(c.theme.Dim)
		dc.DrawStringAnchored(truncateText(dc, waitingCaption, maxWidth), textX, h-margin*1.2, 0, 0.5)
	}

	return dc.Image().(*image.RGBA)
}

func (c *Compositor) drawConnectPrompt(dc *gg.Context, w, h float64) {
	glyphSize := h * 0.28
	c.drawNoteGlyph(dc, w/2, h*0.26, glyphSize, c.theme.Accent)

	dc.SetFontFace(c.fonts.Title)
	dc.SetHexColor(c.theme.Primary)
	dc.DrawStringAnchored("Connect to Play Music", w/2, h*0.56, 0.5, 0.5)

	dc.SetFontFace(c.fonts.Caption)
	dc.SetHexColor(c.theme.Dim)
	prompt := fmt.Sprintf("Open AirPlay on your device and select '%s'", c.receiver)
	dc.DrawStringWrapped(prompt, w/2, h*0.68, 0.5, 0, w*0.78, 1.45, gg.AlignCenter)
}

func (c *Compositor) drawArtworkPane(dc *gg.Context, x, y, size float64, path string) {
	radius := size * 0.04

	dc.SetHexColor(c.theme.PaneBG)
	dc.DrawRoundedRectangle(x, y, size, size, radius)
	dc.Fill()

	if path != "" {
		if cover := c.loadCover(path, int(size)); cover != nil {
			dc.Push()
			dc.DrawRoundedRectangle(x, y, size, size, radius)
			dc.Clip()
			dc.DrawImage(cover, int(x), int(y))
			dc.ResetClip()
			dc.Pop()
			return
		}
	}

	c.drawNoteGlyph(dc, x+size/2, y+size/2, size*0.6, c.theme.Dim)
}

// loadCover returns the cover scaled and cropped to the pane size. The
// decoded image is cached by path and mtime so the refresh tick does
// not re-decode an unchanged file every second.
func (c *Compositor) loadCover(path string, size int) image.Image {
	info, err := os.Stat(path)
	if err != nil {
		c.logger.Warn("cannot stat artwork", zap.String("path", path), zap.Error(err))
		return nil
	}

	if c.cache.cover != nil && c.cache.path == path && c.cache.mod.Equal(info.ModTime()) {
		return c.cache.cover
	}

	img, err := imaging.Open(path)
	if err != nil {
		c.logger.Warn("cannot load artwork", zap.String("path", path), zap.Error(err))
		return nil
	}

	cover := imaging.Fill(img, size, size, imaging.Center, imaging.Lanczos)
	c.cache = coverCache{
		path:  path,
		mod:   info.ModTime(),
		cover: cover,
	}

	c.logger.Debug("artwork loaded",
		zap.String("path", path),
		zap.Int("size", size))
	return cover
}

// drawNoteGlyph draws a beamed pair of eighth notes, the placeholder
// when no artwork exists. Drawn with paths so it needs no glyph
// coverage from the font.
func (c *Compositor) drawNoteGlyph(dc *gg.Context, cx, cy, size float64, hexColor string) {
	dc.SetHexColor(hexColor)

	headR := size * 0.09
	stemH := size * 0.42
	stemW := size * 0.035

	leftX := cx - size*0.16
	rightX := cx + size*0.18
	leftY := cy + size*0.22
	rightY := cy + size*0.16

	dc.DrawEllipse(leftX, leftY, headR*1.25, headR)
	dc.Fill()
	dc.DrawEllipse(rightX, rightY, headR*1.25, headR)
	dc.Fill()

	dc.SetLineWidth(stemW)
	dc.DrawLine(leftX+headR*1.1, leftY, leftX+headR*1.1, leftY-stemH)
	dc.Stroke()
	dc.DrawLine(rightX+headR*1.1, rightY, rightX+headR*1.1, rightY-stemH)
	dc.Stroke()

	dc.SetLineWidth(stemW * 1.8)
	dc.DrawLine(leftX+headR*1.1, leftY-stemH, rightX+headR*1.1, rightY-stemH)
	dc.Stroke()
}

func textOrPlaceholder(text string) string {
	if text == "" {
		return placeholderText
	}
	return text
}

// truncateText shortens text with an ellipsis until it fits maxWidth
// under the currently set font face.
func truncateText(dc *gg.Context, text string, maxWidth float64) string {
	if w, _ := dc.MeasureString(text); w <= maxWidth {
		return text
	}

	runes := []rune(text)
	left, right := 0, len(runes)
	best := 0

	for left <= right {
		mid := (left + right) / 2
		if mid == 0 {
			return "…"
		}
		w, _ := dc.MeasureString(string(runes[:mid]) + "…")
		if w <= maxWidth {
			best = mid
			left = mid + 1
		} else {
			right = mid - 1
		}
	}

	return string(runes[:best]) + "…"
}
