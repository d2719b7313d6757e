package nowplaying

import (
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"airframe/internal/domain"
)

// Field identifies which part of the now-playing state a record feeds
type Field int

const (
	// FieldTitle is the track name
	FieldTitle Field = iota
	// FieldArtist is the artist name
	FieldArtist
	// FieldAlbum is the album name
	FieldAlbum
	// FieldArtwork signals that new cover art reached the cache
	FieldArtwork
)

type tagKey struct {
	category string
	code     string
}

// fieldMap classifies records by (category, code).
//
// The artist is sourced from the comment tag: senders in this setup
// carry the artist there, and the dedicated artist tag ("asar") arrives
// corrupted roughly half the time, so it is deliberately unmapped.
var fieldMap = map[tagKey]Field{
	{"core", "minm"}: FieldTitle,
	{"core", "ascp"}: FieldArtist,
	{"core", "asal"}: FieldAlbum,
	{"ssnc", "PICT"}: FieldArtwork,
}

// Session folds decoded records into the now-playing state and owns
// the fallback and idle rules. All time arithmetic goes through the
// injected clock.
type Session struct {
	logger      *zap.Logger
	clock       clockwork.Clock
	idleTimeout time.Duration

	mu    sync.RWMutex
	state domain.NowPlaying
}

// NewSession creates a session in the waiting state with empty fields.
// idleTimeout is how long without recognized records before the
// connection label flips to waiting.
func NewSession(logger *zap.Logger, clock clockwork.Clock, idleTimeout time.Duration) *Session {
	return &Session{
		logger:      logger,
		clock:       clock,
		idleTimeout: idleTimeout,
		state: domain.NowPlaying{
			Connection: domain.StateWaiting,
		},
	}
}

// Apply folds one record into the state and reports whether it signals
// changed artwork. Unrecognized records cause no state change at all.
func (s *Session) Apply(rec domain.Record) bool {
	field, ok := fieldMap[tagKey{rec.Type, rec.Code}]
	if !ok {
		s.logger.Debug("ignoring unrecognized record",
			zap.String("type", rec.Type),
			zap.String("code", rec.Code))
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.touchLocked()

	if field == FieldArtwork {
		// The payload is not persisted here; the cache directory is
		// populated by the sender side.
		s.logger.Debug("artwork signal received",
			zap.Int("declared_length", rec.Length))
		return true
	}

	text := strings.TrimSpace(string(rec.Data))
	if text == "" {
		// Senders emit empty fields freely between tracks. Keeping the
		// previous value beats blanking the screen.
		return false
	}

	switch field {
	case FieldTitle:
		if text != s.state.Title {
			s.logger.Info("track changed", zap.String("title", text))
		}
		s.state.Title = text
	case FieldArtist:
		s.logger.Debug("artist updated", zap.String("artist", text))
		s.state.Artist = text
	case FieldAlbum:
		s.logger.Debug("album updated", zap.String("album", text))
		s.state.Album = text
	}

	return false
}

// ExpireIfIdle flips the connection label to waiting when no recognized
// record has arrived within the idle timeout. It reports true exactly
// when the flip happens. Track fields are retained; only the label
// changes.
func (s *Session) ExpireIfIdle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Connection != domain.StateConnected {
		return false
	}

	idle := s.clock.Since(s.state.LastUpdateAt)
	if idle < s.idleTimeout {
		return false
	}

	s.state.Connection = domain.StateWaiting
	s.logger.Info("sender idle, waiting for connection",
		zap.Duration("idle", idle))
	return true
}

// Snapshot returns a read-only copy of the current state.
func (s *Session) Snapshot() domain.NowPlaying {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// touchLocked records sender activity. Any recognized record counts,
// including empty-payload ones.
func (s *Session) touchLocked() {
	s.state.LastUpdateAt = s.clock.Now()
	if s.state.Connection != domain.StateConnected {
		s.state.Connection = domain.StateConnected
		s.logger.Info("sender connected")
	}
}
