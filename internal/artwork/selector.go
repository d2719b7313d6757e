package artwork

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// imageExtensions are the cover formats the sender writes into its
// cache directory.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// Selector picks the current cover image from the cache directory. The
// sender overwrites the cache with fresh files as tracks change, so the
// newest file is the cover of whatever plays now.
type Selector struct {
	logger *zap.Logger
	dir    string
}

// NewSelector creates a selector over the given cache directory.
func NewSelector(logger *zap.Logger, dir string) *Selector {
	return &Selector{
		logger: logger,
		dir:    dir,
	}
}

// Latest returns the path of the newest cover file by modification
// time, breaking mtime ties by the lexicographically greatest name so
// the answer is stable within one scan. ok is false when the directory
// is missing, unreadable or holds no usable image; that is the normal
// no-artwork answer, not an error.
func (s *Selector) Latest() (string, bool) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		// The cache directory only appears once a sender has
		// connected at least once.
		s.logger.Debug("artwork cache not readable",
			zap.String("dir", s.dir),
			zap.Error(err))
		return "", false
	}

	var (
		bestName string
		bestMod  time.Time
		found    bool
	)
	for _, entry := range entries {
		if entry.IsDir() || !isImageFile(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			// Entry vanished between the listing and the stat.
			continue
		}
		mod := info.ModTime()
		if !found || mod.After(bestMod) || (mod.Equal(bestMod) && entry.Name() > bestName) {
			found = true
			bestName = entry.Name()
			bestMod = mod
		}
	}

	if !found {
		return "", false
	}
	return filepath.Join(s.dir, bestName), true
}

func isImageFile(name string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(name))]
}
