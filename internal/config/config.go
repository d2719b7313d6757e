package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Metadata contains configuration for the shairport-sync metadata pipe.
type Metadata struct {
	PipePath     string `toml:"pipe_path"`
	RetrySeconds int    `toml:"retry_seconds"`
}

// Artwork contains configuration for the cover art cache directory.
type Artwork struct {
	CacheDir    string `toml:"cache_dir"`
	PollSeconds int    `toml:"poll_seconds"`
}

// Session contains configuration for now-playing staleness handling.
type Session struct {
	IdleTimeoutSeconds int `toml:"idle_timeout_seconds"`
	StaleCheckSeconds  int `toml:"stale_check_seconds"`
}

// Display contains configuration for frame composition and output.
type Display struct {
	// Width and Height of the target screen. Zero means probe the
	// active display and fall back to 480x320.
	Width          int    `toml:"width"`
	Height         int    `toml:"height"`
	RefreshSeconds int    `toml:"refresh_seconds"`
	// FramebufferDevice is tried first; when it cannot be opened the
	// frame is written as a PNG to FrameOutput instead.
	FramebufferDevice string `toml:"framebuffer_device"`
	FrameOutput       string `toml:"frame_output"`
	FontPath          string `toml:"font_path"`
	Theme             string `toml:"theme"`
	ReceiverName      string `toml:"receiver_name"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for airframe.
type Config struct {
	Metadata Metadata `toml:"metadata"`
	Artwork  Artwork  `toml:"artwork"`
	Session  Session  `toml:"session"`
	Display  Display  `toml:"display"`
	Logging  Logging  `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/airframe/config.toml")
}

// Load locates, parses, and validates a configuration file. Environment
// variables (AIRFRAME_*) override file values. The returned config has
// all path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("airframe.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

func (c *Config) applyEnv() {
	envString("AIRFRAME_PIPE_PATH", &c.Metadata.PipePath)
	envInt("AIRFRAME_RETRY_SECONDS", &c.Metadata.RetrySeconds)
	envString("AIRFRAME_ARTWORK_DIR", &c.Artwork.CacheDir)
	envInt("AIRFRAME_POLL_SECONDS", &c.Artwork.PollSeconds)
	envInt("AIRFRAME_IDLE_TIMEOUT_SECONDS", &c.Session.IdleTimeoutSeconds)
	envInt("AIRFRAME_STALE_CHECK_SECONDS", &c.Session.StaleCheckSeconds)
	envInt("AIRFRAME_DISPLAY_WIDTH", &c.Display.Width)
	envInt("AIRFRAME_DISPLAY_HEIGHT", &c.Display.Height)
	envInt("AIRFRAME_REFRESH_SECONDS", &c.Display.RefreshSeconds)
	envString("AIRFRAME_FB_DEVICE", &c.Display.FramebufferDevice)
	envString("AIRFRAME_FRAME_OUTPUT", &c.Display.FrameOutput)
	envString("AIRFRAME_FONT_PATH", &c.Display.FontPath)
	envString("AIRFRAME_THEME", &c.Display.Theme)
	envString("AIRFRAME_RECEIVER_NAME", &c.Display.ReceiverName)
	envString("AIRFRAME_LOG_FORMAT", &c.Logging.Format)
	envString("AIRFRAME_LOG_LEVEL", &c.Logging.Level)
}

func envString(key string, target *string) {
	if v := os.Getenv(key); v != "" {
		*target = v
	}
}

func envInt(key string, target *int) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*target = n
		}
	}
}

func (c *Config) normalize() error {
	var err error
	if c.Metadata.PipePath, err = expandPath(c.Metadata.PipePath); err != nil {
		return err
	}
	if c.Artwork.CacheDir, err = expandPath(c.Artwork.CacheDir); err != nil {
		return err
	}
	if c.Display.FrameOutput, err = expandPath(c.Display.FrameOutput); err != nil {
		return err
	}
	if c.Display.FontPath != "" {
		if c.Display.FontPath, err = expandPath(c.Display.FontPath); err != nil {
			return err
		}
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// RetryInterval returns how long to wait before reopening the metadata pipe.
func (c *Config) RetryInterval() time.Duration {
	return time.Duration(c.Metadata.RetrySeconds) * time.Second
}

// PollInterval returns how often the artwork cache is rescanned.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.Artwork.PollSeconds) * time.Second
}

// IdleTimeout returns how long without records before the session is
// considered waiting for a connection.
func (c *Config) IdleTimeout() time.Duration {
	return time.Duration(c.Session.IdleTimeoutSeconds) * time.Second
}

// StaleCheckInterval returns how often the idle timeout is evaluated.
func (c *Config) StaleCheckInterval() time.Duration {
	return time.Duration(c.Session.StaleCheckSeconds) * time.Second
}

// RefreshInterval returns how often the display is redrawn.
func (c *Config) RefreshInterval() time.Duration {
	return time.Duration(c.Display.RefreshSeconds) * time.Second
}
