package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateMetadata(); err != nil {
		return err
	}
	if err := c.validateArtwork(); err != nil {
		return err
	}
	if err := c.validateSession(); err != nil {
		return err
	}
	if err := c.validateDisplay(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateMetadata() error {
	if c.Metadata.PipePath == "" {
		return errors.New("metadata.pipe_path must be set")
	}
	if c.Metadata.RetrySeconds < 1 {
		return errors.New("metadata.retry_seconds must be at least 1")
	}
	return nil
}

func (c *Config) validateArtwork() error {
	if c.Artwork.CacheDir == "" {
		return errors.New("artwork.cache_dir must be set")
	}
	if c.Artwork.PollSeconds < 1 {
		return errors.New("artwork.poll_seconds must be at least 1")
	}
	return nil
}

func (c *Config) validateSession() error {
	if c.Session.IdleTimeoutSeconds < 1 {
		return errors.New("session.idle_timeout_seconds must be at least 1")
	}
	if c.Session.StaleCheckSeconds < 1 {
		return errors.New("session.stale_check_seconds must be at least 1")
	}
	return nil
}

func (c *Config) validateDisplay() error {
	if c.Display.Width < 0 || c.Display.Height < 0 {
		return errors.New("display.width and display.height must not be negative")
	}
	if (c.Display.Width == 0) != (c.Display.Height == 0) {
		return errors.New("display.width and display.height must be set together")
	}
	if c.Display.RefreshSeconds < 1 {
		return errors.New("display.refresh_seconds must be at least 1")
	}
	if c.Display.FrameOutput == "" {
		return errors.New("display.frame_output must be set")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	return nil
}
