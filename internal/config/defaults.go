package config

const (
	defaultPipePath           = "/tmp/shairport-sync-metadata"
	defaultRetrySeconds       = 1
	defaultCacheDir           = "/tmp/shairport-sync/.cache/coverart"
	defaultPollSeconds        = 10
	defaultIdleTimeoutSeconds = 600
	defaultStaleCheckSeconds  = 30
	defaultRefreshSeconds     = 1
	defaultFramebufferDevice  = "/dev/fb0"
	defaultFrameOutput        = "/tmp/airframe/frame.png"
	defaultTheme              = "dark"
	defaultReceiverName       = "AirPlay Receiver"
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Metadata: Metadata{
			PipePath:     defaultPipePath,
			RetrySeconds: defaultRetrySeconds,
		},
		Artwork: Artwork{
			CacheDir:    defaultCacheDir,
			PollSeconds: defaultPollSeconds,
		},
		Session: Session{
			IdleTimeoutSeconds: defaultIdleTimeoutSeconds,
			StaleCheckSeconds:  defaultStaleCheckSeconds,
		},
		Display: Display{
			RefreshSeconds:    defaultRefreshSeconds,
			FramebufferDevice: defaultFramebufferDevice,
			FrameOutput:       defaultFrameOutput,
			Theme:             defaultTheme,
			ReceiverName:      defaultReceiverName,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
