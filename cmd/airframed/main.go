package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"airframe/internal/artwork"
	"airframe/internal/config"
	"airframe/internal/display"
	"airframe/internal/domain"
	"airframe/internal/engine"
	"airframe/internal/nowplaying"
	"airframe/internal/shairport"
)

// configPath is set by the --config flag before the fx graph is built.
var configPath string

// AppOptions is the complete dependency graph of the daemon. Tests
// validate it with fx.ValidateApp and swap providers with fx.Decorate.
var AppOptions = fx.Options(
	// Logger configuration
	fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
		return &fxevent.ZapLogger{Logger: log}
	}),

	// Provide dependencies
	fx.Provide(
		loadConfig,
		newLogger,
		newClock,
		display.NewScreenResolution,
		newTheme,
		newFontSet,
		newCompositor,
		newFrameSink,
		newRenderer,
		newFeed,
		newSession,
		newArtworkSource,
		newArtworkWatcher,
		engine.NewEngine,
	),

	// Lifecycle hooks
	fx.Invoke(registerHooks),
)

func main() {
	// A .env next to the binary is handy on dev boards; absence is fine.
	_ = godotenv.Load()

	flag.StringVar(&configPath, "config", os.Getenv("AIRFRAME_CONFIG"), "path to config file")
	flag.Parse()

	app := fx.New(AppOptions)
	if err := app.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Handle graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Start the application
	if err := app.Start(ctx); err != nil {
		panic(err)
	}

	// Wait for interrupt signal
	<-ctx.Done()

	// Stop the application gracefully
	if err := app.Stop(context.Background()); err != nil {
		panic(err)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds a zap logger honoring the configured level and
// format. Console format keeps boot logs readable on a serial line.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	var zapCfg zap.Config
	if cfg.Logging.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}

func newClock() clockwork.Clock {
	return clockwork.NewRealClock()
}

func newTheme(logger *zap.Logger, cfg *config.Config) display.Theme {
	return display.ThemeByName(logger, cfg.Display.Theme)
}

func newFontSet(logger *zap.Logger, cfg *config.Config, res *domain.ScreenResolution) *display.FontSet {
	return display.NewFontSet(logger, cfg.Display.FontPath, res)
}

func newCompositor(logger *zap.Logger, cfg *config.Config, res *domain.ScreenResolution, theme display.Theme, fonts *display.FontSet) *display.Compositor {
	return display.NewCompositor(logger, res, theme, fonts, cfg.Display.ReceiverName)
}

// newFrameSink opens the framebuffer device. When that fails (no
// framebuffer, no permission, non-Linux host) frames go to a PNG file
// instead so the daemon stays useful during development.
func newFrameSink(logger *zap.Logger, cfg *config.Config) (domain.FrameSink, error) {
	sink, err := display.OpenFramebuffer(logger, cfg.Display.FramebufferDevice)
	if err == nil {
		return sink, nil
	}

	logger.Warn("framebuffer unavailable, writing frames to file",
		zap.String("device", cfg.Display.FramebufferDevice),
		zap.Error(err))

	return display.NewImageSink(logger, cfg.Display.FrameOutput)
}

func newRenderer(logger *zap.Logger, comp *display.Compositor, sink domain.FrameSink) domain.Renderer {
	return display.NewRenderer(logger, comp, sink)
}

func newFeed(logger *zap.Logger, clock clockwork.Clock, cfg *config.Config) domain.Feed {
	return shairport.NewPipeFeed(logger, clock, cfg.Metadata.PipePath, cfg.RetryInterval())
}

func newSession(logger *zap.Logger, clock clockwork.Clock, cfg *config.Config) *nowplaying.Session {
	return nowplaying.NewSession(logger, clock, cfg.IdleTimeout())
}

func newArtworkSource(logger *zap.Logger, cfg *config.Config) domain.ArtworkSource {
	return artwork.NewSelector(logger, cfg.Artwork.CacheDir)
}

func newArtworkWatcher(logger *zap.Logger, cfg *config.Config) domain.ArtworkWatcher {
	return artwork.NewWatcher(logger, cfg.Artwork.CacheDir)
}

// registerHooks sets up application lifecycle hooks. OnStop runs in
// reverse append order, so the engine stops before its inputs do.
func registerHooks(
	lc fx.Lifecycle,
	logger *zap.Logger,
	cfg *config.Config,
	sink domain.FrameSink,
	feed domain.Feed,
	watcher domain.ArtworkWatcher,
	eng *engine.Engine,
) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return sink.Close()
		},
	})

	lc.Append(fx.Hook{
		OnStart: feed.Start,
		OnStop:  feed.Stop,
	})

	lc.Append(fx.Hook{
		OnStart: watcher.Start,
		OnStop:  watcher.Stop,
	})

	lc.Append(fx.Hook{
		OnStart: eng.Start,
		OnStop:  eng.Stop,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Airframe Daemon Started",
				zap.String("pipe", cfg.Metadata.PipePath),
				zap.String("artwork", cfg.Artwork.CacheDir))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Shutting down")
			return nil
		},
	})
}
