package engine

import (
	"context"
	"sync"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"airframe/internal/config"
	"airframe/internal/domain"
	"airframe/internal/nowplaying"
)

// Engine orchestrates the display pipeline. It is the single writer of
// session state and the current artwork path: feed records, scheduled
// ticks and watcher signals all funnel into one select loop, so writes
// are serialized by construction.
type Engine struct {
	logger   *zap.Logger
	cfg      *config.Config
	clock    clockwork.Clock
	feed     domain.Feed
	session  *nowplaying.Session
	artwork  domain.ArtworkSource
	watcher  domain.ArtworkWatcher
	renderer domain.Renderer

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup

	artworkPath string // owned by the run loop
}

// NewEngine creates the orchestration engine
func NewEngine(
	logger *zap.Logger,
	cfg *config.Config,
	clock clockwork.Clock,
	feed domain.Feed,
	session *nowplaying.Session,
	artwork domain.ArtworkSource,
	watcher domain.ArtworkWatcher,
	renderer domain.Renderer,
) *Engine {
	return &Engine{
		logger:   logger,
		cfg:      cfg,
		clock:    clock,
		feed:     feed,
		session:  session,
		artwork:  artwork,
		watcher:  watcher,
		renderer: renderer,
	}
}

// Start launches the event loop in a goroutine. It returns immediately;
// the loop runs until Stop is called.
func (e *Engine) Start(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	e.mu.Lock()
	if e.running {
		e.mu.Unlock()
		return nil
	}
	e.running = true

	runCtx, cancel := context.WithCancel(context.Background())
	e.cancel = cancel
	e.mu.Unlock()

	e.logger.Info("Engine starting...")

	e.wg.Add(1)
	go e.runLoop(runCtx)

	return nil
}

// Stop gracefully stops the engine.
func (e *Engine) Stop(ctx context.Context) error {
	e.mu.Lock()
	if !e.running {
		e.mu.Unlock()
		return nil
	}
	e.running = false

	if e.cancel != nil {
		e.cancel()
	}
	e.mu.Unlock()

	e.wg.Wait()

	e.logger.Info("Engine stopped")
	return nil
}

// runLoop is the main event loop. Text records update state that the
// periodic refresh paints; artwork signals re-render immediately since
// they arrive at the end of a metadata burst.
func (e *Engine) runLoop(ctx context.Context) {
	defer e.wg.Done()

	records := e.feed.Records()
	changed := e.watcher.Changed()

	refresh := e.clock.NewTicker(e.cfg.RefreshInterval())
	defer refresh.Stop()
	poll := e.clock.NewTicker(e.cfg.PollInterval())
	defer poll.Stop()
	stale := e.clock.NewTicker(e.cfg.StaleCheckInterval())
	defer stale.Stop()

	// First frame goes up before any record arrives.
	e.rescanArtwork()
	e.render(ctx)

	for {
		select {
		case <-ctx.Done():
			e.logger.Info("Engine loop stopped")
			return

		case rec, ok := <-records:
			if !ok {
				e.logger.Info("Feed records channel closed")
				return
			}
			if artworkChanged := e.session.Apply(rec); artworkChanged {
				e.rescanArtwork()
				e.render(ctx)
			}

		case _, ok := <-changed:
			if !ok {
				changed = nil
				continue
			}
			if e.rescanArtwork() {
				e.render(ctx)
			}

		case <-poll.Chan():
			e.watcher.Rearm()
			if e.rescanArtwork() {
				e.render(ctx)
			}

		case <-stale.Chan():
			if e.session.ExpireIfIdle() {
				e.render(ctx)
			}

		case <-refresh.Chan():
			e.render(ctx)
		}
	}
}

// rescanArtwork asks the selector for the current cover and reports
// whether the answer changed.
func (e *Engine) rescanArtwork() bool {
	path, ok := e.artwork.Latest()
	if !ok {
		path = ""
	}
	if path == e.artworkPath {
		return false
	}

	e.artworkPath = path
	e.logger.Info("Artwork changed", zap.String("path", path))
	return true
}

func (e *Engine) render(ctx context.Context) {
	snapshot := e.session.Snapshot()
	snapshot.ArtworkPath = e.artworkPath

	if err := e.renderer.Render(ctx, snapshot); err != nil {
		if ctx.Err() != nil {
			return
		}
		e.logger.Error("Failed to render frame", zap.Error(err))
	}
}
