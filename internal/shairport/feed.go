package shairport

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"airframe/internal/domain"
)

// PipeFeed reads the shairport-sync metadata pipe and emits decoded
// records. It owns the whole pipe lifecycle: waiting for the pipe to
// exist, reopening after the sender goes away, and retrying on errors.
type PipeFeed struct {
	logger  *zap.Logger
	clock   clockwork.Clock
	path    string
	retry   time.Duration
	records chan domain.Record
	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	file    io.ReadCloser // current connection, closed by Stop to unblock reads
}

// NewPipeFeed creates a feed for the pipe at path. retry is the wait
// between reopen attempts.
func NewPipeFeed(logger *zap.Logger, clock clockwork.Clock, path string, retry time.Duration) *PipeFeed {
	return &PipeFeed{
		logger:  logger,
		clock:   clock,
		path:    path,
		retry:   retry,
		records: make(chan domain.Record, 10),
	}
}

// Start launches the read loop. The passed context bounds startup only;
// the loop runs until Stop is called.
func (f *PipeFeed) Start(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f.mu.Lock()
	if f.running {
		f.mu.Unlock()
		return nil
	}
	f.running = true

	runCtx, cancel := context.WithCancel(context.Background())
	f.cancel = cancel
	f.mu.Unlock()

	f.logger.Info("metadata feed started", zap.String("path", f.path))

	f.wg.Add(1)
	go f.run(runCtx)

	return nil
}

// Stop gracefully stops the feed and closes the records channel.
func (f *PipeFeed) Stop(ctx context.Context) error {
	f.mu.Lock()
	if !f.running {
		f.mu.Unlock()
		return nil
	}
	f.running = false

	if f.cancel != nil {
		f.cancel()
	}

	// Closing the pipe unblocks a read parked in the poller.
	if f.file != nil {
		if err := f.file.Close(); err != nil {
			f.logger.Debug("close metadata pipe", zap.Error(err))
		}
		f.file = nil
	}
	f.mu.Unlock()

	f.wg.Wait()
	close(f.records)

	f.logger.Info("metadata feed stopped")
	return nil
}

// Records returns a read-only channel of decoded records. Delivery is
// lossless; the channel is closed by Stop.
func (f *PipeFeed) Records() <-chan domain.Record {
	return f.records
}

func (f *PipeFeed) run(ctx context.Context) {
	defer f.wg.Done()

	for {
		file, err := f.open(ctx)
		if err != nil {
			return
		}

		connID := uuid.NewString()
		f.logger.Info("metadata pipe opened",
			zap.String("path", f.path),
			zap.String("conn_id", connID))

		delivered := f.consume(ctx, file, connID)

		f.setFile(nil)
		_ = file.Close()

		if ctx.Err() != nil {
			return
		}

		// End of stream is routine: the sender detached, or a
		// non-blocking open found no writer yet. Only connections that
		// carried records are worth an info line.
		if delivered > 0 {
			f.logger.Info("metadata feed ended",
				zap.String("conn_id", connID),
				zap.Int("records", delivered))
		} else {
			f.logger.Debug("metadata feed ended without records",
				zap.String("conn_id", connID))
		}

		if !f.sleep(ctx) {
			return
		}
	}
}

// open blocks until the pipe can be opened or the context is done. A
// missing pipe is logged once per wait phase, then polled quietly.
func (f *PipeFeed) open(ctx context.Context) (io.ReadCloser, error) {
	logged := false
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		file, err := openPipe(f.path)
		if err == nil {
			// Store under the lock with a running check, so a Stop that
			// raced the open still finds and closes this handle instead
			// of leaving a read parked forever.
			f.mu.Lock()
			if !f.running {
				f.mu.Unlock()
				file.Close()
				return nil, context.Canceled
			}
			f.file = file
			f.mu.Unlock()
			return file, nil
		}

		if !logged {
			if errors.Is(err, fs.ErrNotExist) {
				f.logger.Info("waiting for metadata pipe", zap.String("path", f.path))
			} else {
				f.logger.Warn("cannot open metadata pipe",
					zap.String("path", f.path),
					zap.Error(err))
			}
			logged = true
		}

		if !f.sleep(ctx) {
			return nil, ctx.Err()
		}
	}
}

// consume decodes records from one connection until it ends and returns
// how many records were delivered.
func (f *PipeFeed) consume(ctx context.Context, file io.Reader, connID string) int {
	decoder := NewDecoder(file)
	delivered := 0

	for {
		rec, err := decoder.Next()
		switch {
		case err == nil:
			select {
			case f.records <- rec:
				delivered++
			case <-ctx.Done():
				return delivered
			}
		case errors.Is(err, ErrMalformedItem):
			f.logger.Warn("skipping malformed metadata item",
				zap.String("conn_id", connID),
				zap.Error(err))
		case errors.Is(err, io.EOF):
			return delivered
		default:
			if ctx.Err() != nil {
				return delivered
			}
			f.logger.Warn("metadata stream error",
				zap.String("conn_id", connID),
				zap.Error(err))
			return delivered
		}
	}
}

func (f *PipeFeed) sleep(ctx context.Context) bool {
	select {
	case <-f.clock.After(f.retry):
		return true
	case <-ctx.Done():
		return false
	}
}

func (f *PipeFeed) setFile(file io.ReadCloser) {
	f.mu.Lock()
	f.file = file
	f.mu.Unlock()
}
