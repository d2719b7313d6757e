package domain

import (
	"context"
	"image"
)

//go:generate mockgen -destination=mocks/interfaces_mock.go -package=mocks airframe/internal/domain Feed,ArtworkSource,ArtworkWatcher,Renderer,FrameSink

// Feed defines the interface for the metadata stream source
// Implementations own the pipe lifecycle (open, reopen, retry)
type Feed interface {
	// Start launches the read loop. The context bounds startup only;
	// the loop runs until Stop is called.
	Start(ctx context.Context) error

	// Stop gracefully stops the feed and closes the records channel
	Stop(ctx context.Context) error

	// Records returns a read-only channel of decoded records.
	// Delivery is lossless; the channel is closed by Stop.
	Records() <-chan Record
}

// ArtworkSource defines the interface for locating the current cover image
type ArtworkSource interface {
	// Latest returns the path of the newest cover file.
	// ok is false when the cache directory is missing, unreadable or
	// holds no usable image; that is the normal no-artwork answer.
	Latest() (path string, ok bool)
}

// ArtworkWatcher defines the interface for cache directory change notification
type ArtworkWatcher interface {
	// Start begins watching. A missing directory is tolerated;
	// use Rearm once it may have appeared.
	Start(ctx context.Context) error

	// Stop gracefully stops the watcher
	Stop(ctx context.Context) error

	// Changed returns a read-only channel that receives a signal
	// whenever an image file in the cache directory changes
	Changed() <-chan struct{}

	// Rearm retries establishing the directory watch if it is not active
	Rearm()
}

// Renderer defines the interface for drawing a state snapshot on screen
type Renderer interface {
	// Render composes and presents one frame for the given snapshot
	Render(ctx context.Context, snapshot NowPlaying) error
}

// FrameSink defines the interface for presenting a composed frame
type FrameSink interface {
	// Present displays the frame
	Present(frame *image.RGBA) error

	// Close releases the underlying output device
	Close() error
}
