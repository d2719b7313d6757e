package shairport

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"airframe/internal/domain"
)

// newTestFeed wires a feed to a regular file holding the given stream
// bytes. The fake clock parks the reopen retry, so the file is consumed
// exactly once.
func newTestFeed(t *testing.T, stream string) *PipeFeed {
	t.Helper()
	path := filepath.Join(t.TempDir(), "metadata")
	if err := os.WriteFile(path, []byte(stream), 0o644); err != nil {
		t.Fatalf("write stream: %v", err)
	}
	return NewPipeFeed(zap.NewNop(), clockwork.NewFakeClock(), path, time.Second)
}

func receiveRecord(t *testing.T, records <-chan domain.Record) domain.Record {
	t.Helper()
	select {
	case rec, ok := <-records:
		if !ok {
			t.Fatal("records channel closed unexpectedly")
		}
		return rec
	case <-time.After(2 * time.Second):
		t.Fatal("Timeout: no record delivered")
	}
	return domain.Record{}
}

// TestPipeFeed_HappyPath verifies the standard scenario: records flow
// from the stream to the channel and Stop closes it cleanly.
func TestPipeFeed_HappyPath(t *testing.T) {
	stream := wireItem("core", "minm", []byte("Signal")) +
		wireItem("core", "asal", []byte("Carrier"))
	feed := newTestFeed(t, stream)

	if err := feed.Start(t.Context()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	first := receiveRecord(t, feed.Records())
	if first.Code != "minm" || string(first.Data) != "Signal" {
		t.Errorf("first record: expected minm/Signal, got %s/%q", first.Code, first.Data)
	}

	second := receiveRecord(t, feed.Records())
	if second.Code != "asal" || string(second.Data) != "Carrier" {
		t.Errorf("second record: expected asal/Carrier, got %s/%q", second.Code, second.Data)
	}

	if err := feed.Stop(t.Context()); err != nil {
		t.Fatalf("Stop: %v", err)
	}

	if _, ok := <-feed.Records(); ok {
		t.Error("records channel should be closed after Stop")
	}
}

// TestPipeFeed_LosslessDelivery verifies that a burst larger than the
// channel buffer arrives complete and in order; the reader blocks
// rather than dropping.
func TestPipeFeed_LosslessDelivery(t *testing.T) {
	const total = 25

	var stream string
	for i := 0; i < total; i++ {
		stream += wireItem("core", "minm", []byte(fmt.Sprintf("track-%02d", i)))
	}
	feed := newTestFeed(t, stream)

	if err := feed.Start(t.Context()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer feed.Stop(t.Context())

	for i := 0; i < total; i++ {
		rec := receiveRecord(t, feed.Records())
		want := fmt.Sprintf("track-%02d", i)
		if string(rec.Data) != want {
			t.Fatalf("record %d: expected %q, got %q", i, want, rec.Data)
		}
	}
}

// TestPipeFeed_SkipsMalformedItems verifies that one broken item does
// not cost the records around it.
func TestPipeFeed_SkipsMalformedItems(t *testing.T) {
	stream := wireItem("core", "minm", []byte("Before")) +
		`<item><length>0</length></item>` +
		wireItem("core", "minm", []byte("After"))
	feed := newTestFeed(t, stream)

	if err := feed.Start(t.Context()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer feed.Stop(t.Context())

	if rec := receiveRecord(t, feed.Records()); string(rec.Data) != "Before" {
		t.Errorf("expected 'Before', got %q", rec.Data)
	}
	if rec := receiveRecord(t, feed.Records()); string(rec.Data) != "After" {
		t.Errorf("expected 'After', got %q", rec.Data)
	}
}

// TestPipeFeed_MissingPipe verifies that a feed pointed at a path that
// never appears starts, waits politely and stops cleanly.
func TestPipeFeed_MissingPipe(t *testing.T) {
	path := filepath.Join(t.TempDir(), "never-created")
	feed := NewPipeFeed(zap.NewNop(), clockwork.NewFakeClock(), path, time.Second)

	if err := feed.Start(t.Context()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	select {
	case <-feed.Records():
		t.Error("Should NOT deliver records for a missing pipe")
	case <-time.After(100 * time.Millisecond):
		// Pass
	}

	done := make(chan error, 1)
	go func() { done <- feed.Stop(t.Context()) }()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Stop: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Timeout: Stop hung on a feed waiting for its pipe")
	}

	if _, ok := <-feed.Records(); ok {
		t.Error("records channel should be closed after Stop")
	}
}

// TestPipeFeed_Lifecycle verifies Start/Stop idempotency.
func TestPipeFeed_Lifecycle(t *testing.T) {
	feed := newTestFeed(t, "")

	if err := feed.Stop(t.Context()); err != nil {
		t.Errorf("Stop before Start: %v", err)
	}

	if err := feed.Start(t.Context()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := feed.Start(t.Context()); err != nil {
		t.Errorf("second Start: %v", err)
	}

	if err := feed.Stop(t.Context()); err != nil {
		t.Errorf("Stop: %v", err)
	}
	if err := feed.Stop(t.Context()); err != nil {
		t.Errorf("second Stop: %v", err)
	}
}
