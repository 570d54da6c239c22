package watch

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"packline/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStream struct {
	events    chan *entity.AssemblyEvent
	closed    chan struct{}
	closeOnce sync.Once
}

func newFakeStream() *fakeStream {
	return &fakeStream{
		events: make(chan *entity.AssemblyEvent, 16),
		closed: make(chan struct{}),
	}
}

func (s *fakeStream) Next() (*entity.AssemblyEvent, error) {
	select {
	case event := <-s.events:
		return event, nil
	case <-s.closed:
		return nil, errors.New("stream closed")
	}
}

func (s *fakeStream) Close() error {
	s.closeOnce.Do(func() { close(s.closed) })

	return nil
}

// drop simulates a transport failure observed by the consumer.
func (s *fakeStream) drop() {
	_ = s.Close()
}

type fakeTransport struct {
	mu    sync.Mutex
	open  func(attempt int) (EventStream, error)
	opens int
}

func (t *fakeTransport) Open(_ context.Context, _ uuid.UUID) (EventStream, error) {
	t.mu.Lock()
	t.opens++
	attempt := t.opens
	t.mu.Unlock()

	return t.open(attempt)
}

func (t *fakeTransport) openCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.opens
}

func snapshotAt(bundleID uuid.UUID, scanned, target int) *entity.AssemblySession {
	return &entity.AssemblySession{
		BundleID:     bundleID,
		Status:       entity.BundleStatusAssembling,
		ScannedCount: scanned,
		TargetCount:  target,
		Remaining:    target - scanned,
	}
}

type recorder struct {
	events chan *entity.AssemblyEvent
	states chan State
}

func newRecorder() *recorder {
	return &recorder{
		events: make(chan *entity.AssemblyEvent, 64),
		states: make(chan State, 64),
	}
}

func (r *recorder) config(delay time.Duration) Config {
	return Config{
		ReconnectDelay: delay,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		OnEvent:        func(event *entity.AssemblyEvent) { r.events <- event },
		OnState:        func(state State) { r.states <- state },
	}
}

func (r *recorder) waitEvent(t *testing.T) *entity.AssemblyEvent {
	t.Helper()

	select {
	case event := <-r.events:
		return event
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")

		return nil
	}
}

func (r *recorder) waitState(t *testing.T, want State) {
	t.Helper()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case state := <-r.states:
			if state == want {
				return
			}
		case <-deadline:
			t.Fatalf("timed out waiting for state %s", want)
		}
	}
}

func TestWatcher_RendersSnapshotsWholesale(t *testing.T) {
	t.Parallel()

	bundleID := uuid.New()
	stream := newFakeStream()
	transport := &fakeTransport{
		open: func(int) (EventStream, error) { return stream, nil },
	}

	rec := newRecorder()
	w := NewWatcher(transport, bundleID, rec.config(10*time.Millisecond))
	w.Start(context.Background())
	defer w.Stop()

	rec.waitState(t, StateConnected)

	stream.events <- entity.NewConnectedEvent(snapshotAt(bundleID, 2, 6))
	first := rec.waitEvent(t)
	assert.Equal(t, entity.EventTypeConnected, first.Type)
	require.NotNil(t, w.Session())
	assert.Equal(t, 2, w.Session().ScannedCount)

	// A later snapshot replaces the rendered state outright; nothing is merged.
	stream.events <- entity.NewProgressEvent(entity.EventTypeScanSuccess, snapshotAt(bundleID, 5, 6))
	rec.waitEvent(t)
	assert.Equal(t, 5, w.Session().ScannedCount)
	assert.Equal(t, 1, w.Session().Remaining)
}

func TestWatcher_ScanErrorLeavesSnapshotAlone(t *testing.T) {
	t.Parallel()

	bundleID := uuid.New()
	stream := newFakeStream()
	transport := &fakeTransport{
		open: func(int) (EventStream, error) { return stream, nil },
	}

	rec := newRecorder()
	w := NewWatcher(transport, bundleID, rec.config(10*time.Millisecond))
	w.Start(context.Background())
	defer w.Stop()

	rec.waitState(t, StateConnected)

	stream.events <- entity.NewConnectedEvent(snapshotAt(bundleID, 3, 6))
	rec.waitEvent(t)

	stream.events <- entity.NewScanErrorEvent("unit already assigned")
	event := rec.waitEvent(t)
	assert.Equal(t, entity.EventTypeScanError, event.Type)
	assert.Equal(t, 3, w.Session().ScannedCount)
}

func TestWatcher_ReconnectsAfterDrop(t *testing.T) {
	t.Parallel()

	bundleID := uuid.New()
	first := newFakeStream()
	second := newFakeStream()
	transport := &fakeTransport{
		open: func(attempt int) (EventStream, error) {
			if attempt == 1 {
				return first, nil
			}

			return second, nil
		},
	}

	rec := newRecorder()
	w := NewWatcher(transport, bundleID, rec.config(10*time.Millisecond))
	w.Start(context.Background())
	defer w.Stop()

	rec.waitState(t, StateConnected)
	first.events <- entity.NewConnectedEvent(snapshotAt(bundleID, 2, 6))
	rec.waitEvent(t)

	first.drop()
	rec.waitState(t, StateBackoff)
	rec.waitState(t, StateConnected)

	// Every intermediate event was missed; one fresh snapshot fully heals the view.
	second.events <- entity.NewProgressEvent(entity.EventTypeAssemblyComplete, snapshotAt(bundleID, 6, 6))
	rec.waitEvent(t)
	assert.Equal(t, 6, w.Session().ScannedCount)
	assert.Equal(t, 2, transport.openCount())
}

func TestWatcher_RetriesWhenOpenFails(t *testing.T) {
	t.Parallel()

	bundleID := uuid.New()
	stream := newFakeStream()
	transport := &fakeTransport{
		open: func(attempt int) (EventStream, error) {
			if attempt == 1 {
				return nil, errors.New("connection refused")
			}

			return stream, nil
		},
	}

	rec := newRecorder()
	w := NewWatcher(transport, bundleID, rec.config(10*time.Millisecond))
	w.Start(context.Background())
	defer w.Stop()

	rec.waitState(t, StateBackoff)
	rec.waitState(t, StateConnected)
	assert.Equal(t, 2, transport.openCount())
}

func TestWatcher_StopSilencesCallbacks(t *testing.T) {
	t.Parallel()

	bundleID := uuid.New()
	stream := newFakeStream()
	transport := &fakeTransport{
		open: func(int) (EventStream, error) { return stream, nil },
	}

	rec := newRecorder()
	w := NewWatcher(transport, bundleID, rec.config(10*time.Millisecond))
	w.Start(context.Background())

	rec.waitState(t, StateConnected)

	w.Stop()
	assert.Equal(t, StateDisconnected, w.State())

	// Events arriving on a stale stream after Stop must not reach the consumer.
	select {
	case stream.events <- entity.NewConnectedEvent(snapshotAt(bundleID, 1, 6)):
	default:
	}

	select {
	case event := <-rec.events:
		t.Fatalf("unexpected event after stop: %v", event.Type)
	case <-time.After(50 * time.Millisecond):
	}

	// Stopping again is a no-op.
	w.Stop()
}

func TestWatcher_StartClosesPriorSubscription(t *testing.T) {
	t.Parallel()

	bundleID := uuid.New()
	var streams []*fakeStream
	var mu sync.Mutex
	transport := &fakeTransport{
		open: func(int) (EventStream, error) {
			s := newFakeStream()
			mu.Lock()
			streams = append(streams, s)
			mu.Unlock()

			return s, nil
		},
	}

	rec := newRecorder()
	w := NewWatcher(transport, bundleID, rec.config(10*time.Millisecond))
	w.Start(context.Background())
	rec.waitState(t, StateConnected)

	w.Start(context.Background())
	rec.waitState(t, StateConnected)
	defer w.Stop()

	mu.Lock()
	first := streams[0]
	mu.Unlock()

	select {
	case <-first.closed:
	case <-time.After(2 * time.Second):
		t.Fatal("first subscription was not closed on restart")
	}

	assert.Equal(t, 2, transport.openCount())
}
