// Package watch maintains a live subscription to a bundle's assembly stream
// from the viewing side. The watcher is a four-state supervisor that opens a
// transport, consumes events, and resubscribes after a fixed delay when the
// stream drops. Every event payload carries a full session snapshot, so a
// watcher that misses any number of events converges on the next one it sees.
package watch

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"packline/internal/domain/entity"

	"github.com/google/uuid"
)

// State is the watcher's connection lifecycle state.
type State string

const (
	// StateDisconnected means no subscription exists and none is being opened.
	StateDisconnected State = "disconnected"
	// StateConnecting means a transport open is in flight.
	StateConnecting State = "connecting"
	// StateConnected means events are flowing.
	StateConnected State = "connected"
	// StateBackoff means the stream dropped and a reconnect is scheduled.
	StateBackoff State = "backoff"
)

// DefaultReconnectDelay is the fixed wait between a stream drop and the next
// subscription attempt. Connections are short-lived and few, so a fixed delay
// is used instead of exponential backoff.
const DefaultReconnectDelay = 3 * time.Second

// EventStream is one live, ordered subscription to a bundle's events.
type EventStream interface {
	// Next blocks until the next event arrives or the stream drops.
	Next() (*entity.AssemblyEvent, error)

	// Close tears the stream down, unblocking any pending Next.
	Close() error
}

// Transport opens event streams. Implementations are expected to be safe for
// reuse across reconnect attempts.
type Transport interface {
	Open(ctx context.Context, bundleID uuid.UUID) (EventStream, error)
}

// Config tunes a Watcher. The zero value is usable.
type Config struct {
	// ReconnectDelay overrides DefaultReconnectDelay when positive.
	ReconnectDelay time.Duration

	Logger *slog.Logger

	// OnEvent is invoked for every received event, in arrival order, from a
	// single goroutine. Never invoked after Stop returns.
	OnEvent func(event *entity.AssemblyEvent)

	// OnState is invoked on every state transition, from the same goroutine
	// as OnEvent. Never invoked after Stop returns.
	OnState func(state State)
}

// Watcher supervises one bundle subscription.
type Watcher struct {
	transport Transport
	bundleID  uuid.UUID
	delay     time.Duration
	logger    *slog.Logger
	onEvent   func(*entity.AssemblyEvent)
	onState   func(State)

	mu      sync.Mutex
	state   State
	session *entity.AssemblySession
	stream  EventStream
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewWatcher creates a stopped watcher for the bundle.
func NewWatcher(transport Transport, bundleID uuid.UUID, cfg Config) *Watcher {
	delay := cfg.ReconnectDelay
	if delay <= 0 {
		delay = DefaultReconnectDelay
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Watcher{
		transport: transport,
		bundleID:  bundleID,
		delay:     delay,
		logger:    logger,
		onEvent:   cfg.OnEvent,
		onState:   cfg.OnState,
		state:     StateDisconnected,
	}
}

// Start begins supervising the subscription. Calling Start on a running
// watcher closes the existing subscription first, so at most one active
// stream exists per watcher.
func (w *Watcher) Start(ctx context.Context) {
	w.Stop()

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	w.mu.Lock()
	w.cancel = cancel
	w.done = done
	w.mu.Unlock()

	go w.run(runCtx, done)
}

// Stop cancels any pending reconnect, closes the transport and waits for the
// supervisor goroutine to exit. No OnEvent or OnState callback fires after
// Stop returns. Stopping a stopped watcher is a no-op.
func (w *Watcher) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	stream := w.stream
	done := w.done
	w.cancel = nil
	w.stream = nil
	w.done = nil
	w.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	if stream != nil {
		_ = stream.Close()
	}
	<-done
}

// State returns the current lifecycle state.
func (w *Watcher) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.state
}

// Session returns the last rendered session snapshot, or nil before the
// first event arrives.
func (w *Watcher) Session() *entity.AssemblySession {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.session
}

func (w *Watcher) run(ctx context.Context, done chan struct{}) {
	defer close(done)
	defer w.transition(ctx, StateDisconnected)

	for {
		w.transition(ctx, StateConnecting)

		stream, err := w.transport.Open(ctx, w.bundleID)
		if err != nil {
			if ctx.Err() != nil {
				return
			}

			w.logger.Warn("subscription open failed",
				slog.String("bundle_id", w.bundleID.String()),
				slog.Any("error", err),
			)

			if !w.waitBackoff(ctx) {
				return
			}

			continue
		}

		w.mu.Lock()
		w.stream = stream
		w.mu.Unlock()

		w.transition(ctx, StateConnected)
		w.consume(ctx, stream)

		w.mu.Lock()
		w.stream = nil
		w.mu.Unlock()
		_ = stream.Close()

		if ctx.Err() != nil {
			return
		}

		if !w.waitBackoff(ctx) {
			return
		}
	}
}

// consume drains the stream until it drops or the watcher is stopped.
func (w *Watcher) consume(ctx context.Context, stream EventStream) {
	for {
		event, err := stream.Next()
		if err != nil {
			if ctx.Err() == nil {
				w.logger.Warn("subscription dropped",
					slog.String("bundle_id", w.bundleID.String()),
					slog.Any("error", err),
				)
			}

			return
		}

		if ctx.Err() != nil {
			return
		}

		w.apply(event)
	}
}

// apply renders one event: the payload is a full snapshot, so it replaces
// the rendered session wholesale rather than patching it.
func (w *Watcher) apply(event *entity.AssemblyEvent) {
	if event.Payload != nil {
		w.mu.Lock()
		w.session = event.Payload
		w.mu.Unlock()
	}

	if w.onEvent != nil {
		w.onEvent(event)
	}
}

// waitBackoff parks in backoff for the fixed delay. It reports false when
// the watcher was stopped while waiting.
func (w *Watcher) waitBackoff(ctx context.Context) bool {
	w.transition(ctx, StateBackoff)

	timer := time.NewTimer(w.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}

func (w *Watcher) transition(ctx context.Context, state State) {
	w.mu.Lock()
	if w.state == state {
		w.mu.Unlock()

		return
	}
	w.state = state
	w.mu.Unlock()

	// A stopped watcher still records the final disconnected state but must
	// not call back into the consumer.
	if w.onState != nil && ctx.Err() == nil {
		w.onState(state)
	}
}
