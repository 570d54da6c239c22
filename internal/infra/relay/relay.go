// Package relay implements the in-process assembly event mailbox with
// per-subscriber fan-out delivery.
package relay

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"packline/config"
	"packline/internal/domain/entity"
	"packline/internal/domain/service"
	"packline/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const sweepInterval = 5 * time.Second

// ErrRelayClosed is returned when publishing or subscribing after Close.
var ErrRelayClosed = errors.New("relay: relay is closed")

// entry is one buffered event plus its expiry deadline.
type entry struct {
	event     *entity.AssemblyEvent
	expiresAt time.Time
}

// mailbox is the ordered buffer owned by exactly one (bundle, subscriber) pair.
// Publish replicates into every mailbox of the bundle; Drain empties only this one.
type mailbox struct {
	entries []entry
	dropped uint64
}

// Relay fans assembly events out to every registered subscriber of a bundle.
// It is constructed once per process and passed by reference; there is no
// package-level instance.
type Relay struct {
	mu     sync.Mutex
	boxes  map[uuid.UUID]map[string]*mailbox
	ttl    time.Duration
	cap    int
	logger *slog.Logger
	done   chan struct{}
	closed bool
}

// New creates a relay with the given entry TTL and per-mailbox capacity and
// starts its expiry sweeper.
func New(ttl time.Duration, capacity int, logger *slog.Logger) *Relay {
	r := &Relay{
		boxes:  make(map[uuid.UUID]map[string]*mailbox),
		ttl:    ttl,
		cap:    capacity,
		logger: logger,
		done:   make(chan struct{}),
	}

	go r.sweepLoop()

	return r
}

// Params holds dependencies for the relay, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewEventRelay is the Fx provider for the process-wide event relay.
func NewEventRelay(params Params) service.EventRelay {
	relay := New(
		params.Config.Stream.MailboxTTLOrDefault(),
		params.Config.Stream.MailboxCapOrDefault(),
		params.Logger,
	)

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			relay.Close()

			return nil
		},
	})

	return relay
}

// Subscribe registers an empty mailbox for the subscriber on the bundle.
func (r *Relay) Subscribe(bundleID uuid.UUID, subscriberID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrRelayClosed
	}

	subs, ok := r.boxes[bundleID]
	if !ok {
		subs = make(map[string]*mailbox)
		r.boxes[bundleID] = subs
	}

	if _, exists := subs[subscriberID]; exists {
		return errors.Errorf("relay: subscriber %s already registered for bundle %s", subscriberID, bundleID)
	}

	subs[subscriberID] = &mailbox{}

	return nil
}

// Unsubscribe removes the subscriber's mailbox; pending events in it are discarded.
func (r *Relay) Unsubscribe(bundleID uuid.UUID, subscriberID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	subs, ok := r.boxes[bundleID]
	if !ok {
		return
	}

	delete(subs, subscriberID)
	if len(subs) == 0 {
		delete(r.boxes, bundleID)
	}
}

// Publish replicates the event into the mailbox of every subscriber currently
// registered for the bundle, preserving emission order per mailbox. When a
// mailbox is full its oldest entry is dropped; a slow viewer recovers from the
// next full snapshot it does receive.
func (r *Relay) Publish(bundleID uuid.UUID, event *entity.AssemblyEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrRelayClosed
	}

	subs, ok := r.boxes[bundleID]
	if !ok {
		// Nobody is watching; not an error.
		return nil
	}

	expiresAt := time.Now().Add(r.ttl)
	for subscriberID, box := range subs {
		if len(box.entries) >= r.cap {
			box.entries = box.entries[1:]
			box.dropped++
			r.logger.Warn("relay mailbox full, dropping oldest event",
				slog.String("bundle_id", bundleID.String()),
				slog.String("subscriber_id", subscriberID),
				slog.Uint64("dropped_total", box.dropped),
			)
		}
		box.entries = append(box.entries, entry{event: event, expiresAt: expiresAt})
	}

	return nil
}

// Drain returns the subscriber's unexpired buffered events in publish order and
// clears only that subscriber's mailbox.
func (r *Relay) Drain(bundleID uuid.UUID, subscriberID string) []*entity.AssemblyEvent {
	r.mu.Lock()
	defer r.mu.Unlock()

	subs, ok := r.boxes[bundleID]
	if !ok {
		return nil
	}

	box, ok := subs[subscriberID]
	if !ok || len(box.entries) == 0 {
		return nil
	}

	now := time.Now()
	events := make([]*entity.AssemblyEvent, 0, len(box.entries))
	for _, e := range box.entries {
		if e.expiresAt.Before(now) {
			continue
		}
		events = append(events, e.event)
	}
	box.entries = box.entries[:0]

	return events
}

// Close shuts the relay down, stops the sweeper and discards all mailboxes.
func (r *Relay) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}

	r.closed = true
	close(r.done)
	r.boxes = nil
}

// sweepLoop periodically evicts expired entries so abandoned mailboxes do not
// hold events past their TTL.
func (r *Relay) sweepLoop() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.done:
			return
		case <-ticker.C:
			r.sweep(time.Now())
		}
	}
}

func (r *Relay) sweep(now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}

	for _, subs := range r.boxes {
		for _, box := range subs {
			kept := box.entries[:0]
			for _, e := range box.entries {
				if e.expiresAt.After(now) {
					kept = append(kept, e)
				}
			}
			box.entries = kept
		}
	}
}
