package service

import (
	"packline/internal/domain/entity"

	"github.com/google/uuid"
)

// EventRelay is the transient, per-bundle ordered mailbox decoupling the scan
// path from the processes serving live viewers.
//
// Publish fans the event out to every subscriber currently registered for the
// bundle: each (bundle, subscriber) pair owns its own ordered mailbox,
// replicated at publish time, so draining from one subscriber never removes
// events for another. A single shared drain-and-delete buffer is exactly the
// design this interface exists to rule out.
//
// The relay is a transport aid only. Entries expire after a bounded TTL and
// the authoritative bundle/unit state loses nothing if the relay is dropped
// and reconstructed.
type EventRelay interface {
	// Subscribe registers a mailbox for the subscriber on the bundle.
	// Events published before subscription are not delivered.
	Subscribe(bundleID uuid.UUID, subscriberID string) error

	// Unsubscribe removes the subscriber's mailbox and discards its pending events.
	Unsubscribe(bundleID uuid.UUID, subscriberID string)

	// Publish appends the event, in emission order, to the mailbox of every
	// subscriber registered for the bundle. A bundle with no subscribers is
	// not an error; the event is simply dropped.
	Publish(bundleID uuid.UUID, event *entity.AssemblyEvent) error

	// Drain returns all currently buffered, unexpired events for the
	// subscriber in publish order and removes them from that subscriber's
	// mailbox only. An empty result is not an error.
	Drain(bundleID uuid.UUID, subscriberID string) []*entity.AssemblyEvent

	// Close shuts the relay down and discards all mailboxes.
	Close()
}
