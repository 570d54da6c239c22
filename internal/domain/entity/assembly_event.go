// Package entity contains the core business objects of the project.
package entity

import "time"

// EventType classifies a streamed assembly event.
type EventType string

const (
	// EventTypeConnected is the synthetic event sent once right after a stream opens.
	EventTypeConnected EventType = "connected"
	// EventTypeScanSuccess is emitted for an accepted claim that does not change the phase.
	EventTypeScanSuccess EventType = "scan_success"
	// EventTypeScanError is emitted for a rejected claim; state is unchanged.
	EventTypeScanError EventType = "scan_error"
	// EventTypePhaseTransition is emitted when the bundle status advances (pending -> assembling).
	EventTypePhaseTransition EventType = "phase_transition"
	// EventTypeAssemblyComplete is emitted when the scanned count reaches the target count.
	EventTypeAssemblyComplete EventType = "assembly_complete"
)

// String returns the string representation of the EventType.
func (t EventType) String() string {
	return string(t)
}

// IsValid checks if the EventType is a valid value.
func (t EventType) IsValid() bool {
	switch t {
	case EventTypeConnected, EventTypeScanSuccess, EventTypeScanError,
		EventTypePhaseTransition, EventTypeAssemblyComplete:
		return true
	default:
		return false
	}
}

// AssemblyEvent is one state change broadcast to observers of a bundle.
// When Payload is present it carries a full snapshot, never a delta, so a
// client that missed any number of events converges on the latest one.
type AssemblyEvent struct {
	Type      EventType        `json:"type"`
	Payload   *AssemblySession `json:"payload"`
	Message   *string          `json:"message"`
	Timestamp int64            `json:"timestamp"` // Unix milliseconds.
}

// NewConnectedEvent builds the synthetic handshake event for a freshly opened
// stream. It carries the bundle's current snapshot so a viewer renders real
// state before the first scan arrives.
func NewConnectedEvent(session *AssemblySession) *AssemblyEvent {
	return &AssemblyEvent{
		Type:      EventTypeConnected,
		Payload:   session,
		Timestamp: time.Now().UnixMilli(),
	}
}

// NewProgressEvent builds an event carrying the bundle's recomputed snapshot.
func NewProgressEvent(eventType EventType, session *AssemblySession) *AssemblyEvent {
	return &AssemblyEvent{
		Type:      eventType,
		Payload:   session,
		Timestamp: time.Now().UnixMilli(),
	}
}

// NewScanErrorEvent builds the event emitted for a rejected claim.
func NewScanErrorEvent(message string) *AssemblyEvent {
	return &AssemblyEvent{
		Type:      EventTypeScanError,
		Message:   &message,
		Timestamp: time.Now().UnixMilli(),
	}
}
