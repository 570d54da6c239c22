package usecase

import (
	"context"

	"packline/internal/domain/entity"

	"github.com/google/uuid"
)

// ScanResult is the immediate, synchronous answer to one scan submission.
// Every scan produces either an updated session snapshot or a typed rejection;
// relay or subscriber health never changes this answer.
type ScanResult struct {
	Accepted bool                    `json:"accepted"`
	Reason   entity.RejectReason     `json:"reason,omitempty"`  // Set only when Accepted is false.
	Message  string                  `json:"message,omitempty"` // Human-readable rejection reason.
	Session  *entity.AssemblySession `json:"session,omitempty"` // Set only when Accepted is true.
}

// AssemblyUsecase defines the scan-side interface of the assembly coordination engine.
type AssemblyUsecase interface {
	// Scan validates and claims the scanned unit for the bundle, advances the
	// bundle's assembly state and publishes exactly one progress event. A
	// rejected claim is a normal result, not an error; only systemic store
	// failures surface as errors.
	Scan(ctx context.Context, orgID, bundleID uuid.UUID, scannedText string) (*ScanResult, error)

	// GetSession returns the bundle's current assembly session snapshot.
	GetSession(ctx context.Context, orgID, bundleID uuid.UUID) (*entity.AssemblySession, error)
}
