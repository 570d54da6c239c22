// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Bundle represents a target assembly of a fixed count of physical units into one sellable pack.
type Bundle struct {
	ID           uuid.UUID    `json:"id"`            // The Global Unique Identifier (GUID) for the bundle.
	OrgID        uuid.UUID    `json:"org_id"`        // The organization that owns this bundle.
	ProductID    uuid.UUID    `json:"product_id"`    // The base product every claimed unit must match.
	Status       BundleStatus `json:"status"`        // Current assembly lifecycle phase.
	TargetCount  int          `json:"target_count"`  // Number of units required to complete the bundle.
	ScannedCount int          `json:"scanned_count"` // Number of units claimed so far; monotonically non-decreasing.
	PackSize     int          `json:"pack_size"`     // Units per sellable pack; TargetCount must be a multiple of it.
	LastScanAt   *time.Time   `json:"last_scan_at"`  // Timestamp of the last accepted scan, nil before the first.
	CreatedAt    time.Time    `json:"created_at"`    // Timestamp of when the bundle was set up.
	UpdatedAt    time.Time    `json:"updated_at"`    // Timestamp of the last modification.
}

// Remaining returns the number of units still needed to reach the target.
func (b *Bundle) Remaining() int {
	remaining := b.TargetCount - b.ScannedCount
	if remaining < 0 {
		return 0
	}

	return remaining
}

// Snapshot derives the fully self-describing assembly session view of this bundle.
// It is recomputed on every mutation and never persisted on its own.
func (b *Bundle) Snapshot() *AssemblySession {
	return &AssemblySession{
		BundleID:     b.ID,
		Status:       b.Status,
		ScannedCount: b.ScannedCount,
		TargetCount:  b.TargetCount,
		Remaining:    b.Remaining(),
		LastScanAt:   b.LastScanAt,
	}
}
