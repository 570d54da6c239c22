// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AssemblySession is the complete observable state of one bundle's assembly.
// It is fully self-describing: any holder of a snapshot can render the whole
// progress view without prior history, which is what makes missed events
// recoverable on the watching side.
//
// JSON field names follow the streamed wire contract, not the internal
// snake_case convention.
type AssemblySession struct {
	BundleID     uuid.UUID    `json:"bundleId"`
	Status       BundleStatus `json:"status"`
	ScannedCount int          `json:"scannedCount"`
	TargetCount  int          `json:"targetCount"`
	Remaining    int          `json:"remaining"`
	LastScanAt   *time.Time   `json:"lastScanAt"`
}
