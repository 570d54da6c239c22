// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Unit represents one physical, individually QR-tagged item eligible for assignment to a bundle.
type Unit struct {
	ID               uuid.UUID  `json:"id"`                 // The Global Unique Identifier (GUID) for the unit.
	OrgID            uuid.UUID  `json:"org_id"`             // The organization that received this unit.
	ProductID        uuid.UUID  `json:"product_id"`         // The product this unit is an instance of.
	QRCode           string     `json:"qr_code"`            // Unique QR payload printed on the physical label.
	AssignedBundleID *uuid.UUID `json:"assigned_bundle_id"` // Bundle the unit is claimed by; transitions nil->bundleID exactly once.
	ReceivedAt       time.Time  `json:"received_at"`        // Timestamp of inbound receiving.
	UpdatedAt        time.Time  `json:"updated_at"`         // Timestamp of the last modification.
}

// IsAssigned reports whether the unit has already been claimed by a bundle.
func (u *Unit) IsAssigned() bool {
	return u.AssignedBundleID != nil
}
