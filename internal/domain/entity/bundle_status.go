// Package entity contains the core business objects of the project.
package entity

// BundleStatus represents the assembly lifecycle phase of a bundle.
// A bundle only ever advances: pending -> assembling -> completed -> sold.
type BundleStatus string

const (
	// BundleStatusPending indicates the bundle has been set up but no unit has been scanned yet.
	BundleStatusPending BundleStatus = "pending"
	// BundleStatusAssembling indicates at least one unit has been claimed and the target is not reached.
	BundleStatusAssembling BundleStatus = "assembling"
	// BundleStatusCompleted indicates the scanned count has reached the target count.
	BundleStatusCompleted BundleStatus = "completed"
	// BundleStatusSold indicates the bundle left the warehouse; written by the fulfillment process.
	BundleStatusSold BundleStatus = "sold"
)

// String returns the string representation of the BundleStatus.
func (s BundleStatus) String() string {
	return string(s)
}

// IsValid checks if the BundleStatus is a valid value.
func (s BundleStatus) IsValid() bool {
	switch s {
	case BundleStatusPending, BundleStatusAssembling, BundleStatusCompleted, BundleStatusSold:
		return true
	default:
		return false
	}
}

// AcceptsScans reports whether a claim against the bundle may still proceed.
// Completed and sold bundles reject every scan with bundle_not_assembling.
func (s BundleStatus) AcceptsScans() bool {
	return s == BundleStatusPending || s == BundleStatusAssembling
}
