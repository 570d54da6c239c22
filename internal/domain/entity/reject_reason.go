// Package entity contains the core business objects of the project.
package entity

// RejectReason is the typed reason returned to a scanning terminal when a claim is refused.
type RejectReason string

const (
	// RejectReasonAlreadyAssigned indicates the unit is already bound to a bundle.
	RejectReasonAlreadyAssigned RejectReason = "already_assigned"
	// RejectReasonWrongProduct indicates the unit's product does not match the bundle's configuration.
	RejectReasonWrongProduct RejectReason = "wrong_product"
	// RejectReasonNotFound indicates the scanned QR code or the bundle resolves to nothing.
	RejectReasonNotFound RejectReason = "not_found"
	// RejectReasonBundleNotAssembling indicates the bundle is already completed or sold.
	RejectReasonBundleNotAssembling RejectReason = "bundle_not_assembling"
)

// String returns the string representation of the RejectReason.
func (r RejectReason) String() string {
	return string(r)
}
