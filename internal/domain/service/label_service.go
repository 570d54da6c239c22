package service

// LabelService defines the interface for generating and parsing the QR labels
// affixed to physical units during inbound receiving.
type LabelService interface {
	// GenerateUnitLabel renders the printable QR label PNG for a unit's code.
	GenerateUnitLabel(qrCode string) ([]byte, error)

	// ParseUnitQR extracts the unit's QR code from raw scanned text. Scanners
	// may deliver either the bare code or the JSON label payload; anything
	// else is a malformed scan.
	ParseUnitQR(qrData string) (string, error)
}
