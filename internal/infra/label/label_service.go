// Package label renders and parses the QR labels attached to physical units.
package label

import (
	"encoding/json"
	"fmt"
	"strings"

	domainerrors "packline/internal/domain/errors"
	"packline/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const unitQRType = "unit"

type labelService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// UnitQRData represents the QR label data structure
type UnitQRData struct {
	Type string `json:"type"`
	Code string `json:"code"`
}

// NewLabelService creates a new label service instance
func NewLabelService(size int, errorCorrectionLevel string) service.LabelService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &labelService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateUnitLabel renders the printable QR label PNG for a unit's code.
func (s *labelService) GenerateUnitLabel(qrCode string) ([]byte, error) {
	// Create QR label data
	data := UnitQRData{
		Type: unitQRType,
		Code: qrCode,
	}

	// Convert to JSON
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR label data: %w", err)
	}

	// Generate QR code
	code, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	// Generate PNG image
	pngBytes, err := code.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseUnitQR extracts the unit code from raw scanned text. Handheld scanners
// deliver either the JSON label payload or, for pre-printed stock, the bare
// code itself; both forms resolve to the same code.
func (s *labelService) ParseUnitQR(qrData string) (string, error) {
	trimmed := strings.TrimSpace(qrData)
	if trimmed == "" {
		return "", domainerrors.ErrInvalidQRPayload
	}

	if !strings.HasPrefix(trimmed, "{") {
		// Bare code from a pre-printed label.
		return trimmed, nil
	}

	var data UnitQRData
	if err := json.Unmarshal([]byte(trimmed), &data); err != nil {
		return "", domainerrors.ErrInvalidQRPayload.WrapMessage("failed to unmarshal QR label data")
	}

	// Validate type
	if data.Type != unitQRType {
		return "", domainerrors.ErrInvalidQRPayload.WrapMessage(fmt.Sprintf("invalid QR label type: %s", data.Type))
	}

	if data.Code == "" {
		return "", domainerrors.ErrInvalidQRPayload.WrapMessage("QR label carries no unit code")
	}

	return data.Code, nil
}
