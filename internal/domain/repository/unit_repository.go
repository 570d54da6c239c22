// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"packline/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for unit persistence.
var (
	// ErrUnitNotFound is returned when a unit is not found.
	ErrUnitNotFound = errors.New("unit not found")
	// ErrDuplicateQRCode is returned when registering a unit whose QR code already exists.
	ErrDuplicateQRCode = errors.New("qr code already registered")
)

// UnitRepository defines the interface for unit-related database operations.
type UnitRepository interface {
	// CreateUnit persists a newly received unit.
	CreateUnit(ctx context.Context, unit *entity.Unit) error

	// FindUnitByID retrieves a unit by its unique ID.
	FindUnitByID(ctx context.Context, id uuid.UUID) (*entity.Unit, error)

	// FindUnitByQRCode resolves a scanned QR code to its unit.
	FindUnitByQRCode(ctx context.Context, qrCode string) (*entity.Unit, error)

	// ClaimUnit binds the unit to the bundle with a single atomic conditional
	// mutation: assigned_bundle_id is set only if it is currently NULL, evaluated
	// and applied indivisibly by the store. Under concurrent scans at most one
	// caller observes claimed == true; every loser gets claimed == false with a
	// nil error. Read-then-write is deliberately not part of this contract.
	ClaimUnit(ctx context.Context, unitID, bundleID uuid.UUID) (claimed bool, err error)

	// FindUnitsByBundle retrieves every unit claimed by the given bundle.
	FindUnitsByBundle(ctx context.Context, bundleID uuid.UUID) ([]*entity.Unit, error)
}
