package usecase

import (
	"context"

	"packline/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateBundleInput carries the setup parameters for a new bundle.
type CreateBundleInput struct {
	ProductID   uuid.UUID `json:"product_id"`
	TargetCount int       `json:"target_count"`
	PackSize    int       `json:"pack_size"`
}

// RegisterUnitInput carries the inbound-receiving parameters for a new unit.
type RegisterUnitInput struct {
	ProductID uuid.UUID `json:"product_id"`
	// QRCode optionally fixes the label payload; generated when empty.
	QRCode string `json:"qr_code"`
}

// BundleUsecase defines bundle setup and inbound receiving use cases.
type BundleUsecase interface {
	// CreateBundle sets up a new pending bundle. The target count must be a
	// positive multiple of the pack size.
	CreateBundle(ctx context.Context, orgID uuid.UUID, input *CreateBundleInput) (*entity.Bundle, error)

	// RegisterUnit records one physically received unit and assigns its QR code.
	RegisterUnit(ctx context.Context, orgID uuid.UUID, input *RegisterUnitInput) (*entity.Unit, error)

	// UnitLabel renders the printable QR label PNG for a registered unit.
	UnitLabel(ctx context.Context, orgID, unitID uuid.UUID) ([]byte, error)

	// ListBundleUnits returns every unit claimed by the bundle.
	ListBundleUnits(ctx context.Context, orgID, bundleID uuid.UUID) ([]*entity.Unit, error)
}
