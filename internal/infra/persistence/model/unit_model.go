package model

import (
	"time"

	"github.com/google/uuid"
)

// UnitModel is the GORM-specific struct for the 'units' table.
// One row per physical, QR-tagged item. assigned_bundle_id moves from NULL to
// a bundle ID exactly once; the unique index on qr_code backs label resolution.
type UnitModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrgID            uuid.UUID  `gorm:"type:uuid;not null;index"`
	ProductID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	QRCode           string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	AssignedBundleID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (UnitModel) TableName() string {
	return "units"
}
