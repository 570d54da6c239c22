package model

import (
	"time"

	"github.com/google/uuid"
)

// BundleModel is the GORM-specific struct for the 'bundles' table.
// It represents one target assembly of units into a sellable pack.
// Bundle rows are never deleted; the status column carries the lifecycle.
type BundleModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrgID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	ProductID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	Status       string     `gorm:"type:varchar(20);not null;default:'pending'"`
	TargetCount  int        `gorm:"not null"`
	ScannedCount int        `gorm:"not null;default:0"`
	PackSize     int        `gorm:"not null"`
	LastScanAt   *time.Time `gorm:"index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (BundleModel) TableName() string {
	return "bundles"
}
