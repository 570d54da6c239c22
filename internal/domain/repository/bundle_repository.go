// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"packline/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for bundle persistence.
var (
	// ErrBundleNotFound is returned when a bundle is not found.
	ErrBundleNotFound = errors.New("bundle not found")
	// ErrBundleNotAssembling is returned when a progress update targets a bundle
	// that is already completed or sold, or whose target has been reached.
	ErrBundleNotAssembling = errors.New("bundle is not accepting scans")
	// ErrBundleNotCompleted is returned when marking a bundle sold before it is completed.
	ErrBundleNotCompleted = errors.New("bundle is not completed")
)

// BundleRepository defines the interface for bundle-related database operations.
type BundleRepository interface {
	// CreateBundle persists a new pending bundle.
	CreateBundle(ctx context.Context, bundle *entity.Bundle) error

	// FindBundleByID retrieves a bundle by its unique ID.
	FindBundleByID(ctx context.Context, id uuid.UUID) (*entity.Bundle, error)

	// ApplyScanProgress atomically increments the bundle's scanned count by one and
	// advances the status in the same statement: pending becomes assembling, and
	// the bundle becomes completed exactly when the incremented count reaches the
	// target. The condition "status accepts scans AND scanned_count < target_count"
	// is evaluated by the store, so a concurrent scan that already filled the
	// bundle makes this return ErrBundleNotAssembling instead of overshooting.
	// On success the updated bundle row is returned.
	ApplyScanProgress(ctx context.Context, id uuid.UUID) (*entity.Bundle, error)

	// MarkSold advances a completed bundle to sold. The transition is conditional
	// on the current status being completed; marking an already sold bundle is a
	// no-op so fulfillment retries stay idempotent.
	MarkSold(ctx context.Context, id uuid.UUID) error
}
