package usecase

import (
	"context"

	"github.com/google/uuid"
)

// FulfillmentUsecase defines the interface consumed by the fulfillment worker.
// It is the only writer of the sold status; the assembly engine merely observes it.
type FulfillmentUsecase interface {
	// MarkSold advances a completed bundle to sold. Retried deliveries of the
	// same completion announcement are idempotent.
	MarkSold(ctx context.Context, bundleID uuid.UUID) error
}
