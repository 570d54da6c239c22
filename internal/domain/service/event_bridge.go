package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// BundleCompletedEvent is the message handed to the fulfillment tier when a
// bundle reaches completed. The in-process relay serves live viewers; this
// bridge is the best-effort hop to the external process that marks bundles sold.
type BundleCompletedEvent struct {
	RequestID   string    `json:"request_id,omitempty"` // For distributed tracing
	BundleID    uuid.UUID `json:"bundle_id"`
	OrgID       uuid.UUID `json:"org_id"`
	ProductID   uuid.UUID `json:"product_id"`
	TargetCount int       `json:"target_count"`
	PackSize    int       `json:"pack_size"`
	CompletedAt time.Time `json:"completed_at"`
}

// EventBridge defines the interface for announcing completed bundles to the
// fulfillment worker through a message queue.
type EventBridge interface {
	// PublishBundleCompleted publishes a completion announcement for async fulfillment.
	PublishBundleCompleted(ctx context.Context, event *BundleCompletedEvent) error

	// Close releases any resources held by the bridge
	Close() error
}
