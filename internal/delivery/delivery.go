// Package delivery defines the contract shared by all serving processes.
package delivery

import "context"

// Delivery is a long-running server collected into the "deliveries" group and
// started by the application entrypoint.
type Delivery interface {
	// Serve blocks serving requests until the server is shut down.
	Serve(ctx context.Context) error
}
