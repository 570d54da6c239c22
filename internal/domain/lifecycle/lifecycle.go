// Package lifecycle holds shared constants for component startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful start/stop of long-lived components.
const DefaultTimeout = 10 * time.Second
