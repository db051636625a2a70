// Package lifecycle holds shared constants for process start and stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown steps registered with fx.
const DefaultTimeout = 10 * time.Second
