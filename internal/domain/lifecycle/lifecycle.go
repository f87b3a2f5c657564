// Package lifecycle holds shared start/stop constants for the fx
// application.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown of every managed
// component (HTTP server, database pool, publishers).
const DefaultTimeout = 30 * time.Second
