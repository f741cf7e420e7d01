// Package lifecycle holds shared constants for application start and stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds how long a lifecycle hook may take before it is
// abandoned, covering dependency pings on start and graceful drains on stop.
const DefaultTimeout = 30 * time.Second
