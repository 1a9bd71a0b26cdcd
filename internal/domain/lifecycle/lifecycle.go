// Package lifecycle holds process lifecycle constants shared by the fx
// start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup pings and graceful shutdown of every
// delivery and infra component.
const DefaultTimeout = 10 * time.Second
