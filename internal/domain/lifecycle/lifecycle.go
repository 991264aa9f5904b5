// Package lifecycle holds timing constants shared by fx start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds start/stop hooks such as DB ping and server shutdown.
const DefaultTimeout = 15 * time.Second
