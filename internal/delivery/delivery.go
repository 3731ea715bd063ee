// Package delivery defines the contract every transport front end fulfils.
package delivery

import (
	"context"
	"time"
)

// ShutdownTimeout bounds how long a delivery may take to drain on stop.
const ShutdownTimeout = 10 * time.Second

// Delivery is a running transport (HTTP server, worker, ...) managed by the
// application lifecycle. Serve blocks until the delivery stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
