// Package delivery groups the inbound adapters (HTTP API and the order worker).
package delivery

import "context"

// Delivery is a long-running inbound adapter started by the cmd entrypoints.
type Delivery interface {
	Serve(ctx context.Context) error
}
