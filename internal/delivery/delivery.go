package delivery

import "context"

// Delivery is a long-running inbound adapter started by the composition root.
type Delivery interface {
	Serve(ctx context.Context) error
}
