// Package delivery defines the contract shared by every serving surface of
// the process, HTTP API and worker alike.
package delivery

import "context"

// Delivery is a long-running server collected into the fx "deliveries" group
// and started by the entrypoint.
type Delivery interface {
	Serve(ctx context.Context) error
}
