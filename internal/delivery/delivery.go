// Package delivery defines the contract every transport server fulfills so
// the entrypoints can start them uniformly.
package delivery

import "context"

// Delivery is a long-running transport server (HTTP API, push worker).
type Delivery interface {
	// Serve blocks serving requests until the server is shut down.
	Serve(ctx context.Context) error
}
