// Package delivery defines the contract every transport entry point
// (HTTP server, future workers) fulfills.
package delivery

import "context"

// Delivery is a long-running serving loop. Serve blocks until the server
// stops or fails; shutdown happens through the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
