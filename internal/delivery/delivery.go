// Package delivery defines the contract shared by all transport servers.
package delivery

import "context"

// Delivery is a long-running transport server (HTTP API, Pub/Sub push
// worker) started by the application entrypoint.
type Delivery interface {
	// Serve runs the server until it fails or is shut down.
	Serve(ctx context.Context) error
}
