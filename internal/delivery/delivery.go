// Package delivery defines the contract every transport front end fulfils.
package delivery

import "context"

// Delivery is a serving surface (e.g. the HTTP server) started by the
// application entrypoint.
type Delivery interface {
	// Serve blocks, serving requests until the context ends or a fatal error occurs.
	Serve(ctx context.Context) error
}
