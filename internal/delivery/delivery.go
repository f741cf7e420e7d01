// Package delivery defines the contract every transport adapter fulfills.
package delivery

import "context"

// Delivery is a serving surface of the application, such as the HTTP server.
// Serve blocks until the surface stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
