// Package delivery defines the contract every transport server fulfils so
// main can start them uniformly.
package delivery

import "context"

// Delivery is a transport server that blocks on Serve until shutdown.
type Delivery interface {
	Serve(ctx context.Context) error
}
