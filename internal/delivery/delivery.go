// Package delivery holds the long-running front ends started by cmd/planner.
package delivery

import "context"

// Delivery is a server or loop that runs until its context ends or fx stops it.
type Delivery interface {
	Serve(ctx context.Context) error
}
