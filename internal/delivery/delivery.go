// Package delivery holds the process entry points that drive the job runner.
package delivery

import "context"

// Delivery is a long-running or one-shot entry point started by the fx app.
type Delivery interface {
	Serve(ctx context.Context) error
}
