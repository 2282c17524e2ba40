// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that runs
// multiple workers concurrently under one lifecycle context.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
// Run blocks until the context is cancelled; cancellation is the only stop
// signal a worker receives.
type Worker interface {
	Run(ctx context.Context)
}

// Pinger is the subset of the database handle used by the store pinger.
type Pinger interface {
	PingContext(ctx context.Context) error
}
