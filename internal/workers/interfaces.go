// Package workers provides the application's background workers: the periodic
// full sync, the connectivity watcher that reacts to online/offline
// transitions, and a Workers aggregate that runs them in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
// Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}
