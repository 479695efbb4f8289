package workers

import (
	"context"
	"sync"
)

// Workers runs a set of background workers as one unit.
type Workers struct {
	workers []Worker
}

// NewWorkers groups the given workers for a single Run call.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker in its own goroutine and blocks until all of them
// have returned, which happens when ctx is cancelled.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func(worker Worker) {
			defer wg.Done()
			worker.Run(ctx)
		}(worker)
	}
	wg.Wait()
}
