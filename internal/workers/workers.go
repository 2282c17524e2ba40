package workers

import (
	"context"
	"sync"
)

// Workers aggregates background workers and runs them together.
type Workers struct {
	workers []Worker
}

// New builds a Workers aggregate over the given workers.
func New(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker in its own goroutine and blocks until all of them
// return. Workers stop when ctx is cancelled.
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
