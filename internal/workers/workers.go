package workers

import "context"

type Workers struct {
	workers []Worker
}

// New groups workers so they share one lifecycle.
func New(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

// Run starts every worker in registration order.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// Stop shuts workers down in reverse start order and blocks until every
// worker has finished.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
