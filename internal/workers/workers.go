package workers

// Workers aggregates background workers and runs them together.
type Workers struct {
	workers []Worker
}

// NewWorkers collects the given workers into one aggregate.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every registered worker.
func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
