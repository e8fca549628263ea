package queue

import (
	"context"
	"sync"
)

// Task is one unit of work executed by the pool.
type Task func(ctx context.Context)

// Pool executes tasks with bounded parallelism. It exists so fan-out fetches
// (one query per search term) can overlap without unbounded goroutines.
type Pool struct {
	workers int
}

// NewPool creates a pool with the given worker count (minimum 1).
func NewPool(workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{workers: workers}
}

// Run executes all tasks and blocks until every task returned or the context
// was cancelled. Tasks still queued when the context ends are skipped; tasks
// already started observe the cancellation through their own ctx.
func (p *Pool) Run(ctx context.Context, tasks []Task) {
	if len(tasks) == 0 {
		return
	}

	ch := make(chan Task)
	var wg sync.WaitGroup

	wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go func() {
			defer wg.Done()
			for task := range ch {
				task(ctx)
			}
		}()
	}

	for _, task := range tasks {
		select {
		case <-ctx.Done():
			close(ch)
			wg.Wait()
			return
		case ch <- task:
		}
	}
	close(ch)
	wg.Wait()
}
