// Package worker provides the concurrency plumbing for batch verification:
// a bounded pool of workers draining a job queue.
package worker

import (
	"context"
	"sync"
)

// Job is a unit of work executed by the pool
type Job interface {
	Execute(ctx context.Context) Result
}

// Result is the outcome of a job execution
type Result interface {
	GetError() error
}

// Pool executes jobs concurrently with a fixed number of workers
type Pool struct {
	workers   int
	jobs      chan Job
	results   chan Result
	wg        sync.WaitGroup
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
}

// NewPool creates a pool with the given number of workers
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Pool{
		workers: workers,
		jobs:    make(chan Job, workers*2),
		results: make(chan Result, workers*2),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Start launches the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		case job, ok := <-p.jobs:
			if !ok {
				return
			}
			result := job.Execute(p.ctx)
			select {
			case p.results <- result:
			case <-p.ctx.Done():
				return
			}
		}
	}
}

// Submit queues a job for execution
func (p *Pool) Submit(job Job) {
	select {
	case <-p.ctx.Done():
	case p.jobs <- job:
	}
}

// Close signals that no more jobs will be submitted. The results channel is
// closed once the workers drain the queue. Call exactly once, after the last
// Submit.
func (p *Pool) Close() {
	close(p.jobs)

	go func() {
		p.wg.Wait()
		p.closeResults()
	}()
}

// Results is the stream of job outcomes. It is closed after Close once all
// accepted jobs have finished. Callers must drain it while submitting: the
// channel buffers are bounded and a full results channel blocks the workers.
func (p *Pool) Results() <-chan Result {
	return p.results
}

// Wait closes the queue, waits for the workers to drain it, and returns all
// results. Call exactly once, after the last Submit. Only safe when every
// submitted job fits the channel buffers; larger batches should submit from
// a separate goroutine and range over Results instead.
func (p *Pool) Wait() []Result {
	p.Close()

	var results []Result
	for result := range p.results {
		results = append(results, result)
	}
	return results
}

// Shutdown stops the pool immediately, abandoning queued jobs
func (p *Pool) Shutdown() {
	p.cancel()
	p.wg.Wait()
	p.closeResults()
}

func (p *Pool) closeResults() {
	p.closeOnce.Do(func() {
		close(p.results)
	})
}
