// File: internal/worker/worker.go
package worker

import "sync"

// Task represents a unit of work executed by the pool.
type Task func()

// Pool defines a simple worker pool for background jobs
// such as view-counter increments.
type Pool interface {
	Submit(Task)
	Stop()
}

// NewPool creates a pool with n workers. n<=0 defaults to 1.
// The job queue is buffered so Submit rarely blocks request handlers.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Task, n*64)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				if job != nil {
					job()
				}
			}
		}()
	}
	return p
}

type pool struct {
	jobs chan Task
	wg   sync.WaitGroup
}

func (p *pool) Submit(t Task) {
	p.jobs <- t
}

// Stop drains queued jobs and waits for all workers to exit.
func (p *pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}

// FakePool runs every submitted task synchronously. For tests.
type FakePool struct {
	Submitted int
}

func (p *FakePool) Submit(t Task) {
	p.Submitted++
	if t != nil {
		t()
	}
}

func (p *FakePool) Stop() {}
