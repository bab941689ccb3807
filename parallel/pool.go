// Package parallel runs independent jobs on a fixed number of workers.
package parallel

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

type (
	// WorkerFunc submits a job. It may block while all workers are busy.
	WorkerFunc func(func())
	// WaitFunc blocks until the workers exit. Pass done=true to close the
	// pool first; workers only exit once it is closed.
	WaitFunc   func(done bool)
	CancelFunc func()
)

type Pool struct {
	wg      sync.WaitGroup
	ctx     context.Context
	skipped atomic.Uint64

	Do     WorkerFunc
	Wait   WaitFunc
	Cancel CancelFunc
}

// Start creates a pool of numWorkers goroutines, or GOMAXPROCS when
// numWorkers < 1. A single worker runs every job inline in Do. Jobs
// submitted after ctx is done are dropped and counted in Skipped.
func Start(ctx context.Context, numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{ctx: ctx}
	pool.Do = func(f func()) {
		if pool.canceled() {
			return
		}
		f()
	}
	pool.Wait = func(bool) {}
	pool.Cancel = func() {}

	if numWorkers > 1 {
		workChan := make(chan func(), numWorkers)

		for range numWorkers {
			pool.wg.Go(func() {
				for f := range workChan {
					if pool.canceled() {
						continue
					}
					f()
				}
			})
		}

		pool.Do = func(f func()) {
			if pool.canceled() {
				return
			}
			select {
			case workChan <- f:
			case <-ctx.Done():
				pool.skipped.Add(1)
			}
		}

		pool.Cancel = sync.OnceFunc(func() { close(workChan) })
		pool.Wait = func(done bool) {
			if done {
				pool.Cancel()
			}
			pool.wg.Wait()
		}
	}

	return pool
}

// Skipped returns how many jobs were dropped because the context was done.
func (p *Pool) Skipped() uint64 {
	return p.skipped.Load()
}

func (p *Pool) canceled() bool {
	if p.ctx.Err() != nil {
		p.skipped.Add(1)
		return true
	}
	return false
}
