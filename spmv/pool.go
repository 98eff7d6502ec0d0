package spmv

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// poolJob is one worker's share of a parallel call.
type poolJob struct {
	worker int
	fn     func(worker int)
	wg     *sync.WaitGroup
}

// Pool keeps OS-thread-locked workers alive across calls, one channel per
// worker. Calls are serialized: the start barrier needs every participant of
// a call running at once.
type Pool struct {
	mu        sync.Mutex
	chans     []chan poolJob
	wg        sync.WaitGroup
	closeOnce sync.Once
	closed    atomic.Bool
}

// NewPool starts nWorkers workers. nWorkers <= 0 uses HardwareThreads.
func NewPool(nWorkers int) *Pool {
	if nWorkers <= 0 {
		nWorkers = HardwareThreads()
	}
	p := &Pool{
		chans: make([]chan poolJob, nWorkers),
	}
	for i := 0; i < nWorkers; i++ {
		p.chans[i] = make(chan poolJob, 1)
		p.wg.Add(1)
		go p.worker(i)
	}
	return p
}

func (p *Pool) worker(idx int) {
	defer p.wg.Done()
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	for job := range p.chans[idx] {
		job.fn(job.worker)
		job.wg.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return len(p.chans)
}

// run hands worker i to pool worker i and waits for all n. n must not exceed
// NumWorkers. A closed pool falls back to fresh goroutines.
func (p *Pool) run(n int, fn func(worker int)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed.Load() {
		spawn(n, fn)
		return
	}
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		p.chans[i] <- poolJob{worker: i, fn: fn, wg: &wg}
	}
	wg.Wait()
}

// Close stops the workers after pending work completes. Calling Close
// multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.mu.Lock()
		p.closed.Store(true)
		for i := range p.chans {
			close(p.chans[i])
		}
		p.mu.Unlock()
		p.wg.Wait()
	})
}
