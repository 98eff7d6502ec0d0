package spmv

import (
	"runtime"
	"sync"
	"time"

	"github.com/senior-zero/matrix-format-performance/matrix"
)

// Matrix is any layout the driver can partition by rows.
type Matrix interface {
	Dims() (rows, cols int)
}

// RowKernel computes y[r] for every row r in [begin, end).
type RowKernel[M Matrix, T matrix.Float] func(m M, x, y []T, begin, end int)

// Parallel runs kernel over all rows of m on cfg.Threads workers and returns
// the slowest worker's compute time in seconds. x[0:cols] is reset to 1
// before any worker starts. A nil cfg uses DefaultConfig.
func Parallel[M Matrix, T matrix.Float](cfg *Config, m M, x, y []T, kernel RowKernel[M, T]) float64 {
	return maxSeconds(ParallelTimes(cfg, m, x, y, kernel))
}

// ParallelTimes is Parallel returning every worker's compute time, indexed by worker.
func ParallelTimes[M Matrix, T matrix.Float](cfg *Config, m M, x, y []T, kernel RowKernel[M, T]) []time.Duration {
	cfg = cfg.OrDefault()
	rows, cols := m.Dims()
	resetX(x, cols)

	threads := cfg.Threads
	times := make([]time.Duration, threads)
	barrier := NewStartBarrier(threads)
	work := func(worker int) {
		cfg.notify(worker, StateCreated)
		begin, end := RowRange(rows, threads, worker)
		// Reported before the arrival is counted so that every worker's
		// ArrivedAtBarrier precedes any worker's Computing.
		cfg.notify(worker, StateArrivedAtBarrier)
		barrier.ArriveAndWait()
		cfg.notify(worker, StateComputing)

		start := time.Now()
		kernel(m, x, y, begin, end)
		times[worker] = time.Since(start)

		cfg.notify(worker, StateDone)
	}

	if cfg.Pool != nil {
		cfg.Pool.run(threads, work)
	} else {
		spawn(threads, work)
	}
	return times
}

// spawn runs work(0..n-1) on n fresh goroutines, each locked to an OS
// thread, and waits for all of them.
func spawn(n int, work func(worker int)) {
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(worker int) {
			defer wg.Done()
			runtime.LockOSThread()
			defer runtime.UnlockOSThread()
			work(worker)
		}(i)
	}
	wg.Wait()
}

func resetX[T matrix.Float](x []T, cols int) {
	x = x[:cols]
	for i := range x {
		x[i] = 1
	}
}

func maxSeconds(times []time.Duration) float64 {
	var longest time.Duration
	for _, t := range times {
		longest = max(longest, t)
	}
	return longest.Seconds()
}
