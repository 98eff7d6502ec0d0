package spmv

import "runtime"

// hardwareConcurrency reports logical CPUs; tests replace it.
var hardwareConcurrency = runtime.NumCPU

// Config holds driver parameters.
type Config struct {
	// Threads is the number of workers per call; <=0 uses the hardware
	// concurrency, or the pool size when Pool is set.
	Threads int
	// Pool, when non-nil, runs partitions on persistent workers.
	Pool *Pool
	// OnState is called on every worker state change.
	OnState func(worker int, s WorkerState)
}

// DefaultConfig returns one worker per detected hardware thread.
func DefaultConfig() *Config {
	return &Config{Threads: HardwareThreads()}
}

// OrDefault returns DefaultConfig if c is nil, otherwise normalizes c.
func (c *Config) OrDefault() *Config {
	if c == nil {
		return DefaultConfig()
	}
	if c.Threads <= 0 {
		if c.Pool != nil {
			c.Threads = c.Pool.NumWorkers()
		} else {
			c.Threads = HardwareThreads()
		}
	}
	// Every participant must be running before the barrier opens.
	if c.Pool != nil && c.Threads > c.Pool.NumWorkers() {
		c.Threads = c.Pool.NumWorkers()
	}
	return c
}

func (c *Config) notify(worker int, s WorkerState) {
	if c.OnState != nil {
		c.OnState(worker, s)
	}
}

// HardwareThreads returns the detected hardware concurrency, or 1 when
// detection reports 0.
func HardwareThreads() int {
	if n := hardwareConcurrency(); n > 0 {
		return n
	}
	return 1
}
