// Package metrics collects runtime and timing metrics for benchmark reports.
package metrics

import (
	"runtime"
	"runtime/debug"
	"time"
)

// Snapshot is a point-in-time view of runtime memory metrics.
type Snapshot struct {
	TS           time.Time
	CPU          time.Duration // process user+system time
	HeapAlloc    uint64
	HeapSys      uint64
	HeapReleased uint64
	NumGC        uint32
	NumGoroutine int
}

// Take captures the current runtime metrics.
func Take() Snapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return Snapshot{
		TS:           time.Now(),
		CPU:          CPUTime(),
		HeapAlloc:    m.HeapAlloc,
		HeapSys:      m.HeapSys,
		HeapReleased: m.HeapReleased,
		NumGC:        m.NumGC,
		NumGoroutine: runtime.NumGoroutine(),
	}
}

// GC forces a collection and returns freed memory to the OS, so that
// measurements of different matrices start from a comparable heap.
func GC() {
	runtime.GC()
	debug.FreeOSMemory()
}

// Diff returns the allocation rate (bytes/s), the number of collections and
// the CPU utilisation (CPU time / wall time) between two snapshots.
func Diff(before, after Snapshot) (allocRateBps float64, gcDelta uint32, cpuUtil float64) {
	elapsed := after.TS.Sub(before.TS).Seconds()
	if elapsed <= 0 {
		return 0, 0, 0
	}
	allocDelta := int64(after.HeapAlloc) - int64(before.HeapAlloc)
	if allocDelta < 0 {
		allocDelta = 0
	}
	allocRateBps = float64(allocDelta) / elapsed
	if after.NumGC >= before.NumGC {
		gcDelta = after.NumGC - before.NumGC
	}
	cpuUtil = (after.CPU - before.CPU).Seconds() / elapsed
	return allocRateBps, gcDelta, cpuUtil
}
