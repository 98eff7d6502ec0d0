package spmv

import "sync/atomic"

// StartBarrier is a single-use spinning barrier. Waiters burn CPU instead of
// parking so that all parties leave within a few cycles of the last arrival.
type StartBarrier struct {
	arrived atomic.Int32
	parties int32
}

// NewStartBarrier returns a barrier for exactly parties participants.
func NewStartBarrier(parties int) *StartBarrier {
	return &StartBarrier{parties: int32(parties)}
}

// Arrive registers the caller without waiting.
func (b *StartBarrier) Arrive() {
	b.arrived.Add(1)
}

// Wait spins until every party has arrived. Goroutine preemption keeps the
// spin from starving parties that have not been scheduled yet.
func (b *StartBarrier) Wait() {
	for b.arrived.Load() < b.parties {
	}
}

// ArriveAndWait registers the caller and spins until every party has arrived.
func (b *StartBarrier) ArriveAndWait() {
	b.Arrive()
	b.Wait()
}

// Arrived returns the number of parties that have arrived so far.
func (b *StartBarrier) Arrived() int {
	return int(b.arrived.Load())
}
