package spmv

// WorkerState is the lifecycle of one worker in a parallel call.
type WorkerState int

const (
	StateCreated WorkerState = iota
	StateArrivedAtBarrier
	StateComputing
	StateDone
)

// String returns a human-readable name for the state.
func (s WorkerState) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateArrivedAtBarrier:
		return "arrived"
	case StateComputing:
		return "computing"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}
