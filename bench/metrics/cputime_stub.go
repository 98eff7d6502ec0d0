//go:build !linux && !darwin && !freebsd

package metrics

import "time"

// CPUTime returns zero on unsupported platforms.
func CPUTime() time.Duration {
	return 0
}
