package metrics

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// LatencyStats summarizes repeated timings of one kernel.
type LatencyStats struct {
	MinMs float64
	P50Ms float64
	P99Ms float64
	AvgMs float64
	N     int
}

// KernelRow is one kernel/layout measurement on one matrix.
type KernelRow struct {
	Matrix          string
	Scalar          string // "float" or "double"
	Kernel          string
	Threads         int
	Runs            int
	BestSec         float64
	P50Ms           float64
	P99Ms           float64
	Speedup         float64 // vs single-thread CSR
	ParallelSpeedup float64 // vs parallel CSR, 0 when not applicable
	CPUUtil         float64 // process CPU time / wall time over the runs
	Verified        bool    // y matched the single-thread CSR reference
}

// Percentile returns the p-th percentile (0-100) of sorted.
func Percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[len(sorted)-1]
	}
	idx := int(float64(len(sorted)-1) * p / 100)
	return sorted[idx]
}

// LatencyStatsFromDurations computes min/P50/P99/avg of durations.
func LatencyStatsFromDurations(durations []time.Duration) LatencyStats {
	if len(durations) == 0 {
		return LatencyStats{}
	}
	ms := make([]float64, len(durations))
	var sum float64
	for i, d := range durations {
		ms[i] = float64(d.Nanoseconds()) / 1e6
		sum += ms[i]
	}
	sort.Float64s(ms)
	return LatencyStats{
		MinMs: ms[0],
		P50Ms: Percentile(ms, 50),
		P99Ms: Percentile(ms, 99),
		AvgMs: sum / float64(len(ms)),
		N:     len(ms),
	}
}

// WriteKernelCSV writes one line per kernel measurement.
func WriteKernelCSV(rows []KernelRow, path string) error {
	_ = os.MkdirAll(filepath.Dir(path), 0755)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	w.Write([]string{"Matrix", "Scalar", "Kernel", "Threads", "Runs", "BestSec", "P50Ms", "P99Ms", "Speedup", "ParallelSpeedup", "CPUUtil", "Verified"})
	for _, r := range rows {
		w.Write([]string{
			r.Matrix,
			r.Scalar,
			r.Kernel,
			fmt.Sprintf("%d", r.Threads),
			fmt.Sprintf("%d", r.Runs),
			fmt.Sprintf("%.9f", r.BestSec),
			fmt.Sprintf("%.4f", r.P50Ms),
			fmt.Sprintf("%.4f", r.P99Ms),
			fmt.Sprintf("%.2f", r.Speedup),
			fmt.Sprintf("%.2f", r.ParallelSpeedup),
			fmt.Sprintf("%.2f", r.CPUUtil),
			fmt.Sprintf("%t", r.Verified),
		})
	}
	w.Flush()
	return w.Error()
}

// ReportDir is the default report output directory.
const ReportDir = "report"

// ReportPath returns a dated path under dir, e.g. dir/spmv_20240101.csv.
func ReportPath(dir, prefix string) string {
	return filepath.Join(dir, prefix+time.Now().Format("20060102")+".csv")
}

// WriteJSON writes v as indented JSON, creating the parent directory.
func WriteJSON(v interface{}, path string) error {
	_ = os.MkdirAll(filepath.Dir(path), 0755)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
