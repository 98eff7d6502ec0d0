package main

import (
	"fmt"
	"math"
	"time"

	"github.com/senior-zero/matrix-format-performance/bench/metrics"
	"github.com/senior-zero/matrix-format-performance/matrix"
	"github.com/senior-zero/matrix-format-performance/spmv"
)

// measurer times every kernel of one matrix for one scalar type and checks
// each result against the single-thread CSR reference.
type measurer[T matrix.Float] struct {
	matrix string
	scalar string
	opts   options

	x, y, ref   []T
	reference   float64
	parallelRef float64

	results map[string]float64
	rows    []metrics.KernelRow
}

// measure runs the full kernel set. It returns false without measuring when
// the CSR or ELL storage exceeds opts.maxMem.
func measure[T matrix.Float](name, scalar string, csr *matrix.CSR[T], opts options) (map[string]float64, []metrics.KernelRow, bool) {
	if opts.maxMem > 0 {
		ellElems := 2 * csr.Rows * csr.MaxRowLen()
		// Sized as double, like the rest of the report, so float and double skip together.
		if csr.Size()*8 > opts.maxMem || ellElems*8 > opts.maxMem {
			return nil, nil, false
		}
	}
	fmt.Printf("-- %s\n", scalar)

	ell := matrix.NewELLFromCSR(csr)
	fmt.Println("Complete converting to ELL")
	coo := matrix.NewCOOFromCSR(csr)
	fmt.Println("Complete converting to COO")

	ms := &measurer[T]{
		matrix:  name,
		scalar:  scalar,
		opts:    opts,
		x:       make([]T, max(csr.Rows, csr.Cols)),
		y:       make([]T, csr.Rows),
		results: map[string]float64{},
	}
	cfg := opts.cfg

	ms.reference = ms.run("CPU CSR", 1, func() float64 {
		return spmv.CSRSingleThread(csr, ms.x, ms.y)
	})
	ms.ref = append([]T(nil), ms.y...)

	ms.parallelRef = ms.run("CPU CSR Parallel", opts.threads, func() float64 {
		return spmv.Parallel(cfg, csr, ms.x, ms.y, spmv.CSRRows[T])
	})
	ms.run("CPU ELL", 1, func() float64 {
		return spmv.ELLSingleThread(ell, ms.x, ms.y)
	})
	ms.run("CPU ELL Parallel", opts.threads, func() float64 {
		return spmv.Parallel(cfg, ell, ms.x, ms.y, spmv.ELLRows[T])
	})
	ms.run("CPU ELL Parallel (Vec4)", opts.threads, func() float64 {
		return spmv.Parallel(cfg, ell, ms.x, ms.y, spmv.ELLRowsVec4[T])
	})
	ms.run("CPU COO", 1, func() float64 {
		clear(ms.y)
		start := time.Now()
		coo.MulVec(ms.x, ms.y)
		return time.Since(start).Seconds()
	})

	if opts.hybridStep > 0 {
		for fraction := 0.0; fraction <= 1.0; fraction += opts.hybridStep {
			h, err := matrix.NewHybrid(csr, fraction)
			if err != nil {
				fmt.Printf("hybrid %.2f: %v\n", fraction, err)
				continue
			}
			label := fmt.Sprintf("CPU HYBRID %d", int(fraction*100))
			ms.run(label, opts.threads, func() float64 {
				return spmv.HybridParallel(cfg, h, ms.x, ms.y)
			})
		}
	}
	return ms.results, ms.rows, true
}

// run repeats fn opts.runs times, records the best time under label, prints
// it with its speedups and returns it.
func (ms *measurer[T]) run(label string, threads int, fn func() float64) float64 {
	durations := make([]time.Duration, ms.opts.runs)
	best := math.Inf(1)
	before := metrics.Take()
	for i := range durations {
		secs := fn()
		durations[i] = time.Duration(secs * float64(time.Second))
		best = min(best, secs)
	}
	_, _, cpuUtil := metrics.Diff(before, metrics.Take())
	stats := metrics.LatencyStatsFromDurations(durations)

	row := metrics.KernelRow{
		Matrix:   ms.matrix,
		Scalar:   ms.scalar,
		Kernel:   label,
		Threads:  threads,
		Runs:     ms.opts.runs,
		BestSec:  best,
		P50Ms:    stats.P50Ms,
		P99Ms:    stats.P99Ms,
		CPUUtil:  cpuUtil,
		Verified: ms.ref == nil || ms.verify(),
	}
	if ms.reference > 0 {
		row.Speedup = ms.reference / best
	}
	if ms.parallelRef > 0 {
		row.ParallelSpeedup = ms.parallelRef / best
	}
	ms.rows = append(ms.rows, row)
	ms.results[label] = best
	ms.print(row)
	return best
}

// verify compares y with the reference using a tolerance scaled to the
// scalar type; kernels sum in different orders.
func (ms *measurer[T]) verify() bool {
	var zero T
	tol := 1e-8
	if _, ok := any(zero).(float32); ok {
		tol = 1e-3
	}
	for i, want := range ms.ref {
		got := float64(ms.y[i])
		w := float64(want)
		if math.IsNaN(got) || math.Abs(got-w) > tol*max(1, math.Abs(w)) {
			return false
		}
	}
	return true
}

func (ms *measurer[T]) print(row metrics.KernelRow) {
	fmt.Printf("%-25s:  %-20.6g   ", row.Kernel, row.BestSec)
	if row.Speedup > 0 {
		fmt.Printf("%-20.6g   ", row.Speedup)
	}
	if row.ParallelSpeedup > 0 {
		fmt.Printf("%-20.6g   ", row.ParallelSpeedup)
	}
	if !row.Verified {
		fmt.Print("MISMATCH")
	}
	fmt.Println()
}
