// Package spmv is a CPU sparse matrix-vector product engine for benchmarking
// storage layouts. Every entry point resets x to all ones, fills y = A*x and
// returns the seconds spent in the compute window.
//
// Parallel variants split rows into contiguous per-worker ranges, release all
// workers together through a spinning start barrier and report the slowest
// worker's time:
//
//	secs := spmv.CSRParallel(csr, x, y)
//	secs = spmv.ELLParallelVec4(ell, x, y)
//
//	cfg := &spmv.Config{Threads: 8, Pool: spmv.NewPool(8)}
//	secs = spmv.Parallel(cfg, csr, x, y, spmv.CSRRows[float64])
//
// Kernels trust the matrix invariants enforced by package matrix and perform
// no bounds or structure checks of their own.
package spmv
