// Benchmark driver: measures every CPU SpMV kernel and layout on each matrix,
// for float and double, and writes JSON/CSV reports.
//
//	bench -list matrices.txt
//	bench -gen 100000,100000,16 -runs 10 -pool
package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"

	"github.com/senior-zero/matrix-format-performance/bench/metrics"
	"github.com/senior-zero/matrix-format-performance/matrix"
	"github.com/senior-zero/matrix-format-performance/matrix/mtx"
	"github.com/senior-zero/matrix-format-performance/spmv"
)

type options struct {
	threads    int
	runs       int
	hybridStep float64
	maxMem     int
	cfg        *spmv.Config
}

// results is the report layout consumed by the analysis scripts:
// matrix -> label -> seconds, one file per scalar type.
type results struct {
	info   map[string]*mtx.Info
	float  map[string]map[string]float64
	double map[string]map[string]float64
	rows   []metrics.KernelRow
}

func main() {
	list := flag.String("list", "", "file with one Matrix Market path per line")
	genArg := flag.String("gen", "", "synthetic matrix rows,cols,nnz_per_row (kind random|banded|powerlaw via -gen-kind)")
	genKind := flag.String("gen-kind", "random", "synthetic matrix kind: random | banded | powerlaw")
	seed := flag.Int64("seed", 42, "seed for -gen")
	threads := flag.Int("threads", 0, "workers per parallel call, 0 = hardware concurrency")
	usePool := flag.Bool("pool", false, "run parallel kernels on persistent workers")
	runs := flag.Int("runs", 5, "timed repetitions per kernel, best is reported")
	hybridStep := flag.Float64("hybrid", 0.35, "ELL fraction step of the hybrid sweep, 0 disables it")
	maxMem := flag.Int("max-mem", 0, "skip matrices whose CSR or ELL storage exceeds this many bytes (0 = no limit)")
	cacheDir := flag.String("cache", "", "directory for mmap-able binary copies of converted matrices")
	outDir := flag.String("out", metrics.ReportDir, "report output directory")
	flag.Parse()

	sources, err := collectSources(*list, *genArg, *genKind, *seed)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if len(sources) == 0 {
		log.Fatalf("specify -list /path/to/mtx_list or -gen rows,cols,nnz_per_row")
	}

	cfg := &spmv.Config{Threads: *threads}
	if *usePool {
		cfg.Pool = spmv.NewPool(*threads)
		defer cfg.Pool.Close()
	}
	cfg = cfg.OrDefault()
	opts := options{
		threads:    cfg.Threads,
		runs:       max(*runs, 1),
		hybridStep: *hybridStep,
		maxMem:     *maxMem,
		cfg:        cfg,
	}
	fmt.Printf("threads=%d pool=%v vec4=%s runs=%d\n", opts.threads, *usePool, spmv.Vec4ImplDesc(), opts.runs)

	res := &results{
		info:   map[string]*mtx.Info{},
		float:  map[string]map[string]float64{},
		double: map[string]map[string]float64{},
	}
	for _, src := range sources {
		if err := runSource(src, *cacheDir, opts, res); err != nil {
			log.Printf("%s: %v", src.name, err)
		}
	}

	if err := writeReports(res, *outDir); err != nil {
		log.Fatalf("write reports: %v", err)
	}
	fmt.Printf("Reports written to %s\n", *outDir)
}

func runSource(src source, cacheDir string, opts options, res *results) error {
	fmt.Printf("Start loading matrix %s\n", src.name)
	metrics.GC()
	csr, info, closer, err := src.load(cacheDir)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}
	printInfo(info)

	floatRes, floatRows, ok := measure(src.name, "float", matrix.Convert[float32](csr), opts)
	if !ok {
		fmt.Println("Skipped: storage exceeds -max-mem")
		return nil
	}
	doubleRes, doubleRows, ok := measure(src.name, "double", csr, opts)
	if !ok {
		fmt.Println("Skipped: storage exceeds -max-mem")
		return nil
	}
	res.info[src.name] = info
	res.float[src.name] = floatRes
	res.double[src.name] = doubleRes
	res.rows = append(res.rows, floatRows...)
	res.rows = append(res.rows, doubleRows...)
	return nil
}

func writeReports(res *results, dir string) error {
	files := map[string]interface{}{
		"matrices_info.json": res.info,
		"float.json":         res.float,
		"double.json":        res.double,
	}
	for name, v := range files {
		if err := metrics.WriteJSON(v, filepath.Join(dir, name)); err != nil {
			return err
		}
	}
	return metrics.WriteKernelCSV(res.rows, metrics.ReportPath(dir, "spmv_"))
}
