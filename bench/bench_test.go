package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/senior-zero/matrix-format-performance/bench/gen"
	"github.com/senior-zero/matrix-format-performance/bench/metrics"
	"github.com/senior-zero/matrix-format-performance/matrix"
	"github.com/senior-zero/matrix-format-performance/spmv"
)

func testOptions() options {
	return options{
		threads:    3,
		runs:       2,
		hybridStep: 0.35,
		cfg:        &spmv.Config{Threads: 3},
	}
}

func TestMeasureVerifiesEveryKernel(t *testing.T) {
	csr := gen.RandomCSR(97, 61, 6, 3)
	for _, scalar := range []string{"float", "double"} {
		var res map[string]float64
		var rows []metrics.KernelRow
		var ok bool
		if scalar == "float" {
			res, rows, ok = measure("m", scalar, matrix.Convert[float32](csr), testOptions())
		} else {
			res, rows, ok = measure("m", scalar, csr, testOptions())
		}
		if !ok {
			t.Fatalf("%s: skipped without a memory limit", scalar)
		}
		for _, label := range []string{
			"CPU CSR", "CPU CSR Parallel", "CPU ELL", "CPU ELL Parallel",
			"CPU ELL Parallel (Vec4)", "CPU COO",
			"CPU HYBRID 0", "CPU HYBRID 35", "CPU HYBRID 70",
		} {
			if _, found := res[label]; !found {
				t.Errorf("%s: missing %q", scalar, label)
			}
		}
		if _, found := res["CPU HYBRID 105"]; found {
			t.Errorf("%s: hybrid sweep went past 1", scalar)
		}
		for _, r := range rows {
			if !r.Verified {
				t.Errorf("%s %s: result does not match the reference", scalar, r.Kernel)
			}
			if r.Matrix != "m" || r.Scalar != scalar || r.Runs != 2 {
				t.Errorf("%s %s: bad row %+v", scalar, r.Kernel, r)
			}
		}
	}
}

func TestMeasureSkipsOverMemoryLimit(t *testing.T) {
	opts := testOptions()
	opts.maxMem = 64
	if _, _, ok := measure("m", "double", gen.Banded(32, 2), opts); ok {
		t.Fatal("matrix over the limit was measured")
	}
}

func TestGenSource(t *testing.T) {
	src, err := genSource("40, 30, 4", "random", 1)
	if err != nil {
		t.Fatal(err)
	}
	if src.name != "gen_random_40_30_4" {
		t.Errorf("name = %q", src.name)
	}
	m, info, closer, err := src.load("")
	if err != nil {
		t.Fatal(err)
	}
	if closer != nil {
		t.Error("heap matrix returned a closer")
	}
	if info.Rows != 40 || info.Cols != 30 || info.NNZ != m.NNZ() {
		t.Errorf("info = %+v", info)
	}

	for _, bad := range []struct{ arg, kind string }{
		{"40,30", "random"},
		{"40,x,4", "random"},
		{"40,30,0", "random"},
		{"40,30,4", "diagonal"},
	} {
		if _, err := genSource(bad.arg, bad.kind, 1); err == nil {
			t.Errorf("genSource(%q, %q) accepted", bad.arg, bad.kind)
		}
	}
}

func TestLoadUsesCache(t *testing.T) {
	dir := t.TempDir()
	src, err := genSource("25,25,3", "banded", 1)
	if err != nil {
		t.Fatal(err)
	}
	want, _, _, err := src.load("")
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 2; i++ {
		m, info, closer, err := src.load(dir)
		if err != nil {
			t.Fatalf("load %d: %v", i, err)
		}
		if closer == nil {
			t.Fatalf("load %d: cached matrix is not mapped", i)
		}
		if m.NNZ() != want.NNZ() || info.NNZ != want.NNZ() || info.Symmetry != "general" {
			t.Errorf("load %d: nnz=%d info=%+v, want nnz %d", i, m.NNZ(), info, want.NNZ())
		}
		for k, v := range want.Values {
			if m.Values[k] != v || m.Columns[k] != want.Columns[k] {
				t.Fatalf("load %d: entry %d differs", i, k)
			}
		}
		closer.Close()
	}
	if _, err := os.Stat(filepath.Join(dir, src.name+".csr")); err != nil {
		t.Error(err)
	}
}

func TestReadList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list")
	if err := os.WriteFile(path, []byte("a/b.mtx\n\n  c.mtx  \n"), 0644); err != nil {
		t.Fatal(err)
	}
	srcs, err := collectSources(path, "", "random", 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(srcs) != 2 || srcs[0].name != "b" || srcs[1].name != "c" {
		t.Errorf("sources = %+v", srcs)
	}
}
