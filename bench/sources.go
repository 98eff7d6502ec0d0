package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/senior-zero/matrix-format-performance/bench/gen"
	"github.com/senior-zero/matrix-format-performance/bench/metrics"
	"github.com/senior-zero/matrix-format-performance/matrix"
	"github.com/senior-zero/matrix-format-performance/matrix/mtx"
	"github.com/senior-zero/matrix-format-performance/matrix/store"
)

var printer = message.NewPrinter(language.English)

// source is one matrix to benchmark: a Matrix Market file or a generator.
type source struct {
	name  string
	build func() (*matrix.CSR[float64], *mtx.Info, error)
}

func collectSources(list, genArg, genKind string, seed int64) ([]source, error) {
	var out []source
	if list != "" {
		paths, err := readList(list)
		if err != nil {
			return nil, err
		}
		for _, p := range paths {
			out = append(out, mtxSource(p))
		}
	}
	if genArg != "" {
		src, err := genSource(genArg, genKind, seed)
		if err != nil {
			return nil, err
		}
		out = append(out, src)
	}
	return out, nil
}

// readList returns the non-empty lines of the list file.
func readList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var paths []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			paths = append(paths, line)
		}
	}
	return paths, sc.Err()
}

func mtxSource(path string) source {
	return source{
		name: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		build: func() (*matrix.CSR[float64], *mtx.Info, error) {
			coo, info, err := mtx.ReadFile(path)
			if err != nil {
				return nil, nil, err
			}
			fmt.Println("Complete loading")
			return matrix.FromCOO(coo), info, nil
		},
	}
}

func genSource(arg, kind string, seed int64) (source, error) {
	parts := strings.Split(arg, ",")
	if len(parts) != 3 {
		return source{}, fmt.Errorf("-gen %q: want rows,cols,nnz_per_row", arg)
	}
	var dims [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n <= 0 {
			return source{}, fmt.Errorf("-gen %q: %q is not a positive integer", arg, p)
		}
		dims[i] = n
	}
	rows, cols, nnzpr := dims[0], dims[1], dims[2]

	var build func() *matrix.CSR[float64]
	switch kind {
	case "random":
		build = func() *matrix.CSR[float64] { return gen.RandomCSR(rows, cols, nnzpr, seed) }
	case "banded":
		build = func() *matrix.CSR[float64] { return gen.Banded(rows, nnzpr/2) }
	case "powerlaw":
		build = func() *matrix.CSR[float64] { return gen.PowerLaw(rows, cols, nnzpr, seed) }
	default:
		return source{}, fmt.Errorf("-gen-kind %q: want random, banded or powerlaw", kind)
	}
	return source{
		name: fmt.Sprintf("gen_%s_%d_%d_%d", kind, rows, cols, nnzpr),
		build: func() (*matrix.CSR[float64], *mtx.Info, error) {
			m := build()
			info := &mtx.Info{Rows: m.Rows, Cols: m.Cols, NNZ: m.NNZ(), Field: "real", Symmetry: "general"}
			return m, info, nil
		},
	}, nil
}

// load builds the matrix, or with a cache directory maps a binary copy of
// it, building and saving the copy on first use. The returned Closer is nil
// when the matrix lives on the heap.
func (s source) load(cacheDir string) (*matrix.CSR[float64], *mtx.Info, io.Closer, error) {
	if cacheDir == "" {
		m, info, err := s.build()
		return m, info, nil, err
	}
	binPath := filepath.Join(cacheDir, s.name+".csr")
	infoPath := filepath.Join(cacheDir, s.name+".json")
	if m, c, err := store.OpenCSR[float64](binPath); err == nil {
		info, err := readInfo(infoPath)
		if err == nil {
			fmt.Printf("Mapped cached %s\n", binPath)
			return m, info, c, nil
		}
		c.Close()
	} else if !errors.Is(err, os.ErrNotExist) {
		fmt.Printf("Ignoring cache %s: %v\n", binPath, err)
	}

	m, info, err := s.build()
	if err != nil {
		return nil, nil, nil, err
	}
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return nil, nil, nil, err
	}
	if err := store.SaveCSR(binPath, m); err != nil {
		return nil, nil, nil, fmt.Errorf("cache %s: %w", binPath, err)
	}
	if err := metrics.WriteJSON(info, infoPath); err != nil {
		return nil, nil, nil, fmt.Errorf("cache %s: %w", infoPath, err)
	}
	mapped, c, err := store.OpenCSR[float64](binPath)
	if err != nil {
		return nil, nil, nil, err
	}
	return mapped, info, c, nil
}

func readInfo(path string) (*mtx.Info, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	info := &mtx.Info{}
	if err := json.Unmarshal(data, info); err != nil {
		return nil, err
	}
	return info, nil
}

func printInfo(info *mtx.Info) {
	printer.Printf("rows=%d cols=%d nnz=%d field=%s symmetry=%s\n",
		info.Rows, info.Cols, info.NNZ, info.Field, info.Symmetry)
}
