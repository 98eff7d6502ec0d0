// Package mtx reads Matrix Market coordinate files into COO matrices.
package mtx

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/senior-zero/matrix-format-performance/matrix"
)

var (
	ErrHeader = errors.New("invalid matrix market header")
	ErrFormat = errors.New("unsupported matrix market format")
	ErrEntry  = errors.New("invalid matrix market entry")
)

// Info describes a parsed file.
type Info struct {
	Rows     int    `json:"rows"`
	Cols     int    `json:"cols"`
	NNZ      int    `json:"nnz"` // entries after symmetric expansion
	Field    string `json:"field"`
	Symmetry string `json:"symmetry"`
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) (*matrix.COO[float64], *Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return Read(f)
}

// Read parses a "matrix coordinate" file with real, integer or pattern field
// and general, symmetric or skew-symmetric symmetry. Symmetric entries off
// the diagonal are mirrored; pattern entries get the value 1.
func Read(r io.Reader) (*matrix.COO[float64], *Info, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("empty input: %w", ErrHeader)
	}
	banner := strings.Fields(strings.ToLower(sc.Text()))
	if len(banner) != 5 || banner[0] != "%%matrixmarket" {
		return nil, nil, fmt.Errorf("banner %q: %w", sc.Text(), ErrHeader)
	}
	if banner[1] != "matrix" || banner[2] != "coordinate" {
		return nil, nil, fmt.Errorf("%s %s: %w", banner[1], banner[2], ErrFormat)
	}
	info := &Info{Field: banner[3], Symmetry: banner[4]}
	switch info.Field {
	case "real", "integer", "pattern":
	default:
		return nil, nil, fmt.Errorf("field %s: %w", info.Field, ErrFormat)
	}
	switch info.Symmetry {
	case "general", "symmetric", "skew-symmetric":
	default:
		return nil, nil, fmt.Errorf("symmetry %s: %w", info.Symmetry, ErrFormat)
	}

	var entries int
	sized := false
	var coo *matrix.COO[float64]
	line := 1
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || text[0] == '%' {
			continue
		}
		fields := strings.Fields(text)
		if !sized {
			if len(fields) != 3 {
				return nil, nil, fmt.Errorf("line %d size %q: %w", line, text, ErrHeader)
			}
			dims, err := atoiAll(fields)
			if err != nil || dims[0] < 0 || dims[1] < 0 || dims[2] < 0 {
				return nil, nil, fmt.Errorf("line %d size %q: %w", line, text, ErrHeader)
			}
			info.Rows, info.Cols, entries = dims[0], dims[1], dims[2]
			coo = matrix.NewCOO[float64](info.Rows, info.Cols)
			sized = true
			continue
		}
		if err := readEntry(coo, info, fields); err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", line, err)
		}
		entries--
	}
	if err := sc.Err(); err != nil {
		return nil, nil, err
	}
	if !sized {
		return nil, nil, fmt.Errorf("missing size line: %w", ErrHeader)
	}
	if entries != 0 {
		return nil, nil, fmt.Errorf("entry count off by %d: %w", entries, ErrEntry)
	}
	info.NNZ = coo.NNZ()
	return coo, info, nil
}

func readEntry(coo *matrix.COO[float64], info *Info, fields []string) error {
	want := 3
	if info.Field == "pattern" {
		want = 2
	}
	if len(fields) < want {
		return fmt.Errorf("%d fields, want %d: %w", len(fields), want, ErrEntry)
	}
	idx, err := atoiAll(fields[:2])
	if err != nil {
		return fmt.Errorf("%v: %w", err, ErrEntry)
	}
	i, j := idx[0]-1, idx[1]-1
	v := 1.0
	if info.Field != "pattern" {
		if v, err = strconv.ParseFloat(fields[2], 64); err != nil {
			return fmt.Errorf("%v: %w", err, ErrEntry)
		}
	}
	if err := coo.Append(i, j, v); err != nil {
		return err
	}
	if i == j {
		return nil
	}
	switch info.Symmetry {
	case "symmetric":
		return coo.Append(j, i, v)
	case "skew-symmetric":
		return coo.Append(j, i, -v)
	}
	return nil
}

func atoiAll(fields []string) ([]int, error) {
	out := make([]int, len(fields))
	for k, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		out[k] = n
	}
	return out, nil
}
