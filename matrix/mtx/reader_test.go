package mtx

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/senior-zero/matrix-format-performance/matrix"
)

const general = `%%MatrixMarket matrix coordinate real general
% 3x3 test matrix
3 3 5
1 1 1.0
1 3 2
2 2 3
3 1 4e0
3 3 5
`

func TestReadGeneral(t *testing.T) {
	coo, info, err := Read(strings.NewReader(general))
	if err != nil {
		t.Fatal(err)
	}
	if info.Rows != 3 || info.Cols != 3 || info.NNZ != 5 || info.Field != "real" || info.Symmetry != "general" {
		t.Fatalf("info %+v", info)
	}
	csr := matrix.FromCOO(coo)
	if err := csr.Validate(); err != nil {
		t.Fatal(err)
	}
	want := []float64{1, 2, 3, 4, 5}
	for i, v := range want {
		if csr.Values[i] != v {
			t.Fatalf("values %v, want %v", csr.Values, want)
		}
	}
}

func TestReadSymmetricPattern(t *testing.T) {
	src := "%%MatrixMarket matrix coordinate pattern symmetric\n3 3 3\n1 1\n2 1\n3 2\n"
	coo, info, err := Read(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if info.NNZ != 5 {
		t.Fatalf("NNZ = %d, want 5 after mirroring", info.NNZ)
	}
	for _, v := range coo.Values {
		if v != 1 {
			t.Fatalf("pattern value %g", v)
		}
	}
}

func TestReadSkewSymmetric(t *testing.T) {
	src := "%%MatrixMarket matrix coordinate integer skew-symmetric\n2 2 1\n2 1 3\n"
	coo, _, err := Read(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if coo.NNZ() != 2 || coo.Values[0] != 3 || coo.Values[1] != -3 {
		t.Fatalf("values %v", coo.Values)
	}
}

func TestReadErrors(t *testing.T) {
	cases := map[string]struct {
		src  string
		want error
	}{
		"banner":  {"hello\n", ErrHeader},
		"array":   {"%%MatrixMarket matrix array real general\n2 2\n", ErrFormat},
		"complex": {"%%MatrixMarket matrix coordinate complex general\n", ErrFormat},
		"size":    {"%%MatrixMarket matrix coordinate real general\n2 2\n", ErrHeader},
		"count":   {"%%MatrixMarket matrix coordinate real general\n2 2 2\n1 1 1\n", ErrEntry},
		"value":   {"%%MatrixMarket matrix coordinate real general\n2 2 1\n1 1 x\n", ErrEntry},
		"range":   {"%%MatrixMarket matrix coordinate real general\n2 2 1\n3 1 1\n", matrix.ErrRow},
		"no size": {"%%MatrixMarket matrix coordinate real general\n% only comments\n", ErrHeader},
	}
	for name, c := range cases {
		if _, _, err := Read(strings.NewReader(c.src)); !errors.Is(err, c.want) {
			t.Errorf("%s: err %v, want %v", name, err, c.want)
		}
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.mtx")
	if err := os.WriteFile(path, []byte(general), 0o644); err != nil {
		t.Fatal(err)
	}
	coo, _, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if coo.NNZ() != 5 {
		t.Errorf("NNZ = %d", coo.NNZ())
	}
	if _, _, err := ReadFile(filepath.Join(t.TempDir(), "missing.mtx")); err == nil {
		t.Error("missing file: no error")
	}
}
