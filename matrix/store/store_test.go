package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/senior-zero/matrix-format-performance/matrix"
)

func sample(t *testing.T) *matrix.CSR[float64] {
	t.Helper()
	m, err := matrix.NewCSR(3, 3,
		[]uint32{0, 2, 3, 5},
		[]uint32{0, 2, 1, 0, 2},
		[]float64{1, 2, 3, 4, 5})
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestHeaderRoundtrip(t *testing.T) {
	h := &Header{Kind: KindELL, ScalarSize: 4, Rows: 7, Cols: 9, Width: 3, NNZ: 21, ColumnsOffset: 4096, ValuesOffset: 8192}
	b, err := EncodeHeader(h)
	if err != nil {
		t.Fatal(err)
	}
	if len(b) != HeaderSize {
		t.Fatalf("encoded header %d bytes, want %d", len(b), HeaderSize)
	}
	got, err := DecodeHeader(b)
	if err != nil {
		t.Fatal(err)
	}
	if *got != *h {
		t.Errorf("decoded %+v, want %+v", *got, *h)
	}
	b[0] = 'X'
	if _, err := DecodeHeader(b); !errors.Is(err, ErrMagic) {
		t.Errorf("bad magic: %v", err)
	}
	if _, err := DecodeHeader(b[:10]); !errors.Is(err, ErrHeader) {
		t.Errorf("short header: %v", err)
	}
}

func TestCSRSaveOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.csr")
	want := sample(t)
	if err := SaveCSR(path, want); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("tmp file left behind: %v", err)
	}
	got, closer, err := OpenCSR[float64](path)
	if err != nil {
		t.Fatal(err)
	}
	defer closer.Close()
	if got.Rows != 3 || got.Cols != 3 || got.NNZ() != 5 {
		t.Fatalf("shape %dx%d nnz %d", got.Rows, got.Cols, got.NNZ())
	}
	for i := range want.RowPtr {
		if got.RowPtr[i] != want.RowPtr[i] {
			t.Fatalf("row_ptr %v, want %v", got.RowPtr, want.RowPtr)
		}
	}
	for i := range want.Values {
		if got.Columns[i] != want.Columns[i] || got.Values[i] != want.Values[i] {
			t.Fatalf("entries %v %v, want %v %v", got.Columns, got.Values, want.Columns, want.Values)
		}
	}
}

func TestELLSaveOpenFloat32(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.ell")
	want := matrix.NewELLFromCSR(matrix.Convert[float32](sample(t)))
	if err := SaveELL(path, want); err != nil {
		t.Fatal(err)
	}
	got, closer, err := OpenELL[float32](path)
	if err != nil {
		t.Fatal(err)
	}
	defer closer.Close()
	if got.ElementsInRows != want.ElementsInRows || len(got.Values) != len(want.Values) {
		t.Fatalf("width %d len %d", got.ElementsInRows, len(got.Values))
	}
	for i := range want.Values {
		if got.Columns[i] != want.Columns[i] || got.Values[i] != want.Values[i] {
			t.Fatalf("slot %d: (%d, %v), want (%d, %v)", i, got.Columns[i], got.Values[i], want.Columns[i], want.Values[i])
		}
	}
}

func TestOpenRejectsMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.csr")
	if err := SaveCSR(path, sample(t)); err != nil {
		t.Fatal(err)
	}
	if _, _, err := OpenELL[float64](path); !errors.Is(err, ErrKind) {
		t.Errorf("kind: %v", err)
	}
	if _, _, err := OpenCSR[float32](path); !errors.Is(err, ErrScalar) {
		t.Errorf("scalar: %v", err)
	}
}

func TestSectionsAligned(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.csr")
	if err := SaveCSR(path, sample(t)); err != nil {
		t.Fatal(err)
	}
	s, err := OpenMmap(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	h, err := DecodeHeader(s.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	for _, off := range []uint64{h.RowPtrOffset, h.ColumnsOffset, h.ValuesOffset} {
		if off%SectionAlign != 0 {
			t.Errorf("offset %d not aligned", off)
		}
	}
	if h.Kind.String() != "csr" {
		t.Errorf("kind %s", h.Kind)
	}
}
