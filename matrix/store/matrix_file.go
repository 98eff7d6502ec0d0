package store

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"unsafe"

	"github.com/senior-zero/matrix-format-performance/matrix"
)

// SaveCSR writes m to path atomically (path+".tmp", then rename).
func SaveCSR[T matrix.Float](path string, m *matrix.CSR[T]) error {
	h := &Header{
		Kind:       KindCSR,
		ScalarSize: scalarSize[T](),
		Rows:       uint32(m.Rows),
		Cols:       uint32(m.Cols),
		NNZ:        uint64(m.NNZ()),
	}
	return saveAtomic(path, h, m.RowPtr, m.Columns, m.Values)
}

// SaveELL writes m to path atomically (path+".tmp", then rename).
func SaveELL[T matrix.Float](path string, m *matrix.ELL[T]) error {
	h := &Header{
		Kind:       KindELL,
		ScalarSize: scalarSize[T](),
		Rows:       uint32(m.Rows),
		Cols:       uint32(m.Cols),
		Width:      uint32(m.ElementsInRows),
		NNZ:        uint64(len(m.Values)),
	}
	return saveAtomic(path, h, nil, m.Columns, m.Values)
}

// OpenCSR maps a CSR file. The matrix borrows the mapping; close the returned
// Closer only after the last use of the matrix.
func OpenCSR[T matrix.Float](path string) (*matrix.CSR[T], io.Closer, error) {
	s, h, err := openKind[T](path, KindCSR)
	if err != nil {
		return nil, nil, err
	}
	rowPtr, err := view[uint32](s, h.RowPtrOffset, int(h.Rows)+1)
	if err != nil {
		s.Close()
		return nil, nil, err
	}
	columns, values, err := entries[T](s, h)
	if err != nil {
		s.Close()
		return nil, nil, err
	}
	m, err := matrix.NewCSR(int(h.Rows), int(h.Cols), rowPtr, columns, values)
	if err != nil {
		s.Close()
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, s, nil
}

// OpenELL maps an ELL file. The matrix borrows the mapping; close the returned
// Closer only after the last use of the matrix.
func OpenELL[T matrix.Float](path string) (*matrix.ELL[T], io.Closer, error) {
	s, h, err := openKind[T](path, KindELL)
	if err != nil {
		return nil, nil, err
	}
	columns, values, err := entries[T](s, h)
	if err != nil {
		s.Close()
		return nil, nil, err
	}
	m, err := matrix.NewELL(int(h.Rows), int(h.Cols), int(h.Width), columns, values, nil)
	if err != nil {
		s.Close()
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, s, nil
}

func openKind[T matrix.Float](path string, kind Kind) (*Mapping, *Header, error) {
	if !littleEndian {
		return nil, nil, ErrEndian
	}
	s, err := OpenMmap(path)
	if err != nil {
		return nil, nil, err
	}
	h, err := DecodeHeader(s.Bytes())
	if err != nil {
		s.Close()
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	if h.Kind != kind {
		s.Close()
		return nil, nil, fmt.Errorf("%s holds %s, want %s: %w", path, h.Kind, kind, ErrKind)
	}
	if h.ScalarSize != scalarSize[T]() {
		s.Close()
		return nil, nil, fmt.Errorf("%s scalar size %d: %w", path, h.ScalarSize, ErrScalar)
	}
	return s, h, nil
}

func entries[T matrix.Float](s *Mapping, h *Header) ([]uint32, []T, error) {
	columns, err := view[uint32](s, h.ColumnsOffset, int(h.NNZ))
	if err != nil {
		return nil, nil, err
	}
	values, err := view[T](s, h.ValuesOffset, int(h.NNZ))
	if err != nil {
		return nil, nil, err
	}
	return columns, values, nil
}

func saveAtomic[T matrix.Float](path string, h *Header, rowPtr, columns []uint32, values []T) error {
	tmp := path + ".tmp"
	if err := save(tmp, h, rowPtr, columns, values); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	_ = os.Remove(path) // ignore error if not exists
	return os.Rename(tmp, path)
}

func save[T matrix.Float](path string, h *Header, rowPtr, columns []uint32, values []T) error {
	off := int64(HeaderSize)
	if h.Kind == KindCSR {
		off = alignUp(off, SectionAlign)
		h.RowPtrOffset = uint64(off)
		off += int64(len(rowPtr)) * 4
	}
	off = alignUp(off, SectionAlign)
	h.ColumnsOffset = uint64(off)
	off += int64(len(columns)) * 4
	off = alignUp(off, SectionAlign)
	h.ValuesOffset = uint64(off)

	headerBytes, err := EncodeHeader(h)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := &countingWriter{w: bufio.NewWriterSize(f, 1<<20)}
	if _, err := w.Write(headerBytes); err != nil {
		return err
	}
	sections := []struct {
		offset uint64
		data   any
	}{
		{h.RowPtrOffset, rowPtr},
		{h.ColumnsOffset, columns},
		{h.ValuesOffset, values},
	}
	for _, sec := range sections {
		if sec.offset == 0 {
			continue
		}
		if err := w.padTo(int64(sec.offset)); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, sec.data); err != nil {
			return err
		}
	}
	if err := w.w.Flush(); err != nil {
		return err
	}
	return f.Sync()
}

type countingWriter struct {
	w *bufio.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

func (c *countingWriter) padTo(off int64) error {
	if off <= c.n {
		return nil
	}
	_, err := c.Write(make([]byte, off-c.n))
	return err
}

func scalarSize[T matrix.Float]() uint32 {
	var zero T
	return uint32(unsafe.Sizeof(zero))
}
