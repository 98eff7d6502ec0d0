package store

import (
	"os"
	"unsafe"

	"github.com/edsrzf/mmap-go"
)

// Mapping is a read-only mmap of a matrix file.
type Mapping struct {
	f    *os.File
	data mmap.MMap
}

// OpenMmap opens a file and maps it read-only.
func OpenMmap(path string) (*Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &Mapping{f: f, data: m}, nil
}

// Bytes returns the full mapped file.
func (s *Mapping) Bytes() []byte {
	return s.data
}

// Close unmaps the file and closes it.
func (s *Mapping) Close() error {
	if s.data != nil {
		if err := s.data.Unmap(); err != nil {
			return err
		}
		s.data = nil
	}
	if s.f != nil {
		err := s.f.Close()
		s.f = nil
		return err
	}
	return nil
}

// view returns n elements of E starting at byte offset. The slice aliases
// the mapping and must not be written.
func view[E any](s *Mapping, offset uint64, n int) ([]E, error) {
	var zero E
	size := uint64(n) * uint64(unsafe.Sizeof(zero))
	if offset+size > uint64(len(s.data)) {
		return nil, ErrBounds
	}
	if n == 0 {
		return []E{}, nil
	}
	return unsafe.Slice((*E)(unsafe.Pointer(&s.data[offset])), n), nil
}

var littleEndian = func() bool {
	x := uint16(1)
	return *(*byte)(unsafe.Pointer(&x)) == 1
}()
