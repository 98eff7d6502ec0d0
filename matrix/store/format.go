package store

import (
	"bytes"
	"encoding/binary"
	"errors"
)

const (
	// HeaderSize is the fixed header size.
	HeaderSize = 64

	// Magic identifies a matrix cache file.
	Magic = "SPMV"

	// FormatVersion is the current file format version.
	FormatVersion uint16 = 1

	// SectionAlign keeps every section page aligned so mapped views are aligned.
	SectionAlign = 4096
)

// Kind is the storage layout held by a file.
type Kind uint16

const (
	KindCSR Kind = 1
	KindELL Kind = 2
)

func (k Kind) String() string {
	switch k {
	case KindCSR:
		return "csr"
	case KindELL:
		return "ell"
	default:
		return "unknown"
	}
}

var (
	ErrHeader  = errors.New("header too short")
	ErrMagic   = errors.New("invalid magic")
	ErrVersion = errors.New("unsupported format version")
	ErrKind    = errors.New("unexpected matrix kind")
	ErrScalar  = errors.New("unexpected scalar size")
	ErrBounds  = errors.New("section outside file")
	ErrEndian  = errors.New("mapped views need a little-endian host")
)

// Header holds the persisted matrix metadata.
type Header struct {
	Magic         [4]byte
	Version       uint16
	Kind          Kind
	ScalarSize    uint32
	Rows          uint32
	Cols          uint32
	Width         uint32 // ELL elements per row, 0 for CSR
	NNZ           uint64 // stored values, padding included
	RowPtrOffset  uint64 // 0 for ELL
	ColumnsOffset uint64
	ValuesOffset  uint64
	Reserved      [8]byte // pad to 64 bytes
}

// EncodeHeader writes the header to a byte slice, padded to HeaderSize.
func EncodeHeader(h *Header) ([]byte, error) {
	if h == nil {
		return nil, errors.New("header is nil")
	}
	copy(h.Magic[:], Magic)
	h.Version = FormatVersion
	var w bytes.Buffer
	if err := binary.Write(&w, binary.LittleEndian, h); err != nil {
		return nil, err
	}
	b := w.Bytes()
	if len(b) < HeaderSize {
		padded := make([]byte, HeaderSize)
		copy(padded, b)
		return padded, nil
	}
	return b, nil
}

// DecodeHeader reads the header from src. Returns error if magic/version invalid.
func DecodeHeader(src []byte) (*Header, error) {
	if len(src) < HeaderSize {
		return nil, ErrHeader
	}
	var h Header
	r := bytes.NewReader(src[:HeaderSize])
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, err
	}
	if string(h.Magic[:]) != Magic {
		return nil, ErrMagic
	}
	if h.Version != FormatVersion {
		return nil, ErrVersion
	}
	return &h, nil
}

func alignUp(x, align int64) int64 {
	if x%align == 0 {
		return x
	}
	return (x/align + 1) * align
}
