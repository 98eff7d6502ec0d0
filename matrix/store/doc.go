// Package store provides the binary matrix file format and the mmap-backed
// loader used to cache converted matrices between benchmark runs.
//
// The file format consists of:
//   - Header (64 bytes): magic, version, layout kind, scalar size, dimensions, section offsets
//   - Index section: row_ptr (CSR only), 4 KiB aligned
//   - Columns section: uint32 column indices, 4 KiB aligned
//   - Values section: float32 or float64 values, 4 KiB aligned
//
// All integers are little-endian. Loaded matrices are zero-copy views into the
// read-only mapping and stay valid until the returned Closer is closed.
package store
