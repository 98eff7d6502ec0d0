package matrix

import "errors"

var (
	ErrDims     = errors.New("invalid dimensions")
	ErrRowPtr   = errors.New("malformed row pointer")
	ErrColumn   = errors.New("column index out of range")
	ErrRow      = errors.New("row index out of range")
	ErrLength   = errors.New("slice length mismatch")
	ErrPadding  = errors.New("non-zero padding slot")
	ErrFraction = errors.New("hybrid fraction outside [0, 1]")
)
