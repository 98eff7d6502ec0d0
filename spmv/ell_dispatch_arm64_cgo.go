//go:build arm64 && cgo

package spmv

import "golang.org/x/sys/cpu"

func init() {
	if cpu.ARM64.HasASIMD {
		ellVec4F64Impl = ellRowsNEON
		ellVec4F64ImplDesc = "NEON"
	}
}
