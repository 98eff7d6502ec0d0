//go:build amd64 && cgo

package spmv

import "golang.org/x/sys/cpu"

func init() {
	if cpu.X86.HasAVX2 {
		ellVec4F64Impl = ellRowsAVX2
		ellVec4F64ImplDesc = "AVX2"
	}
}
