// Package matrix provides the sparse storage layouts consumed by the spmv engine:
// CSR, padded ELL, COO and the ELL+COO hybrid.
//
// Constructors validate structure once; the kernels in package spmv trust it.
//
//	csr, err := matrix.NewCSR(rows, cols, rowPtr, columns, values)
//	ell := matrix.NewELLFromCSR(csr)
//	hyb := matrix.NewHybrid(csr, 0.5)
package matrix
