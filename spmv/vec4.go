package spmv

import "github.com/senior-zero/matrix-format-performance/matrix"

// Lanes is the width of Vec4.
const Lanes = 4

// Vec4 is a fixed four-lane vector whose lanes are loaded one scalar at a time.
type Vec4[T matrix.Float] [Lanes]T

// Gather4 loads src[i0], src[i1], src[i2], src[i3] into lanes 0..3.
func Gather4[T matrix.Float](src []T, i0, i1, i2, i3 int) Vec4[T] {
	return Vec4[T]{src[i0], src[i1], src[i2], src[i3]}
}

// Add returns the lane-wise sum.
func (v Vec4[T]) Add(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0] + o[0], v[1] + o[1], v[2] + o[2], v[3] + o[3]}
}

// Mul returns the lane-wise product.
func (v Vec4[T]) Mul(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0] * o[0], v[1] * o[1], v[2] * o[2], v[3] * o[3]}
}

// ReduceSum adds the lanes as (v0+v2) + (v1+v3), the order of a 256-bit
// extract, add and horizontal add.
func (v Vec4[T]) ReduceSum() T {
	return (v[0] + v[2]) + (v[1] + v[3])
}
