// Copyright 2026 The larr Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dense provides the public API for the dense buffer engine that
// labeled arrays compute on.
//
// Most users construct arrays through the array package and never touch a
// Buffer directly; this package exists for code that builds buffers from
// raw slices or implements a Backend.
package dense

import (
	internaldense "github.com/larr-ml/larr/internal/dense"
)

// Type aliases for the public API

// DType is a constraint for element types a Buffer can be built from.
// Supported types: float32, float64, int32, int64, bool.
type DType = internaldense.DType

// DataType carries runtime type information for buffers.
type DataType = internaldense.DataType

// Element type constants.
const (
	Float32 DataType = internaldense.Float32
	Float64 DataType = internaldense.Float64
	Int32   DataType = internaldense.Int32
	Int64   DataType = internaldense.Int64
	Bool    DataType = internaldense.Bool
)

// Shape holds the extents of a buffer, one entry per axis.
// Example: Shape{2, 3} is a 2x3 matrix.
type Shape = internaldense.Shape

// Buffer is dense rectangular storage: raw bytes plus shape, strides, and
// element type, with typed slice views (AsFloat64, AsInt64, ...).
type Buffer = internaldense.Buffer

// Backend is the compute interface the kernels of a labeled array run
// through. The in-tree implementation lives in backend/cpu.
type Backend = internaldense.Backend

// RankNorm selects how ranking operations rescale tie-averaged ranks.
type RankNorm = internaldense.RankNorm

// Supported rank normalizations.
const (
	RankZeroN    RankNorm = internaldense.RankZeroN
	RankCentered RankNorm = internaldense.RankCentered
	RankGaussian RankNorm = internaldense.RankGaussian
)

// NaN is the missing-value sentinel for Float64 buffers.
var NaN = internaldense.NaN

// NaN32 is the missing-value sentinel for Float32 buffers.
var NaN32 = internaldense.NaN32

// Creation functions

// New allocates a zeroed buffer.
//
// Example:
//
//	buf, err := dense.New(dense.Shape{2, 3}, dense.Float64)
func New(shape Shape, dtype DataType) (*Buffer, error) {
	return internaldense.New(shape, dtype)
}

// FromSlice copy-constructs a buffer from a flat row-major slice of any
// supported element type.
//
// Example:
//
//	buf, err := dense.FromSlice([]float64{1, 2, 3, 4}, dense.Shape{2, 2})
func FromSlice[T DType](data []T, shape Shape) (*Buffer, error) {
	return internaldense.FromSlice(data, shape)
}

// FromFloat64s copy-constructs a Float64 buffer.
func FromFloat64s(data []float64, shape Shape) (*Buffer, error) {
	return internaldense.FromFloat64s(data, shape)
}

// FromFloat32s copy-constructs a Float32 buffer.
func FromFloat32s(data []float32, shape Shape) (*Buffer, error) {
	return internaldense.FromFloat32s(data, shape)
}

// FromInt64s copy-constructs an Int64 buffer.
func FromInt64s(data []int64, shape Shape) (*Buffer, error) {
	return internaldense.FromInt64s(data, shape)
}

// FromInt32s copy-constructs an Int32 buffer.
func FromInt32s(data []int32, shape Shape) (*Buffer, error) {
	return internaldense.FromInt32s(data, shape)
}

// FromBools copy-constructs a Bool buffer.
func FromBools(data []bool, shape Shape) (*Buffer, error) {
	return internaldense.FromBools(data, shape)
}

// Utility functions

// Promote returns the common type two operands are widened to before an
// arithmetic or comparison kernel runs.
//
// Example:
//
//	dt := dense.Promote(dense.Int64, dense.Float32) // dense.Float64
func Promote(a, b DataType) DataType {
	return internaldense.Promote(a, b)
}

// PromoteForMissing returns the type a buffer must have before missing
// cells can be introduced: floating types keep their width, integers and
// bools widen to Float64.
func PromoteForMissing(dt DataType) DataType {
	return internaldense.PromoteForMissing(dt)
}

// IsMissing reports whether v is the missing sentinel.
func IsMissing(v float64) bool {
	return internaldense.IsMissing(v)
}
