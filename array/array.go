// Copyright 2026 The larr Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package array provides the public API for labeled n-dimensional arrays.
//
// An Array couples a dense numeric buffer with one ordered list of unique
// labels per axis and aligns data by label, not by position.
package array

import (
	"github.com/larr-ml/larr/dense"
	internalarray "github.com/larr-ml/larr/internal/array"
)

// Type aliases for the public API

// Label is an axis coordinate. Supported kinds: int, int64, float64,
// string, time.Time. Numeric labels unify across int and float, so 1 and
// 1.0 are the same label.
type Label = internalarray.Label

// Array is a labeled n-dimensional array.
//
// Binary operations align operands on the sorted intersection of their
// per-axis labels, Morph reindexes an axis onto an arbitrary label list,
// and Merge folds two arrays into their label union. NaN marks missing
// cells.
//
// Example:
//
//	backend := cpu.New()
//	x, _ := array.FromVector([]float64{1, 2}, []array.Label{"a", "b"}, backend)
//	y, _ := array.FromVector([]float64{10, 20}, []array.Label{"b", "c"}, backend)
//	z, _ := x.Add(y) // one cell, label "b", value 12
type Array = internalarray.Array

// NaN is the missing-value sentinel. Assigning it to a cell marks the
// cell missing; reductions and statistics skip it.
var NaN = dense.NaN

// IsMissing reports whether v is the missing sentinel.
func IsMissing(v float64) bool {
	return dense.IsMissing(v)
}

// RankNorm selects how ranking operations rescale tie-averaged ranks.
type RankNorm = internalarray.RankNorm

// Supported rank normalizations.
const (
	// RankZeroN spreads ranks over [0, N-1] where N is the axis extent.
	RankZeroN RankNorm = internalarray.RankZeroN
	// RankCentered spreads ranks over [-1, 1].
	RankCentered RankNorm = internalarray.RankCentered
	// RankGaussian maps rank quantiles through the unit normal quantile
	// function.
	RankGaussian RankNorm = internalarray.RankGaussian
)

// Creation functions

// New wraps a dense buffer with per-axis labels. labels may be nil, and
// any nil axis entry defaults to integer labels 0..extent-1.
//
// Example:
//
//	buf, _ := dense.FromFloat64s([]float64{1, 2, 3, 4}, dense.Shape{2, 2})
//	a, err := array.New(buf, [][]array.Label{{"r0", "r1"}, {"c0", "c1"}}, cpu.New())
func New(buf *dense.Buffer, labels [][]Label, bk dense.Backend) (*Array, error) {
	return internalarray.New(buf, labels, bk)
}

// FromVector builds a 1d Float64 array. labels may be nil.
//
// Example:
//
//	a, err := array.FromVector([]float64{1, 2, 3}, []array.Label{"a", "b", "c"}, cpu.New())
func FromVector(data []float64, labels []Label, bk dense.Backend) (*Array, error) {
	return internalarray.FromVector(data, labels, bk)
}

// FromMatrix builds a 2d Float64 array from rows of equal length. rows
// and cols label the two axes; either may be nil.
//
// Example:
//
//	a, err := array.FromMatrix(
//	    [][]float64{{1, 2}, {3, 4}},
//	    []array.Label{"r0", "r1"},
//	    []array.Label{"c0", "c1"},
//	    cpu.New(),
//	)
func FromMatrix(data [][]float64, rows, cols []Label, bk dense.Backend) (*Array, error) {
	return internalarray.FromMatrix(data, rows, cols, bk)
}

// FromSlice builds an array of any supported element type from a flat
// row-major slice.
//
// Example:
//
//	a, err := array.FromSlice([]int64{1, 2, 3, 4}, dense.Shape{2, 2}, nil, cpu.New())
func FromSlice[T dense.DType](data []T, shape dense.Shape, labels [][]Label, bk dense.Backend) (*Array, error) {
	return internalarray.FromSlice(data, shape, labels, bk)
}
