// Copyright 2026 The larr Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package array provides labeled n-dimensional arrays.
//
// # Overview
//
// An Array is a dense numeric buffer plus one list of unique, ordered
// labels per axis. Where a plain tensor aligns operands by position, a
// labeled array aligns them by label: adding two arrays first intersects
// their labels, gathers both operands into that shared coordinate system,
// and only then runs the arithmetic.
//
// # Basic Usage
//
//	import (
//	    "github.com/larr-ml/larr/array"
//	    "github.com/larr-ml/larr/backend/cpu"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    x, _ := array.FromVector([]float64{1, 2, 3},
//	        []array.Label{"ibm", "msft", "goog"}, backend)
//	    y, _ := array.FromVector([]float64{10, 20},
//	        []array.Label{"goog", "ibm"}, backend)
//
//	    z, _ := x.Add(y)
//	    fmt.Println(z)
//	    // label_0
//	    //     goog
//	    //     ibm
//	    // x
//	    // [13 21]
//	}
//
// # Labels
//
// Labels may be int, int64, float64, string, or time.Time, mixed freely
// on one axis. Numbers order before times, times before strings; numeric
// labels unify across int and float (1 and 1.0 are the same label).
// Labels on an axis must be unique but need not be sorted; operations
// that combine two arrays produce sorted label order.
//
// # Missing Data
//
// NaN is the missing-value marker. Reductions and statistics skip missing
// cells; arithmetic propagates them. Operations that can introduce
// missing cells into integer or bool arrays widen to Float64 first.
// Morph fills unmatched labels with NaN, Push forward-fills gaps, and
// Vacuum and CutMissing prune label slices that are mostly or entirely
// missing.
//
// # Alignment Operations
//
// Binary arithmetic (Add, Sub, Mul, Div, comparisons, And, Or) aligns on
// the sorted intersection of labels per axis and errors with
// NoOverlapError when an axis shares nothing. Morph reindexes axes onto
// caller-given label lists. Merge combines two arrays over the union of
// their labels and errors with MergeOverlapError when both sides have
// finite data for the same cell, unless update is requested.
//
// # Errors
//
// Fallible operations return one of the typed errors in errors.go
// (LabelNotFoundError, NoOverlapError, ...); match them with errors.As.
// Index-based accessors (At, SetAt) panic on out-of-range positions like
// a slice does.
package array
