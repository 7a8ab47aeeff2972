// Copyright 2026 The larr Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dense provides dense n-dimensional buffers and the compute
// backend interface.
//
// # Overview
//
// A Buffer is flat row-major storage with a Shape and a runtime element
// type. It carries no labels and no alignment logic; that lives in the
// array package. This package provides:
//   - Buffer: raw storage with typed slice views
//   - Shape: per-axis extents with stride math
//   - DataType: runtime element type (Float64, Float32, Int64, Int32, Bool)
//   - Backend: the kernel interface compute backends implement
//
// # Basic Usage
//
//	import (
//	    "github.com/larr-ml/larr/dense"
//	)
//
//	func main() {
//	    buf, err := dense.FromFloat64s([]float64{1, 2, 3, 4}, dense.Shape{2, 2})
//	    if err != nil {
//	        panic(err)
//	    }
//	    fmt.Println(buf.Shape())   // [2 2]
//	    fmt.Println(buf.DType())   // float64
//	    fmt.Println(buf.AsFloat64()) // [1 2 3 4]
//	}
//
// # Missing Values
//
// Float buffers use NaN as the missing-value sentinel. Integer and bool
// buffers cannot hold missing cells; operations that may introduce them
// widen first (see PromoteForMissing).
//
// # Element Types
//
// The DType constraint admits float32, float64, int32, int64, and bool.
// Promote gives the widening rules kernels apply before mixed-type
// arithmetic.
//
// # Backends
//
// All compute runs through the Backend interface. Backend methods panic
// on programmer error (wrong dtype, wrong arity, bad axis); input
// validation with error returns is the caller's job and is what the
// array package does. The pure Go CPU implementation lives in
// backend/cpu.
package dense
