// Copyright 2026 The larr Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the pure Go CPU compute backend.
//
// # Overview
//
// This package implements dense.Backend with:
//   - Pure Go kernels (no CGO)
//   - Per-dtype dispatch for Float64, Float32, Int64, Int32, and Bool
//   - NaN-aware reductions, moving windows, ranking, and group statistics
//   - SIMD-accelerated float32 similarity kernels
//   - Chunked data-parallel loops for large buffers
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
//	        []array.Label{"a", "b", "c"}, backend)
//	    fmt.Println(x.MulScalar(2))
//	}
//
// # Error Handling
//
// Backend kernels panic on programmer error: wrong dtype, mismatched
// shapes, axes out of range. User-facing validation with error returns
// happens one layer up, in the array package.
//
// # Thread Safety
//
// The backend holds no mutable state and is safe for concurrent use.
// Individual buffers are not synchronized; do not mutate a buffer from
// two goroutines at once.
package cpu
