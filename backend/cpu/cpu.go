// Copyright 2026 The larr Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	"github.com/larr-ml/larr/dense"
	internalcpu "github.com/larr-ml/larr/internal/backend/cpu"
)

// Backend is the pure Go CPU compute backend.
//
// It implements every dense kernel the labeled array layer calls:
// elementwise arithmetic, comparisons, reductions, gathers, moving
// windows, ranking, and group statistics.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements dense.Backend.
var _ dense.Backend = (*Backend)(nil)

// New creates a CPU backend.
//
// Example:
//
//	import (
//	    "github.com/larr-ml/larr/array"
//	    "github.com/larr-ml/larr/backend/cpu"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    a, _ := array.FromVector([]float64{1, 2}, nil, backend)
//	}
func New() *Backend {
	return internalcpu.New()
}
