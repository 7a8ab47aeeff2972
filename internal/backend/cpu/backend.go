// Package cpu implements the dense compute backend on the host CPU.
package cpu

import (
	"fmt"

	"github.com/larr-ml/larr/internal/dense"
	"github.com/larr-ml/larr/internal/parallel"
)

// Compile-time check that CPUBackend satisfies the backend contract.
var _ dense.Backend = (*CPUBackend)(nil)

// CPUBackend implements dense kernels with chunked parallel loops for
// large buffers.
type CPUBackend struct {
	par parallel.Config
}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{
		par: parallel.DefaultConfig(),
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "cpu"
}

// number covers element types arithmetic kernels run on.
type number interface {
	~float32 | ~float64 | ~int32 | ~int64
}

// float covers the floating element types.
type float interface {
	~float32 | ~float64
}

// mustNew allocates a result buffer or panics with kernel context.
func mustNew(op string, shape dense.Shape, dtype dense.DataType) *dense.Buffer {
	result, err := dense.New(shape, dtype)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result buffer: %v", op, err))
	}
	return result
}

// checkSame panics unless a and b agree on shape and dtype.
func checkSame(op string, a, b *dense.Buffer) {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch: %s vs %s", op, a.DType(), b.DType()))
	}
	if !a.Shape().Equal(b.Shape()) {
		panic(fmt.Sprintf("%s: shape mismatch: %v vs %v", op, a.Shape(), b.Shape()))
	}
}

// checkFloat panics unless x holds floating elements.
func checkFloat(op string, x *dense.Buffer) {
	if !x.DType().IsFloat() {
		panic(fmt.Sprintf("%s: requires floating dtype, got %s", op, x.DType()))
	}
}

// checkFloat64 panics unless x holds float64 elements.
func checkFloat64(op string, x *dense.Buffer) {
	if x.DType() != dense.Float64 {
		panic(fmt.Sprintf("%s: requires float64 dtype, got %s", op, x.DType()))
	}
}

// checkBool panics unless x holds bool elements.
func checkBool(op string, x *dense.Buffer) {
	if x.DType() != dense.Bool {
		panic(fmt.Sprintf("%s: requires bool dtype, got %s", op, x.DType()))
	}
}

// check2d panics unless x is a matrix.
func check2d(op string, x *dense.Buffer) {
	if x.NDim() != 2 {
		panic(fmt.Sprintf("%s: requires a 2d buffer, got %d axes", op, x.NDim()))
	}
}

// laneLayout decomposes a shape around an axis into outer repetitions, the
// axis extent, and the inner stride. Element (o, j, i) lives at flat offset
// o*n*inner + j*inner + i, so a lane is walked with stride inner.
func laneLayout(shape dense.Shape, axis int) (outer, n, inner int) {
	outer, inner = 1, 1
	for i := 0; i < axis; i++ {
		outer *= shape[i]
	}
	for i := axis + 1; i < len(shape); i++ {
		inner *= shape[i]
	}
	return outer, shape[axis], inner
}
