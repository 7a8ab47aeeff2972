package cpu

import (
	"fmt"

	"github.com/larr-ml/larr/internal/dense"
)

// Comparison kernels produce Bool buffers. Any comparison against NaN is
// false except NotEqual, which is true (NaN differs from everything,
// including itself).

// Equal compares a == b elementwise.
func (cpu *CPUBackend) Equal(a, b *dense.Buffer) *dense.Buffer {
	return cpu.compare("equal", a, b, eqSpan[float64], eqSpan[float32], eqSpan[int64], eqSpan[int32])
}

// NotEqual compares a != b elementwise.
func (cpu *CPUBackend) NotEqual(a, b *dense.Buffer) *dense.Buffer {
	return cpu.compare("notequal", a, b, neSpan[float64], neSpan[float32], neSpan[int64], neSpan[int32])
}

// Greater compares a > b elementwise.
func (cpu *CPUBackend) Greater(a, b *dense.Buffer) *dense.Buffer {
	return cpu.compare("greater", a, b, gtSpan[float64], gtSpan[float32], gtSpan[int64], gtSpan[int32])
}

// GreaterEqual compares a >= b elementwise.
func (cpu *CPUBackend) GreaterEqual(a, b *dense.Buffer) *dense.Buffer {
	return cpu.compare("greaterequal", a, b, geSpan[float64], geSpan[float32], geSpan[int64], geSpan[int32])
}

// Lower compares a < b elementwise.
func (cpu *CPUBackend) Lower(a, b *dense.Buffer) *dense.Buffer {
	return cpu.compare("lower", a, b, ltSpan[float64], ltSpan[float32], ltSpan[int64], ltSpan[int32])
}

// LowerEqual compares a <= b elementwise.
func (cpu *CPUBackend) LowerEqual(a, b *dense.Buffer) *dense.Buffer {
	return cpu.compare("lowerequal", a, b, leSpan[float64], leSpan[float32], leSpan[int64], leSpan[int32])
}

func (cpu *CPUBackend) compare(op string, a, b *dense.Buffer,
	f64 func([]bool, []float64, []float64),
	f32 func([]bool, []float32, []float32),
	i64 func([]bool, []int64, []int64),
	i32 func([]bool, []int32, []int32),
) *dense.Buffer {
	checkSame(op, a, b)
	result := mustNew(op, a.Shape(), dense.Bool)
	dst := result.AsBool()
	switch a.DType() {
	case dense.Float64:
		f64(dst, a.AsFloat64(), b.AsFloat64())
	case dense.Float32:
		f32(dst, a.AsFloat32(), b.AsFloat32())
	case dense.Int64:
		i64(dst, a.AsInt64(), b.AsInt64())
	case dense.Int32:
		i32(dst, a.AsInt32(), b.AsInt32())
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", op, a.DType()))
	}
	return result
}

func eqSpan[T number](dst []bool, a, b []T) {
	for i := range a {
		dst[i] = a[i] == b[i]
	}
}

func neSpan[T number](dst []bool, a, b []T) {
	for i := range a {
		dst[i] = a[i] != b[i]
	}
}

func gtSpan[T number](dst []bool, a, b []T) {
	for i := range a {
		dst[i] = a[i] > b[i]
	}
}

func geSpan[T number](dst []bool, a, b []T) {
	for i := range a {
		dst[i] = a[i] >= b[i]
	}
}

func ltSpan[T number](dst []bool, a, b []T) {
	for i := range a {
		dst[i] = a[i] < b[i]
	}
}

func leSpan[T number](dst []bool, a, b []T) {
	for i := range a {
		dst[i] = a[i] <= b[i]
	}
}
