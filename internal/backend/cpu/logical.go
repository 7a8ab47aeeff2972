package cpu

import (
	"math"

	"github.com/larr-ml/larr/internal/dense"
)

// And computes elementwise conjunction of two Bool buffers.
func (cpu *CPUBackend) And(a, b *dense.Buffer) *dense.Buffer {
	checkSame("and", a, b)
	checkBool("and", a)
	result := mustNew("and", a.Shape(), dense.Bool)
	dst, x, y := result.AsBool(), a.AsBool(), b.AsBool()
	for i := range dst {
		dst[i] = x[i] && y[i]
	}
	return result
}

// Or computes elementwise disjunction of two Bool buffers.
func (cpu *CPUBackend) Or(a, b *dense.Buffer) *dense.Buffer {
	checkSame("or", a, b)
	checkBool("or", a)
	result := mustNew("or", a.Shape(), dense.Bool)
	dst, x, y := result.AsBool(), a.AsBool(), b.AsBool()
	for i := range dst {
		dst[i] = x[i] || y[i]
	}
	return result
}

// Not negates a Bool buffer elementwise.
func (cpu *CPUBackend) Not(x *dense.Buffer) *dense.Buffer {
	checkBool("not", x)
	result := mustNew("not", x.Shape(), dense.Bool)
	dst, src := result.AsBool(), x.AsBool()
	for i := range dst {
		dst[i] = !src[i]
	}
	return result
}

// Truthy converts any buffer to Bool: non-zero is true, and NaN is true
// (a missing cell is not known to be zero).
func (cpu *CPUBackend) Truthy(x *dense.Buffer) *dense.Buffer {
	if x.DType() == dense.Bool {
		return x.Clone()
	}
	result := mustNew("truthy", x.Shape(), dense.Bool)
	dst := result.AsBool()
	switch x.DType() {
	case dense.Float64:
		src := x.AsFloat64()
		for i := range dst {
			dst[i] = src[i] != 0 // NaN != 0 is true
		}
	case dense.Float32:
		src := x.AsFloat32()
		for i := range dst {
			dst[i] = src[i] != 0
		}
	case dense.Int64:
		src := x.AsInt64()
		for i := range dst {
			dst[i] = src[i] != 0
		}
	default:
		src := x.AsInt32()
		for i := range dst {
			dst[i] = src[i] != 0
		}
	}
	return result
}

// isMissing32 reports whether a float32 cell holds the missing sentinel.
func isMissing32(v float32) bool {
	return math.IsNaN(float64(v))
}
