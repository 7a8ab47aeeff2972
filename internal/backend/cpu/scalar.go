package cpu

import (
	"fmt"
	"math"

	"github.com/larr-ml/larr/internal/dense"
	"github.com/larr-ml/larr/internal/parallel"
)

// Scalar kernels combine every element with one value. Integer buffers
// require an integral scalar; callers widen the buffer to Float64 before
// mixing integers with fractional scalars.

// AddScalar computes x + s elementwise.
func (cpu *CPUBackend) AddScalar(x *dense.Buffer, s float64) *dense.Buffer {
	return cpu.scalarOp("addscalar", x, s,
		func(v, s float64) float64 { return v + s },
		func(v, s int64) int64 { return v + s })
}

// SubScalar computes x - s elementwise.
func (cpu *CPUBackend) SubScalar(x *dense.Buffer, s float64) *dense.Buffer {
	return cpu.scalarOp("subscalar", x, s,
		func(v, s float64) float64 { return v - s },
		func(v, s int64) int64 { return v - s })
}

// MulScalar computes x * s elementwise.
func (cpu *CPUBackend) MulScalar(x *dense.Buffer, s float64) *dense.Buffer {
	return cpu.scalarOp("mulscalar", x, s,
		func(v, s float64) float64 { return v * s },
		func(v, s int64) int64 { return v * s })
}

// DivScalar computes x / s elementwise. Requires floating input.
func (cpu *CPUBackend) DivScalar(x *dense.Buffer, s float64) *dense.Buffer {
	checkFloat("divscalar", x)
	return cpu.scalarOp("divscalar", x, s,
		func(v, s float64) float64 { return v / s },
		nil)
}

func (cpu *CPUBackend) scalarOp(op string, x *dense.Buffer, s float64,
	ff func(v, s float64) float64, fi func(v, s int64) int64,
) *dense.Buffer {
	result := mustNew(op, x.Shape(), x.DType())
	switch x.DType() {
	case dense.Float64:
		dst, src := result.AsFloat64(), x.AsFloat64()
		parallel.ForRange(len(dst), func(start, end int) {
			for i := start; i < end; i++ {
				dst[i] = ff(src[i], s)
			}
		}, cpu.par)
	case dense.Float32:
		dst, src := result.AsFloat32(), x.AsFloat32()
		s32 := s
		parallel.ForRange(len(dst), func(start, end int) {
			for i := start; i < end; i++ {
				dst[i] = float32(ff(float64(src[i]), s32))
			}
		}, cpu.par)
	case dense.Int64:
		cpu.checkIntegral(op, s)
		dst, src := result.AsInt64(), x.AsInt64()
		si := int64(s)
		for i := range dst {
			dst[i] = fi(src[i], si)
		}
	case dense.Int32:
		cpu.checkIntegral(op, s)
		dst, src := result.AsInt32(), x.AsInt32()
		si := int64(s)
		for i := range dst {
			dst[i] = int32(fi(int64(src[i]), si))
		}
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", op, x.DType()))
	}
	return result
}

func (cpu *CPUBackend) checkIntegral(op string, s float64) {
	if s != math.Trunc(s) || math.IsNaN(s) || math.IsInf(s, 0) {
		panic(fmt.Sprintf("%s: scalar %v is not integral; cast the buffer to float64 first", op, s))
	}
}
