package cpu

import (
	"fmt"

	"github.com/larr-ml/larr/internal/dense"
)

// Cast converts a buffer to another dtype. A same-type cast deep-copies.
// Numeric narrowing follows Go conversion semantics; casting to Bool
// applies truthiness (non-zero and NaN become true); casting Bool to a
// numeric dtype writes 0 or 1.
func (cpu *CPUBackend) Cast(x *dense.Buffer, dtype dense.DataType) *dense.Buffer {
	if x.DType() == dtype {
		return x.Clone()
	}
	if dtype == dense.Bool {
		return cpu.Truthy(x)
	}

	// Integer-to-integer casts stay integral; values beyond the float64
	// mantissa would otherwise round.
	if x.DType() == dense.Int64 && dtype == dense.Int32 {
		result := mustNew("cast", x.Shape(), dtype)
		dst, src := result.AsInt32(), x.AsInt64()
		for i := range dst {
			dst[i] = int32(src[i])
		}
		return result
	}
	if x.DType() == dense.Int32 && dtype == dense.Int64 {
		result := mustNew("cast", x.Shape(), dtype)
		dst, src := result.AsInt64(), x.AsInt32()
		for i := range dst {
			dst[i] = int64(src[i])
		}
		return result
	}

	result := mustNew("cast", x.Shape(), dtype)
	n := x.NumElements()
	switch dtype {
	case dense.Float64:
		dst := result.AsFloat64()
		for i := 0; i < n; i++ {
			dst[i] = x.FloatAt(i)
		}
	case dense.Float32:
		dst := result.AsFloat32()
		for i := 0; i < n; i++ {
			dst[i] = float32(x.FloatAt(i))
		}
	case dense.Int64:
		dst := result.AsInt64()
		for i := 0; i < n; i++ {
			dst[i] = int64(x.FloatAt(i))
		}
	case dense.Int32:
		dst := result.AsInt32()
		for i := 0; i < n; i++ {
			dst[i] = int32(x.FloatAt(i))
		}
	default:
		panic(fmt.Sprintf("cast: unsupported dtype %s", dtype))
	}
	return result
}
