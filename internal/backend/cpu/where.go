package cpu

import (
	"fmt"
	"math"

	"github.com/larr-ml/larr/internal/dense"
)

// Where selects x where cond is true and y elsewhere. All three buffers
// share one shape; x and y share one dtype.
func (cpu *CPUBackend) Where(cond, x, y *dense.Buffer) *dense.Buffer {
	checkBool("where", cond)
	checkSame("where", x, y)
	if !cond.Shape().Equal(x.Shape()) {
		panic(fmt.Sprintf("where: condition shape %v does not match %v", cond.Shape(), x.Shape()))
	}

	result := mustNew("where", x.Shape(), x.DType())
	mask := cond.AsBool()
	switch x.DType() {
	case dense.Float64:
		whereSpan(result.AsFloat64(), mask, x.AsFloat64(), y.AsFloat64())
	case dense.Float32:
		whereSpan(result.AsFloat32(), mask, x.AsFloat32(), y.AsFloat32())
	case dense.Int64:
		whereSpan(result.AsInt64(), mask, x.AsInt64(), y.AsInt64())
	case dense.Int32:
		whereSpan(result.AsInt32(), mask, x.AsInt32(), y.AsInt32())
	case dense.Bool:
		whereSpan(result.AsBool(), mask, x.AsBool(), y.AsBool())
	default:
		panic(fmt.Sprintf("where: unsupported dtype %s", x.DType()))
	}
	return result
}

func whereSpan[T any](dst []T, mask []bool, x, y []T) {
	for i := range dst {
		if mask[i] {
			dst[i] = x[i]
		} else {
			dst[i] = y[i]
		}
	}
}

// Full creates a buffer with every cell set to v, narrowed to dtype.
func (cpu *CPUBackend) Full(shape dense.Shape, dtype dense.DataType, v float64) *dense.Buffer {
	result := mustNew("full", shape, dtype)
	switch dtype {
	case dense.Float64:
		dst := result.AsFloat64()
		for i := range dst {
			dst[i] = v
		}
	case dense.Float32:
		dst := result.AsFloat32()
		f := float32(v)
		for i := range dst {
			dst[i] = f
		}
	case dense.Int64:
		dst := result.AsInt64()
		n := int64(v)
		for i := range dst {
			dst[i] = n
		}
	case dense.Int32:
		dst := result.AsInt32()
		n := int32(v)
		for i := range dst {
			dst[i] = n
		}
	case dense.Bool:
		dst := result.AsBool()
		b := v != 0
		for i := range dst {
			dst[i] = b
		}
	default:
		panic(fmt.Sprintf("full: unsupported dtype %s", dtype))
	}
	return result
}

// FillMissing overwrites missing cells with v, in place. Requires a
// floating dtype; other dtypes have no missing cells to fill.
func (cpu *CPUBackend) FillMissing(x *dense.Buffer, v float64) {
	switch x.DType() {
	case dense.Float64:
		dst := x.AsFloat64()
		for i, c := range dst {
			if math.IsNaN(c) {
				dst[i] = v
			}
		}
	case dense.Float32:
		dst := x.AsFloat32()
		f := float32(v)
		for i, c := range dst {
			if isMissing32(c) {
				dst[i] = f
			}
		}
	default:
		// Nothing to fill.
	}
}
