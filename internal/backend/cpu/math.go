package cpu

import (
	"fmt"
	"math"

	"github.com/larr-ml/larr/internal/dense"
	"github.com/larr-ml/larr/internal/parallel"
)

// Neg computes -x elementwise.
func (cpu *CPUBackend) Neg(x *dense.Buffer) *dense.Buffer {
	return cpu.unaryNumeric("neg", x,
		func(v float64) float64 { return -v },
		func(v int64) int64 { return -v })
}

// Abs computes |x| elementwise. NaN stays NaN.
func (cpu *CPUBackend) Abs(x *dense.Buffer) *dense.Buffer {
	return cpu.unaryNumeric("abs", x, math.Abs,
		func(v int64) int64 {
			if v < 0 {
				return -v
			}
			return v
		})
}

// Sign computes -1, 0, or +1 per element. NaN stays NaN.
func (cpu *CPUBackend) Sign(x *dense.Buffer) *dense.Buffer {
	return cpu.unaryNumeric("sign", x,
		func(v float64) float64 {
			switch {
			case math.IsNaN(v):
				return v
			case v > 0:
				return 1
			case v < 0:
				return -1
			default:
				return 0
			}
		},
		func(v int64) int64 {
			switch {
			case v > 0:
				return 1
			case v < 0:
				return -1
			default:
				return 0
			}
		})
}

// Exp computes e**x elementwise. Requires floating input.
func (cpu *CPUBackend) Exp(x *dense.Buffer) *dense.Buffer {
	checkFloat("exp", x)
	return cpu.unaryNumeric("exp", x, math.Exp, nil)
}

// Log computes the natural logarithm elementwise. Requires floating input;
// non-positive cells produce NaN or -Inf, never a panic.
func (cpu *CPUBackend) Log(x *dense.Buffer) *dense.Buffer {
	checkFloat("log", x)
	return cpu.unaryNumeric("log", x, math.Log, nil)
}

// Sqrt computes the square root elementwise. Requires floating input;
// negative cells produce NaN.
func (cpu *CPUBackend) Sqrt(x *dense.Buffer) *dense.Buffer {
	checkFloat("sqrt", x)
	return cpu.unaryNumeric("sqrt", x, math.Sqrt, nil)
}

// Power computes x**q elementwise. Requires floating input.
func (cpu *CPUBackend) Power(x *dense.Buffer, q float64) *dense.Buffer {
	checkFloat("power", x)
	return cpu.unaryNumeric("power", x,
		func(v float64) float64 { return math.Pow(v, q) }, nil)
}

// Clip limits elements to [lo, hi]. Requires floating input; NaN passes
// through unchanged.
func (cpu *CPUBackend) Clip(x *dense.Buffer, lo, hi float64) *dense.Buffer {
	checkFloat("clip", x)
	if lo > hi {
		panic(fmt.Sprintf("clip: lo %v greater than hi %v", lo, hi))
	}
	return cpu.unaryNumeric("clip", x,
		func(v float64) float64 {
			// NaN fails both comparisons and falls through.
			if v < lo {
				return lo
			}
			if v > hi {
				return hi
			}
			return v
		}, nil)
}

func (cpu *CPUBackend) unaryNumeric(op string, x *dense.Buffer,
	ff func(float64) float64, fi func(int64) int64,
) *dense.Buffer {
	result := mustNew(op, x.Shape(), x.DType())
	switch x.DType() {
	case dense.Float64:
		dst, src := result.AsFloat64(), x.AsFloat64()
		parallel.ForRange(len(dst), func(start, end int) {
			for i := start; i < end; i++ {
				dst[i] = ff(src[i])
			}
		}, cpu.par)
	case dense.Float32:
		dst, src := result.AsFloat32(), x.AsFloat32()
		parallel.ForRange(len(dst), func(start, end int) {
			for i := start; i < end; i++ {
				dst[i] = float32(ff(float64(src[i])))
			}
		}, cpu.par)
	case dense.Int64:
		if fi == nil {
			panic(fmt.Sprintf("%s: unsupported dtype int64", op))
		}
		dst, src := result.AsInt64(), x.AsInt64()
		for i := range dst {
			dst[i] = fi(src[i])
		}
	case dense.Int32:
		if fi == nil {
			panic(fmt.Sprintf("%s: unsupported dtype int32", op))
		}
		dst, src := result.AsInt32(), x.AsInt32()
		for i := range dst {
			dst[i] = int32(fi(int64(src[i])))
		}
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", op, x.DType()))
	}
	return result
}

// IsNaN flags missing cells. Integer and bool buffers have none.
func (cpu *CPUBackend) IsNaN(x *dense.Buffer) *dense.Buffer {
	return cpu.classify(x, func(v float64) bool { return math.IsNaN(v) }, false)
}

// IsFinite flags cells that are neither NaN nor infinite.
func (cpu *CPUBackend) IsFinite(x *dense.Buffer) *dense.Buffer {
	return cpu.classify(x, func(v float64) bool {
		return !math.IsNaN(v) && !math.IsInf(v, 0)
	}, true)
}

// IsInf flags infinite cells.
func (cpu *CPUBackend) IsInf(x *dense.Buffer) *dense.Buffer {
	return cpu.classify(x, func(v float64) bool { return math.IsInf(v, 0) }, false)
}

// classify writes a Bool mask; nonFloat is the answer for dtypes that
// cannot hold NaN or Inf.
func (cpu *CPUBackend) classify(x *dense.Buffer, pred func(float64) bool, nonFloat bool) *dense.Buffer {
	result := mustNew("classify", x.Shape(), dense.Bool)
	dst := result.AsBool()
	switch x.DType() {
	case dense.Float64:
		src := x.AsFloat64()
		for i := range dst {
			dst[i] = pred(src[i])
		}
	case dense.Float32:
		src := x.AsFloat32()
		for i := range dst {
			dst[i] = pred(float64(src[i]))
		}
	default:
		for i := range dst {
			dst[i] = nonFloat
		}
	}
	return result
}

// CumSum computes the running sum along axis. Missing cells stay missing
// and do not advance the running total.
func (cpu *CPUBackend) CumSum(x *dense.Buffer, axis int) *dense.Buffer {
	return cpu.cumulative("cumsum", x, axis, 0,
		func(acc, v float64) float64 { return acc + v },
		func(acc, v int64) int64 { return acc + v })
}

// CumProd computes the running product along axis. Missing cells stay
// missing and do not advance the running product.
func (cpu *CPUBackend) CumProd(x *dense.Buffer, axis int) *dense.Buffer {
	return cpu.cumulative("cumprod", x, axis, 1,
		func(acc, v float64) float64 { return acc * v },
		func(acc, v int64) int64 { return acc * v })
}

func (cpu *CPUBackend) cumulative(op string, x *dense.Buffer, axis int, init float64,
	ff func(acc, v float64) float64, fi func(acc, v int64) int64,
) *dense.Buffer {
	axis = x.Shape().Normalize(axis)
	result := mustNew(op, x.Shape(), x.DType())
	outer, n, inner := laneLayout(x.Shape(), axis)

	switch x.DType() {
	case dense.Float64:
		dst, src := result.AsFloat64(), x.AsFloat64()
		eachLane(outer, n, inner, func(_, start, step int) {
			acc := init
			for j := 0; j < n; j++ {
				v := src[start+j*step]
				if math.IsNaN(v) {
					dst[start+j*step] = v
					continue
				}
				acc = ff(acc, v)
				dst[start+j*step] = acc
			}
		})
	case dense.Float32:
		dst, src := result.AsFloat32(), x.AsFloat32()
		eachLane(outer, n, inner, func(_, start, step int) {
			acc := init
			for j := 0; j < n; j++ {
				v := src[start+j*step]
				if isMissing32(v) {
					dst[start+j*step] = v
					continue
				}
				acc = ff(acc, float64(v))
				dst[start+j*step] = float32(acc)
			}
		})
	case dense.Int64:
		dst, src := result.AsInt64(), x.AsInt64()
		eachLane(outer, n, inner, func(_, start, step int) {
			acc := int64(init)
			for j := 0; j < n; j++ {
				acc = fi(acc, src[start+j*step])
				dst[start+j*step] = acc
			}
		})
	case dense.Int32:
		dst, src := result.AsInt32(), x.AsInt32()
		eachLane(outer, n, inner, func(_, start, step int) {
			acc := int64(init)
			for j := 0; j < n; j++ {
				acc = fi(acc, int64(src[start+j*step]))
				dst[start+j*step] = int32(acc)
			}
		})
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", op, x.DType()))
	}
	return result
}

// eachLane invokes f once per 1-d lane with the lane's ordinal (which is
// also its index in the axis-dropped result), start offset, and element
// step.
func eachLane(outer, n, inner int, f func(lane, start, step int)) {
	lane := 0
	for o := 0; o < outer; o++ {
		base := o * n * inner
		for i := 0; i < inner; i++ {
			f(lane, base+i, inner)
			lane++
		}
	}
}
