package cpu

import (
	"fmt"
	"math"
	"sort"

	"github.com/larr-ml/larr/internal/dense"
)

// Full reductions skip missing cells. SumAll of no finite cells is 0 and
// ProdAll is 1; the other folds degrade to NaN.

// SumAll sums every non-missing cell.
func (cpu *CPUBackend) SumAll(x *dense.Buffer) float64 {
	acc, _ := cpu.foldAll("sumall", x, 0, func(acc, v float64) float64 { return acc + v })
	return acc
}

// ProdAll multiplies every non-missing cell.
func (cpu *CPUBackend) ProdAll(x *dense.Buffer) float64 {
	acc, _ := cpu.foldAll("prodall", x, 1, func(acc, v float64) float64 { return acc * v })
	return acc
}

// MeanAll averages the non-missing cells, NaN when there are none.
func (cpu *CPUBackend) MeanAll(x *dense.Buffer) float64 {
	acc, cnt := cpu.foldAll("meanall", x, 0, func(acc, v float64) float64 { return acc + v })
	if cnt == 0 {
		return dense.NaN
	}
	return acc / float64(cnt)
}

// MedianAll returns the median of the non-missing cells, NaN when there
// are none.
func (cpu *CPUBackend) MedianAll(x *dense.Buffer) float64 {
	vals := collectNonMissing(x)
	return medianInPlace(vals)
}

// StdAll returns the population standard deviation of the non-missing
// cells.
func (cpu *CPUBackend) StdAll(x *dense.Buffer) float64 {
	return math.Sqrt(cpu.VarAll(x))
}

// VarAll returns the population variance of the non-missing cells.
func (cpu *CPUBackend) VarAll(x *dense.Buffer) float64 {
	mean := cpu.MeanAll(x)
	if math.IsNaN(mean) {
		return dense.NaN
	}
	acc, cnt := cpu.foldAll("varall", x, 0, func(acc, v float64) float64 {
		d := v - mean
		return acc + d*d
	})
	return acc / float64(cnt)
}

// MinAll returns the smallest non-missing cell, NaN when there are none.
func (cpu *CPUBackend) MinAll(x *dense.Buffer) float64 {
	acc, cnt := cpu.foldAll("minall", x, math.Inf(1), math.Min)
	if cnt == 0 {
		return dense.NaN
	}
	return acc
}

// MaxAll returns the largest non-missing cell, NaN when there are none.
func (cpu *CPUBackend) MaxAll(x *dense.Buffer) float64 {
	acc, cnt := cpu.foldAll("maxall", x, math.Inf(-1), math.Max)
	if cnt == 0 {
		return dense.NaN
	}
	return acc
}

// AnyAll reports whether any cell of a Bool buffer is true.
func (cpu *CPUBackend) AnyAll(x *dense.Buffer) bool {
	checkBool("anyall", x)
	for _, v := range x.AsBool() {
		if v {
			return true
		}
	}
	return false
}

// AllAll reports whether every cell of a Bool buffer is true.
func (cpu *CPUBackend) AllAll(x *dense.Buffer) bool {
	checkBool("allall", x)
	for _, v := range x.AsBool() {
		if !v {
			return false
		}
	}
	return true
}

// CountFinite counts cells that are neither NaN nor infinite. Integer and
// bool buffers are all finite.
func (cpu *CPUBackend) CountFinite(x *dense.Buffer) int {
	switch x.DType() {
	case dense.Float64:
		cnt := 0
		for _, v := range x.AsFloat64() {
			if !math.IsNaN(v) && !math.IsInf(v, 0) {
				cnt++
			}
		}
		return cnt
	case dense.Float32:
		cnt := 0
		for _, v := range x.AsFloat32() {
			f := float64(v)
			if !math.IsNaN(f) && !math.IsInf(f, 0) {
				cnt++
			}
		}
		return cnt
	default:
		return x.NumElements()
	}
}

// foldAll folds every non-missing cell and returns the accumulator plus
// the number of cells folded.
func (cpu *CPUBackend) foldAll(op string, x *dense.Buffer, init float64, f func(acc, v float64) float64) (float64, int) {
	acc, cnt := init, 0
	switch x.DType() {
	case dense.Float64:
		for _, v := range x.AsFloat64() {
			if math.IsNaN(v) {
				continue
			}
			acc = f(acc, v)
			cnt++
		}
	case dense.Float32:
		for _, v := range x.AsFloat32() {
			if isMissing32(v) {
				continue
			}
			acc = f(acc, float64(v))
			cnt++
		}
	case dense.Int64:
		for _, v := range x.AsInt64() {
			acc = f(acc, float64(v))
			cnt++
		}
	case dense.Int32:
		for _, v := range x.AsInt32() {
			acc = f(acc, float64(v))
			cnt++
		}
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", op, x.DType()))
	}
	return acc, cnt
}

// Axis reductions drop the reduced axis from the result shape.

// SumDim sums along axis, preserving the input dtype.
func (cpu *CPUBackend) SumDim(x *dense.Buffer, axis int) *dense.Buffer {
	return cpu.foldDim("sumdim", x, axis, 0, func(acc, v float64) float64 { return acc + v }, 0,
		func(acc, v int64) int64 { return acc + v })
}

// ProdDim multiplies along axis, preserving the input dtype.
func (cpu *CPUBackend) ProdDim(x *dense.Buffer, axis int) *dense.Buffer {
	return cpu.foldDim("proddim", x, axis, 1, func(acc, v float64) float64 { return acc * v }, 1,
		func(acc, v int64) int64 { return acc * v })
}

// MinDim takes the lane minimum along axis, preserving the input dtype.
func (cpu *CPUBackend) MinDim(x *dense.Buffer, axis int) *dense.Buffer {
	return cpu.foldDim("mindim", x, axis, math.Inf(1), math.Min, dense.NaN,
		func(acc, v int64) int64 {
			if v < acc {
				return v
			}
			return acc
		})
}

// MaxDim takes the lane maximum along axis, preserving the input dtype.
func (cpu *CPUBackend) MaxDim(x *dense.Buffer, axis int) *dense.Buffer {
	return cpu.foldDim("maxdim", x, axis, math.Inf(-1), math.Max, dense.NaN,
		func(acc, v int64) int64 {
			if v > acc {
				return v
			}
			return acc
		})
}

// MeanDim averages each lane of a Float64 buffer along axis.
func (cpu *CPUBackend) MeanDim(x *dense.Buffer, axis int) *dense.Buffer {
	checkFloat64("meandim", x)
	axis = x.Shape().Normalize(axis)
	result := mustNew("meandim", x.Shape().Drop(axis), dense.Float64)
	dst, src := result.AsFloat64(), x.AsFloat64()
	outer, n, inner := laneLayout(x.Shape(), axis)
	eachLane(outer, n, inner, func(lane, start, step int) {
		acc, cnt := 0.0, 0
		for j := 0; j < n; j++ {
			v := src[start+j*step]
			if math.IsNaN(v) {
				continue
			}
			acc += v
			cnt++
		}
		if cnt == 0 {
			dst[lane] = dense.NaN
			return
		}
		dst[lane] = acc / float64(cnt)
	})
	return result
}

// MedianDim takes the lane median of a Float64 buffer along axis.
func (cpu *CPUBackend) MedianDim(x *dense.Buffer, axis int) *dense.Buffer {
	checkFloat64("mediandim", x)
	axis = x.Shape().Normalize(axis)
	result := mustNew("mediandim", x.Shape().Drop(axis), dense.Float64)
	dst, src := result.AsFloat64(), x.AsFloat64()
	outer, n, inner := laneLayout(x.Shape(), axis)
	scratch := make([]float64, 0, n)
	eachLane(outer, n, inner, func(lane, start, step int) {
		scratch = scratch[:0]
		for j := 0; j < n; j++ {
			if v := src[start+j*step]; !math.IsNaN(v) {
				scratch = append(scratch, v)
			}
		}
		dst[lane] = medianInPlace(scratch)
	})
	return result
}

// StdDim takes the lane population standard deviation of a Float64 buffer.
func (cpu *CPUBackend) StdDim(x *dense.Buffer, axis int) *dense.Buffer {
	result := cpu.VarDim(x, axis)
	dst := result.AsFloat64()
	for i, v := range dst {
		dst[i] = math.Sqrt(v)
	}
	return result
}

// VarDim takes the lane population variance of a Float64 buffer.
func (cpu *CPUBackend) VarDim(x *dense.Buffer, axis int) *dense.Buffer {
	checkFloat64("vardim", x)
	axis = x.Shape().Normalize(axis)
	result := mustNew("vardim", x.Shape().Drop(axis), dense.Float64)
	dst, src := result.AsFloat64(), x.AsFloat64()
	outer, n, inner := laneLayout(x.Shape(), axis)
	eachLane(outer, n, inner, func(lane, start, step int) {
		acc, cnt := 0.0, 0
		for j := 0; j < n; j++ {
			v := src[start+j*step]
			if math.IsNaN(v) {
				continue
			}
			acc += v
			cnt++
		}
		if cnt == 0 {
			dst[lane] = dense.NaN
			return
		}
		mean := acc / float64(cnt)
		sq := 0.0
		for j := 0; j < n; j++ {
			v := src[start+j*step]
			if math.IsNaN(v) {
				continue
			}
			d := v - mean
			sq += d * d
		}
		dst[lane] = sq / float64(cnt)
	})
	return result
}

// AnyDim reduces a Bool buffer with OR along axis.
func (cpu *CPUBackend) AnyDim(x *dense.Buffer, axis int) *dense.Buffer {
	return cpu.foldDimBool("anydim", x, axis, false, func(acc, v bool) bool { return acc || v })
}

// AllDim reduces a Bool buffer with AND along axis.
func (cpu *CPUBackend) AllDim(x *dense.Buffer, axis int) *dense.Buffer {
	return cpu.foldDimBool("alldim", x, axis, true, func(acc, v bool) bool { return acc && v })
}

func (cpu *CPUBackend) foldDimBool(op string, x *dense.Buffer, axis int, init bool, f func(acc, v bool) bool) *dense.Buffer {
	checkBool(op, x)
	axis = x.Shape().Normalize(axis)
	result := mustNew(op, x.Shape().Drop(axis), dense.Bool)
	dst, src := result.AsBool(), x.AsBool()
	outer, n, inner := laneLayout(x.Shape(), axis)
	eachLane(outer, n, inner, func(lane, start, step int) {
		acc := init
		for j := 0; j < n; j++ {
			acc = f(acc, src[start+j*step])
		}
		dst[lane] = acc
	})
	return result
}

// foldDim reduces lanes with ff for floating input (skipping NaN, empty
// giving empty) and fi for integer input.
func (cpu *CPUBackend) foldDim(op string, x *dense.Buffer, axis int, init float64,
	ff func(acc, v float64) float64, empty float64, fi func(acc, v int64) int64,
) *dense.Buffer {
	axis = x.Shape().Normalize(axis)
	result := mustNew(op, x.Shape().Drop(axis), x.DType())
	outer, n, inner := laneLayout(x.Shape(), axis)

	switch x.DType() {
	case dense.Float64:
		dst, src := result.AsFloat64(), x.AsFloat64()
		eachLane(outer, n, inner, func(lane, start, step int) {
			acc, cnt := init, 0
			for j := 0; j < n; j++ {
				v := src[start+j*step]
				if math.IsNaN(v) {
					continue
				}
				acc = ff(acc, v)
				cnt++
			}
			if cnt == 0 {
				dst[lane] = empty
				return
			}
			dst[lane] = acc
		})
	case dense.Float32:
		dst, src := result.AsFloat32(), x.AsFloat32()
		eachLane(outer, n, inner, func(lane, start, step int) {
			acc, cnt := init, 0
			for j := 0; j < n; j++ {
				v := src[start+j*step]
				if isMissing32(v) {
					continue
				}
				acc = ff(acc, float64(v))
				cnt++
			}
			if cnt == 0 {
				dst[lane] = float32(empty)
				return
			}
			dst[lane] = float32(acc)
		})
	case dense.Int64:
		dst, src := result.AsInt64(), x.AsInt64()
		eachLane(outer, n, inner, func(lane, start, step int) {
			// Integer lanes have no missing cells; seed with the first.
			acc := src[start]
			for j := 1; j < n; j++ {
				acc = fi(acc, src[start+j*step])
			}
			dst[lane] = acc
		})
	case dense.Int32:
		dst, src := result.AsInt32(), x.AsInt32()
		eachLane(outer, n, inner, func(lane, start, step int) {
			acc := int64(src[start])
			for j := 1; j < n; j++ {
				acc = fi(acc, int64(src[start+j*step]))
			}
			dst[lane] = int32(acc)
		})
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", op, x.DType()))
	}
	return result
}

// collectNonMissing widens the buffer to float64, dropping NaN cells.
func collectNonMissing(x *dense.Buffer) []float64 {
	out := make([]float64, 0, x.NumElements())
	switch x.DType() {
	case dense.Float64:
		for _, v := range x.AsFloat64() {
			if !math.IsNaN(v) {
				out = append(out, v)
			}
		}
	case dense.Float32:
		for _, v := range x.AsFloat32() {
			if !isMissing32(v) {
				out = append(out, float64(v))
			}
		}
	case dense.Int64:
		for _, v := range x.AsInt64() {
			out = append(out, float64(v))
		}
	case dense.Int32:
		for _, v := range x.AsInt32() {
			out = append(out, float64(v))
		}
	default:
		panic(fmt.Sprintf("collect: unsupported dtype %s", x.DType()))
	}
	return out
}

// medianInPlace sorts vals and returns their median, NaN for no values.
func medianInPlace(vals []float64) float64 {
	if len(vals) == 0 {
		return dense.NaN
	}
	sort.Float64s(vals)
	mid := len(vals) / 2
	if len(vals)%2 == 1 {
		return vals[mid]
	}
	return (vals[mid-1] + vals[mid]) / 2
}
