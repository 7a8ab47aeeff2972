package cpu

import (
	"fmt"

	"github.com/larr-ml/larr/internal/dense"
)

// SubAlong subtracts a reduced buffer from x along axis: v's shape must be
// x's with axis dropped, and v[lane] is subtracted from every cell of that
// lane. This is the inverse pairing of the axis reductions: demeaning a
// matrix is SubAlong(x, MeanDim(x, axis), axis).
func (cpu *CPUBackend) SubAlong(x, v *dense.Buffer, axis int) *dense.Buffer {
	return cpu.alongOp("subalong", x, v, axis, func(a, b float64) float64 { return a - b })
}

// DivAlong divides x by a reduced buffer along axis, lane by lane.
func (cpu *CPUBackend) DivAlong(x, v *dense.Buffer, axis int) *dense.Buffer {
	return cpu.alongOp("divalong", x, v, axis, func(a, b float64) float64 { return a / b })
}

func (cpu *CPUBackend) alongOp(op string, x, v *dense.Buffer, axis int, f func(a, b float64) float64) *dense.Buffer {
	checkFloat64(op, x)
	checkFloat64(op, v)
	axis = x.Shape().Normalize(axis)
	if want := x.Shape().Drop(axis); !v.Shape().Equal(want) {
		panic(fmt.Sprintf("%s: reduced shape %v does not match %v", op, v.Shape(), want))
	}

	result := mustNew(op, x.Shape(), dense.Float64)
	dst, src, red := result.AsFloat64(), x.AsFloat64(), v.AsFloat64()
	outer, n, inner := laneLayout(x.Shape(), axis)
	eachLane(outer, n, inner, func(lane, start, step int) {
		for j := 0; j < n; j++ {
			dst[start+j*step] = f(src[start+j*step], red[lane])
		}
	})
	return result
}
