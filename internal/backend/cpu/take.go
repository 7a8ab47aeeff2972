package cpu

import (
	"fmt"

	"github.com/larr-ml/larr/internal/dense"
	"github.com/larr-ml/larr/internal/parallel"
)

// Take gathers positions along axis: out[..., j, ...] = x[..., idx[j], ...].
// An index of -1 writes the missing sentinel into the whole slot, which
// requires a floating dtype. Take is the kernel behind label alignment and
// reindexing, so it moves whole inner spans at a time.
func (cpu *CPUBackend) Take(x *dense.Buffer, axis int, idx []int) *dense.Buffer {
	axis = x.Shape().Normalize(axis)
	if len(idx) == 0 {
		panic("take: empty index list")
	}

	outer, n, inner := laneLayout(x.Shape(), axis)
	needFill := false
	for _, j := range idx {
		switch {
		case j == -1:
			needFill = true
		case j < 0 || j >= n:
			panic(fmt.Sprintf("take: index %d out of range for axis %d (extent %d)", j, axis, n))
		}
	}
	if needFill && !x.DType().IsFloat() {
		panic(fmt.Sprintf("take: missing fill requires floating dtype, got %s", x.DType()))
	}

	outShape := x.Shape().Clone()
	outShape[axis] = len(idx)
	result := mustNew("take", outShape, x.DType())

	size := x.DType().Size()
	span := inner * size
	src, dst := x.Data(), result.Data()
	var fill []byte
	if needFill {
		fill = missingSpan(x.DType(), inner)
	}

	m := len(idx)
	parallel.ForRange(outer*m, func(start, end int) {
		for k := start; k < end; k++ {
			o, j := k/m, k%m
			doff := k * span
			if idx[j] == -1 {
				copy(dst[doff:doff+span], fill)
				continue
			}
			soff := (o*n + idx[j]) * span
			copy(dst[doff:doff+span], src[soff:soff+span])
		}
	}, cpu.par)

	return result
}

// missingSpan builds one inner span of missing sentinels for a floating
// dtype, as bytes in native order.
func missingSpan(dtype dense.DataType, inner int) []byte {
	tmp, err := dense.New(dense.Shape{inner}, dtype)
	if err != nil {
		panic(fmt.Sprintf("take: %v", err))
	}
	switch dtype {
	case dense.Float64:
		for i := range tmp.AsFloat64() {
			tmp.AsFloat64()[i] = dense.NaN
		}
	case dense.Float32:
		for i := range tmp.AsFloat32() {
			tmp.AsFloat32()[i] = dense.NaN32
		}
	default:
		panic(fmt.Sprintf("take: no missing sentinel for dtype %s", dtype))
	}
	return tmp.Data()
}
