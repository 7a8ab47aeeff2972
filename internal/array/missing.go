package array

import (
	"fmt"
	"math"

	"github.com/larr-ml/larr/internal/dense"
)

// Push forward-fills missing cells along an axis from the most recent
// finite cell, as long as that cell is at most window slots back. A
// window of 0 fills nothing. Arrays that cannot hold missing cells come
// back as plain copies.
func (a *Array) Push(window, axis int) (*Array, error) {
	ax := a.buf.Shape().Normalize(axis)
	if window < 0 {
		return nil, fmt.Errorf("push: negative window %d", window)
	}
	switch a.buf.DType() {
	case dense.Float64:
		return newArray(a.bk.Push(a.buf, window, ax), copyLabels(a.labels), a.bk), nil
	case dense.Float32:
		filled := a.bk.Push(a.bk.Cast(a.buf, dense.Float64), window, ax)
		return newArray(a.bk.Cast(filled, dense.Float32), copyLabels(a.labels), a.bk), nil
	default:
		return a.Copy(), nil
	}
}

// Vacuum removes hyperslices that contain no finite cells along the
// given axes, all axes when none are given. Keep decisions are made
// against the original array for every axis, then applied together.
func (a *Array) Vacuum(axes ...int) (*Array, error) {
	return a.prune("vacuum", axes, func(finite, slots int) bool {
		return finite > 0
	})
}

// CutMissing removes hyperslices whose share of missing cells reaches
// fraction along the given axes, all axes when none are given. With
// fraction 1 it degenerates to Vacuum.
func (a *Array) CutMissing(fraction float64, axes ...int) (*Array, error) {
	if fraction <= 0 || fraction > 1 {
		return nil, fmt.Errorf("cutmissing: fraction %v outside (0, 1]", fraction)
	}
	return a.prune("cutmissing", axes, func(finite, slots int) bool {
		return float64(finite) > (1-fraction)*float64(slots)
	})
}

func (a *Array) prune(op string, axes []int, keep func(finite, slots int) bool) (*Array, error) {
	shape := a.buf.Shape()
	chosen := make(map[int]bool, len(axes))
	if len(axes) == 0 {
		for ax := range shape {
			chosen[ax] = true
		}
	} else {
		for _, axis := range axes {
			chosen[shape.Normalize(axis)] = true
		}
	}

	total := a.buf.NumElements()
	kept := make([][]int, len(shape))
	for ax := range shape {
		if !chosen[ax] {
			continue
		}
		counts := a.finiteCountAlong(ax)
		slots := total / shape[ax]
		var positions []int
		for p, finite := range counts {
			if keep(finite, slots) {
				positions = append(positions, p)
			}
		}
		if len(positions) == 0 {
			return nil, fmt.Errorf("%s: no slices left along axis %d", op, ax)
		}
		kept[ax] = positions
	}

	out := a
	for ax, positions := range kept {
		if positions == nil || len(positions) == shape[ax] {
			continue
		}
		var err error
		if out, err = out.Take(ax, positions); err != nil {
			return nil, err
		}
	}
	if out == a {
		return a.Copy(), nil
	}
	return out, nil
}

// finiteCountAlong counts the finite cells in each hyperslice along ax.
func (a *Array) finiteCountAlong(ax int) []int {
	shape := a.buf.Shape()
	strides := shape.ComputeStrides()
	counts := make([]int, shape[ax])
	n := a.buf.NumElements()
	for i := 0; i < n; i++ {
		v := a.buf.FloatAt(i)
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			counts[(i/strides[ax])%shape[ax]]++
		}
	}
	return counts
}

// NaNReplace returns a copy with every missing cell set to v.
func (a *Array) NaNReplace(v float64) *Array {
	buf := a.buf.Clone()
	if buf.DType().IsFloat() {
		a.bk.FillMissing(buf, v)
	}
	return newArray(buf, copyLabels(a.labels), a.bk)
}

// Fill overwrites every cell with v in place, keeping dtype and labels.
// Filling an integer array with a fractional value truncates.
func (a *Array) Fill(v float64) {
	n := a.buf.NumElements()
	for i := 0; i < n; i++ {
		a.buf.SetFloatAt(i, v)
	}
}
