package array

import "github.com/larr-ml/larr/internal/dense"

// Reductions skip missing cells. The all-forms fold every cell into one
// scalar; the axis forms drop the reduced axis and keep its orthogonal
// labels. Since a labeled array always has at least one axis, the axis
// forms refuse to reduce a 1d array and panic with "cannot drop the only
// axis"; the all-forms cover that case.

// Sum returns the sum of all finite cells, 0 when there are none.
func (a *Array) Sum() float64 {
	return a.bk.SumAll(a.nonBool())
}

// Prod returns the product of all finite cells, 1 when there are none.
func (a *Array) Prod() float64 {
	return a.bk.ProdAll(a.nonBool())
}

// Mean returns the mean of all finite cells, NaN when there are none.
func (a *Array) Mean() float64 {
	return a.bk.MeanAll(a.nonBool())
}

// Median returns the median of all finite cells, NaN when there are none.
func (a *Array) Median() float64 {
	return a.bk.MedianAll(a.nonBool())
}

// Std returns the population standard deviation of all finite cells.
func (a *Array) Std() float64 {
	return a.bk.StdAll(a.nonBool())
}

// Var returns the population variance of all finite cells.
func (a *Array) Var() float64 {
	return a.bk.VarAll(a.nonBool())
}

// Min returns the smallest finite cell, NaN when there are none.
func (a *Array) Min() float64 {
	return a.bk.MinAll(a.nonBool())
}

// Max returns the largest finite cell, NaN when there are none.
func (a *Array) Max() float64 {
	return a.bk.MaxAll(a.nonBool())
}

// Any reports whether any cell is true under the truthiness rule:
// non-zero cells and NaN are true.
func (a *Array) Any() bool {
	return a.bk.AnyAll(a.bk.Truthy(a.buf))
}

// All reports whether every cell is true under the truthiness rule.
func (a *Array) All() bool {
	return a.bk.AllAll(a.bk.Truthy(a.buf))
}

// SumDim sums along axis. Integer input keeps its dtype.
func (a *Array) SumDim(axis int) *Array {
	return a.reduceDim(axis, a.bk.SumDim)
}

// ProdDim multiplies along axis. Integer input keeps its dtype.
func (a *Array) ProdDim(axis int) *Array {
	return a.reduceDim(axis, a.bk.ProdDim)
}

// MeanDim averages along axis with a Float64 result.
func (a *Array) MeanDim(axis int) *Array {
	return a.reduceDim(axis, a.bk.MeanDim)
}

// MedianDim takes the median along axis with a Float64 result.
func (a *Array) MedianDim(axis int) *Array {
	return a.reduceDim(axis, a.bk.MedianDim)
}

// StdDim takes the population standard deviation along axis.
func (a *Array) StdDim(axis int) *Array {
	return a.reduceDim(axis, a.bk.StdDim)
}

// VarDim takes the population variance along axis.
func (a *Array) VarDim(axis int) *Array {
	return a.reduceDim(axis, a.bk.VarDim)
}

// MinDim takes the smallest finite cell along axis. Integer input keeps
// its dtype.
func (a *Array) MinDim(axis int) *Array {
	return a.reduceDim(axis, a.bk.MinDim)
}

// MaxDim takes the largest finite cell along axis. Integer input keeps
// its dtype.
func (a *Array) MaxDim(axis int) *Array {
	return a.reduceDim(axis, a.bk.MaxDim)
}

// AnyDim folds truthiness along axis with a Bool result.
func (a *Array) AnyDim(axis int) *Array {
	ax := a.dropAxis(axis)
	return newArray(a.bk.AnyDim(a.bk.Truthy(a.buf), ax), dropLabels(a.labels, ax), a.bk)
}

// AllDim folds truthiness along axis with a Bool result.
func (a *Array) AllDim(axis int) *Array {
	ax := a.dropAxis(axis)
	return newArray(a.bk.AllDim(a.bk.Truthy(a.buf), ax), dropLabels(a.labels, ax), a.bk)
}

func (a *Array) reduceDim(axis int, kernel func(x *dense.Buffer, axis int) *dense.Buffer) *Array {
	ax := a.dropAxis(axis)
	return newArray(kernel(a.nonBool(), ax), dropLabels(a.labels, ax), a.bk)
}

func (a *Array) dropAxis(axis int) int {
	if a.NDim() < 2 {
		panic("cannot drop the only axis")
	}
	return a.buf.Shape().Normalize(axis)
}

func dropLabels(labels [][]Label, axis int) [][]Label {
	out := make([][]Label, 0, len(labels)-1)
	for i, ls := range labels {
		if i != axis {
			out = append(out, copyLabelList(ls))
		}
	}
	return out
}
