package array

import (
	"math"

	"github.com/larr-ml/larr/internal/dense"
)

// alignment holds two operands regathered onto their shared label frame.
type alignment struct {
	labels [][]Label
	left   *dense.Buffer
	right  *dense.Buffer
}

// alignWith intersects the operands' labels axis by axis. Axes whose
// label lists are already identical keep their order; differing axes are
// cut down to the shared labels in sorted order. An axis with no shared
// labels fails with NoOverlapError.
func (a *Array) alignWith(op string, other *Array) (*alignment, error) {
	if a.NDim() != other.NDim() {
		return nil, &ShapeIncompatibleError{Op: op, Want: a.NDim(), Got: other.NDim()}
	}
	out := &alignment{
		labels: make([][]Label, a.NDim()),
		left:   a.buf,
		right:  other.buf,
	}
	for ax := range a.labels {
		if labelsEqual(a.labels[ax], other.labels[ax]) {
			out.labels[ax] = copyLabelList(a.labels[ax])
			continue
		}
		shared := intersectLabels(a.labels[ax], other.labels[ax])
		if len(shared) == 0 {
			return nil, &NoOverlapError{Axis: ax}
		}
		sortLabels(shared)
		out.labels[ax] = shared
		out.left = a.bk.Take(out.left, ax, positionsOf(a.labels[ax], shared))
		out.right = a.bk.Take(out.right, ax, positionsOf(other.labels[ax], shared))
	}
	return out, nil
}

func intersectLabels(a, b []Label) []Label {
	bIdx := indexByKey(b)
	var shared []Label
	for _, v := range a {
		if _, ok := bIdx[keyOf(v)]; ok {
			shared = append(shared, v)
		}
	}
	return shared
}

// positionsOf maps each wanted label to its position in ls. Every wanted
// label must be present.
func positionsOf(ls []Label, want []Label) []int {
	idx := indexByKey(ls)
	pos := make([]int, len(want))
	for i, v := range want {
		pos[i] = idx[keyOf(v)]
	}
	return pos
}

func castTo(bk dense.Backend, x *dense.Buffer, dt dense.DataType) *dense.Buffer {
	if x.DType() == dt {
		return x
	}
	return bk.Cast(x, dt)
}

// Add returns the label-aligned elementwise sum.
func (a *Array) Add(other *Array) (*Array, error) {
	return a.arith("add", other, false, a.bk.Add)
}

// Sub returns the label-aligned elementwise difference.
func (a *Array) Sub(other *Array) (*Array, error) {
	return a.arith("sub", other, false, a.bk.Sub)
}

// Mul returns the label-aligned elementwise product.
func (a *Array) Mul(other *Array) (*Array, error) {
	return a.arith("mul", other, false, a.bk.Mul)
}

// Div returns the label-aligned elementwise quotient. The result is
// always floating; integer operands widen to Float64 first.
func (a *Array) Div(other *Array) (*Array, error) {
	return a.arith("div", other, true, a.bk.Div)
}

func (a *Array) arith(op string, other *Array, wantFloat bool, kernel func(x, y *dense.Buffer) *dense.Buffer) (*Array, error) {
	al, err := a.alignWith(op, other)
	if err != nil {
		return nil, err
	}
	dt := dense.Promote(al.left.DType(), al.right.DType())
	if wantFloat && !dt.IsFloat() {
		dt = dense.Float64
	}
	left := castTo(a.bk, al.left, dt)
	right := castTo(a.bk, al.right, dt)
	return newArray(kernel(left, right), al.labels, a.bk), nil
}

// And returns the label-aligned logical conjunction. Operands are first
// reduced to truth values: non-zero cells and NaN are true.
func (a *Array) And(other *Array) (*Array, error) {
	return a.logical("and", other, a.bk.And)
}

// Or returns the label-aligned logical disjunction, with the same
// truthiness rule as And.
func (a *Array) Or(other *Array) (*Array, error) {
	return a.logical("or", other, a.bk.Or)
}

func (a *Array) logical(op string, other *Array, kernel func(x, y *dense.Buffer) *dense.Buffer) (*Array, error) {
	al, err := a.alignWith(op, other)
	if err != nil {
		return nil, err
	}
	left := a.bk.Truthy(al.left)
	right := a.bk.Truthy(al.right)
	return newArray(kernel(left, right), al.labels, a.bk), nil
}

// Equal returns the label-aligned elementwise equality mask. Cells
// involving NaN compare false.
func (a *Array) Equal(other *Array) (*Array, error) {
	return a.comparison("equal", other, a.bk.Equal)
}

// NotEqual returns the label-aligned elementwise inequality mask. Cells
// involving NaN compare true.
func (a *Array) NotEqual(other *Array) (*Array, error) {
	return a.comparison("notequal", other, a.bk.NotEqual)
}

// Greater returns the label-aligned elementwise > mask.
func (a *Array) Greater(other *Array) (*Array, error) {
	return a.comparison("greater", other, a.bk.Greater)
}

// GreaterEqual returns the label-aligned elementwise >= mask.
func (a *Array) GreaterEqual(other *Array) (*Array, error) {
	return a.comparison("greaterequal", other, a.bk.GreaterEqual)
}

// Lower returns the label-aligned elementwise < mask.
func (a *Array) Lower(other *Array) (*Array, error) {
	return a.comparison("lower", other, a.bk.Lower)
}

// LowerEqual returns the label-aligned elementwise <= mask.
func (a *Array) LowerEqual(other *Array) (*Array, error) {
	return a.comparison("lowerequal", other, a.bk.LowerEqual)
}

func (a *Array) comparison(op string, other *Array, kernel func(x, y *dense.Buffer) *dense.Buffer) (*Array, error) {
	al, err := a.alignWith(op, other)
	if err != nil {
		return nil, err
	}
	dt := dense.Promote(al.left.DType(), al.right.DType())
	left := castTo(a.bk, al.left, dt)
	right := castTo(a.bk, al.right, dt)
	return newArray(kernel(left, right), al.labels, a.bk), nil
}

// Scalar forms. No alignment happens and labels carry over unchanged.
// Integer arrays keep their dtype when the scalar is integral and widen
// to Float64 when it is not; bool arrays widen to Int64 first.

// AddScalar adds s to every cell.
func (a *Array) AddScalar(s float64) *Array {
	return newArray(a.bk.AddScalar(a.widenForScalar(s), s), copyLabels(a.labels), a.bk)
}

// SubScalar subtracts s from every cell.
func (a *Array) SubScalar(s float64) *Array {
	return newArray(a.bk.SubScalar(a.widenForScalar(s), s), copyLabels(a.labels), a.bk)
}

// MulScalar multiplies every cell by s.
func (a *Array) MulScalar(s float64) *Array {
	return newArray(a.bk.MulScalar(a.widenForScalar(s), s), copyLabels(a.labels), a.bk)
}

// DivScalar divides every cell by s. The result is always floating.
func (a *Array) DivScalar(s float64) *Array {
	x := a.buf
	if !x.DType().IsFloat() {
		x = a.bk.Cast(x, dense.Float64)
	}
	return newArray(a.bk.DivScalar(x, s), copyLabels(a.labels), a.bk)
}

func (a *Array) widenForScalar(s float64) *dense.Buffer {
	x := a.buf
	if x.DType() == dense.Bool {
		x = a.bk.Cast(x, dense.Int64)
	}
	if !x.DType().IsFloat() && !isIntegral(s) {
		x = a.bk.Cast(x, dense.Float64)
	}
	return x
}

func isIntegral(s float64) bool {
	return s == math.Trunc(s) && !math.IsInf(s, 0)
}

// EqualScalar returns the mask of cells equal to s.
func (a *Array) EqualScalar(s float64) *Array {
	return a.scalarCompare(a.bk.Equal, s)
}

// NotEqualScalar returns the mask of cells not equal to s. Missing cells
// are not equal to anything, so they mask true.
func (a *Array) NotEqualScalar(s float64) *Array {
	return a.scalarCompare(a.bk.NotEqual, s)
}

// GreaterScalar returns the mask of cells greater than s.
func (a *Array) GreaterScalar(s float64) *Array {
	return a.scalarCompare(a.bk.Greater, s)
}

// GreaterEqualScalar returns the mask of cells greater than or equal to s.
func (a *Array) GreaterEqualScalar(s float64) *Array {
	return a.scalarCompare(a.bk.GreaterEqual, s)
}

// LowerScalar returns the mask of cells lower than s.
func (a *Array) LowerScalar(s float64) *Array {
	return a.scalarCompare(a.bk.Lower, s)
}

// LowerEqualScalar returns the mask of cells lower than or equal to s.
func (a *Array) LowerEqualScalar(s float64) *Array {
	return a.scalarCompare(a.bk.LowerEqual, s)
}

func (a *Array) scalarCompare(kernel func(x, y *dense.Buffer) *dense.Buffer, s float64) *Array {
	x := castTo(a.bk, a.buf, dense.Float64)
	y := a.bk.Full(x.Shape(), dense.Float64, s)
	return newArray(kernel(x, y), copyLabels(a.labels), a.bk)
}
