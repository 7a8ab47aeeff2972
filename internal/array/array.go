// Package array implements the labeled n-dimensional array: a dense
// numeric buffer paired with one ordered list of unique labels per axis.
// Labels drive everything: binary operations align operands on their
// shared labels, morph reindexes an axis onto an arbitrary label list,
// and merge folds two arrays into their label union. NaN marks missing
// cells; operations that can introduce missing cells promote integer and
// bool data to a floating dtype first.
//
// Arrays are value-like. Operations return fresh arrays and never mutate
// their operands, except the documented in-place ones (Fill, Set, SetAt,
// Shuffle, ShuffleLabels).
package array

import (
	"fmt"

	"github.com/larr-ml/larr/internal/dense"
)

// Array is a labeled n-dimensional array.
type Array struct {
	buf    *dense.Buffer
	labels [][]Label
	bk     dense.Backend
}

// New wraps a dense buffer with per-axis labels. labels may be nil, and
// any nil axis entry defaults to integer labels 0..extent-1. Each axis's
// labels must match the extent, be of supported kinds, and be unique.
func New(buf *dense.Buffer, labels [][]Label, bk dense.Backend) (*Array, error) {
	if buf == nil {
		panic("array: nil buffer")
	}
	if bk == nil {
		panic("array: nil backend")
	}
	shape := buf.Shape()
	if labels != nil && len(labels) != len(shape) {
		return nil, &ShapeIncompatibleError{Op: "new", Want: len(shape), Got: len(labels)}
	}
	own := make([][]Label, len(shape))
	for ax, extent := range shape {
		if labels == nil || labels[ax] == nil {
			own[ax] = defaultLabels(extent)
			continue
		}
		if err := validateAxisLabels(ax, labels[ax], extent); err != nil {
			return nil, err
		}
		own[ax] = copyLabelList(labels[ax])
	}
	return &Array{buf: buf, labels: own, bk: bk}, nil
}

// newArray builds an array from parts already known to be consistent.
func newArray(buf *dense.Buffer, labels [][]Label, bk dense.Backend) *Array {
	return &Array{buf: buf, labels: labels, bk: bk}
}

// FromVector builds a 1d Float64 array. labels may be nil.
func FromVector(data []float64, labels []Label, bk dense.Backend) (*Array, error) {
	buf, err := dense.FromFloat64s(data, dense.Shape{len(data)})
	if err != nil {
		return nil, err
	}
	var ll [][]Label
	if labels != nil {
		ll = [][]Label{labels}
	}
	return New(buf, ll, bk)
}

// FromMatrix builds a 2d Float64 array from rows of equal length. rows
// and cols label the two axes; either may be nil.
func FromMatrix(data [][]float64, rows, cols []Label, bk dense.Backend) (*Array, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("from matrix: no rows")
	}
	width := len(data[0])
	flat := make([]float64, 0, len(data)*width)
	for i, row := range data {
		if len(row) != width {
			return nil, fmt.Errorf("from matrix: row %d has %d cells, want %d", i, len(row), width)
		}
		flat = append(flat, row...)
	}
	buf, err := dense.FromFloat64s(flat, dense.Shape{len(data), width})
	if err != nil {
		return nil, err
	}
	var ll [][]Label
	if rows != nil || cols != nil {
		ll = [][]Label{rows, cols}
	}
	return New(buf, ll, bk)
}

// FromSlice builds an array of any supported element type from a flat
// row-major slice.
func FromSlice[T dense.DType](data []T, shape dense.Shape, labels [][]Label, bk dense.Backend) (*Array, error) {
	buf, err := dense.FromSlice(data, shape)
	if err != nil {
		return nil, err
	}
	return New(buf, labels, bk)
}

// Shape returns a copy of the array's shape.
func (a *Array) Shape() dense.Shape {
	return a.buf.Shape().Clone()
}

// NumElements returns the total cell count.
func (a *Array) NumElements() int {
	return a.buf.NumElements()
}

// NDim returns the number of axes.
func (a *Array) NDim() int {
	return a.buf.NDim()
}

// DType returns the element type of the underlying buffer.
func (a *Array) DType() dense.DataType {
	return a.buf.DType()
}

// NumFinite returns the count of finite cells: not NaN and not infinite.
// Integer and bool arrays are all finite.
func (a *Array) NumFinite() int {
	return a.bk.CountFinite(a.buf)
}

// Labels returns a copy of the labels along axis. Negative axes count
// from the end.
func (a *Array) Labels(axis int) []Label {
	return copyLabelList(a.labels[a.buf.Shape().Normalize(axis)])
}

// Raw returns the underlying buffer without copying. Mutating it mutates
// the array.
func (a *Array) Raw() *dense.Buffer {
	return a.buf
}

// Float64s returns the cells widened to float64 in row-major order. The
// slice is freshly allocated.
func (a *Array) Float64s() []float64 {
	if a.buf.DType() == dense.Float64 {
		return append([]float64(nil), a.buf.AsFloat64()...)
	}
	return a.bk.Cast(a.buf, dense.Float64).AsFloat64()
}

// Copy returns a deep copy.
func (a *Array) Copy() *Array {
	return newArray(a.buf.Clone(), copyLabels(a.labels), a.bk)
}

// Backend returns the compute backend the array was built with.
func (a *Array) Backend() dense.Backend {
	return a.bk
}
