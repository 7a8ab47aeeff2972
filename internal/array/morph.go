package array

import (
	"fmt"

	"github.com/larr-ml/larr/internal/dense"
)

// Morph reindexes one axis to exactly the given labels, in the given
// order. Labels already present carry their data across; labels absent
// from the array fill with NaN. Because missing cells may be created,
// integer and bool arrays widen to Float64 (Float32 keeps its width).
func (a *Array) Morph(labels []Label, axis int) (*Array, error) {
	ax := a.buf.Shape().Normalize(axis)
	if err := validateAxisLabels(ax, labels, len(labels)); err != nil {
		return nil, err
	}
	idx := indexByKey(a.labels[ax])
	positions := make([]int, len(labels))
	for i, v := range labels {
		if p, ok := idx[keyOf(v)]; ok {
			positions[i] = p
		} else {
			positions[i] = -1
		}
	}
	buf := castTo(a.bk, a.buf, dense.PromoteForMissing(a.buf.DType()))
	out := copyLabels(a.labels)
	out[ax] = copyLabelList(labels)
	return newArray(a.bk.Take(buf, ax, positions), out, a.bk), nil
}

// MorphLike morphs every axis to line up with other's labels. The result
// has other's frame exactly, so morphing twice onto the same target is a
// no-op after the first.
func (a *Array) MorphLike(other *Array) (*Array, error) {
	if a.NDim() != other.NDim() {
		return nil, &ShapeIncompatibleError{Op: "morphlike", Want: other.NDim(), Got: a.NDim()}
	}
	out := a
	for ax := range other.labels {
		var err error
		out, err = out.Morph(other.labels[ax], ax)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Merge combines two arrays onto the per-axis sorted union of their
// labels. Cells present in exactly one operand take that operand's
// value; cells present in neither stay missing. A cell finite in both
// operands is an overlap: Merge fails with MergeOverlapError unless
// update is true, in which case other's value wins.
func (a *Array) Merge(other *Array, update bool) (*Array, error) {
	if a.NDim() != other.NDim() {
		return nil, &ShapeIncompatibleError{Op: "merge", Want: a.NDim(), Got: other.NDim()}
	}
	lar1, lar2 := a, other
	for ax := range a.labels {
		if labelsEqual(lar1.labels[ax], lar2.labels[ax]) {
			continue
		}
		union := unionLabels(lar1.labels[ax], lar2.labels[ax])
		sortLabels(union)
		var err error
		if lar1, err = lar1.Morph(union, ax); err != nil {
			return nil, err
		}
		if lar2, err = lar2.Morph(union, ax); err != nil {
			return nil, err
		}
	}
	dt := dense.Promote(lar1.DType(), lar2.DType())
	b1 := castTo(a.bk, lar1.buf, dt)
	b2 := castTo(a.bk, lar2.buf, dt)
	fin2 := a.bk.IsFinite(b2)
	if !update {
		if a.bk.AnyAll(a.bk.And(a.bk.IsFinite(b1), fin2)) {
			return nil, &MergeOverlapError{}
		}
	}
	return newArray(a.bk.Where(fin2, b2, b1), copyLabels(lar1.labels), a.bk), nil
}

func unionLabels(a, b []Label) []Label {
	seen := make(map[labelKey]struct{}, len(a)+len(b))
	out := make([]Label, 0, len(a)+len(b))
	for _, ls := range [2][]Label{a, b} {
		for _, v := range ls {
			k := keyOf(v)
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}

// Take sub-selects positions along an axis. Positions may repeat only if
// the repeated labels stay unique, which they cannot, so repeats fail
// with DuplicateLabelError. Out-of-range positions panic.
func (a *Array) Take(axis int, positions []int) (*Array, error) {
	ax := a.buf.Shape().Normalize(axis)
	if len(positions) == 0 {
		return nil, fmt.Errorf("take: no positions along axis %d", ax)
	}
	extent := a.buf.Shape()[ax]
	ls := make([]Label, len(positions))
	for i, p := range positions {
		if p < 0 || p >= extent {
			panic(fmt.Sprintf("take: position %d out of range for extent %d", p, extent))
		}
		ls[i] = a.labels[ax][p]
	}
	out := copyLabels(a.labels)
	out[ax] = ls
	return New(a.bk.Take(a.buf, ax, positions), out, a.bk)
}

// TakeLabels sub-selects by label name along an axis. Unlike Morph, a
// name absent from the axis is an error, never a fill.
func (a *Array) TakeLabels(axis int, names []Label) (*Array, error) {
	ax := a.buf.Shape().Normalize(axis)
	if len(names) == 0 {
		return nil, fmt.Errorf("takelabels: no names along axis %d", ax)
	}
	idx := indexByKey(a.labels[ax])
	positions := make([]int, len(names))
	for i, v := range names {
		p, ok := idx[keyOf(v)]
		if !ok {
			return nil, &LabelNotFoundError{Axis: ax, Label: v}
		}
		positions[i] = p
	}
	out := copyLabels(a.labels)
	out[ax] = copyLabelList(names)
	return New(a.bk.Take(a.buf, ax, positions), out, a.bk)
}

// KeepLabel filters an axis down to the labels satisfying keep. An empty
// selection is an error because a zero-extent axis is not representable.
func (a *Array) KeepLabel(axis int, keep func(Label) bool) (*Array, error) {
	ax := a.buf.Shape().Normalize(axis)
	var positions []int
	for i, v := range a.labels[ax] {
		if keep(v) {
			positions = append(positions, i)
		}
	}
	if len(positions) == 0 {
		return nil, fmt.Errorf("keeplabel: no labels kept along axis %d", ax)
	}
	return a.Take(ax, positions)
}

// KeepX blanks out every cell whose value fails keep, leaving NaN in its
// place. With vacuum, rows and columns that end up entirely missing are
// dropped as well, which requires a 2d array.
func (a *Array) KeepX(keep func(float64) bool, vacuum bool) (*Array, error) {
	if vacuum && a.NDim() != 2 {
		return nil, &ShapeIncompatibleError{Op: "keepx", Want: 2, Got: a.NDim()}
	}
	buf := castTo(a.bk, a.buf, dense.PromoteForMissing(a.buf.DType()))
	if buf == a.buf {
		buf = buf.Clone()
	}
	n := buf.NumElements()
	for i := 0; i < n; i++ {
		if !keep(buf.FloatAt(i)) {
			buf.SetFloatAt(i, dense.NaN)
		}
	}
	out := newArray(buf, copyLabels(a.labels), a.bk)
	if vacuum {
		return out.Vacuum()
	}
	return out, nil
}

// Lag shifts the data n slots along an axis: the value labeled t moves
// to the label that was n slots after t, and the first n labels drop.
func (a *Array) Lag(n int, axis int) (*Array, error) {
	ax := a.buf.Shape().Normalize(axis)
	if n < 0 {
		return nil, fmt.Errorf("lag: negative lag %d", n)
	}
	if n == 0 {
		return a.Copy(), nil
	}
	extent := a.buf.Shape()[ax]
	if n >= extent {
		return nil, fmt.Errorf("lag: lag %d leaves no labels along axis %d with extent %d", n, ax, extent)
	}
	positions := make([]int, extent-n)
	for i := range positions {
		positions[i] = i
	}
	out := copyLabels(a.labels)
	out[ax] = copyLabelList(a.labels[ax][n:])
	return newArray(a.bk.Take(a.buf, ax, positions), out, a.bk), nil
}

// Squeeze drops every axis of extent 1 together with its label. At least
// one axis always remains; squeezing a one-cell array keeps the first
// axis. The result shares the underlying buffer.
func (a *Array) Squeeze() *Array {
	shape := a.buf.Shape()
	kept := make([]int, 0, len(shape))
	for ax, extent := range shape {
		if extent != 1 {
			kept = append(kept, ax)
		}
	}
	if len(kept) == 0 {
		kept = []int{0}
	}
	if len(kept) == len(shape) {
		return newArray(a.buf, copyLabels(a.labels), a.bk)
	}
	outShape := make(dense.Shape, len(kept))
	outLabels := make([][]Label, len(kept))
	for i, ax := range kept {
		outShape[i] = shape[ax]
		outLabels[i] = copyLabelList(a.labels[ax])
	}
	return newArray(a.buf.Reshape(outShape), outLabels, a.bk)
}

// T returns the array with its axes reversed. For 2d this is the matrix
// transpose; for 1d it is a copy.
func (a *Array) T() *Array {
	axes := make([]int, a.NDim())
	for i := range axes {
		axes[i] = len(axes) - 1 - i
	}
	return a.Transpose(axes...)
}

// Transpose permutes the axes and their labels. The axes argument must
// be a permutation of 0..NDim()-1; a bad permutation panics.
func (a *Array) Transpose(axes ...int) *Array {
	out := make([][]Label, len(axes))
	for i, ax := range axes {
		out[i] = copyLabelList(a.labels[a.buf.Shape().Normalize(ax)])
	}
	return newArray(a.bk.Transpose(a.buf, axes), out, a.bk)
}
