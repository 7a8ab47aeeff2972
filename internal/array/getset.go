package array

import "math/rand"

// LabelIndex returns the position of label v along axis, or
// LabelNotFoundError when the axis has no such label.
func (a *Array) LabelIndex(axis int, v Label) (int, error) {
	ax := a.buf.Shape().Normalize(axis)
	if p, ok := indexByKey(a.labels[ax])[keyOf(v)]; ok {
		return p, nil
	}
	return 0, &LabelNotFoundError{Axis: ax, Label: v}
}

// LabelIndexFloor returns the position of the largest label that is less
// than or equal to v in label order. It fails with LabelNotFoundError
// when every label on the axis exceeds v.
func (a *Array) LabelIndexFloor(axis int, v Label) (int, error) {
	ax := a.buf.Shape().Normalize(axis)
	best := -1
	for i, l := range a.labels[ax] {
		if compareLabels(l, v) > 0 {
			continue
		}
		if best < 0 || compareLabels(l, a.labels[ax][best]) > 0 {
			best = i
		}
	}
	if best < 0 {
		return 0, &LabelNotFoundError{Axis: ax, Label: v}
	}
	return best, nil
}

// At returns the cell at the given positional index, widened to float64.
// One index per axis; out-of-range indexes panic.
func (a *Array) At(idx ...int) float64 {
	return a.buf.FloatAt(a.buf.FlatIndex(idx...))
}

// SetAt stores v at the given positional index, narrowing to the array's
// element type.
func (a *Array) SetAt(v float64, idx ...int) {
	a.buf.SetFloatAt(a.buf.FlatIndex(idx...), v)
}

// Get returns the cell addressed by one label per axis.
func (a *Array) Get(labels ...Label) (float64, error) {
	idx, err := a.labelCoords("get", labels)
	if err != nil {
		return 0, err
	}
	return a.buf.FloatAt(a.buf.FlatIndex(idx...)), nil
}

// Set stores v at the cell addressed by one label per axis.
func (a *Array) Set(v float64, labels ...Label) error {
	idx, err := a.labelCoords("set", labels)
	if err != nil {
		return err
	}
	a.buf.SetFloatAt(a.buf.FlatIndex(idx...), v)
	return nil
}

func (a *Array) labelCoords(op string, labels []Label) ([]int, error) {
	if len(labels) != a.NDim() {
		return nil, &ShapeIncompatibleError{Op: op, Want: a.NDim(), Got: len(labels)}
	}
	idx := make([]int, len(labels))
	for ax, v := range labels {
		p, err := a.LabelIndex(ax, v)
		if err != nil {
			return nil, err
		}
		idx[ax] = p
	}
	return idx, nil
}

// Pull extracts the hyperslice at the given label and drops the axis: on
// a 2d array, pulling a row label returns the row as a 1d array. A 1d
// array has no axis to drop, so Pull fails there; use Get instead.
func (a *Array) Pull(axis int, name Label) (*Array, error) {
	if a.NDim() < 2 {
		return nil, &ShapeIncompatibleError{Op: "pull", Want: 2, Got: a.NDim()}
	}
	ax := a.buf.Shape().Normalize(axis)
	p, err := a.LabelIndex(ax, name)
	if err != nil {
		return nil, err
	}
	slab := a.bk.Take(a.buf, ax, []int{p})
	out := make([][]Label, 0, a.NDim()-1)
	for i, ls := range a.labels {
		if i != ax {
			out = append(out, copyLabelList(ls))
		}
	}
	return newArray(slab.Reshape(slab.Shape().Drop(ax)), out, a.bk), nil
}

// MapLabels rewrites every label on an axis through fn. The rewritten
// labels are validated like constructor input, so fn must keep them
// unique and of a supported kind. The result shares the underlying
// buffer.
func (a *Array) MapLabels(axis int, fn func(Label) Label) (*Array, error) {
	ax := a.buf.Shape().Normalize(axis)
	mapped := make([]Label, len(a.labels[ax]))
	for i, v := range a.labels[ax] {
		mapped[i] = fn(v)
	}
	if err := validateAxisLabels(ax, mapped, len(mapped)); err != nil {
		return nil, err
	}
	out := copyLabels(a.labels)
	out[ax] = mapped
	return newArray(a.buf, out, a.bk), nil
}

// MaxLabel returns the largest label along axis in label order.
func (a *Array) MaxLabel(axis int) Label {
	ax := a.buf.Shape().Normalize(axis)
	best := a.labels[ax][0]
	for _, v := range a.labels[ax][1:] {
		if compareLabels(v, best) > 0 {
			best = v
		}
	}
	return best
}

// MinLabel returns the smallest label along axis in label order.
func (a *Array) MinLabel(axis int) Label {
	ax := a.buf.Shape().Normalize(axis)
	best := a.labels[ax][0]
	for _, v := range a.labels[ax][1:] {
		if compareLabels(v, best) < 0 {
			best = v
		}
	}
	return best
}

// Shuffle permutes the data along an axis in place. The labels keep
// their order; only the values move.
func (a *Array) Shuffle(axis int) {
	ax := a.buf.Shape().Normalize(axis)
	extent := a.buf.Shape()[ax]
	perm := rand.Perm(extent) //nolint:gosec // G404: statistical shuffle, not security-sensitive
	shuffled := a.bk.Take(a.buf, ax, perm)
	copy(a.buf.Data(), shuffled.Data())
}

// ShuffleLabels permutes the labels along an axis in place. The data
// keeps its order; only the labels move.
func (a *Array) ShuffleLabels(axis int) {
	ax := a.buf.Shape().Normalize(axis)
	ls := a.labels[ax]
	rand.Shuffle(len(ls), func(i, j int) { //nolint:gosec // G404: statistical shuffle, not security-sensitive
		ls[i], ls[j] = ls[j], ls[i]
	})
}
