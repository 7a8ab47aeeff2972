package array

import "fmt"

// ShapeMismatchError reports a label list whose length does not match the
// data extent along its axis.
type ShapeMismatchError struct {
	Axis   int
	Labels int
	Extent int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("length mismatch in labels and data along axis %d: %d labels for extent %d",
		e.Axis, e.Labels, e.Extent)
}

// DuplicateLabelError reports a label that occurs more than once on an
// axis.
type DuplicateLabelError struct {
	Axis  int
	Label Label
	Count int
}

func (e *DuplicateLabelError) Error() string {
	return fmt.Sprintf("labels not unique along axis %d: %d labels named %v",
		e.Axis, e.Count, e.Label)
}

// LabelNotFoundError reports a label absent from an axis.
type LabelNotFoundError struct {
	Axis  int
	Label Label
}

func (e *LabelNotFoundError) Error() string {
	return fmt.Sprintf("label %v not found along axis %d", e.Label, e.Axis)
}

// NoOverlapError reports a binary operation whose operands share no
// labels on an axis.
type NoOverlapError struct {
	Axis int
}

func (e *NoOverlapError) Error() string {
	return fmt.Sprintf("no overlapping labels on axis %d", e.Axis)
}

// ShapeIncompatibleError reports an operation applied to arrays whose
// dimensionality does not fit, such as a binary op across different
// ndims or a matrix-only statistic on a vector.
type ShapeIncompatibleError struct {
	Op   string
	Want int
	Got  int
}

func (e *ShapeIncompatibleError) Error() string {
	return fmt.Sprintf("%s: needs %dd input, got %dd", e.Op, e.Want, e.Got)
}

// UnsupportedLabelError reports a label of a kind the library cannot
// order: anything but int, int64, float64, string, or time.Time.
type UnsupportedLabelError struct {
	Axis  int
	Label Label
}

func (e *UnsupportedLabelError) Error() string {
	return fmt.Sprintf("unsupported label %v (%T) along axis %d", e.Label, e.Label, e.Axis)
}

// MergeOverlapError reports a merge that found finite values on both
// sides of a shared coordinate without update set.
type MergeOverlapError struct{}

func (e *MergeOverlapError) Error() string {
	return "merge: overlapping values"
}
