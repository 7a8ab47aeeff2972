package array

import (
	"math"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/larr-ml/larr/internal/backend/cpu"
	"github.com/larr-ml/larr/internal/dense"
)

var nan = math.NaN()

// mk builds a Float64 array or fails the test.
func mk(t *testing.T, data []float64, shape dense.Shape, labels [][]Label) *Array {
	t.Helper()
	a, err := FromSlice(data, shape, labels, cpu.New())
	require.NoError(t, err)
	return a
}

// vec builds a labeled 1d array.
func vec(t *testing.T, data []float64, labels ...Label) *Array {
	t.Helper()
	if len(labels) == 0 {
		return mk(t, data, dense.Shape{len(data)}, nil)
	}
	return mk(t, data, dense.Shape{len(data)}, [][]Label{labels})
}

// sameFloats compares with NaN equality, dumping both sides on mismatch.
func sameFloats(t *testing.T, want, got []float64) {
	t.Helper()
	require.Len(t, got, len(want), "length mismatch:\n%s", spew.Sdump(got))
	for i := range want {
		if math.IsNaN(want[i]) {
			assert.True(t, math.IsNaN(got[i]), "index %d: want NaN in\n%s", i, spew.Sdump(got))
			continue
		}
		assert.InDelta(t, want[i], got[i], 1e-12, "index %d in\n%s", i, spew.Sdump(got))
	}
}

// TestNew_DefaultLabels verifies nil label lists become 0..n-1 per axis.
func TestNew_DefaultLabels(t *testing.T) {
	a := mk(t, []float64{1, 2, 3, 4, 5, 6}, dense.Shape{2, 3}, nil)
	assert.Equal(t, []Label{0, 1}, a.Labels(0))
	assert.Equal(t, []Label{0, 1, 2}, a.Labels(1))
}

// TestNew_PartialDefault verifies a nil entry defaults just that axis.
func TestNew_PartialDefault(t *testing.T) {
	a := mk(t, []float64{1, 2, 3, 4}, dense.Shape{2, 2}, [][]Label{{"r0", "r1"}, nil})
	assert.Equal(t, []Label{"r0", "r1"}, a.Labels(0))
	assert.Equal(t, []Label{0, 1}, a.Labels(1))
}

// TestNew_LengthMismatch verifies the label count must match the extent.
func TestNew_LengthMismatch(t *testing.T) {
	_, err := FromSlice([]float64{1, 2, 3}, dense.Shape{3}, [][]Label{{"a", "b"}}, cpu.New())
	var mismatch *ShapeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 0, mismatch.Axis)
	assert.Equal(t, 2, mismatch.Labels)
	assert.Equal(t, 3, mismatch.Extent)
}

// TestNew_DuplicateLabels verifies repeated labels on one axis fail.
func TestNew_DuplicateLabels(t *testing.T) {
	_, err := FromSlice([]float64{1, 2, 3}, dense.Shape{3}, [][]Label{{"a", "b", "a"}}, cpu.New())
	var dup *DuplicateLabelError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "a", dup.Label)
	assert.Equal(t, 2, dup.Count)
}

// TestNew_LabelListCount verifies one label list per axis.
func TestNew_LabelListCount(t *testing.T) {
	_, err := FromSlice([]float64{1, 2}, dense.Shape{2}, [][]Label{{"a", "b"}, {"x"}}, cpu.New())
	var shape *ShapeIncompatibleError
	require.ErrorAs(t, err, &shape)
}

// TestNew_CopiesLabels verifies the constructor does not alias caller
// label slices.
func TestNew_CopiesLabels(t *testing.T) {
	ls := []Label{"a", "b"}
	a := vec(t, []float64{1, 2}, ls...)
	ls[0] = "mutated"
	assert.Equal(t, []Label{"a", "b"}, a.Labels(0))
}

// TestFromVector covers the 1d convenience constructor.
func TestFromVector(t *testing.T) {
	a, err := FromVector([]float64{9, 8}, []Label{"x", "y"}, cpu.New())
	require.NoError(t, err)
	assert.Equal(t, dense.Shape{2}, a.Shape())
	sameFloats(t, []float64{9, 8}, a.Float64s())
}

// TestFromMatrix covers the 2d convenience constructor and its ragged
// input check.
func TestFromMatrix(t *testing.T) {
	a, err := FromMatrix([][]float64{{1, 2}, {3, 4}}, []Label{"r0", "r1"}, []Label{"c0", "c1"}, cpu.New())
	require.NoError(t, err)
	assert.Equal(t, dense.Shape{2, 2}, a.Shape())
	assert.Equal(t, []Label{"c0", "c1"}, a.Labels(1))

	_, err = FromMatrix([][]float64{{1, 2}, {3}}, nil, nil, cpu.New())
	require.Error(t, err)
}

// TestIntrospection covers the shape and size pass-throughs.
func TestIntrospection(t *testing.T) {
	a := mk(t, []float64{1, nan, 3, 4, 5, 6}, dense.Shape{2, 3}, nil)

	assert.Equal(t, dense.Shape{2, 3}, a.Shape())
	assert.Equal(t, 6, a.NumElements())
	assert.Equal(t, 2, a.NDim())
	assert.Equal(t, dense.Float64, a.DType())
	assert.Equal(t, 5, a.NumFinite())
}

// TestNumFinite_Inf verifies infinities do not count as finite.
func TestNumFinite_Inf(t *testing.T) {
	a := vec(t, []float64{1, math.Inf(1), nan})
	assert.Equal(t, 1, a.NumFinite())
}

// TestCopy_Independent verifies a copy shares nothing with its source.
func TestCopy_Independent(t *testing.T) {
	a := vec(t, []float64{1, 2}, "a", "b")
	b := a.Copy()
	b.SetAt(99, 0)
	assert.Equal(t, 1.0, a.At(0))
	assert.Equal(t, 99.0, b.At(0))
}

// TestFloat64s_WidensInts verifies Float64s copies and widens.
func TestFloat64s_WidensInts(t *testing.T) {
	a, err := FromSlice([]int64{1, 2, 3}, dense.Shape{3}, nil, cpu.New())
	require.NoError(t, err)
	assert.Equal(t, dense.Int64, a.DType())
	sameFloats(t, []float64{1, 2, 3}, a.Float64s())

	vals := a.Float64s()
	vals[0] = 42
	assert.Equal(t, 1.0, a.At(0))
}

// TestLabels_NegativeAxis verifies negative axes count from the end.
func TestLabels_NegativeAxis(t *testing.T) {
	a := mk(t, []float64{1, 2, 3, 4}, dense.Shape{2, 2}, [][]Label{{"r0", "r1"}, {"c0", "c1"}})
	assert.Equal(t, []Label{"c0", "c1"}, a.Labels(-1))
	assert.Equal(t, []Label{"r0", "r1"}, a.Labels(-2))
}
