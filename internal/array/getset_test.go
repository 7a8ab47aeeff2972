package array

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/larr-ml/larr/internal/dense"
)

// TestLabelIndex_RoundTrip verifies every label maps back to its
// position.
func TestLabelIndex_RoundTrip(t *testing.T) {
	a := vec(t, []float64{1, 2, 3}, "b", "a", "c")
	for i, v := range a.Labels(0) {
		got, err := a.LabelIndex(0, v)
		require.NoError(t, err)
		assert.Equal(t, i, got)
	}
}

// TestLabelIndex_NumericAlias verifies 2.0 finds the label 2.
func TestLabelIndex_NumericAlias(t *testing.T) {
	a := vec(t, []float64{1, 2, 3}, 10, 20, 30)
	got, err := a.LabelIndex(0, 20.0)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

// TestLabelIndex_Miss verifies the typed error carries the query.
func TestLabelIndex_Miss(t *testing.T) {
	a := vec(t, []float64{1, 2}, "a", "b")
	_, err := a.LabelIndex(0, "nope")
	var notFound *LabelNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, 0, notFound.Axis)
	assert.Equal(t, "nope", notFound.Label)
}

// TestLabelIndexFloor verifies the largest label <= v wins, regardless
// of label order on the axis.
func TestLabelIndexFloor(t *testing.T) {
	a := vec(t, []float64{1, 2, 3}, 30, 10, 20)

	tests := []struct {
		name string
		v    Label
		want int
	}{
		{"Exact", 20, 2},
		{"Between", 25, 2},
		{"AboveAll", 99, 0},
		{"AtSmallest", 10, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := a.LabelIndexFloor(0, tt.v)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("BelowAllFails", func(t *testing.T) {
		_, err := a.LabelIndexFloor(0, 5)
		var notFound *LabelNotFoundError
		require.ErrorAs(t, err, &notFound)
	})
}

// TestLabelIndexFloor_Times verifies the floor lookup on date labels,
// the usual as-of query.
func TestLabelIndexFloor_Times(t *testing.T) {
	d := func(day int) time.Time { return time.Date(2012, 4, day, 0, 0, 0, 0, time.UTC) }
	a := vec(t, []float64{1, 2, 3}, d(2), d(4), d(9))

	got, err := a.LabelIndexFloor(0, d(6))
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

// TestAtSetAt covers positional access.
func TestAtSetAt(t *testing.T) {
	a := mk(t, []float64{1, 2, 3, 4}, dense.Shape{2, 2}, nil)

	assert.Equal(t, 3.0, a.At(1, 0))
	a.SetAt(9, 1, 0)
	assert.Equal(t, 9.0, a.At(1, 0))

	assert.Panics(t, func() { a.At(2, 0) })
}

// TestGetSet covers label access.
func TestGetSet(t *testing.T) {
	a := mk(t, []float64{1, 2, 3, 4}, dense.Shape{2, 2},
		[][]Label{{"r0", "r1"}, {"c0", "c1"}})

	v, err := a.Get("r1", "c0")
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	require.NoError(t, a.Set(9, "r1", "c0"))
	v, err = a.Get("r1", "c0")
	require.NoError(t, err)
	assert.Equal(t, 9.0, v)

	t.Run("WrongArity", func(t *testing.T) {
		_, err := a.Get("r1")
		var shape *ShapeIncompatibleError
		require.ErrorAs(t, err, &shape)
	})

	t.Run("UnknownLabel", func(t *testing.T) {
		_, err := a.Get("r1", "zzz")
		var notFound *LabelNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, 1, notFound.Axis)
	})
}

// TestPull extracts a hyperslice and drops the axis.
func TestPull(t *testing.T) {
	a := mk(t, []float64{1, 2, 3, 4}, dense.Shape{2, 2},
		[][]Label{{"r0", "r1"}, {"c0", "c1"}})

	row, err := a.Pull(0, "r0")
	require.NoError(t, err)
	assert.Equal(t, dense.Shape{2}, row.Shape())
	assert.Equal(t, []Label{"c0", "c1"}, row.Labels(0))
	sameFloats(t, []float64{1, 2}, row.Float64s())

	col, err := a.Pull(1, "c1")
	require.NoError(t, err)
	assert.Equal(t, []Label{"r0", "r1"}, col.Labels(0))
	sameFloats(t, []float64{2, 4}, col.Float64s())

	t.Run("OneDFails", func(t *testing.T) {
		v := vec(t, []float64{1, 2}, "a", "b")
		_, err := v.Pull(0, "a")
		var shape *ShapeIncompatibleError
		require.ErrorAs(t, err, &shape)
	})

	t.Run("UnknownLabelFails", func(t *testing.T) {
		_, err := a.Pull(0, "zzz")
		var notFound *LabelNotFoundError
		require.ErrorAs(t, err, &notFound)
	})
}

// TestMapLabels rewrites and revalidates an axis.
func TestMapLabels(t *testing.T) {
	a := vec(t, []float64{1, 2}, "a", "b")

	up, err := a.MapLabels(0, func(v Label) Label { return v.(string) + "!" })
	require.NoError(t, err)
	assert.Equal(t, []Label{"a!", "b!"}, up.Labels(0))
	assert.Equal(t, []Label{"a", "b"}, a.Labels(0))

	t.Run("CollapseFails", func(t *testing.T) {
		_, err := a.MapLabels(0, func(Label) Label { return "same" })
		var dup *DuplicateLabelError
		require.ErrorAs(t, err, &dup)
	})
}

// TestMaxMinLabel finds label extremes in label order.
func TestMaxMinLabel(t *testing.T) {
	a := vec(t, []float64{1, 2, 3}, "a", "z", "w")
	assert.Equal(t, "z", a.MaxLabel(0))
	assert.Equal(t, "a", a.MinLabel(0))
}

// TestShuffle verifies data permutes in place while the labels and the
// value multiset survive.
func TestShuffle(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	a := vec(t, data, "a", "b", "c", "d", "e", "f", "g", "h")

	a.Shuffle(0)

	assert.Equal(t, []Label{"a", "b", "c", "d", "e", "f", "g", "h"}, a.Labels(0))
	got := a.Float64s()
	sort.Float64s(got)
	sameFloats(t, []float64{1, 2, 3, 4, 5, 6, 7, 8}, got)
}

// TestShuffleLabels verifies labels permute in place while the data and
// the label set survive.
func TestShuffleLabels(t *testing.T) {
	a := vec(t, []float64{1, 2, 3, 4}, "a", "b", "c", "d")

	a.ShuffleLabels(0)

	sameFloats(t, []float64{1, 2, 3, 4}, a.Float64s())
	got := a.Labels(0)
	sort.Slice(got, func(i, j int) bool { return compareLabels(got[i], got[j]) < 0 })
	assert.Equal(t, []Label{"a", "b", "c", "d"}, got)
}
