package array

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestKeyOf_NumericCollapse verifies that an integral float and the int
// of the same value address the same label.
func TestKeyOf_NumericCollapse(t *testing.T) {
	assert.Equal(t, keyOf(3), keyOf(3.0))
	assert.Equal(t, keyOf(int64(3)), keyOf(3))
	assert.NotEqual(t, keyOf(3), keyOf(3.5))
	assert.NotEqual(t, keyOf(3), keyOf("3"))
}

// TestKeyOf_Time verifies time labels key on the instant, not the zone.
func TestKeyOf_Time(t *testing.T) {
	utc := time.Date(2012, 4, 2, 10, 0, 0, 0, time.UTC)
	offset := utc.In(time.FixedZone("plus2", 2*3600))
	assert.Equal(t, keyOf(utc), keyOf(offset))
	assert.NotEqual(t, keyOf(utc), keyOf(utc.Add(time.Nanosecond)))
}

// TestCompareLabels covers ordering within and across label kinds.
func TestCompareLabels(t *testing.T) {
	day := time.Date(2012, 4, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		a, b Label
		want int
	}{
		{"IntInt", 1, 2, -1},
		{"IntEqualFloat", 2, 2.0, 0},
		{"FloatInt", 2.5, 2, 1},
		{"Strings", "aap", "ape", -1},
		{"Times", day, day.Add(24 * time.Hour), -1},
		{"NumberBeforeTime", 1 << 40, day, -1},
		{"TimeBeforeString", day, "a", -1},
		{"NumberBeforeString", 99, "0", -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := compareLabels(tt.a, tt.b)
			switch {
			case tt.want < 0:
				assert.Negative(t, got)
				assert.Positive(t, compareLabels(tt.b, tt.a))
			case tt.want > 0:
				assert.Positive(t, got)
			default:
				assert.Zero(t, got)
			}
		})
	}
}

// TestSortLabels verifies mixed-kind label sorting is total and stable
// in its class ordering.
func TestSortLabels(t *testing.T) {
	day := time.Date(2012, 4, 2, 0, 0, 0, 0, time.UTC)
	ls := []Label{"b", 3, day, 1.5, "a", 2}
	sortLabels(ls)
	assert.Equal(t, []Label{1.5, 2, 3, day, "a", "b"}, ls)
}

// TestValidateAxisLabels exercises each constructor failure mode.
func TestValidateAxisLabels(t *testing.T) {
	t.Run("CountMismatch", func(t *testing.T) {
		err := validateAxisLabels(0, []Label{"a", "b"}, 3)
		var mismatch *ShapeMismatchError
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, 0, mismatch.Axis)
		assert.Equal(t, 2, mismatch.Labels)
		assert.Equal(t, 3, mismatch.Extent)
	})

	t.Run("Duplicates", func(t *testing.T) {
		err := validateAxisLabels(1, []Label{"a", "b", "a"}, 3)
		var dup *DuplicateLabelError
		require.ErrorAs(t, err, &dup)
		assert.Equal(t, 1, dup.Axis)
		assert.Equal(t, "a", dup.Label)
		assert.Equal(t, 2, dup.Count)
	})

	t.Run("IntFloatAlias", func(t *testing.T) {
		// 2 and 2.0 address the same coordinate, so they collide.
		err := validateAxisLabels(0, []Label{2, 2.0}, 2)
		var dup *DuplicateLabelError
		require.ErrorAs(t, err, &dup)
	})

	t.Run("NaNLabel", func(t *testing.T) {
		err := validateAxisLabels(0, []Label{1.0, math.NaN()}, 2)
		var unsupported *UnsupportedLabelError
		require.ErrorAs(t, err, &unsupported)
	})

	t.Run("UnsupportedKind", func(t *testing.T) {
		err := validateAxisLabels(0, []Label{[]int{1}}, 1)
		var unsupported *UnsupportedLabelError
		require.ErrorAs(t, err, &unsupported)
		assert.Equal(t, 0, unsupported.Axis)
	})

	t.Run("Valid", func(t *testing.T) {
		require.NoError(t, validateAxisLabels(0, []Label{"a", 1, 2.5}, 3))
	})
}

// TestLabelString pins the rendering of each label kind.
func TestLabelString(t *testing.T) {
	midnight := time.Date(2012, 4, 2, 0, 0, 0, 0, time.UTC)
	morning := time.Date(2012, 4, 2, 9, 30, 0, 0, time.UTC)

	assert.Equal(t, "a", labelString("a"))
	assert.Equal(t, "7", labelString(7))
	assert.Equal(t, "2.5", labelString(2.5))
	assert.Equal(t, "2012-04-02", labelString(midnight))
	assert.Equal(t, "2012-04-02T09:30:00Z", labelString(morning))
}
