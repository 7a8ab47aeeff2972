package cpu

import (
	"math"
	"testing"
)

func TestCPUBackend_GroupMean(t *testing.T) {
	backend := newTestBackend()
	// Rows 0 and 2 share a group, rows 1 and 3 another.
	x := f64(t, []float64{
		1, 10,
		2, 20,
		3, 30,
		4, 40,
	}, 4, 2)
	groups := []int{0, 1, 0, 1}

	got := backend.GroupMean(x, groups).AsFloat64()
	want := []float64{
		2, 20,
		3, 30,
		2, 20,
		3, 30,
	}
	if !sameFloats(got, want) {
		t.Errorf("GroupMean = %v, want %v", got, want)
	}

	t.Run("UngroupedRowGoesMissing", func(t *testing.T) {
		got := backend.GroupMean(x, []int{0, -1, 0, 0}).AsFloat64()
		if !math.IsNaN(got[2]) || !math.IsNaN(got[3]) {
			t.Errorf("row 1 = %v, want missing", got[2:4])
		}
		// Group 0 now spans rows 0, 2 and 3.
		if got[0] != 8.0/3 {
			t.Errorf("cell (0,0) = %v", got[0])
		}
	})

	t.Run("MissingCellsSkipped", func(t *testing.T) {
		y := f64(t, []float64{1, math.NaN(), 3}, 3, 1)
		got := backend.GroupMean(y, []int{0, 0, 0}).AsFloat64()
		if !sameFloats(got, []float64{2, 2, 2}) {
			t.Errorf("GroupMean = %v", got)
		}
	})

	t.Run("WrongGroupCountPanics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		backend.GroupMean(x, []int{0, 1})
	})
}

func TestCPUBackend_GroupMedian(t *testing.T) {
	backend := newTestBackend()
	x := f64(t, []float64{
		1,
		9,
		2,
		9,
		6,
	}, 5, 1)
	groups := []int{0, 1, 0, 1, 0}

	got := backend.GroupMedian(x, groups).AsFloat64()
	want := []float64{2, 9, 2, 9, 2}
	if !sameFloats(got, want) {
		t.Errorf("GroupMedian = %v, want %v", got, want)
	}
}

func TestCPUBackend_GroupRanking(t *testing.T) {
	backend := newTestBackend()

	t.Run("WithinGroupRanks", func(t *testing.T) {
		x := f64(t, []float64{
			3,
			100,
			1,
			200,
			2,
		}, 5, 1)
		groups := []int{0, 1, 0, 1, 0}
		got := backend.GroupRanking(x, groups).AsFloat64()
		want := []float64{1, -1, -1, 1, 0}
		if !sameFloats(got, want) {
			t.Errorf("GroupRanking = %v, want %v", got, want)
		}
	})

	t.Run("TiesShareRank", func(t *testing.T) {
		x := f64(t, []float64{5, 5, 5}, 3, 1)
		got := backend.GroupRanking(x, []int{0, 0, 0}).AsFloat64()
		if !sameFloats(got, []float64{0, 0, 0}) {
			t.Errorf("GroupRanking = %v", got)
		}
	})

	t.Run("SingleRowGroup", func(t *testing.T) {
		x := f64(t, []float64{42, 7, 8}, 3, 1)
		got := backend.GroupRanking(x, []int{0, 1, 1}).AsFloat64()
		if got[0] != 0 {
			t.Errorf("lone group rank = %v, want 0", got[0])
		}
	})

	t.Run("MissingStaysMissing", func(t *testing.T) {
		x := f64(t, []float64{1, math.NaN(), 3}, 3, 1)
		got := backend.GroupRanking(x, []int{0, 0, 0}).AsFloat64()
		if !sameFloats(got, []float64{-1, math.NaN(), 1}) {
			t.Errorf("GroupRanking = %v", got)
		}
	})
}
