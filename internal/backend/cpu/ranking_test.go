package cpu

import (
	"math"
	"testing"

	"github.com/larr-ml/larr/internal/dense"
)

func TestCPUBackend_Ranking(t *testing.T) {
	backend := newTestBackend()

	t.Run("Centered", func(t *testing.T) {
		x := f64(t, []float64{3, 1, 2}, 3)
		got := backend.Ranking(x, 0, dense.RankCentered).AsFloat64()
		if !sameFloats(got, []float64{1, -1, 0}) {
			t.Errorf("Ranking = %v", got)
		}
	})

	t.Run("TiesAverage", func(t *testing.T) {
		x := f64(t, []float64{1, 2, 2, 4}, 4)
		got := backend.Ranking(x, 0, dense.RankCentered).AsFloat64()
		if !sameFloats(got, []float64{-1, 0, 0, 1}) {
			t.Errorf("Ranking = %v", got)
		}
	})

	t.Run("ZeroN", func(t *testing.T) {
		x := f64(t, []float64{3, 1, 2}, 3)
		got := backend.Ranking(x, 0, dense.RankZeroN).AsFloat64()
		if !sameFloats(got, []float64{2, 0, 1}) {
			t.Errorf("Ranking = %v", got)
		}
	})

	t.Run("ZeroNWithMissing", func(t *testing.T) {
		// Three finite cells spread over a length-4 lane.
		x := f64(t, []float64{30, math.NaN(), 10, 20}, 4)
		got := backend.Ranking(x, 0, dense.RankZeroN).AsFloat64()
		if !sameFloats(got, []float64{3, math.NaN(), 0, 1.5}) {
			t.Errorf("Ranking = %v", got)
		}
	})

	t.Run("Gaussian", func(t *testing.T) {
		x := f64(t, []float64{1, 2, 3}, 3)
		got := backend.Ranking(x, 0, dense.RankGaussian).AsFloat64()
		if math.Abs(got[1]) > 1e-12 {
			t.Errorf("middle rank = %v, want 0", got[1])
		}
		if math.Abs(got[0]+got[2]) > 1e-12 {
			t.Errorf("ranks not symmetric: %v", got)
		}
		// Quartile of the unit normal.
		if math.Abs(got[2]-0.6744897501960817) > 1e-9 {
			t.Errorf("upper rank = %v", got[2])
		}
	})

	t.Run("LoneFiniteCell", func(t *testing.T) {
		x := f64(t, []float64{math.NaN(), 7}, 2)
		got := backend.Ranking(x, 0, dense.RankCentered).AsFloat64()
		if !math.IsNaN(got[0]) || got[1] != 0 {
			t.Errorf("Ranking = %v", got)
		}
	})

	t.Run("AlongRows", func(t *testing.T) {
		x := f64(t, []float64{
			2, 1, 3,
			9, 8, 7,
		}, 2, 3)
		got := backend.Ranking(x, 1, dense.RankCentered).AsFloat64()
		if !sameFloats(got, []float64{0, -1, 1, 1, 0, -1}) {
			t.Errorf("Ranking = %v", got)
		}
	})

	t.Run("UnknownNormPanics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		backend.Ranking(f64(t, []float64{1}, 1), 0, dense.RankNorm("bogus"))
	})
}

func TestCPUBackend_Quantile(t *testing.T) {
	backend := newTestBackend()

	t.Run("EvenSplit", func(t *testing.T) {
		x := f64(t, []float64{1, 2, 3, 4}, 4, 1)
		got := backend.Quantile(x, 2).AsFloat64()
		if !sameFloats(got, []float64{-1, -1, 1, 1}) {
			t.Errorf("Quantile = %v", got)
		}
	})

	t.Run("UnevenSplitLeadingBinsLarger", func(t *testing.T) {
		x := f64(t, []float64{1, 2, 3, 4, 5}, 5, 1)
		got := backend.Quantile(x, 2).AsFloat64()
		if !sameFloats(got, []float64{-1, -1, -1, 1, 1}) {
			t.Errorf("Quantile = %v", got)
		}
	})

	t.Run("ThreeBins", func(t *testing.T) {
		x := f64(t, []float64{1, 2, 3}, 3, 1)
		got := backend.Quantile(x, 3).AsFloat64()
		if !sameFloats(got, []float64{-1, 0, 1}) {
			t.Errorf("Quantile = %v", got)
		}
	})

	t.Run("MissingStaysMissing", func(t *testing.T) {
		x := f64(t, []float64{1, math.NaN(), 3, 4}, 4, 1)
		got := backend.Quantile(x, 2).AsFloat64()
		if !sameFloats(got, []float64{-1, math.NaN(), -1, 1}) {
			t.Errorf("Quantile = %v", got)
		}
	})

	t.Run("ColumnsAreIndependent", func(t *testing.T) {
		x := f64(t, []float64{
			1, 40,
			2, 30,
			3, 20,
			4, 10,
		}, 4, 2)
		got := backend.Quantile(x, 2).AsFloat64()
		want := []float64{
			-1, 1,
			-1, 1,
			1, -1,
			1, -1,
		}
		if !sameFloats(got, want) {
			t.Errorf("Quantile = %v", got)
		}
	})

	t.Run("TiesSplitByRowOrder", func(t *testing.T) {
		x := f64(t, []float64{5, 5}, 2, 1)
		got := backend.Quantile(x, 2).AsFloat64()
		if !sameFloats(got, []float64{-1, 1}) {
			t.Errorf("Quantile = %v", got)
		}
	})

	t.Run("SingleBinPanics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		backend.Quantile(f64(t, []float64{1, 2}, 2, 1), 1)
	})
}

func TestCPUBackend_LastRank(t *testing.T) {
	backend := newTestBackend()

	x := f64(t, []float64{
		1, 2, 3,
		5, 4, 3,
	}, 2, 3)
	got := backend.LastRank(x)
	if !got.Shape().Equal(dense.Shape{2, 1}) {
		t.Fatalf("shape = %v", got.Shape())
	}
	if v := got.AsFloat64(); !sameFloats(v, []float64{1, -1}) {
		t.Errorf("LastRank = %v", v)
	}

	t.Run("MissingLastCell", func(t *testing.T) {
		y := f64(t, []float64{1, math.NaN()}, 1, 2)
		if v := backend.LastRank(y).AsFloat64(); !math.IsNaN(v[0]) {
			t.Errorf("LastRank = %v, want NaN", v)
		}
	})

	t.Run("NoFinitePeers", func(t *testing.T) {
		y := f64(t, []float64{7, 9}, 2, 1)
		v := backend.LastRank(y).AsFloat64()
		if !math.IsNaN(v[0]) || !math.IsNaN(v[1]) {
			t.Errorf("LastRank = %v, want NaN", v)
		}
	})
}
