package cpu

import (
	"math"
	"testing"

	"github.com/larr-ml/larr/internal/dense"
)

// Helper to create test backend.
func newTestBackend() *CPUBackend {
	return New()
}

// Helper to build a float64 buffer or fail the test.
func f64(t *testing.T, data []float64, shape ...int) *dense.Buffer {
	t.Helper()
	b, err := dense.FromFloat64s(data, dense.Shape(shape))
	if err != nil {
		t.Fatalf("building buffer: %v", err)
	}
	return b
}

// Helper to compare float64 slices treating NaN as equal to NaN.
func sameFloats(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.IsNaN(a[i]) && math.IsNaN(b[i]) {
			continue
		}
		if math.Abs(a[i]-b[i]) > 1e-12 {
			return false
		}
	}
	return true
}

func TestCPUBackend_New(t *testing.T) {
	backend := New()
	if backend == nil {
		t.Fatal("New() returned nil")
	}
	if backend.Name() != "cpu" {
		t.Errorf("Expected name 'cpu', got '%s'", backend.Name())
	}
}

func TestCPUBackend_Add(t *testing.T) {
	backend := newTestBackend()

	t.Run("Float64", func(t *testing.T) {
		a := f64(t, []float64{1, 2, 3, 4}, 2, 2)
		b := f64(t, []float64{10, 20, 30, 40}, 2, 2)
		got := backend.Add(a, b).AsFloat64()
		if !sameFloats(got, []float64{11, 22, 33, 44}) {
			t.Errorf("Add = %v", got)
		}
	})

	t.Run("NaNFlowsThrough", func(t *testing.T) {
		a := f64(t, []float64{1, math.NaN()}, 2)
		b := f64(t, []float64{2, 2}, 2)
		got := backend.Add(a, b).AsFloat64()
		if got[0] != 3 || !math.IsNaN(got[1]) {
			t.Errorf("Add with NaN = %v", got)
		}
	})

	t.Run("Int64", func(t *testing.T) {
		a, _ := dense.FromInt64s([]int64{1, 2}, dense.Shape{2})
		b, _ := dense.FromInt64s([]int64{3, 4}, dense.Shape{2})
		got := backend.Add(a, b).AsInt64()
		if got[0] != 4 || got[1] != 6 {
			t.Errorf("Add int64 = %v", got)
		}
	})

	t.Run("ShapeMismatchPanics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		backend.Add(f64(t, []float64{1, 2}, 2), f64(t, []float64{1, 2}, 2, 1))
	})
}

func TestCPUBackend_SubMulDiv(t *testing.T) {
	backend := newTestBackend()
	a := f64(t, []float64{8, 6, 4, 2}, 4)
	b := f64(t, []float64{2, 2, 2, 2}, 4)

	if got := backend.Sub(a, b).AsFloat64(); !sameFloats(got, []float64{6, 4, 2, 0}) {
		t.Errorf("Sub = %v", got)
	}
	if got := backend.Mul(a, b).AsFloat64(); !sameFloats(got, []float64{16, 12, 8, 4}) {
		t.Errorf("Mul = %v", got)
	}
	if got := backend.Div(a, b).AsFloat64(); !sameFloats(got, []float64{4, 3, 2, 1}) {
		t.Errorf("Div = %v", got)
	}

	t.Run("DivIntPanics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		x, _ := dense.FromInt64s([]int64{4}, dense.Shape{1})
		backend.Div(x, x)
	})
}

func TestCPUBackend_Compare(t *testing.T) {
	backend := newTestBackend()
	a := f64(t, []float64{1, 2, math.NaN()}, 3)
	b := f64(t, []float64{2, 2, 2}, 3)

	tests := []struct {
		name string
		got  *dense.Buffer
		want []bool
	}{
		{"Greater", backend.Greater(a, b), []bool{false, false, false}},
		{"GreaterEqual", backend.GreaterEqual(a, b), []bool{false, true, false}},
		{"Lower", backend.Lower(a, b), []bool{true, false, false}},
		{"LowerEqual", backend.LowerEqual(a, b), []bool{true, true, false}},
		{"Equal", backend.Equal(a, b), []bool{false, true, false}},
		{"NotEqual", backend.NotEqual(a, b), []bool{true, false, true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.got.AsBool()
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("cell %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestCPUBackend_Logical(t *testing.T) {
	backend := newTestBackend()
	a, _ := dense.FromBools([]bool{true, true, false, false}, dense.Shape{4})
	b, _ := dense.FromBools([]bool{true, false, true, false}, dense.Shape{4})

	if got := backend.And(a, b).AsBool(); got[0] != true || got[1] != false || got[2] != false {
		t.Errorf("And = %v", got)
	}
	if got := backend.Or(a, b).AsBool(); got[0] != true || got[3] != false {
		t.Errorf("Or = %v", got)
	}
	if got := backend.Not(a).AsBool(); got[0] != false || got[2] != true {
		t.Errorf("Not = %v", got)
	}

	t.Run("TruthyTreatsNaNAsTrue", func(t *testing.T) {
		x := f64(t, []float64{0, 1, math.NaN()}, 3)
		got := backend.Truthy(x).AsBool()
		if got[0] != false || got[1] != true || got[2] != true {
			t.Errorf("Truthy = %v", got)
		}
	})
}

func TestCPUBackend_Scalar(t *testing.T) {
	backend := newTestBackend()
	x := f64(t, []float64{1, 2, math.NaN()}, 3)

	if got := backend.AddScalar(x, 10).AsFloat64(); !sameFloats(got, []float64{11, 12, math.NaN()}) {
		t.Errorf("AddScalar = %v", got)
	}
	if got := backend.MulScalar(x, 2).AsFloat64(); !sameFloats(got, []float64{2, 4, math.NaN()}) {
		t.Errorf("MulScalar = %v", got)
	}
	if got := backend.DivScalar(x, 2).AsFloat64(); !sameFloats(got, []float64{0.5, 1, math.NaN()}) {
		t.Errorf("DivScalar = %v", got)
	}

	t.Run("IntKeepsDtypeForIntegralScalar", func(t *testing.T) {
		n, _ := dense.FromInt64s([]int64{5, 6}, dense.Shape{2})
		got := backend.SubScalar(n, 5)
		if got.DType() != dense.Int64 {
			t.Fatalf("dtype = %s", got.DType())
		}
		if v := got.AsInt64(); v[0] != 0 || v[1] != 1 {
			t.Errorf("SubScalar int = %v", v)
		}
	})

	t.Run("FractionalScalarOnIntPanics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		n, _ := dense.FromInt64s([]int64{5}, dense.Shape{1})
		backend.AddScalar(n, 0.5)
	})
}

func TestCPUBackend_Unary(t *testing.T) {
	backend := newTestBackend()

	t.Run("NegAbsSign", func(t *testing.T) {
		x := f64(t, []float64{-2, 0, 3, math.NaN()}, 4)
		if got := backend.Neg(x).AsFloat64(); !sameFloats(got, []float64{2, 0, -3, math.NaN()}) {
			t.Errorf("Neg = %v", got)
		}
		if got := backend.Abs(x).AsFloat64(); !sameFloats(got, []float64{2, 0, 3, math.NaN()}) {
			t.Errorf("Abs = %v", got)
		}
		if got := backend.Sign(x).AsFloat64(); !sameFloats(got, []float64{-1, 0, 1, math.NaN()}) {
			t.Errorf("Sign = %v", got)
		}
	})

	t.Run("LogDomainGivesNaN", func(t *testing.T) {
		x := f64(t, []float64{-1}, 1)
		if got := backend.Log(x).AsFloat64()[0]; !math.IsNaN(got) {
			t.Errorf("Log(-1) = %v, want NaN", got)
		}
	})

	t.Run("SqrtPowerClip", func(t *testing.T) {
		x := f64(t, []float64{4, 9}, 2)
		if got := backend.Sqrt(x).AsFloat64(); !sameFloats(got, []float64{2, 3}) {
			t.Errorf("Sqrt = %v", got)
		}
		if got := backend.Power(x, 2).AsFloat64(); !sameFloats(got, []float64{16, 81}) {
			t.Errorf("Power = %v", got)
		}
		y := f64(t, []float64{-5, 5, math.NaN()}, 3)
		if got := backend.Clip(y, -1, 1).AsFloat64(); !sameFloats(got, []float64{-1, 1, math.NaN()}) {
			t.Errorf("Clip = %v", got)
		}
	})

	t.Run("Classify", func(t *testing.T) {
		x := f64(t, []float64{1, math.NaN(), math.Inf(1)}, 3)
		if got := backend.IsNaN(x).AsBool(); !got[1] || got[0] || got[2] {
			t.Errorf("IsNaN = %v", got)
		}
		if got := backend.IsFinite(x).AsBool(); !got[0] || got[1] || got[2] {
			t.Errorf("IsFinite = %v", got)
		}
		if got := backend.IsInf(x).AsBool(); !got[2] || got[0] || got[1] {
			t.Errorf("IsInf = %v", got)
		}
	})

	t.Run("CumSumSkipsMissing", func(t *testing.T) {
		x := f64(t, []float64{1, math.NaN(), 2, 3}, 4)
		got := backend.CumSum(x, 0).AsFloat64()
		if !sameFloats(got, []float64{1, math.NaN(), 3, 6}) {
			t.Errorf("CumSum = %v", got)
		}
	})

	t.Run("CumProdAlongAxis1", func(t *testing.T) {
		x := f64(t, []float64{1, 2, 3, 4}, 2, 2)
		got := backend.CumProd(x, 1).AsFloat64()
		if !sameFloats(got, []float64{1, 2, 3, 12}) {
			t.Errorf("CumProd = %v", got)
		}
	})
}
