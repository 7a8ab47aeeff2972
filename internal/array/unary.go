package array

import (
	"fmt"

	"github.com/larr-ml/larr/internal/dense"
)

// Unary elementwise operations. Labels carry over unchanged and missing
// cells stay missing. Domain violations (log of a negative, sqrt of a
// negative) produce NaN instead of failing.

// Neg returns -x. Bool arrays widen to Int64 first.
func (a *Array) Neg() *Array {
	return newArray(a.bk.Neg(a.nonBool()), copyLabels(a.labels), a.bk)
}

// Abs returns |x|. Bool arrays widen to Int64 first.
func (a *Array) Abs() *Array {
	return newArray(a.bk.Abs(a.nonBool()), copyLabels(a.labels), a.bk)
}

// Sign returns -1, 0, or +1 per cell. Bool arrays widen to Int64 first.
func (a *Array) Sign() *Array {
	return newArray(a.bk.Sign(a.nonBool()), copyLabels(a.labels), a.bk)
}

func (a *Array) nonBool() *dense.Buffer {
	if a.buf.DType() == dense.Bool {
		return a.bk.Cast(a.buf, dense.Int64)
	}
	return a.buf
}

// Exp returns e**x with a floating result.
func (a *Array) Exp() *Array {
	return newArray(a.bk.Exp(a.floating()), copyLabels(a.labels), a.bk)
}

// Log returns the natural logarithm with a floating result.
func (a *Array) Log() *Array {
	return newArray(a.bk.Log(a.floating()), copyLabels(a.labels), a.bk)
}

// Sqrt returns the square root with a floating result.
func (a *Array) Sqrt() *Array {
	return newArray(a.bk.Sqrt(a.floating()), copyLabels(a.labels), a.bk)
}

// Power returns x**q with a floating result.
func (a *Array) Power(q float64) *Array {
	return newArray(a.bk.Power(a.floating(), q), copyLabels(a.labels), a.bk)
}

// Clip limits every cell to [lo, hi] with a floating result. NaN cells
// pass through unchanged.
func (a *Array) Clip(lo, hi float64) (*Array, error) {
	if lo > hi {
		return nil, fmt.Errorf("clip: lo %v greater than hi %v", lo, hi)
	}
	return newArray(a.bk.Clip(a.floating(), lo, hi), copyLabels(a.labels), a.bk), nil
}

func (a *Array) floating() *dense.Buffer {
	return castTo(a.bk, a.buf, dense.PromoteForMissing(a.buf.DType()))
}

// Not returns the logical negation. Operands are first reduced to truth
// values with the same rule as And and Or: non-zero cells and NaN are
// true.
func (a *Array) Not() *Array {
	return newArray(a.bk.Not(a.bk.Truthy(a.buf)), copyLabels(a.labels), a.bk)
}

// IsNaN returns the Bool mask of missing cells.
func (a *Array) IsNaN() *Array {
	return newArray(a.bk.IsNaN(a.buf), copyLabels(a.labels), a.bk)
}

// IsFinite returns the Bool mask of cells that are neither missing nor
// infinite. Integer and bool arrays are finite everywhere.
func (a *Array) IsFinite() *Array {
	return newArray(a.bk.IsFinite(a.buf), copyLabels(a.labels), a.bk)
}

// IsInf returns the Bool mask of infinite cells.
func (a *Array) IsInf() *Array {
	return newArray(a.bk.IsInf(a.buf), copyLabels(a.labels), a.bk)
}

// CumSum returns the running sum along an axis. Missing cells stay
// missing and do not advance the total. Bool arrays widen to Int64.
func (a *Array) CumSum(axis int) *Array {
	return newArray(a.bk.CumSum(a.nonBool(), axis), copyLabels(a.labels), a.bk)
}

// CumProd returns the running product along an axis, with the same
// missing-cell rule as CumSum.
func (a *Array) CumProd(axis int) *Array {
	return newArray(a.bk.CumProd(a.nonBool(), axis), copyLabels(a.labels), a.bk)
}
