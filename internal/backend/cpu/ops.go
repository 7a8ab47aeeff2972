package cpu

import (
	"fmt"

	"github.com/larr-ml/larr/internal/dense"
	"github.com/larr-ml/larr/internal/parallel"
)

// Add performs elementwise addition over same-shape, same-dtype buffers.
func (cpu *CPUBackend) Add(a, b *dense.Buffer) *dense.Buffer {
	checkSame("add", a, b)
	result := mustNew("add", a.Shape(), a.DType())
	switch a.DType() {
	case dense.Float64:
		addSpans(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), cpu.par)
	case dense.Float32:
		addSpans(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), cpu.par)
	case dense.Int64:
		addSpans(result.AsInt64(), a.AsInt64(), b.AsInt64(), cpu.par)
	case dense.Int32:
		addSpans(result.AsInt32(), a.AsInt32(), b.AsInt32(), cpu.par)
	default:
		panic(fmt.Sprintf("add: unsupported dtype %s", a.DType()))
	}
	return result
}

// Sub performs elementwise subtraction over same-shape, same-dtype buffers.
func (cpu *CPUBackend) Sub(a, b *dense.Buffer) *dense.Buffer {
	checkSame("sub", a, b)
	result := mustNew("sub", a.Shape(), a.DType())
	switch a.DType() {
	case dense.Float64:
		subSpans(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), cpu.par)
	case dense.Float32:
		subSpans(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), cpu.par)
	case dense.Int64:
		subSpans(result.AsInt64(), a.AsInt64(), b.AsInt64(), cpu.par)
	case dense.Int32:
		subSpans(result.AsInt32(), a.AsInt32(), b.AsInt32(), cpu.par)
	default:
		panic(fmt.Sprintf("sub: unsupported dtype %s", a.DType()))
	}
	return result
}

// Mul performs elementwise multiplication over same-shape, same-dtype buffers.
func (cpu *CPUBackend) Mul(a, b *dense.Buffer) *dense.Buffer {
	checkSame("mul", a, b)
	result := mustNew("mul", a.Shape(), a.DType())
	switch a.DType() {
	case dense.Float64:
		mulSpans(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), cpu.par)
	case dense.Float32:
		mulSpans(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), cpu.par)
	case dense.Int64:
		mulSpans(result.AsInt64(), a.AsInt64(), b.AsInt64(), cpu.par)
	case dense.Int32:
		mulSpans(result.AsInt32(), a.AsInt32(), b.AsInt32(), cpu.par)
	default:
		panic(fmt.Sprintf("mul: unsupported dtype %s", a.DType()))
	}
	return result
}

// Div performs elementwise division. Integer buffers must be cast to a
// floating dtype first; division is always floating.
func (cpu *CPUBackend) Div(a, b *dense.Buffer) *dense.Buffer {
	checkSame("div", a, b)
	checkFloat("div", a)
	result := mustNew("div", a.Shape(), a.DType())
	switch a.DType() {
	case dense.Float64:
		divSpans(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), cpu.par)
	default:
		divSpans(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), cpu.par)
	}
	return result
}

func addSpans[T number](dst, a, b []T, cfg parallel.Config) {
	parallel.ForRange(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = a[i] + b[i]
		}
	}, cfg)
}

func subSpans[T number](dst, a, b []T, cfg parallel.Config) {
	parallel.ForRange(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = a[i] - b[i]
		}
	}, cfg)
}

func mulSpans[T number](dst, a, b []T, cfg parallel.Config) {
	parallel.ForRange(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = a[i] * b[i]
		}
	}, cfg)
}

func divSpans[T float](dst, a, b []T, cfg parallel.Config) {
	parallel.ForRange(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = a[i] / b[i]
		}
	}, cfg)
}
