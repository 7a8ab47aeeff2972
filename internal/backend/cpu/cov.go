package cpu

import (
	"math"

	"github.com/viant/vec/search"

	"github.com/larr-ml/larr/internal/dense"
)

// CovMissing computes the missing-aware covariance matrix of a matrix
// whose rows are assumed zero-mean: out[i][j] is the mean of x[i][k]*x[j][k]
// over the columns where both rows are finite, NaN when no column
// qualifies.
func (cpu *CPUBackend) CovMissing(x *dense.Buffer) *dense.Buffer {
	checkFloat64("cov", x)
	check2d("cov", x)
	rows, cols := x.Shape()[0], x.Shape()[1]
	result := mustNew("cov", dense.Shape{rows, rows}, dense.Float64)
	dst, src := result.AsFloat64(), x.AsFloat64()

	for i := 0; i < rows; i++ {
		ri := src[i*cols : (i+1)*cols]
		for j := i; j < rows; j++ {
			rj := src[j*cols : (j+1)*cols]
			acc, cnt := 0.0, 0
			for k := 0; k < cols; k++ {
				a, b := ri[k], rj[k]
				if math.IsNaN(a) || math.IsNaN(b) {
					continue
				}
				acc += a * b
				cnt++
			}
			v := dense.NaN
			if cnt > 0 {
				v = acc / float64(cnt)
			}
			dst[i*rows+j] = v
			dst[j*rows+i] = v
		}
	}
	return result
}

// CosineSim computes the pairwise cosine similarity of a Float32 matrix's
// rows through the SIMD vector kernels. The caller replaces missing cells
// with 0 first; rows with zero magnitude have no direction and produce
// NaN.
func (cpu *CPUBackend) CosineSim(x *dense.Buffer) *dense.Buffer {
	if x.DType() != dense.Float32 {
		panic("cossim: requires float32 dtype")
	}
	check2d("cossim", x)
	rows, cols := x.Shape()[0], x.Shape()[1]
	result := mustNew("cossim", dense.Shape{rows, rows}, dense.Float32)
	dst, src := result.AsFloat32(), x.AsFloat32()

	mags := make([]float32, rows)
	for i := 0; i < rows; i++ {
		mags[i] = search.Float32s(src[i*cols : (i+1)*cols]).Magnitude()
	}

	for i := 0; i < rows; i++ {
		ri := src[i*cols : (i+1)*cols]
		vi := search.Float32s(ri)
		for j := i; j < rows; j++ {
			var sim float32
			if mags[i] == 0 || mags[j] == 0 {
				sim = dense.NaN32
			} else {
				rj := src[j*cols : (j+1)*cols]
				sim = 1 - vi.CosineDistanceWithMagnitudesNeon(rj, mags[i], mags[j])
			}
			dst[i*rows+j] = sim
			dst[j*rows+i] = sim
		}
	}
	return result
}
