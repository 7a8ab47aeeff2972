package cpu

import (
	"github.com/larr-ml/larr/internal/dense"
	"github.com/larr-ml/larr/internal/parallel"
)

// Transpose permutes the axes of a buffer and materializes the result in
// row-major order. axes must be a permutation of the buffer's axes.
func (cpu *CPUBackend) Transpose(x *dense.Buffer, axes []int) *dense.Buffer {
	outShape := x.Shape().Permute(axes)
	result := mustNew("transpose", outShape, x.DType())

	// Stride of output axis k in the source: the source stride of the
	// axis it came from.
	srcStrides := x.Strides()
	permStrides := make([]int, len(axes))
	for k, ax := range axes {
		permStrides[k] = srcStrides[x.Shape().Normalize(ax)]
	}
	outStrides := outShape.ComputeStrides()

	size := x.DType().Size()
	src, dst := x.Data(), result.Data()
	n := outShape.NumElements()

	parallel.ForRange(n, func(start, end int) {
		for o := start; o < end; o++ {
			rem, s := o, 0
			for k := 0; k < len(outStrides); k++ {
				c := rem / outStrides[k]
				rem -= c * outStrides[k]
				s += c * permStrides[k]
			}
			copy(dst[o*size:(o+1)*size], src[s*size:(s+1)*size])
		}
	}, cpu.par)

	return result
}
