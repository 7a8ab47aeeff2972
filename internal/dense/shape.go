package dense

import "fmt"

// Shape represents the extents of a buffer, one entry per axis.
type Shape []int

// NumElements returns the total number of elements.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // scalar buffer
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that the shape has at least one axis and that every
// extent is positive. Zero-extent buffers are not representable; callers
// that would produce one must fail before allocating.
func (s Shape) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("shape must have at least one axis")
	}
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid extent at axis %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all extents after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// Normalize resolves an axis index, counting from the end when negative,
// and panics if the result is out of range. Kernels call this at entry so
// that a bad axis fails loudly instead of corrupting an offset.
func (s Shape) Normalize(axis int) int {
	n := len(s)
	if axis < 0 {
		axis += n
	}
	if axis < 0 || axis >= n {
		panic(fmt.Sprintf("axis %d out of range for %d axes", axis, n))
	}
	return axis
}

// Drop returns the shape with the given axis removed.
func (s Shape) Drop(axis int) Shape {
	axis = s.Normalize(axis)
	out := make(Shape, 0, len(s)-1)
	out = append(out, s[:axis]...)
	out = append(out, s[axis+1:]...)
	return out
}

// Permute returns the shape reordered by axes, which must be a permutation
// of 0..len(s)-1.
func (s Shape) Permute(axes []int) Shape {
	if len(axes) != len(s) {
		panic(fmt.Sprintf("permutation has %d axes, shape has %d", len(axes), len(s)))
	}
	seen := make([]bool, len(s))
	out := make(Shape, len(s))
	for i, ax := range axes {
		ax = s.Normalize(ax)
		if seen[ax] {
			panic(fmt.Sprintf("axis %d repeated in permutation", ax))
		}
		seen[ax] = true
		out[i] = s[ax]
	}
	return out
}
