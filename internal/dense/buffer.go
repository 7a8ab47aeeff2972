package dense

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unsafe"
)

// Buffer is the low-level dense storage: a flat byte slice interpreted
// through a shape, row-major strides, and a runtime element type.
//
// Buffers are value-like. Operations allocate fresh buffers; Clone deep
// copies. There is no view or copy-on-write machinery: a labeled array
// hands out whole results, never aliased slices of its storage.
type Buffer struct {
	data   []byte
	shape  Shape
	stride []int
	dtype  DataType
}

// New creates a zero-filled buffer with the given shape and element type.
func New(shape Shape, dtype DataType) (*Buffer, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	return &Buffer{
		data:   make([]byte, shape.NumElements()*dtype.Size()),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  dtype,
	}, nil
}

// FromSlice copy-constructs a buffer from a flat row-major slice.
// The slice length must match the shape's element count.
func FromSlice[T DType](data []T, shape Shape) (*Buffer, error) {
	b, err := New(shape, TypeOf[T]())
	if err != nil {
		return nil, err
	}
	if len(data) != b.NumElements() {
		return nil, fmt.Errorf("data has %d elements, shape %v wants %d",
			len(data), shape, b.NumElements())
	}
	copy(unsafe.Slice((*T)(unsafe.Pointer(&b.data[0])), len(data)), data)
	return b, nil
}

// FromFloat64s copy-constructs a Float64 buffer from a flat slice.
func FromFloat64s(data []float64, shape Shape) (*Buffer, error) {
	return FromSlice(data, shape)
}

// FromFloat32s copy-constructs a Float32 buffer from a flat slice.
func FromFloat32s(data []float32, shape Shape) (*Buffer, error) {
	return FromSlice(data, shape)
}

// FromInt64s copy-constructs an Int64 buffer from a flat slice.
func FromInt64s(data []int64, shape Shape) (*Buffer, error) {
	return FromSlice(data, shape)
}

// FromInt32s copy-constructs an Int32 buffer from a flat slice.
func FromInt32s(data []int32, shape Shape) (*Buffer, error) {
	return FromSlice(data, shape)
}

// FromBools copy-constructs a Bool buffer from a flat slice.
func FromBools(data []bool, shape Shape) (*Buffer, error) {
	return FromSlice(data, shape)
}

// Shape returns the buffer's shape. Callers must not modify it.
func (b *Buffer) Shape() Shape {
	return b.shape
}

// Strides returns the buffer's row-major strides.
func (b *Buffer) Strides() []int {
	return b.stride
}

// DType returns the buffer's element type.
func (b *Buffer) DType() DataType {
	return b.dtype
}

// NDim returns the number of axes.
func (b *Buffer) NDim() int {
	return len(b.shape)
}

// NumElements returns the total number of elements.
func (b *Buffer) NumElements() int {
	return b.shape.NumElements()
}

// ByteSize returns the total storage size in bytes.
func (b *Buffer) ByteSize() int {
	return len(b.data)
}

// Data returns the raw byte slice.
// WARNING: direct access to underlying memory. Use with caution.
func (b *Buffer) Data() []byte {
	return b.data
}

// AsFloat32 interprets the data as []float32.
// Panics if the buffer's dtype is not Float32.
func (b *Buffer) AsFloat32() []float32 {
	if b.dtype != Float32 {
		panic(fmt.Sprintf("buffer dtype is %s, not float32", b.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*float32)(unsafe.Pointer(&b.data[0])), b.NumElements())
}

// AsFloat64 interprets the data as []float64.
// Panics if the buffer's dtype is not Float64.
func (b *Buffer) AsFloat64() []float64 {
	if b.dtype != Float64 {
		panic(fmt.Sprintf("buffer dtype is %s, not float64", b.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*float64)(unsafe.Pointer(&b.data[0])), b.NumElements())
}

// AsInt32 interprets the data as []int32.
// Panics if the buffer's dtype is not Int32.
func (b *Buffer) AsInt32() []int32 {
	if b.dtype != Int32 {
		panic(fmt.Sprintf("buffer dtype is %s, not int32", b.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*int32)(unsafe.Pointer(&b.data[0])), b.NumElements())
}

// AsInt64 interprets the data as []int64.
// Panics if the buffer's dtype is not Int64.
func (b *Buffer) AsInt64() []int64 {
	if b.dtype != Int64 {
		panic(fmt.Sprintf("buffer dtype is %s, not int64", b.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*int64)(unsafe.Pointer(&b.data[0])), b.NumElements())
}

// AsBool interprets the data as []bool.
// Panics if the buffer's dtype is not Bool.
func (b *Buffer) AsBool() []bool {
	if b.dtype != Bool {
		panic(fmt.Sprintf("buffer dtype is %s, not bool", b.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*bool)(unsafe.Pointer(&b.data[0])), b.NumElements())
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	out := &Buffer{
		data:   make([]byte, len(b.data)),
		shape:  b.shape.Clone(),
		stride: append([]int(nil), b.stride...),
		dtype:  b.dtype,
	}
	copy(out.data, b.data)
	return out
}

// Reshape returns a buffer with the same data viewed under a new shape.
// The element count must match; the data is shared, not copied.
func (b *Buffer) Reshape(shape Shape) *Buffer {
	if err := shape.Validate(); err != nil {
		panic(fmt.Sprintf("reshape: %v", err))
	}
	if shape.NumElements() != b.NumElements() {
		panic(fmt.Sprintf("reshape: cannot view %d elements as %v", b.NumElements(), shape))
	}
	return &Buffer{
		data:   b.data,
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  b.dtype,
	}
}

// Equal reports whether two buffers have the same shape, dtype, and bytes.
// NaN cells compare byte-wise, so NaN == NaN here.
func (b *Buffer) Equal(other *Buffer) bool {
	if b.dtype != other.dtype || !b.shape.Equal(other.shape) {
		return false
	}
	return string(b.data) == string(other.data)
}

// FlatIndex converts per-axis indices to a linear offset. Panics when an
// index is out of range.
func (b *Buffer) FlatIndex(idx ...int) int {
	if len(idx) != len(b.shape) {
		panic(fmt.Sprintf("got %d indices for %d axes", len(idx), len(b.shape)))
	}
	flat := 0
	for i, x := range idx {
		if x < 0 || x >= b.shape[i] {
			panic(fmt.Sprintf("index %d out of range for axis %d (extent %d)", x, i, b.shape[i]))
		}
		flat += x * b.stride[i]
	}
	return flat
}

// FloatAt returns the element at the linear offset, widened to float64.
// Bool cells read as 0 or 1.
func (b *Buffer) FloatAt(i int) float64 {
	switch b.dtype {
	case Float32:
		return float64(b.AsFloat32()[i])
	case Float64:
		return b.AsFloat64()[i]
	case Int32:
		return float64(b.AsInt32()[i])
	case Int64:
		return float64(b.AsInt64()[i])
	case Bool:
		if b.AsBool()[i] {
			return 1
		}
		return 0
	default:
		panic("unknown data type")
	}
}

// SetFloatAt stores a float64 into the element at the linear offset,
// narrowing to the buffer's dtype. Bool cells store v != 0.
func (b *Buffer) SetFloatAt(i int, v float64) {
	switch b.dtype {
	case Float32:
		b.AsFloat32()[i] = float32(v)
	case Float64:
		b.AsFloat64()[i] = v
	case Int32:
		b.AsInt32()[i] = int32(v)
	case Int64:
		b.AsInt64()[i] = int64(v)
	case Bool:
		b.AsBool()[i] = v != 0
	default:
		panic("unknown data type")
	}
}

// String renders the buffer as nested brackets in row-major order, one row
// per line for the innermost two axes, with cells right-aligned to the
// widest cell in the buffer.
func (b *Buffer) String() string {
	cells := make([]string, b.NumElements())
	width := 0
	for i := range cells {
		cells[i] = b.formatCell(i)
		if len(cells[i]) > width {
			width = len(cells[i])
		}
	}
	var sb strings.Builder
	b.render(&sb, cells, width, 0, 0)
	return sb.String()
}

func (b *Buffer) formatCell(i int) string {
	switch b.dtype {
	case Bool:
		return strconv.FormatBool(b.AsBool()[i])
	case Int32:
		return strconv.FormatInt(int64(b.AsInt32()[i]), 10)
	case Int64:
		return strconv.FormatInt(b.AsInt64()[i], 10)
	default:
		v := b.FloatAt(i)
		if math.IsNaN(v) {
			return "NaN"
		}
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
}

// render writes the sub-buffer rooted at axis with base linear offset.
func (b *Buffer) render(sb *strings.Builder, cells []string, width, axis, base int) {
	if axis == len(b.shape)-1 {
		sb.WriteByte('[')
		for i := 0; i < b.shape[axis]; i++ {
			if i > 0 {
				sb.WriteByte(' ')
			}
			cell := cells[base+i*b.stride[axis]]
			for pad := width - len(cell); pad > 0; pad-- {
				sb.WriteByte(' ')
			}
			sb.WriteString(cell)
		}
		sb.WriteByte(']')
		return
	}
	sb.WriteByte('[')
	for i := 0; i < b.shape[axis]; i++ {
		if i > 0 {
			sb.WriteByte('\n')
			for pad := 0; pad <= axis; pad++ {
				sb.WriteByte(' ')
			}
		}
		b.render(sb, cells, width, axis+1, base+i*b.stride[axis])
	}
	sb.WriteByte(']')
}
