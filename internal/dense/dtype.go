// Package dense provides the dense n-dimensional buffer engine that labeled
// arrays compute on: shapes, runtime element types, raw storage, and the
// Backend interface implemented by compute backends.
package dense

//go:generate go tool stringer -type=DataType -linecomment -output=dtype_string.go

// DType is a constraint for element types a Buffer can be built from.
type DType interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~bool
}

// DataType carries runtime type information for buffers.
type DataType int

// Supported element types.
const (
	Float32 DataType = iota // float32
	Float64                 // float64
	Int32                   // int32
	Int64                   // int64
	Bool                    // bool
)

// Size returns the byte size of one element.
func (dt DataType) Size() int {
	switch dt {
	case Float32, Int32:
		return 4
	case Float64, Int64:
		return 8
	case Bool:
		return 1
	default:
		panic("unknown data type")
	}
}

// IsFloat reports whether the type is a floating-point type.
func (dt DataType) IsFloat() bool {
	return dt == Float32 || dt == Float64
}

// IsInt reports whether the type is an integer type.
func (dt DataType) IsInt() bool {
	return dt == Int32 || dt == Int64
}

// Promote returns the common type two operands are widened to before an
// arithmetic or comparison kernel runs.
//
// The rules follow the usual numeric tower: Float64 absorbs everything,
// Float32 survives only against itself (Float32 with an integer type widens
// to Float64 because int32/int64 values do not fit in a float32 mantissa),
// Int64 absorbs Int32, and Bool promotes to the other operand. Two Bools
// widen to Int64 so that arithmetic on masks counts instead of saturating.
func Promote(a, b DataType) DataType {
	if a == b {
		if a == Bool {
			return Int64
		}
		return a
	}
	if a == Float64 || b == Float64 {
		return Float64
	}
	if a == Float32 || b == Float32 {
		// The non-Float32 side is an integer or bool here.
		other := a
		if a == Float32 {
			other = b
		}
		if other == Bool {
			return Float32
		}
		return Float64
	}
	if a == Bool {
		return b
	}
	if b == Bool {
		return a
	}
	return Int64 // Int32 with Int64
}

// PromoteForMissing returns the type a buffer must have before missing cells
// can be introduced. Floating types keep their width; integers and bools
// widen to Float64, which is the only way to hold the NaN sentinel.
func PromoteForMissing(dt DataType) DataType {
	if dt.IsFloat() {
		return dt
	}
	return Float64
}

// TypeOf infers the DataType for a generic element type.
func TypeOf[T DType]() DataType {
	var zero T
	switch any(zero).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case int32:
		return Int32
	case int64:
		return Int64
	case bool:
		return Bool
	default:
		panic("unsupported type")
	}
}
