package dense

import "math"

// NaN is the missing-value sentinel for Float64 buffers. A missing cell is
// any cell whose value is NaN; there is no mask plane.
var NaN = math.NaN()

// NaN32 is the missing-value sentinel for Float32 buffers.
var NaN32 = float32(math.NaN())

// IsMissing reports whether v is the missing-value sentinel.
func IsMissing(v float64) bool {
	return math.IsNaN(v)
}
