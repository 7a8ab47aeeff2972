package dense

// RankNorm selects how Ranking rescales tie-averaged ranks.
type RankNorm string

// Supported rank normalizations.
const (
	// RankZeroN spreads ranks over [0, N-1] where N is the axis extent.
	RankZeroN RankNorm = "0,N-1"
	// RankCentered spreads ranks over [-1, 1].
	RankCentered RankNorm = "-1,1"
	// RankGaussian maps rank quantiles through the unit normal quantile
	// function.
	RankGaussian RankNorm = "gaussian"
)

// Backend is the compute interface the labeled layer programs against.
//
// Backends are mechanical: the caller is responsible for handing in buffers
// of the shapes and dtypes a kernel supports, and backends panic on
// violations instead of returning errors. All kernels allocate fresh result
// buffers; only FillMissing mutates its argument. Kernels that skip missing
// cells treat NaN as the missing sentinel.
type Backend interface {
	// Name identifies the backend ("cpu").
	Name() string

	// Elementwise arithmetic over same-shape, same-dtype buffers.
	// Div requires floating operands.
	Add(a, b *Buffer) *Buffer
	Sub(a, b *Buffer) *Buffer
	Mul(a, b *Buffer) *Buffer
	Div(a, b *Buffer) *Buffer

	// Elementwise comparisons over same-shape, same-dtype numeric buffers.
	// Results are Bool. Comparisons involving NaN are false, including
	// Equal(NaN, NaN).
	Equal(a, b *Buffer) *Buffer
	NotEqual(a, b *Buffer) *Buffer
	Greater(a, b *Buffer) *Buffer
	GreaterEqual(a, b *Buffer) *Buffer
	Lower(a, b *Buffer) *Buffer
	LowerEqual(a, b *Buffer) *Buffer

	// Logical kernels over Bool buffers. Truthy converts any numeric
	// buffer to Bool: non-zero is true and NaN is true.
	And(a, b *Buffer) *Buffer
	Or(a, b *Buffer) *Buffer
	Not(x *Buffer) *Buffer
	Truthy(x *Buffer) *Buffer

	// Scalar arithmetic. Integer buffers require an integral scalar;
	// callers widen to Float64 otherwise.
	AddScalar(x *Buffer, s float64) *Buffer
	SubScalar(x *Buffer, s float64) *Buffer
	MulScalar(x *Buffer, s float64) *Buffer
	DivScalar(x *Buffer, s float64) *Buffer

	// Unary kernels. Exp, Log, Sqrt, Power, and Clip require floating
	// input; domain violations produce NaN, never panics. CumSum and
	// CumProd skip missing cells: the running total ignores them and the
	// output keeps NaN in their place.
	Neg(x *Buffer) *Buffer
	Abs(x *Buffer) *Buffer
	Sign(x *Buffer) *Buffer
	Exp(x *Buffer) *Buffer
	Log(x *Buffer) *Buffer
	Sqrt(x *Buffer) *Buffer
	Power(x *Buffer, q float64) *Buffer
	Clip(x *Buffer, lo, hi float64) *Buffer
	IsNaN(x *Buffer) *Buffer
	IsFinite(x *Buffer) *Buffer
	IsInf(x *Buffer) *Buffer
	CumSum(x *Buffer, axis int) *Buffer
	CumProd(x *Buffer, axis int) *Buffer

	// Full reductions, skipping missing cells. SumAll of no finite cells
	// is 0 and ProdAll is 1; the others degrade to NaN. AnyAll and AllAll
	// take Bool input.
	SumAll(x *Buffer) float64
	ProdAll(x *Buffer) float64
	MeanAll(x *Buffer) float64
	MedianAll(x *Buffer) float64
	StdAll(x *Buffer) float64
	VarAll(x *Buffer) float64
	MinAll(x *Buffer) float64
	MaxAll(x *Buffer) float64
	AnyAll(x *Buffer) bool
	AllAll(x *Buffer) bool
	CountFinite(x *Buffer) int

	// Axis reductions: the axis is dropped from the result shape.
	// Sum/Prod/Min/Max preserve the input dtype; Mean/Median/Std/Var
	// require Float64 input. AnyDim and AllDim take Bool input.
	SumDim(x *Buffer, axis int) *Buffer
	ProdDim(x *Buffer, axis int) *Buffer
	MeanDim(x *Buffer, axis int) *Buffer
	MedianDim(x *Buffer, axis int) *Buffer
	StdDim(x *Buffer, axis int) *Buffer
	VarDim(x *Buffer, axis int) *Buffer
	MinDim(x *Buffer, axis int) *Buffer
	MaxDim(x *Buffer, axis int) *Buffer
	AnyDim(x *Buffer, axis int) *Buffer
	AllDim(x *Buffer, axis int) *Buffer

	// Structural kernels. Take gathers idx positions along axis; an index
	// of -1 writes the missing sentinel and requires floating dtype.
	// Where selects x where cond is true, else y. FillMissing overwrites
	// missing cells in place.
	Take(x *Buffer, axis int, idx []int) *Buffer
	Where(cond, x, y *Buffer) *Buffer
	Full(shape Shape, dtype DataType, v float64) *Buffer
	Cast(x *Buffer, dtype DataType) *Buffer
	Transpose(x *Buffer, axes []int) *Buffer
	FillMissing(x *Buffer, v float64)

	// Statistics kernels over Float64 buffers (CosineSim takes Float32).
	// SubAlong and DivAlong combine x with a reduced buffer v whose shape
	// is x's with axis dropped. Moving windows keep the input shape and
	// leave the first window-1 positions of each lane missing. Group
	// kernels take one group id per row, -1 for rows without a group.
	SubAlong(x, v *Buffer, axis int) *Buffer
	DivAlong(x, v *Buffer, axis int) *Buffer
	MovingSum(x *Buffer, window, axis int, norm bool) *Buffer
	MovingRank(x *Buffer, window, axis int) *Buffer
	Ranking(x *Buffer, axis int, norm RankNorm) *Buffer
	Quantile(x *Buffer, q int) *Buffer
	CovMissing(x *Buffer) *Buffer
	CosineSim(x *Buffer) *Buffer
	LastRank(x *Buffer) *Buffer
	GroupMean(x *Buffer, groups []int) *Buffer
	GroupMedian(x *Buffer, groups []int) *Buffer
	GroupRanking(x *Buffer, groups []int) *Buffer
	Push(x *Buffer, window, axis int) *Buffer
}
