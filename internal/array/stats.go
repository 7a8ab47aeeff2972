package array

import (
	"fmt"

	"github.com/larr-ml/larr/internal/dense"
)

// RankNorm re-exports the rank normalization selector.
type RankNorm = dense.RankNorm

// Supported rank normalizations.
const (
	RankZeroN    = dense.RankZeroN
	RankCentered = dense.RankCentered
	RankGaussian = dense.RankGaussian
)

// Statistics are NaN-aware and always produce Float64 (CosineSimilarity
// produces Float32). Integer and bool input widens first.

// Demean subtracts the mean of each lane along axis. On a 1d array the
// single lane is the whole array.
func (a *Array) Demean(axis int) *Array {
	return a.center(axis, a.bk.MeanAll, a.bk.MeanDim)
}

// DemeanAll subtracts the global mean from every cell.
func (a *Array) DemeanAll() *Array {
	x := castTo(a.bk, a.nonBool(), dense.Float64)
	return newArray(a.bk.SubScalar(x, a.bk.MeanAll(x)), copyLabels(a.labels), a.bk)
}

// Demedian subtracts the median of each lane along axis.
func (a *Array) Demedian(axis int) *Array {
	return a.center(axis, a.bk.MedianAll, a.bk.MedianDim)
}

// DemedianAll subtracts the global median from every cell.
func (a *Array) DemedianAll() *Array {
	x := castTo(a.bk, a.nonBool(), dense.Float64)
	return newArray(a.bk.SubScalar(x, a.bk.MedianAll(x)), copyLabels(a.labels), a.bk)
}

func (a *Array) center(axis int, all func(*dense.Buffer) float64,
	dim func(*dense.Buffer, int) *dense.Buffer,
) *Array {
	ax := a.buf.Shape().Normalize(axis)
	x := castTo(a.bk, a.nonBool(), dense.Float64)
	if a.NDim() == 1 {
		return newArray(a.bk.SubScalar(x, all(x)), copyLabels(a.labels), a.bk)
	}
	return newArray(a.bk.SubAlong(x, dim(x, ax), ax), copyLabels(a.labels), a.bk)
}

// Zscore demeans each lane along axis and divides by the lane's standard
// deviation. A constant lane has deviation zero and comes back non-finite.
func (a *Array) Zscore(axis int) *Array {
	ax := a.buf.Shape().Normalize(axis)
	x := castTo(a.bk, a.nonBool(), dense.Float64)
	if a.NDim() == 1 {
		centered := a.bk.SubScalar(x, a.bk.MeanAll(x))
		return newArray(a.bk.DivScalar(centered, a.bk.StdAll(x)), copyLabels(a.labels), a.bk)
	}
	centered := a.bk.SubAlong(x, a.bk.MeanDim(x, ax), ax)
	return newArray(a.bk.DivAlong(centered, a.bk.StdDim(x, ax), ax), copyLabels(a.labels), a.bk)
}

// ZscoreAll demeans by the global mean and divides by the global
// standard deviation.
func (a *Array) ZscoreAll() *Array {
	x := castTo(a.bk, a.nonBool(), dense.Float64)
	centered := a.bk.SubScalar(x, a.bk.MeanAll(x))
	return newArray(a.bk.DivScalar(centered, a.bk.StdAll(x)), copyLabels(a.labels), a.bk)
}

// MovingSum computes the trailing-window sum along an axis, skipping
// missing cells. With norm, short windows rescale by window/(finite
// count). Shape and labels are unchanged; the first window-1 positions
// of each lane have no complete window and come back missing.
func (a *Array) MovingSum(window, axis int, norm bool) (*Array, error) {
	ax, err := a.checkWindow("movingsum", window, axis)
	if err != nil {
		return nil, err
	}
	x := castTo(a.bk, a.nonBool(), dense.Float64)
	return newArray(a.bk.MovingSum(x, window, ax, norm), copyLabels(a.labels), a.bk), nil
}

// MovingRank ranks the newest cell of each trailing window among the
// window's finite cells, normalized to [-1, 1], with the same
// shape-preserving, leading-missing layout as MovingSum. A newest cell
// that is missing or has no finite peers ranks as missing.
func (a *Array) MovingRank(window, axis int) (*Array, error) {
	ax, err := a.checkWindow("movingrank", window, axis)
	if err != nil {
		return nil, err
	}
	x := castTo(a.bk, a.nonBool(), dense.Float64)
	return newArray(a.bk.MovingRank(x, window, ax), copyLabels(a.labels), a.bk), nil
}

func (a *Array) checkWindow(op string, window, axis int) (int, error) {
	ax := a.buf.Shape().Normalize(axis)
	if extent := a.buf.Shape()[ax]; window < 1 || window > extent {
		return 0, fmt.Errorf("%s: window %d outside 1..%d", op, window, extent)
	}
	return ax, nil
}

// Ranking ranks the cells of each lane along an axis, averaging ties,
// and rescales the ranks by norm. Missing cells stay missing and do not
// occupy a rank.
func (a *Array) Ranking(axis int, norm RankNorm) (*Array, error) {
	switch norm {
	case RankZeroN, RankCentered, RankGaussian:
	default:
		return nil, fmt.Errorf("ranking: unknown norm %q", norm)
	}
	ax := a.buf.Shape().Normalize(axis)
	x := castTo(a.bk, a.nonBool(), dense.Float64)
	return newArray(a.bk.Ranking(x, ax, norm), copyLabels(a.labels), a.bk), nil
}

// Quantile converts each column of a 2d array into quantile bin numbers
// 1..q by rank, leading bins larger on uneven splits and ties broken by
// row order, then rescales the bins to [-1, 1].
func (a *Array) Quantile(q int) (*Array, error) {
	if a.NDim() != 2 {
		return nil, &ShapeIncompatibleError{Op: "quantile", Want: 2, Got: a.NDim()}
	}
	if q < 2 {
		return nil, fmt.Errorf("quantile: q must be greater than one, got %d", q)
	}
	x := castTo(a.bk, a.nonBool(), dense.Float64)
	return newArray(a.bk.Quantile(x, q), copyLabels(a.labels), a.bk), nil
}

// Cov computes the missing-aware covariance matrix of the rows of a 2d
// array. The rows are assumed to already have zero mean; each entry
// averages the products over the columns where both rows are finite. The
// row labels are used on both axes of the result.
func (a *Array) Cov() (*Array, error) {
	if a.NDim() != 2 {
		return nil, &ShapeIncompatibleError{Op: "cov", Want: 2, Got: a.NDim()}
	}
	x := castTo(a.bk, a.nonBool(), dense.Float64)
	labels := [][]Label{copyLabelList(a.labels[0]), copyLabelList(a.labels[0])}
	return newArray(a.bk.CovMissing(x), labels, a.bk), nil
}

// CosineSimilarity computes the pairwise cosine similarity of the rows
// of a 2d array, with missing cells treated as 0. The computation runs
// on float32 through the SIMD search kernels, so expect float32
// precision in the result; a zero-magnitude row has no direction and
// its similarities are missing. The row labels are used on both axes.
func (a *Array) CosineSimilarity() (*Array, error) {
	if a.NDim() != 2 {
		return nil, &ShapeIncompatibleError{Op: "cossim", Want: 2, Got: a.NDim()}
	}
	x := a.bk.Cast(a.buf, dense.Float32)
	a.bk.FillMissing(x, 0)
	labels := [][]Label{copyLabelList(a.labels[0]), copyLabelList(a.labels[0])}
	return newArray(a.bk.CosineSim(x), labels, a.bk), nil
}

// LastRank ranks each row's final cell among the row's finite cells,
// normalized to [-1, 1], missing when the final cell is missing or has
// no finite peers. The result keeps one column, labeled with the last
// column label.
func (a *Array) LastRank() (*Array, error) {
	if a.NDim() != 2 {
		return nil, &ShapeIncompatibleError{Op: "lastrank", Want: 2, Got: a.NDim()}
	}
	x := castTo(a.bk, a.nonBool(), dense.Float64)
	cols := a.labels[1]
	labels := [][]Label{copyLabelList(a.labels[0]), {cols[len(cols)-1]}}
	return newArray(a.bk.LastRank(x), labels, a.bk), nil
}
