package cpu

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/larr-ml/larr/internal/dense"
)

// Ranking replaces each cell with the tie-averaged rank of its value among
// the finite cells of its lane, rescaled by norm. Missing cells stay
// missing. A lane with one finite cell ranks at the midpoint of the scale.
func (cpu *CPUBackend) Ranking(x *dense.Buffer, axis int, norm dense.RankNorm) *dense.Buffer {
	checkFloat64("ranking", x)
	axis = x.Shape().Normalize(axis)
	result := mustNew("ranking", x.Shape(), dense.Float64)
	dst, src := result.AsFloat64(), x.AsFloat64()
	outer, n, inner := laneLayout(x.Shape(), axis)

	order := make([]int, 0, n)
	ranks := make([]float64, n)
	eachLane(outer, n, inner, func(_, start, step int) {
		order = order[:0]
		for j := 0; j < n; j++ {
			if !math.IsNaN(src[start+j*step]) {
				order = append(order, j)
			}
		}
		k := len(order)
		for j := 0; j < n; j++ {
			dst[start+j*step] = dense.NaN
		}
		if k == 0 {
			return
		}
		sort.SliceStable(order, func(a, b int) bool {
			return src[start+order[a]*step] < src[start+order[b]*step]
		})
		tieAverage(src, start, step, order, ranks)
		for i, j := range order {
			dst[start+j*step] = normalizeRank(ranks[i], k, n, norm)
		}
	})
	return result
}

// tieAverage writes the tie-averaged 0-based rank of order[i] into
// ranks[i]. order must be sorted by value.
func tieAverage(src []float64, start, step int, order []int, ranks []float64) {
	k := len(order)
	for i := 0; i < k; {
		j := i + 1
		v := src[start+order[i]*step]
		for j < k && src[start+order[j]*step] == v {
			j++
		}
		avg := float64(i+j-1) / 2
		for t := i; t < j; t++ {
			ranks[t] = avg
		}
		i = j
	}
}

// normalizeRank rescales a 0-based rank among k finite cells of a lane
// with extent n.
func normalizeRank(rank float64, k, n int, norm dense.RankNorm) float64 {
	switch norm {
	case dense.RankCentered:
		if k == 1 {
			return 0
		}
		return 2*rank/float64(k-1) - 1
	case dense.RankZeroN:
		if k == 1 {
			return float64(n-1) / 2
		}
		return rank * float64(n-1) / float64(k-1)
	case dense.RankGaussian:
		return distuv.UnitNormal.Quantile((rank + 1) / float64(k+1))
	default:
		panic(fmt.Sprintf("ranking: unknown norm %q", norm))
	}
}

// Quantile converts each column of a matrix into bin numbers 1..q by
// value rank, then rescales the bins to [-1, 1]. Rank thresholds sit at
// multiples of (count-1)/q, which makes leading bins one cell larger
// when the count does not divide evenly. Ties are broken by row order.
// Missing cells stay missing.
func (cpu *CPUBackend) Quantile(x *dense.Buffer, q int) *dense.Buffer {
	checkFloat64("quantile", x)
	check2d("quantile", x)
	if q < 2 {
		panic(fmt.Sprintf("quantile: q must be greater than one, got %d", q))
	}
	rows, cols := x.Shape()[0], x.Shape()[1]
	result := x.Clone()
	dst := result.AsFloat64()

	half := (float64(q) - 1) / 2
	order := make([]int, 0, rows)
	for c := 0; c < cols; c++ {
		order = order[:0]
		for r := 0; r < rows; r++ {
			if !math.IsNaN(dst[r*cols+c]) {
				order = append(order, r)
			}
		}
		if len(order) == 0 {
			continue
		}
		sort.SliceStable(order, func(a, b int) bool {
			return dst[order[a]*cols+c] < dst[order[b]*cols+c]
		})

		step := float64(len(order)-1) / float64(q)
		for rank, r := range order {
			bin := q
			for j := 1; j < q; j++ {
				if float64(rank) <= float64(j)*step {
					bin = j
					break
				}
			}
			dst[r*cols+c] = (float64(bin) - (float64(q)+1)/2) / half
		}
	}
	return result
}

// LastRank ranks each row's final cell among the row's finite cells,
// normalized to [-1, 1]. The result is one column wide.
func (cpu *CPUBackend) LastRank(x *dense.Buffer) *dense.Buffer {
	checkFloat64("lastrank", x)
	check2d("lastrank", x)
	rows, cols := x.Shape()[0], x.Shape()[1]
	result := mustNew("lastrank", dense.Shape{rows, 1}, dense.Float64)
	dst, src := result.AsFloat64(), x.AsFloat64()
	for r := 0; r < rows; r++ {
		dst[r] = lastRankValue(src[r*cols : (r+1)*cols])
	}
	return result
}
