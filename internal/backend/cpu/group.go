package cpu

import (
	"math"
	"sort"

	"github.com/larr-ml/larr/internal/dense"
)

// Group kernels partition the rows of a matrix by group id and replace
// each cell with a statistic of its group within its column. groups holds
// one id per row; rows with id -1 belong to no group and come back all
// missing.

// GroupMean replaces each cell by the mean of its column over the rows in
// the same group.
func (cpu *CPUBackend) GroupMean(x *dense.Buffer, groups []int) *dense.Buffer {
	return cpu.groupFold("groupmean", x, groups, func(vals []float64) float64 {
		acc, cnt := 0.0, 0
		for _, v := range vals {
			if math.IsNaN(v) {
				continue
			}
			acc += v
			cnt++
		}
		if cnt == 0 {
			return dense.NaN
		}
		return acc / float64(cnt)
	})
}

// GroupMedian replaces each cell by the median of its column over the rows
// in the same group.
func (cpu *CPUBackend) GroupMedian(x *dense.Buffer, groups []int) *dense.Buffer {
	scratch := make([]float64, 0, 16)
	return cpu.groupFold("groupmedian", x, groups, func(vals []float64) float64 {
		scratch = scratch[:0]
		for _, v := range vals {
			if !math.IsNaN(v) {
				scratch = append(scratch, v)
			}
		}
		return medianInPlace(scratch)
	})
}

func (cpu *CPUBackend) groupFold(op string, x *dense.Buffer, groups []int, fold func([]float64) float64) *dense.Buffer {
	checkFloat64(op, x)
	check2d(op, x)
	rows, cols := x.Shape()[0], x.Shape()[1]
	checkGroups(op, groups, rows)

	result := cpu.Full(x.Shape(), dense.Float64, dense.NaN)
	dst, src := result.AsFloat64(), x.AsFloat64()

	vals := make([]float64, 0, rows)
	for _, members := range groupMembers(groups) {
		for c := 0; c < cols; c++ {
			vals = vals[:0]
			for _, r := range members {
				vals = append(vals, src[r*cols+c])
			}
			stat := fold(vals)
			for _, r := range members {
				dst[r*cols+c] = stat
			}
		}
	}
	return result
}

// GroupRanking ranks each cell within its group's column, tie-averaged and
// normalized to [-1, 1].
func (cpu *CPUBackend) GroupRanking(x *dense.Buffer, groups []int) *dense.Buffer {
	checkFloat64("groupranking", x)
	check2d("groupranking", x)
	rows, cols := x.Shape()[0], x.Shape()[1]
	checkGroups("groupranking", groups, rows)

	result := cpu.Full(x.Shape(), dense.Float64, dense.NaN)
	dst, src := result.AsFloat64(), x.AsFloat64()

	for _, members := range groupMembers(groups) {
		for c := 0; c < cols; c++ {
			order := make([]int, 0, len(members))
			for _, r := range members {
				if !math.IsNaN(src[r*cols+c]) {
					order = append(order, r)
				}
			}
			k := len(order)
			if k == 0 {
				continue
			}
			sort.SliceStable(order, func(a, b int) bool {
				return src[order[a]*cols+c] < src[order[b]*cols+c]
			})
			for i := 0; i < k; {
				j := i + 1
				v := src[order[i]*cols+c]
				for j < k && src[order[j]*cols+c] == v {
					j++
				}
				rank := float64(i+j-1) / 2
				norm := 0.0
				if k > 1 {
					norm = 2*rank/float64(k-1) - 1
				}
				for t := i; t < j; t++ {
					dst[order[t]*cols+c] = norm
				}
				i = j
			}
		}
	}
	return result
}

// groupMembers collects row indices per group id, in first-seen order.
// Rows with id -1 are left out.
func groupMembers(groups []int) [][]int {
	index := make(map[int]int)
	var members [][]int
	for r, g := range groups {
		if g < 0 {
			continue
		}
		i, ok := index[g]
		if !ok {
			i = len(members)
			index[g] = i
			members = append(members, nil)
		}
		members[i] = append(members[i], r)
	}
	return members
}

func checkGroups(op string, groups []int, rows int) {
	if len(groups) != rows {
		panic(op + ": group ids must cover every row")
	}
}
