package array

import (
	"math"

	"github.com/larr-ml/larr/internal/dense"
)

// Group statistics partition the rows by the group each row label maps
// to, then replace every cell with a statistic of its group within its
// column. The group argument is a 1d array from row labels to numeric
// group values; every row label of the receiver must appear in it. A row
// whose group value is missing belongs to no group and comes back all
// missing.

// GroupMean replaces each cell by its group's column mean.
func (a *Array) GroupMean(group *Array) (*Array, error) {
	return a.groupStat("groupmean", group, a.bk.GroupMean)
}

// GroupMedian replaces each cell by its group's column median.
func (a *Array) GroupMedian(group *Array) (*Array, error) {
	return a.groupStat("groupmedian", group, a.bk.GroupMedian)
}

// GroupRanking ranks each cell within its group's column, tie-averaged
// and normalized to [-1, 1]. Unlike GroupMean and GroupMedian it is 2d
// only.
func (a *Array) GroupRanking(group *Array) (*Array, error) {
	if a.NDim() != 2 {
		return nil, &ShapeIncompatibleError{Op: "groupranking", Want: 2, Got: a.NDim()}
	}
	return a.groupStat("groupranking", group, a.bk.GroupRanking)
}

func (a *Array) groupStat(op string, group *Array, kernel func(x *dense.Buffer, groups []int) *dense.Buffer) (*Array, error) {
	if a.NDim() > 2 {
		return nil, &ShapeIncompatibleError{Op: op, Want: 2, Got: a.NDim()}
	}
	if group.NDim() != 1 {
		return nil, &ShapeIncompatibleError{Op: op, Want: 1, Got: group.NDim()}
	}
	ids, err := a.groupIDs(group)
	if err != nil {
		return nil, err
	}
	x := castTo(a.bk, a.nonBool(), dense.Float64)
	if a.NDim() == 1 {
		// One-column view so the fold sees each row as its own lane.
		wide := kernel(x.Reshape(dense.Shape{x.NumElements(), 1}), ids)
		return newArray(wide.Reshape(a.buf.Shape()), copyLabels(a.labels), a.bk), nil
	}
	return newArray(kernel(x, ids), copyLabels(a.labels), a.bk), nil
}

// groupIDs maps each row of a to a dense group id. Rows sharing a group
// value share an id; a missing group value maps to -1.
func (a *Array) groupIDs(group *Array) ([]int, error) {
	idx := indexByKey(group.labels[0])
	positions := make([]int, len(a.labels[0]))
	for i, v := range a.labels[0] {
		p, ok := idx[keyOf(v)]
		if !ok {
			return nil, &LabelNotFoundError{Axis: 0, Label: v}
		}
		positions[i] = p
	}
	vals := group.Float64s()
	ids := make([]int, len(positions))
	seen := make(map[float64]int)
	for i, p := range positions {
		v := vals[p]
		if math.IsNaN(v) {
			ids[i] = -1
			continue
		}
		id, ok := seen[v]
		if !ok {
			id = len(seen)
			seen[v] = id
		}
		ids[i] = id
	}
	return ids, nil
}
