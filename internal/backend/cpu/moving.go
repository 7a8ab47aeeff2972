package cpu

import (
	"fmt"
	"math"

	"github.com/larr-ml/larr/internal/dense"
)

// MovingSum computes trailing-window sums along axis, skipping missing
// cells. The output keeps the input shape; the first window-1 positions
// of each lane have no complete window and come back missing. With norm,
// each sum is rescaled by window/(finite count), so windows with gaps
// keep a comparable magnitude. A window with no finite cells produces
// NaN.
func (cpu *CPUBackend) MovingSum(x *dense.Buffer, window, axis int, norm bool) *dense.Buffer {
	checkFloat64("movingsum", x)
	axis = x.Shape().Normalize(axis)
	outer, n, inner := laneLayout(x.Shape(), axis)
	checkWindow("movingsum", window, n)

	result := mustNew("movingsum", x.Shape(), dense.Float64)
	dst, src := result.AsFloat64(), x.AsFloat64()

	eachLane(outer, n, inner, func(_, start, step int) {
		for j := 0; j < window-1; j++ {
			dst[start+j*step] = dense.NaN
		}
		for j := window - 1; j < n; j++ {
			sum, cnt := 0.0, 0
			for w := j - window + 1; w <= j; w++ {
				v := src[start+w*step]
				if math.IsNaN(v) {
					continue
				}
				sum += v
				cnt++
			}
			switch {
			case cnt == 0:
				dst[start+j*step] = dense.NaN
			case norm:
				dst[start+j*step] = sum * float64(window) / float64(cnt)
			default:
				dst[start+j*step] = sum
			}
		}
	})
	return result
}

// MovingRank ranks the newest cell of each trailing window among the
// window's finite cells, normalized to [-1, 1]. The output keeps the
// input shape with the first window-1 positions missing. A window whose
// newest cell is its only finite cell ranks as missing.
func (cpu *CPUBackend) MovingRank(x *dense.Buffer, window, axis int) *dense.Buffer {
	checkFloat64("movingrank", x)
	axis = x.Shape().Normalize(axis)
	outer, n, inner := laneLayout(x.Shape(), axis)
	checkWindow("movingrank", window, n)

	result := mustNew("movingrank", x.Shape(), dense.Float64)
	dst, src := result.AsFloat64(), x.AsFloat64()

	vals := make([]float64, window)
	eachLane(outer, n, inner, func(_, start, step int) {
		for j := 0; j < window-1; j++ {
			dst[start+j*step] = dense.NaN
		}
		for j := window - 1; j < n; j++ {
			for w := 0; w < window; w++ {
				vals[w] = src[start+(j-window+1+w)*step]
			}
			dst[start+j*step] = lastRankValue(vals)
		}
	})
	return result
}

// Push forward-fills missing cells along axis from the most recent finite
// cell, at most window slots back. A window of 0 fills nothing.
func (cpu *CPUBackend) Push(x *dense.Buffer, window, axis int) *dense.Buffer {
	checkFloat64("push", x)
	if window < 0 {
		panic(fmt.Sprintf("push: negative window %d", window))
	}
	axis = x.Shape().Normalize(axis)
	result := x.Clone()
	dst := result.AsFloat64()
	outer, n, inner := laneLayout(x.Shape(), axis)

	eachLane(outer, n, inner, func(_, start, step int) {
		lastVal, lastIdx := dense.NaN, -1
		for j := 0; j < n; j++ {
			v := dst[start+j*step]
			if !math.IsNaN(v) {
				lastVal, lastIdx = v, j
				continue
			}
			if lastIdx >= 0 && j-lastIdx <= window {
				dst[start+j*step] = lastVal
			}
		}
	})
	return result
}

// lastRankValue ranks the final entry of vals among the finite entries,
// tie-averaged and normalized to [-1, 1]. The rank is missing when the
// final entry is missing or has no finite peers.
func lastRankValue(vals []float64) float64 {
	last := vals[len(vals)-1]
	if math.IsNaN(last) {
		return dense.NaN
	}
	below, equal, cnt := 0, 0, 0
	for _, v := range vals {
		if math.IsNaN(v) {
			continue
		}
		cnt++
		switch {
		case v < last:
			below++
		case v == last:
			equal++
		}
	}
	if cnt <= 1 {
		return dense.NaN
	}
	rank := float64(below) + 0.5*float64(equal-1)
	return 2*rank/float64(cnt-1) - 1
}

func checkWindow(op string, window, extent int) {
	if window < 1 || window > extent {
		panic(fmt.Sprintf("%s: window %d out of range for extent %d", op, window, extent))
	}
}
