// Copyright 2026 The larr Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/larr-ml/larr/array"
	"github.com/larr-ml/larr/backend/cpu"
	"github.com/larr-ml/larr/dense"
)

// TestBackendInterface verifies the CPU backend satisfies dense.Backend.
func TestBackendInterface(_ *testing.T) {
	var _ dense.Backend = (*cpu.Backend)(nil)
}

// TestCreationFunctions verifies the facade constructors build working
// arrays.
func TestCreationFunctions(t *testing.T) {
	backend := cpu.New()

	t.Run("FromVector", func(t *testing.T) {
		a, err := array.FromVector([]float64{1, 2}, []array.Label{"a", "b"}, backend)
		require.NoError(t, err)
		assert.Equal(t, dense.Shape{2}, a.Shape())
		assert.Equal(t, dense.Float64, a.DType())
	})

	t.Run("FromMatrix", func(t *testing.T) {
		a, err := array.FromMatrix([][]float64{{1, 2}, {3, 4}},
			[]array.Label{"r0", "r1"}, []array.Label{"c0", "c1"}, backend)
		require.NoError(t, err)
		assert.Equal(t, dense.Shape{2, 2}, a.Shape())
		assert.Equal(t, []array.Label{"r0", "r1"}, a.Labels(0))
	})

	t.Run("FromSlice", func(t *testing.T) {
		a, err := array.FromSlice([]int64{1, 2, 3}, dense.Shape{3}, nil, backend)
		require.NoError(t, err)
		assert.Equal(t, dense.Int64, a.DType())
	})

	t.Run("New", func(t *testing.T) {
		buf, err := dense.FromFloat64s([]float64{5}, dense.Shape{1})
		require.NoError(t, err)
		a, err := array.New(buf, nil, backend)
		require.NoError(t, err)
		assert.Equal(t, []array.Label{0}, a.Labels(0))
	})
}

// TestAlignedAdd verifies label alignment through the public API.
func TestAlignedAdd(t *testing.T) {
	backend := cpu.New()
	x, err := array.FromVector([]float64{1, 2, 3},
		[]array.Label{"ibm", "msft", "goog"}, backend)
	require.NoError(t, err)
	y, err := array.FromVector([]float64{10, 20},
		[]array.Label{"goog", "ibm"}, backend)
	require.NoError(t, err)

	z, err := x.Add(y)
	require.NoError(t, err)
	assert.Equal(t, []array.Label{"goog", "ibm"}, z.Labels(0))
	assert.Equal(t, []float64{13, 21}, z.Float64s())
}

// TestErrorTypes verifies the re-exported error types match with
// errors.As.
func TestErrorTypes(t *testing.T) {
	backend := cpu.New()
	x, err := array.FromVector([]float64{1}, []array.Label{"a"}, backend)
	require.NoError(t, err)
	y, err := array.FromVector([]float64{2}, []array.Label{"b"}, backend)
	require.NoError(t, err)

	_, err = x.Add(y)
	var overlap *array.NoOverlapError
	require.ErrorAs(t, err, &overlap)
	assert.Equal(t, 0, overlap.Axis)

	_, err = x.LabelIndex(0, "zzz")
	var miss *array.LabelNotFoundError
	require.ErrorAs(t, err, &miss)
}

// TestRankNormConstants verifies the rank normalizations are accessible
// and accepted.
func TestRankNormConstants(t *testing.T) {
	backend := cpu.New()
	a, err := array.FromVector([]float64{3, 1, 2}, nil, backend)
	require.NoError(t, err)

	for _, norm := range []array.RankNorm{array.RankZeroN, array.RankCentered, array.RankGaussian} {
		_, err := a.Ranking(0, norm)
		assert.NoError(t, err)
	}
}
