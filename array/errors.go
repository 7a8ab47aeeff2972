// Copyright 2026 The larr Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array

import (
	internalarray "github.com/larr-ml/larr/internal/array"
)

// The domain error kinds. Operations return them as wrapped values;
// match with errors.As.

// ShapeMismatchError reports labels whose count does not match the axis
// extent.
type ShapeMismatchError = internalarray.ShapeMismatchError

// DuplicateLabelError reports a label appearing twice on one axis.
type DuplicateLabelError = internalarray.DuplicateLabelError

// LabelNotFoundError reports a label lookup that matched nothing.
type LabelNotFoundError = internalarray.LabelNotFoundError

// NoOverlapError reports a binary operation whose operands share no
// labels on some axis.
type NoOverlapError = internalarray.NoOverlapError

// ShapeIncompatibleError reports an operation applied to an array of the
// wrong dimensionality or arity.
type ShapeIncompatibleError = internalarray.ShapeIncompatibleError

// UnsupportedLabelError reports a label of a kind the array cannot carry.
type UnsupportedLabelError = internalarray.UnsupportedLabelError

// MergeOverlapError reports a merge whose operands both have finite data
// in some cell and update was not requested.
type MergeOverlapError = internalarray.MergeOverlapError
