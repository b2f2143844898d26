// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package dimcorr

import (
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/stretchr/testify/assert"

	"github.com/gomlx/reshapes/types"
	"github.com/gomlx/reshapes/types/shapes"
)

func TestFindCommonFactorsOfShapes(t *testing.T) {
	// DTypes may differ: a bitcast-reshape can change them.
	from := shapes.Make(dtypes.Float32, 6)
	to := shapes.Make(dtypes.Int32, 2, 3)
	assert.Equal(t, []BoundaryPair{{0, 0}, {1, 2}}, FindCommonFactorsOfShapes(from, to))
}

func TestConvertDimensionNumbersOfShapes(t *testing.T) {
	from := shapes.Make(dtypes.Float32, 6)
	to := shapes.Make(dtypes.Float32, 2, 3)
	got := ConvertDimensionNumbersOfShapes(types.SetWith[int64](0), from, to)
	assert.Equal(t, []int64{0, 1}, got.ToDimensions)
	assert.Equal(t, []int64{0}, got.TransformedFromDimensions)
}
