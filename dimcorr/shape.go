// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package dimcorr

import (
	"github.com/gomlx/reshapes/types"
	"github.com/gomlx/reshapes/types/shapes"
)

// FindCommonFactorsOfShapes is FindCommonFactors over the dimensions of two
// shapes.Shape values. DTypes are not compared: a bitcast-reshape may change
// them.
func FindCommonFactorsOfShapes(from, to shapes.Shape) []BoundaryPair {
	return FindCommonFactors(from.Dimensions, to.Dimensions)
}

// ConvertDimensionNumbersOfShapes is ConvertDimensionNumbers over the
// dimensions of two shapes.Shape values.
func ConvertDimensionNumbersOfShapes(markedFrom types.Set[int64], from, to shapes.Shape) ConvertedDimensionNumbers {
	return ConvertDimensionNumbers(markedFrom, from.Dimensions, to.Dimensions)
}
