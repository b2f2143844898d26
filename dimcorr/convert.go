// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package dimcorr

import (
	"slices"

	"github.com/gomlx/reshapes/types"
)

// ConvertedDimensionNumbers is the result of ConvertDimensionNumbers: how a
// set of marked dimensions of a "from" shape lands on a "to" shape with the
// same element count.
type ConvertedDimensionNumbers struct {
	// ToDimensions are the axes of the "to" shape that fully correspond to
	// marked groups of the "from" shape, sorted ascending.
	ToDimensions []int64

	// TransformedFromDimensions are the "from" axes inside marked,
	// fully-mapped groups.
	TransformedFromDimensions []int64

	// UntransformedFromDimensions are marked "from" axes that fell inside a
	// group only partially marked, whose correspondence is ambiguous and was
	// not resolved by split detection.
	UntransformedFromDimensions []int64

	// SplitFromDimensions and SplitFromSizes are parallel: for each "from"
	// axis detected to span multiple "to" axes, its index and the residual
	// extent left after peeling whole "to" axes off the high end.
	SplitFromDimensions []int64
	SplitFromSizes      []int64
}

// ConvertDimensionNumbers maps the axes in markedFrom, relative to fromSizes,
// onto the shape toSizes.
//
// Each group of axes between two consecutive common-factor boundaries is
// classified: if every "from" axis in the group is marked, the whole group
// corresponds and its "to" axes are recorded; if none is marked the group is
// skipped; if only some are marked the correspondence is ambiguous, and a
// narrow split-detection heuristic is attempted -- it handles a group that
// spans exactly two "from" axes with the higher one marked, e.g. (from)
// [2, 32] -> (to) [4, 4, 4], where from axis 1 maps onto to axes 1 and 2
// with a residual extent of 2. Marked axes not resolved this way are reported
// as untransformed.
//
// The heuristic is intentionally restricted to the two-axis case; broader
// split detection would be a separate operation.
//
// Contract: xslices.Product(fromSizes) == xslices.Product(toSizes); violations
// panic. Marked axes outside [0, len(fromSizes)) are undefined behavior for
// the caller to avoid.
func ConvertDimensionNumbers(markedFrom types.Set[int64], fromSizes, toSizes []int64) ConvertedDimensionNumbers {
	var dimensions ConvertedDimensionNumbers
	commonFactors := FindCommonFactors(fromSizes, toSizes)
	for i := 0; i+1 < len(commonFactors); i++ {
		anyMarked := false
		allMarked := true
		for d := commonFactors[i].A; d < commonFactors[i+1].A; d++ {
			marked := markedFrom.Has(d)
			anyMarked = anyMarked || marked
			allMarked = allMarked && marked
		}
		if allMarked {
			for d := commonFactors[i].B; d < commonFactors[i+1].B; d++ {
				dimensions.ToDimensions = append(dimensions.ToDimensions, d)
			}
			for d := commonFactors[i].A; d < commonFactors[i+1].A; d++ {
				dimensions.TransformedFromDimensions = append(dimensions.TransformedFromDimensions, d)
			}
		} else if anyMarked {
			if commonFactors[i].A+2 == commonFactors[i+1].A && markedFrom.Has(commonFactors[i].A+1) {
				fromSize := fromSizes[commonFactors[i+1].A-1]
				hasToDim := false
				// Peel whole "to" axes off the high end while they evenly
				// divide the marked extent.
				for toDim := commonFactors[i+1].B - 1; toDim >= commonFactors[i].B; toDim-- {
					toSize := toSizes[toDim]
					if fromSize%toSize != 0 {
						break
					}
					hasToDim = true
					fromSize /= toSize
					dimensions.ToDimensions = append(dimensions.ToDimensions, toDim)
				}
				if hasToDim {
					dimensions.SplitFromSizes = append(dimensions.SplitFromSizes, fromSize)
					dimensions.SplitFromDimensions = append(dimensions.SplitFromDimensions, commonFactors[i].A+1)
				}
			}
			for d := commonFactors[i].A; d < commonFactors[i+1].A; d++ {
				if markedFrom.Has(d) {
					dimensions.UntransformedFromDimensions = append(dimensions.UntransformedFromDimensions, d)
				}
			}
		}
	}
	// Split detection appends "to" axes out of order.
	slices.Sort(dimensions.ToDimensions)
	return dimensions
}
