// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package dimcorr computes how the dimensions of one multi-dimensional array
// shape correspond to the dimensions of a second shape with the same total
// element count but a different decomposition -- the analysis behind reshape
// and bitcast optimizations.
//
// The two entry points are:
//
//   - FindCommonFactors: all the "cut points" at which two shapes can be
//     partitioned into corresponding groups of dimensions with equal element
//     counts.
//   - ConvertDimensionNumbers: given a set of marked dimensions on the first
//     shape, classifies each group as fully mapped, unmapped or only partially
//     mapped onto the second shape, detecting single dimensions that split
//     across several target dimensions.
//
// Both are pure functions: no state, no I/O, safe to call concurrently from
// independent compiler passes.
//
// Preconditions are contracts: calling with shapes of different element counts
// is a bug in the caller (upstream shape computation), not a runtime condition,
// and panics with an exceptions error. Callers are expected to never trigger
// it in correct usage.
package dimcorr

import (
	"slices"

	"github.com/gomlx/exceptions"

	"github.com/gomlx/reshapes/types/xslices"
)

// BoundaryPair marks a cut point common to two shapes: the product of the
// first A extents of the first shape equals the product of the first B extents
// of the second shape.
//
// Boundary pairs returned by FindCommonFactors are non-decreasing in both
// coordinates, starting at (0, 0) and ending at (len(a), len(b)).
type BoundaryPair struct {
	A, B int64
}

// FindCommonFactors returns the ordered boundary pairs at which a running
// product of a prefix of a equals a running product of a prefix of b. These
// are all the points where the two shapes can be legally "cut" without
// splitting an element group, and no finer boundary is skipped.
//
// If the shapes cannot be reconciled at any finer grain than the endpoints
// (possible when zero extents are present), only the endpoint boundaries are
// returned.
//
// Contract: xslices.Product(a) == xslices.Product(b) and all extents are
// non-negative; violations panic.
func FindCommonFactors(a, b []int64) []BoundaryPair {
	if xslices.Product(a) != xslices.Product(b) {
		exceptions.Panicf("dimcorr.FindCommonFactors(%v, %v): shapes have different element counts (%d vs %d)",
			a, b, xslices.Product(a), xslices.Product(b))
	}
	var bounds []BoundaryPair
	if slices.Equal(a, b) {
		bounds = make([]BoundaryPair, 0, len(a)+1)
		for i := int64(0); i <= int64(len(a)); i++ {
			bounds = append(bounds, BoundaryPair{i, i})
		}
		return bounds
	}

	// Skip over the leading run of equal extents.
	var i, j int64
	priorI, priorJ := int64(-1), int64(-1)
	for i < int64(len(a)) && j < int64(len(b)) && a[i] == b[j] {
		priorI, priorJ = i, j
		bounds = append(bounds, BoundaryPair{i, j})
		i++
		j++
	}

	// If the suffix products differ, the total products only agree because of
	// zero extents, and no intermediate cut reconciles the non-zero factors.
	// E.g.: a=[0, 10, 3], b=[0, 3] diverge right after the leading zero.
	if xslices.Product(a[i:]) != xslices.Product(b[j:]) {
		return []BoundaryPair{{0, 0}, {int64(len(a)), int64(len(b))}}
	}
	// Zero extents ahead on both sides: cut at the divergence point and at the
	// end, nothing in between is well-defined.
	if xslices.Product(a[i:]) == 0 {
		bounds = append(bounds, BoundaryPair{i, j})
		bounds = append(bounds, BoundaryPair{int64(len(a)), int64(len(b))})
		return bounds
	}

	// Greedy dual-prefix scan: advance whichever side has the smaller partial
	// product; on ties prefer the side with the smaller next extent, to keep
	// the partial products as close as possible.
	for partialA, partialB := int64(1), int64(1); ; {
		if partialA == partialB && (i > priorI || j > priorJ) {
			priorI, priorJ = i, j
			bounds = append(bounds, BoundaryPair{i, j})
			continue
		}
		inBoundsI := i < int64(len(a))
		inBoundsJ := j < int64(len(b))
		if !inBoundsI && !inBoundsJ {
			break
		}
		nextA := partialA < partialB ||
			(inBoundsI && (!inBoundsJ || (partialA == partialB && a[i] <= b[j])))
		nextB := partialB < partialA ||
			(inBoundsJ && (!inBoundsI || (partialB == partialA && b[j] <= a[i])))
		if nextA {
			partialA *= a[i]
			i++
		}
		if nextB {
			partialB *= b[j]
			j++
		}
	}
	return bounds
}
