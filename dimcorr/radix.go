// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package dimcorr

import (
	"github.com/gomlx/exceptions"

	"github.com/gomlx/reshapes/types/xslices"
)

// ToMixedRadix returns the digits of n when written in the mixed radix given
// by bounds, most-significant digit first. It is the conversion from a linear
// element index to per-axis indices of a shape with the given dimensions.
//
// n is taken modulo the product of bounds. An empty bounds returns nil.
//
// Contract: every radix in bounds is positive; violations panic.
func ToMixedRadix(n int64, bounds []int64) []int64 {
	if len(bounds) == 0 {
		return nil
	}
	digits := make([]int64, 0, len(bounds))
	divisor := xslices.Product(bounds)
	if divisor <= 0 {
		exceptions.Panicf("dimcorr.ToMixedRadix(%d, %v): product of bounds must be positive, got %d", n, bounds, divisor)
	}
	remainder := n % divisor
	for _, radix := range bounds {
		if radix <= 0 {
			exceptions.Panicf("dimcorr.ToMixedRadix(%d, %v): all bounds must be positive", n, bounds)
		}
		// The divisor is always 1 for the last iteration.
		divisor /= radix
		digits = append(digits, remainder/divisor)
		remainder = remainder % divisor
	}
	return digits
}

// DistinctNumbersAreConsecutiveIfSorted returns whether the given distinct
// numbers would be consecutive if sorted, e.g. [4, 2, 3] -> true,
// [4, 2] -> false. Useful to check that a set of axes forms a contiguous run.
//
// Contract: seq is non-empty and its elements are distinct.
func DistinctNumbersAreConsecutiveIfSorted(seq []int64) bool {
	return xslices.Max(seq)-xslices.Min(seq) == int64(len(seq))-1
}
