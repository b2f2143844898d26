// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package int4 packs and unpacks 4-bit integers into bytes, two values per
// byte with the high nibble first -- the layout used by 4-bit quantized
// tensor buffers.
package int4

import (
	"github.com/gomlx/exceptions"
)

// Pack the low nibble of each input byte into output, two values per byte.
// The high 4 bits of each input byte are masked out. If len(input) is odd,
// the low nibble of the last output byte is left zero.
//
// Contract: len(output) == ceil(len(input)/2); violations panic.
func Pack(input, output []byte) {
	if len(output) != (len(input)+1)/2 {
		exceptions.Panicf("int4.Pack: output must have ceil(len(input)/2)=%d bytes, got %d", (len(input)+1)/2, len(output))
	}
	for i, v := range input {
		val := v & 0xf
		if i%2 == 0 {
			output[i/2] = val << 4
		} else {
			output[i/2] |= val
		}
	}
}

// Unpack each 4-bit value of input into its own output byte, inverse of Pack.
//
// Contract: len(input) == ceil(len(output)/2); violations panic.
func Unpack(input, output []byte) {
	if len(input) != (len(output)+1)/2 {
		exceptions.Panicf("int4.Unpack: input must have ceil(len(output)/2)=%d bytes, got %d", (len(output)+1)/2, len(input))
	}
	for i := range output {
		if i%2 == 0 {
			output[i] = (input[i/2] >> 4) & 0xf
		} else {
			output[i] = input[i/2] & 0xf
		}
	}
}
