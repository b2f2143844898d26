// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package floatstr converts floating point values of the formats used in
// tensors (float64, float32, float16 and bfloat16) to strings that parse back
// to exactly the same value, and parses them back.
//
// For float32/float64, strconv's shortest representation (bitSize-aware,
// precision -1) is already the minimal round-trip-safe form. The narrow
// formats (float16 via github.com/x448/float16, bfloat16 via
// github.com/gomlx/gopjrt/dtypes/bfloat16) are exactly representable in
// float32, so their shortest float32 form round-trips as well.
package floatstr

import (
	"strconv"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/gopjrt/dtypes/bfloat16"
	"github.com/x448/float16"

	"github.com/gomlx/reshapes/errutil"
)

// Float64 returns the shortest string that parses back to exactly v.
func Float64(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Float32 returns the shortest string that parses back to exactly v.
func Float32(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

// Float16 returns the shortest string that parses back to exactly v.
func Float16(v float16.Float16) string {
	return Float32(v.Float32())
}

// BFloat16 returns the shortest string that parses back to exactly v.
func BFloat16(v bfloat16.BFloat16) string {
	return Float32(v.Float32())
}

// ForDType formats v as the given floating point DType. Integer and complex
// dtypes are a contract violation and panic.
func ForDType(dtype dtypes.DType, v float64) string {
	switch dtype {
	case dtypes.Float64:
		return Float64(v)
	case dtypes.Float32:
		return Float32(float32(v))
	case dtypes.Float16:
		return Float16(float16.Fromfloat32(float32(v)))
	case dtypes.BFloat16:
		return BFloat16(bfloat16.FromFloat32(float32(v)))
	}
	exceptions.Panicf("floatstr.ForDType: dtype %s is not a floating point type", dtype)
	return ""
}

// ParseFloat64 parses a string produced by Float64.
func ParseFloat64(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errutil.Prepend(err, "parsing %q as float64", s)
	}
	return v, nil
}

// ParseFloat32 parses a string produced by Float32.
func ParseFloat32(s string) (float32, error) {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, errutil.Prepend(err, "parsing %q as float32", s)
	}
	return float32(v), nil
}

// ParseFloat16 parses a string produced by Float16. The value is rounded to
// the nearest float16, like a float16 literal would be.
func ParseFloat16(s string) (float16.Float16, error) {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, errutil.Prepend(err, "parsing %q as float16", s)
	}
	return float16.Fromfloat32(float32(v)), nil
}

// ParseBFloat16 parses a string produced by BFloat16. The value is rounded to
// the nearest bfloat16.
func ParseBFloat16(s string) (bfloat16.BFloat16, error) {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return bfloat16.BFloat16(0), errutil.Prepend(err, "parsing %q as bfloat16", s)
	}
	return bfloat16.FromFloat32(float32(v)), nil
}
