// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package floatstr

import (
	"math"
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/gopjrt/dtypes/bfloat16"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

func TestFloat64RoundTrip(t *testing.T) {
	for _, v := range []float64{0, 1, -1, 0.1, 1.0 / 3.0, math.MaxFloat64, math.SmallestNonzeroFloat64, math.Inf(1)} {
		s := Float64(v)
		require.Equal(t, v, must.M1(ParseFloat64(s)), "string %q", s)
	}
	assert.Equal(t, "0.1", Float64(0.1))
	assert.Equal(t, "NaN", Float64(math.NaN()))
}

func TestFloat32RoundTrip(t *testing.T) {
	for _, v := range []float32{0, 1, -1, 0.1, float32(math.MaxFloat32), 1e-45} {
		s := Float32(v)
		require.Equal(t, v, must.M1(ParseFloat32(s)), "string %q", s)
	}
	assert.Equal(t, "0.1", Float32(0.1))
}

func TestFloat16RoundTrip(t *testing.T) {
	for _, v := range []float32{0, 1, 1.5, -0.25, 65504, 0.0009765625} {
		h := float16.Fromfloat32(v)
		s := Float16(h)
		require.Equal(t, h, must.M1(ParseFloat16(s)), "string %q", s)
	}
}

func TestBFloat16RoundTrip(t *testing.T) {
	for _, v := range []float32{0, 1, -2, 0.5, 128, 3.0e38} {
		b := bfloat16.FromFloat32(v)
		s := BFloat16(b)
		require.Equal(t, b, must.M1(ParseBFloat16(s)), "string %q", s)
	}
}

func TestForDType(t *testing.T) {
	assert.Equal(t, "0.5", ForDType(dtypes.Float64, 0.5))
	assert.Equal(t, "0.5", ForDType(dtypes.Float32, 0.5))
	assert.Equal(t, "1.5", ForDType(dtypes.Float16, 1.5))
	assert.Equal(t, "2", ForDType(dtypes.BFloat16, 2))
	require.Panics(t, func() { ForDType(dtypes.Int32, 1) })
}

func TestParseErrors(t *testing.T) {
	_, err := ParseFloat32("not-a-number")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `parsing "not-a-number" as float32`)
}
