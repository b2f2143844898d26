// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package shapes

import (
	"bytes"
	"encoding/gob"
	"testing"

	. "github.com/gomlx/gopjrt/dtypes"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/require"
)

func TestShape(t *testing.T) {
	invalidShape := Invalid()
	require.False(t, invalidShape.Ok())

	shape0 := Make(Float64)
	require.True(t, shape0.Ok())
	require.True(t, shape0.IsScalar())
	require.Equal(t, 0, shape0.Rank())
	require.Len(t, shape0.Dimensions, 0)
	require.Equal(t, int64(1), shape0.Size())
	require.Equal(t, 8, int(shape0.Memory()))

	shape1 := Make(Float32, 4, 3, 2)
	require.True(t, shape1.Ok())
	require.False(t, shape1.IsScalar())
	require.Equal(t, 3, shape1.Rank())
	require.Equal(t, int64(4*3*2), shape1.Size())
	require.Equal(t, 4*4*3*2, int(shape1.Memory()))
	require.Equal(t, "(Float32)[4 3 2]", shape1.String())

	// Zero extents are legal and make the size 0.
	empty := Make(Int32, 0, 10, 3)
	require.True(t, empty.Ok())
	require.Equal(t, int64(0), empty.Size())

	require.Panics(t, func() { Make(Float32, 2, -1) })
}

func TestDim(t *testing.T) {
	shape := Make(Float32, 4, 3, 2)
	require.Equal(t, int64(4), shape.Dim(0))
	require.Equal(t, int64(3), shape.Dim(1))
	require.Equal(t, int64(2), shape.Dim(2))
	require.Equal(t, int64(4), shape.Dim(-3))
	require.Equal(t, int64(2), shape.Dim(-1))
	require.Panics(t, func() { _ = shape.Dim(3) })
	require.Panics(t, func() { _ = shape.Dim(-4) })
}

func TestEqual(t *testing.T) {
	s1 := Make(Float32, 2, 3)
	require.True(t, s1.Equal(Make(Float32, 2, 3)))
	require.False(t, s1.Equal(Make(Float64, 2, 3)))
	require.False(t, s1.Equal(Make(Float32, 3, 2)))
	require.True(t, s1.EqualDimensions(Make(Float64, 2, 3)))

	s2 := s1.Clone()
	require.True(t, s1.Equal(s2))
	s2.Dimensions[0] = 7
	require.Equal(t, int64(2), s1.Dimensions[0])
}

func TestConcatenateDimensions(t *testing.T) {
	s := ConcatenateDimensions(Make(Int64, 2, 3), Make(Int64, 4))
	require.True(t, s.Equal(Make(Int64, 2, 3, 4)))

	scalar := Make(Int64)
	require.True(t, ConcatenateDimensions(scalar, Make(Int64, 4)).Equal(Make(Int64, 4)))
	require.False(t, ConcatenateDimensions(Make(Int64, 2), Make(Float32, 2)).Ok())
}

func TestGobSerialization(t *testing.T) {
	shape := Make(Float32, 7, 2)
	var buf bytes.Buffer
	require.NoError(t, shape.GobSerialize(gob.NewEncoder(&buf)))
	recovered := must.M1(GobDeserialize(gob.NewDecoder(&buf)))
	require.True(t, shape.Equal(recovered))
}
