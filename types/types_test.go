// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	s := MakeSet[int64]()
	require.Empty(t, s)
	s.Insert(3, 7)
	require.Len(t, s, 2)
	require.True(t, s.Has(3))
	require.True(t, s.Has(7))
	require.False(t, s.Has(0))

	s2 := SetWith[int64](7, 3)
	require.True(t, s.Equal(s2))
	s2.Insert(1)
	require.False(t, s.Equal(s2))
	require.False(t, s2.Equal(s))
}
