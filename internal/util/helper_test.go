package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCloneSlice(t *testing.T) {
	require := require.New(t)

	src := []int{1, 2, 3}
	clone := CloneSlice(src, 0)
	require.Equal(src, clone)

	clone[0] = 99
	require.Equal(1, src[0])

	padded := CloneSlice(src, 5)
	require.Len(padded, 5)
	require.Equal([]int{1, 2, 3, 0, 0}, padded)

	require.Empty(CloneSlice([]string(nil), 0))
}

func TestFloorDiv(t *testing.T) {
	require := require.New(t)

	tests := []struct {
		a, b, want int64
	}{
		{7, 2, 3},
		{-7, 2, -4},
		{7, -2, -4},
		{-7, -2, 3},
		{6, 3, 2},
		{-6, 3, -2},
		{0, 5, 0},
		{-14119000000000, 12500000000, -1130},
		{44831000000000, 12500000000, 3586},
	}

	for _, tt := range tests {
		require.Equal(tt.want, FloorDiv(tt.a, tt.b), "FloorDiv(%d, %d)", tt.a, tt.b)
	}
}
