package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/fastpfor"
	"github.com/arloliu/fastpfor/codec"
)

func TestGenerateValues_Dense(t *testing.T) {
	values, err := generateValues(4, 6, patternDense)
	require.NoError(t, err)
	require.Equal(t, []int32{14, 15, 14, 15, 14, 15}, values)

	values, err = generateValues(32, 2, patternDense)
	require.NoError(t, err)
	require.Equal(t, []int32{-2, -1}, values)
}

func TestGenerateValues_DenseUsesFullWidth(t *testing.T) {
	for bw := 0; bw <= 32; bw++ {
		values, err := generateValues(bw, 2*codec.BlockSize, patternDense)
		require.NoError(t, err)

		info, err := fastpfor.Inspect(fastpfor.Encode(values))
		require.NoError(t, err)
		for _, plan := range info.Pages[0].Blocks {
			require.Equal(t, codec.BlockPlan{BaseBitWidth: bw, MaxBitWidth: bw}, plan, "bit width %d", bw)
		}
	}
}

func TestGenerateValues_Mixed(t *testing.T) {
	values, err := generateValues(4, 6, patternMixed)
	require.NoError(t, err)
	// 15, 1 % 16, 2*12345 % 16, 15, 4 % 16, 5*12345 % 16
	require.Equal(t, []int32{15, 1, 2, 15, 4, 13}, values)

	values, err = generateValues(32, 3, patternMixed)
	require.NoError(t, err)
	require.Equal(t, []int32{-1, 1, 24690}, values)
}

func TestGenerateValues_Exceptions(t *testing.T) {
	values, err := generateValues(13, 512, patternExceptions)
	require.NoError(t, err)
	require.Equal(t, int32(1<<19+123), values[5])
	require.Equal(t, int32(1<<19+4567), values[123])
	require.Equal(t, int32(1<<19+9999), values[400])
	require.Equal(t, int32(511), values[511])

	short, err := generateValues(13, 100, patternExceptions)
	require.NoError(t, err)
	require.Equal(t, int32(1<<19+123), short[5])
	require.Equal(t, int32(99), short[99])
}

func TestGenerateValues_ZeroWidth(t *testing.T) {
	for _, p := range []pattern{patternDense, patternMixed, patternExceptions} {
		values, err := generateValues(0, 10, p)
		require.NoError(t, err)
		require.Equal(t, make([]int32, 10), values)
	}
}

func TestGenerateValues_Invalid(t *testing.T) {
	_, err := generateValues(33, 10, patternDense)
	require.Error(t, err)
	_, err = generateValues(4, -1, patternDense)
	require.Error(t, err)
	_, err = generateValues(4, 10, pattern("sparse"))
	require.Error(t, err)
}

func TestParseBitwidths(t *testing.T) {
	widths, err := parseBitwidths("1, 4,8,,16")
	require.NoError(t, err)
	require.Equal(t, []int{1, 4, 8, 16}, widths)

	_, err = parseBitwidths("4,x")
	require.Error(t, err)
	_, err = parseBitwidths("40")
	require.Error(t, err)
	_, err = parseBitwidths("")
	require.Error(t, err)
}

func TestVerifyVector(t *testing.T) {
	values, err := generateValues(12, 700, patternMixed)
	require.NoError(t, err)
	require.NoError(t, verifyVector(values, fastpfor.Encode(values)))
	require.Error(t, verifyVector(append(values, 1), fastpfor.Encode(values)))
}
