package brolz

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParamsForQuality_ForgetfulChainRange(t *testing.T) {
	for q := 4; q <= 9; q++ {
		p, err := ParamsForQuality(q, 22, 0)
		require.NoError(t, err, "quality %d", q)
		require.Equal(t, HasherForgetfulChain, p.Type, "quality %d", q)
		require.Equal(t, 4, p.HashLen, "quality %d", q)
		require.Positive(t, p.MaxHops, "quality %d", q)
	}
}

func TestParamsForQuality_MaxHopsGrowsWithQuality(t *testing.T) {
	prevHops := 0
	for q := 4; q <= 9; q++ {
		p, err := ParamsForQuality(q, 22, 0)
		require.NoError(t, err)
		require.GreaterOrEqual(t, p.MaxHops, prevHops, "quality %d should search at least as hard as quality %d", q, q-1)
		prevHops = p.MaxHops
	}
}

func TestParamsForQuality_OutOfRangeRejected(t *testing.T) {
	_, err := ParamsForQuality(-1, 22, 0)
	require.ErrorIs(t, err, ErrInvalidQuality)

	_, err = ParamsForQuality(12, 22, 0)
	require.ErrorIs(t, err, ErrInvalidQuality)

	_, err = ParamsForQuality(9, 9, 0)
	require.ErrorIs(t, err, ErrInvalidWindow)

	_, err = ParamsForQuality(9, 25, 0)
	require.ErrorIs(t, err, ErrInvalidWindow)

	_, err = ParamsForQuality(9, 22, 5)
	require.ErrorIs(t, err, ErrInvalidBlockSize)
}

func TestParamsForQuality_QuickAndLongestMatchRangesResolveToo(t *testing.T) {
	for q := 0; q <= 3; q++ {
		p, err := ParamsForQuality(q, 22, 0)
		require.NoError(t, err)
		require.Equal(t, HasherQuickly, p.Type)
	}
	for q := 10; q <= 11; q++ {
		p, err := ParamsForQuality(q, 22, 0)
		require.NoError(t, err)
		require.Equal(t, HasherLongestMatch, p.Type)
	}
}

func TestRandomHeuristicsWindow(t *testing.T) {
	require.Equal(t, 64, randomHeuristicsWindow(4))
	require.Equal(t, 64, randomHeuristicsWindow(8))
	require.Equal(t, 512, randomHeuristicsWindow(9))
	require.Equal(t, 512, randomHeuristicsWindow(11))
}

func TestLazyLowerBoundsStrictly(t *testing.T) {
	require.True(t, lazyLowerBoundsStrictly(4))
	require.False(t, lazyLowerBoundsStrictly(5))
	require.False(t, lazyLowerBoundsStrictly(9))
}
