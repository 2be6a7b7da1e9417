// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package npos

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRatioFromRationalApproximation(t *testing.T) {
	require := require.New(t)

	r := RatioFromRationalApproximation(ExtendedBalanceFromUint64(1), ExtendedBalanceFromUint64(1), AccuracyPerBillion)
	require.True(r.IsOne())

	zero := RatioFromRationalApproximation(ExtendedBalanceFromUint64(0), ExtendedBalanceFromUint64(10), AccuracyPerBillion)
	require.True(zero.IsZero())

	// truncated, never rounded up: the emitted parts of a voter's ratios
	// must sum to at most one before normalization.
	twoThirds := RatioFromRationalApproximation(ExtendedBalanceFromUint64(20), ExtendedBalanceFromUint64(30), AccuracyPerBillion)
	require.Equal(uint64(666_666_666), twoThirds.Deconstruct())
}

func TestRatioMulBalance(t *testing.T) {
	require := require.New(t)

	r := Ratio{Accuracy: AccuracyPerBillion, Parts: 666_666_666}
	require.Equal(uint64(20), r.MulBalance(ExtendedBalanceFromUint64(30)).Uint64())

	one := OneRatio(AccuracyPerBillion)
	require.Equal(uint64(30), one.MulBalance(ExtendedBalanceFromUint64(30)).Uint64())
}
