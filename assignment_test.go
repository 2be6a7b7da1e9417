// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package npos

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntoAssignmentDropsZeroEdges(t *testing.T) {
	require := require.New(t)

	voter := Voter[int]{
		ID:     10,
		Budget: ExtendedBalanceFromUint64(30),
		Edges: []Edge[int]{
			{TargetID: 1, Weight: ExtendedBalanceFromUint64(0)},
			{TargetID: 2, Weight: ExtendedBalanceFromUint64(20)},
			{TargetID: 3, Weight: ExtendedBalanceFromUint64(10)},
		},
	}

	a, ok := IntoAssignment(voter, AccuracyPerBillion)
	require.True(ok)
	require.Len(a.Distribution, 2)
	require.Equal(2, a.Distribution[0].Target)
	require.Equal(3, a.Distribution[1].Target)
}

func TestIntoAssignmentEmptyWhenAllZero(t *testing.T) {
	require := require.New(t)
	voter := Voter[int]{
		ID:     10,
		Budget: ExtendedBalanceFromUint64(10),
		Edges:  []Edge[int]{{TargetID: 1, Weight: ExtendedBalanceFromUint64(0)}},
	}
	_, ok := IntoAssignment(voter, AccuracyPerBillion)
	require.False(ok)
}

func TestAssignmentStakedRoundTrip(t *testing.T) {
	require := require.New(t)

	a := Assignment[int]{
		Who: 10,
		Distribution: []AssignmentEntry[int]{
			{Target: 2, Ratio: Ratio{Accuracy: AccuracyPerBillion, Parts: 666_666_667}},
			{Target: 3, Ratio: Ratio{Accuracy: AccuracyPerBillion, Parts: 333_333_333}},
		},
	}

	staked := a.IntoStaked(ExtendedBalanceFromUint64(30))
	require.Equal(uint64(30), staked.Total().Uint64())

	back := staked.IntoAssignment(AccuracyPerBillion)
	require.Len(back.Distribution, 2)
	require.Equal(2, back.Distribution[0].Target)
	require.Equal(3, back.Distribution[1].Target)
}

func TestStakedAssignmentTryNormalize(t *testing.T) {
	require := require.New(t)

	s := StakedAssignment[int]{
		Who: 10,
		Distribution: []StakedEntry[int]{
			{Target: 2, Weight: ExtendedBalanceFromUint64(1)},
			{Target: 3, Weight: ExtendedBalanceFromUint64(100)},
		},
	}
	err := s.TryNormalize(ExtendedBalanceFromUint64(103))
	require.NoError(err)
	require.Equal(uint64(103), s.Total().Uint64())
}

func TestAssignmentTryNormalize(t *testing.T) {
	require := require.New(t)

	a := Assignment[int]{
		Who: 10,
		Distribution: []AssignmentEntry[int]{
			{Target: 2, Ratio: Ratio{Accuracy: AccuracyPerBillion, Parts: 400_000_000}},
			{Target: 3, Ratio: Ratio{Accuracy: AccuracyPerBillion, Parts: 599_999_998}},
		},
	}
	err := a.TryNormalize(AccuracyPerBillion)
	require.NoError(err)

	var sum uint64
	for _, e := range a.Distribution {
		sum += e.Ratio.Parts
	}
	require.Equal(uint64(AccuracyPerBillion), sum)
}
