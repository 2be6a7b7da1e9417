// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package npos

// ApplyElected routes each voter's remaining budget onto its edge to the
// just-elected candidate electedIndex, then redistributes stake from
// over-saturated prior winners up to a cutoff derived from the winner's
// round score. Voters are processed in their stored order, and a voter's
// edges are processed in their stored order, so the result is deterministic.
//
// onSaturate, if non-nil, is called once for every saturating operation that
// actually clipped a value; the orchestrator uses it to drive the
// npos_arithmetic_saturations_total counter.
func ApplyElected[I Id](g *Graph[I], electedIndex int, onSaturate func()) {
	note := func(saturated bool) {
		if saturated && onSaturate != nil {
			onSaturate()
		}
	}

	elected := &g.Candidates[electedIndex]
	cutoff, ok := elected.Score.ToDen(ExtendedBalanceFromUint64(1))
	if !ok {
		// Rescaling to a denominator of 1 never overflows, so ToDen fails
		// here only when the round score has a zero denominator; saturate
		// defensively rather than corrupt the round — arithmetic here never
		// panics.
		cutoff = maxExtendedBalanceValue()
		note(true)
	}

	for vi := range g.Voters {
		voter := &g.Voters[vi]

		newEdgeIndex := -1
		for ei, e := range voter.Edges {
			if e.CandidateIndex == electedIndex {
				newEdgeIndex = ei
				break
			}
		}
		if newEdgeIndex == -1 {
			// Voter has no edge to the new winner; untouched.
			continue
		}

		var used ExtendedBalance
		for _, e := range voter.Edges {
			var sat bool
			used, sat = SatAdd(used, e.Weight)
			note(sat)
		}

		newWeight := SatSub(voter.Budget, used)
		voter.Edges[newEdgeIndex].Weight = newWeight
		var sat bool
		elected.BackedStake, sat = SatAdd(elected.BackedStake, newWeight)
		note(sat)

		for ei := range voter.Edges {
			if ei == newEdgeIndex {
				continue
			}
			edge := &voter.Edges[ei]
			if edge.Weight.IsZero() {
				continue
			}
			candidate := &g.Candidates[edge.CandidateIndex]
			if !candidate.Elected || !candidate.BackedStake.GreaterThan(cutoff) {
				continue
			}

			take := MulDiv(edge.Weight, cutoff, candidate.BackedStake)
			edge.Weight = SatSub(edge.Weight, take)
			candidate.BackedStake = SatSub(candidate.BackedStake, take)

			voter.Edges[newEdgeIndex].Weight, sat = SatAdd(voter.Edges[newEdgeIndex].Weight, take)
			note(sat)
			elected.BackedStake, sat = SatAdd(elected.BackedStake, take)
			note(sat)
		}
	}
}

func maxExtendedBalanceValue() ExtendedBalance {
	return ExtendedBalance{v: maxExtendedBalance}
}
