// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package npos

// CalculateMaxScore finds the candidate that yields the maximum score for
// this round. It mutates every unelected
// candidate's Score in place and returns the index of the best one. It never
// selects an already-elected candidate, and only selects a candidate with a
// positive approval stake; ties break in favor of the candidate that appears
// earliest in Graph.Candidates. When no unelected candidate has a positive
// approval stake, it returns 0 whatever that candidate's state, so the
// caller checks Elected and ApprovalStake on the returned index.
func CalculateMaxScore[I Id](g *Graph[I], accuracy uint64) int {
	for i := range g.Candidates {
		if !g.Candidates[i].Elected {
			g.Candidates[i].Score = NewRational128FromUint64(1, accuracy)
		}
	}

	for vi := range g.Voters {
		voter := &g.Voters[vi]

		var denominatorContribution ExtendedBalance
		for _, edge := range voter.Edges {
			candidate := &g.Candidates[edge.CandidateIndex]
			if !candidate.Elected {
				continue
			}
			contribution := RatioFromRationalApproximation(edge.Weight, candidate.BackedStake, accuracy)
			denominatorContribution, _ = SatAdd(denominatorContribution, ExtendedBalanceFromUint64(contribution.Deconstruct()))
		}

		for _, edge := range voter.Edges {
			candidate := &g.Candidates[edge.CandidateIndex]
			if candidate.Elected {
				continue
			}
			prevD := candidate.Score.D
			newD, _ := SatAdd(prevD, denominatorContribution)
			candidate.Score = NewRational128(ExtendedBalanceFromUint64(1), newD)
		}
	}

	bestScore := ZeroRational128()
	bestIndex := 0
	accBalance := ExtendedBalanceFromUint64(accuracy)

	for i := range g.Candidates {
		candidate := &g.Candidates[i]
		if candidate.ApprovalStake.IsZero() {
			candidate.Score = ZeroRational128()
			continue
		}

		scoreD := candidate.Score.D
		scoreN, _ := SatMul(candidate.ApprovalStake, accBalance)
		candidate.Score = NewRational128(scoreN, scoreD)

		if !candidate.Elected && candidate.Score.GreaterThan(bestScore) {
			bestScore = candidate.Score
			bestIndex = i
		}
	}

	return bestIndex
}
