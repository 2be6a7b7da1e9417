// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package npos

import "sort"

// BalanceConfig parameterizes the star balancer with an iteration cap and an
// early-stop tolerance. Two iterations with zero tolerance is the default
// (see DESIGN.md), exposed so a caller doing an
// offline pass can ask for tighter convergence.
type BalanceConfig struct {
	Iterations int
	Tolerance  ExtendedBalance
}

// DefaultBalanceConfig returns the shipped (iterations=2, tolerance=0) pair.
func DefaultBalanceConfig() BalanceConfig {
	return BalanceConfig{Iterations: 2, Tolerance: ExtendedBalance{}}
}

// Balance is the star balancer: an iterative fixpoint that equalizes support
// across elected candidates by shifting stake along voter-adjacent edges.
//
// Each pass visits every voter and, among that voter's edges to elected
// candidates, water-fills the voter's already-committed stake so the target
// candidates' resulting backed stakes come out as equal as integer division
// allows: the candidates with the least backing (once this voter's own
// contribution is set aside) are topped up first, and a candidate that is
// already comparatively over-backed gets nothing further from this voter.
//
// The pass stops early once every voter's move reduced the spread of its
// targets' backed stakes by no more than tolerance, and always stops after
// iterations passes. Returns the number of passes actually run.
func Balance[I Id](g *Graph[I], cfg BalanceConfig) int {
	if cfg.Iterations <= 0 {
		return 0
	}

	passesRun := 0
	for pass := 0; pass < cfg.Iterations; pass++ {
		passesRun++
		maxImprovement := ExtendedBalance{}

		for vi := range g.Voters {
			voter := &g.Voters[vi]

			electedEdges := electedEdgeIndices(g, voter)
			if len(electedEdges) < 2 {
				continue
			}

			improvement := balanceVoter(g, voter, electedEdges)
			if improvement.GreaterThan(maxImprovement) {
				maxImprovement = improvement
			}
		}

		if maxImprovement.Cmp(cfg.Tolerance) <= 0 {
			break
		}
	}
	return passesRun
}

func electedEdgeIndices[I Id](g *Graph[I], voter *Voter[I]) []int {
	var out []int
	for ei, e := range voter.Edges {
		if g.Candidates[e.CandidateIndex].Elected {
			out = append(out, ei)
		}
	}
	return out
}

// balanceVoter redistributes voter's stake across its edges listed in
// electedEdges to equalize the backing of their target candidates, and
// returns how much the move shrank the spread (max-min) of those candidates'
// backed stakes, used as this voter's contribution to the pass's convergence
// check.
func balanceVoter[I Id](g *Graph[I], voter *Voter[I], electedEdges []int) ExtendedBalance {
	k := len(electedEdges)
	levels := make([]ExtendedBalance, k) // "other backing": candidate's backed stake excluding this voter's own edge
	var total ExtendedBalance
	for i, ei := range electedEdges {
		edge := &voter.Edges[ei]
		candidate := &g.Candidates[edge.CandidateIndex]
		levels[i] = SatSub(candidate.BackedStake, edge.Weight)
		total, _ = SatAdd(total, edge.Weight)
	}

	spreadBefore := backedSpread(g, voter, electedEdges)

	shares := waterFill(levels, total)

	for i, ei := range electedEdges {
		edge := &voter.Edges[ei]
		candidate := &g.Candidates[edge.CandidateIndex]
		old := edge.Weight
		edge.Weight = shares[i]
		if shares[i].GreaterThan(old) {
			delta := SatSub(shares[i], old)
			candidate.BackedStake, _ = SatAdd(candidate.BackedStake, delta)
		} else {
			delta := SatSub(old, shares[i])
			candidate.BackedStake = SatSub(candidate.BackedStake, delta)
		}
	}

	return SatSub(spreadBefore, backedSpread(g, voter, electedEdges))
}

// backedSpread is the max-min of the backed stakes of the candidates behind
// the given edges of voter.
func backedSpread[I Id](g *Graph[I], voter *Voter[I], electedEdges []int) ExtendedBalance {
	first := g.Candidates[voter.Edges[electedEdges[0]].CandidateIndex].BackedStake
	minStake, maxStake := first, first
	for _, ei := range electedEdges[1:] {
		s := g.Candidates[voter.Edges[ei].CandidateIndex].BackedStake
		if s.LessThan(minStake) {
			minStake = s
		}
		if s.GreaterThan(maxStake) {
			maxStake = s
		}
	}
	return SatSub(maxStake, minStake)
}

// waterFill distributes total across len(levels) buckets so that
// levels[i]+shares[i] are as equal as possible: the lowest levels are raised
// first, in lock-step, until either every bucket reaches the same height or
// the budget runs out partway, at which point any leftover integer unit
// (from the necessarily-integer division) is handed to the remaining
// lowest-level buckets in ascending original-edge order, for determinism.
func waterFill(levels []ExtendedBalance, total ExtendedBalance) []ExtendedBalance {
	n := len(levels)
	shares := make([]ExtendedBalance, n)

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return levels[order[a]].LessThan(levels[order[b]])
	})

	remaining := total
	height := levels[order[0]]
	raised := 1 // number of buckets (from the bottom of `order`) currently at `height`

	for raised < n {
		nextLevel := levels[order[raised]]
		gap := SatSub(nextLevel, height)
		cost, overflowed := SatMul(gap, ExtendedBalanceFromUint64(uint64(raised)))
		if overflowed || cost.GreaterThan(remaining) {
			break
		}
		remaining = SatSub(remaining, cost)
		height = nextLevel
		raised++
	}

	perBucket := Div(remaining, ExtendedBalanceFromUint64(uint64(raised)))
	extra := SatSub(remaining, func() ExtendedBalance { p, _ := SatMul(perBucket, ExtendedBalanceFromUint64(uint64(raised))); return p }()).Uint64()

	finalHeight, _ := SatAdd(height, perBucket)

	// Among the `raised` buckets (the lowest ones), distribute the leftover
	// `extra` units to the ones with the smallest original edge index, for
	// determinism.
	raisedIdx := append([]int(nil), order[:raised]...)
	sort.Ints(raisedIdx)

	bonus := make(map[int]bool, extra)
	for i := 0; i < int(extra) && i < len(raisedIdx); i++ {
		bonus[raisedIdx[i]] = true
	}

	for i := 0; i < n; i++ {
		if i < raised {
			idx := order[i]
			h := finalHeight
			if bonus[idx] {
				h, _ = SatAdd(h, ExtendedBalanceFromUint64(1))
			}
			shares[idx] = SatSub(h, levels[idx])
		} else {
			shares[order[i]] = ExtendedBalance{}
		}
	}

	return shares
}
