// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package npos

// VoteWeight is the caller-facing stake unit before it is promoted into the
// wider ExtendedBalance arithmetic domain.
type VoteWeight = uint64

// VoterInput is one raw voter record as supplied to BuildGraph: an
// identifier, a stake budget, and the ordered list of candidates it
// approves.
type VoterInput[I Id] struct {
	ID        I
	Stake     VoteWeight
	Approvals []I
}

// Candidate is a candidate entity for the election. Candidates are allocated
// once, in a contiguous slice (the arena), and referenced by index from
// every Edge that targets them; this gives stable identity across mutation
// without runtime borrow-checking or reference counting.
type Candidate[I Id] struct {
	ID            I
	ApprovalStake ExtendedBalance
	BackedStake   ExtendedBalance
	Score         Rational128
	Elected       bool
	Round         int
}

// Edge is a voter's vote for one candidate. CandidateIndex is the position
// of the target candidate in the owning Graph's Candidates slice; identity
// is plain integer equality on that index, with no runtime borrow tracking
// needed.
type Edge[I Id] struct {
	TargetID       I
	CandidateIndex int
	Weight         ExtendedBalance
	Load           Rational128
}

// Voter is a voter entity. Load is carried for structural uniformity with
// the classic sequential-Phragmén algorithm so a future implementation of it
// can share these types; the balanced-heuristic path never reads or writes
// it.
type Voter[I Id] struct {
	ID     I
	Budget ExtendedBalance
	Edges  []Edge[I]
	Load   Rational128
}

// Graph is the internal bipartite voter<->candidate structure produced by
// BuildGraph and mutated in place by the rest of the election pipeline.
type Graph[I Id] struct {
	Candidates []Candidate[I]
	Voters     []Voter[I]
}

// BuildGraph transforms raw (candidates, voters-with-approvals) into the
// internal bipartite structure. Approvals that do not name a known candidate
// are silently dropped; duplicate approvals in one voter's list each produce
// an independent edge, preserved intentionally.
func BuildGraph[I Id](candidates []I, voters []VoterInput[I]) Graph[I] {
	index := make(map[I]int, len(candidates))
	cands := make([]Candidate[I], len(candidates))
	for i, id := range candidates {
		index[id] = i
		cands[i] = Candidate[I]{ID: id}
	}

	vs := make([]Voter[I], len(voters))
	for vi, in := range voters {
		stake := ExtendedBalanceFromUint64(in.Stake)
		edges := make([]Edge[I], 0, len(in.Approvals))
		for _, approval := range in.Approvals {
			idx, ok := index[approval]
			if !ok {
				continue
			}
			cands[idx].ApprovalStake, _ = SatAdd(cands[idx].ApprovalStake, stake)
			edges = append(edges, Edge[I]{TargetID: approval, CandidateIndex: idx})
		}
		vs[vi] = Voter[I]{
			ID:     in.ID,
			Budget: stake,
			Edges:  edges,
			Load:   ZeroRational128(),
		}
	}

	return Graph[I]{Candidates: cands, Voters: vs}
}
