// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package npos

// Support is the total stake a candidate is receiving and the voters that
// make it up.
type Support[I Id] struct {
	Total  ExtendedBalance
	Voters []SupportVoter[I]
}

// SupportVoter is one (voter, weight) contribution to a Support.
type SupportVoter[I Id] struct {
	Who    I
	Weight ExtendedBalance
}

// BuildSupportMap builds the support map from a winner list and a set of
// staked assignments. The second return value counts edges pointing at ids
// that are not in winners, a diagnostic that a caller can assert is zero for
// a well-formed result.
func BuildSupportMap[I Id](winners []I, assignments []StakedAssignment[I]) (map[I]*Support[I], uint32) {
	supports := make(map[I]*Support[I], len(winners))
	for _, w := range winners {
		supports[w] = &Support[I]{}
	}

	var errors uint32
	for _, a := range assignments {
		for _, e := range a.Distribution {
			s, ok := supports[e.Target]
			if !ok {
				errors++
				continue
			}
			s.Total, _ = SatAdd(s.Total, e.Weight)
			s.Voters = append(s.Voters, SupportVoter[I]{Who: a.Who, Weight: e.Weight})
		}
	}
	return supports, errors
}

// ElectionScore is [min_support, sum_support, sum_support_squared].
type ElectionScore [3]ExtendedBalance

// EvaluateSupport evaluates a support map: minimum support (maximize), sum of
// all supports (maximize), and sum of all supports squared (minimize).
func EvaluateSupport[I Id](supports map[I]*Support[I]) ElectionScore {
	minSupport := maxExtendedBalanceValue()
	var sum, sumSquared ExtendedBalance
	any := false
	for _, s := range supports {
		any = true
		sum, _ = SatAdd(sum, s.Total)
		squared, _ := SatMul(s.Total, s.Total)
		sumSquared, _ = SatAdd(sumSquared, squared)
		if s.Total.LessThan(minSupport) {
			minSupport = s.Total
		}
	}
	if !any {
		minSupport = ExtendedBalance{}
	}
	return ElectionScore{minSupport, sum, sumSquared}
}

// IsScoreBetter compares two election scores based on desirability and
// returns true if this is better than that, evaluated lexicographically with
// an epsilon-tolerant comparison at each component; the third component
// (sum of supports squared) should be minimized, the other two maximized.
// A component only counts as a tie-breaking "Equal" step toward the next
// component if this also is not strictly worse than that on that component
// (this >= that); otherwise this loses outright, even if the gap is within
// epsilon.
func IsScoreBetter(this, that ElectionScore, epsilon Ratio) bool {
	var ge [3]bool
	var cmp [3]int
	for i := 0; i < 3; i++ {
		ge[i] = this[i].Cmp(that[i]) >= 0
		threshold := epsilon.MulCeil(that[i])
		cmp[i] = NewRational128(this[i], ExtendedBalanceFromUint64(1)).
			ThresholdCompare(NewRational128(that[i], ExtendedBalanceFromUint64(1)), threshold)
	}

	if cmp[0] > 0 {
		return true
	}
	if ge[0] && cmp[0] == 0 && cmp[1] > 0 {
		return true
	}
	if ge[0] && cmp[0] == 0 && ge[1] && cmp[1] == 0 && cmp[2] < 0 {
		return true
	}
	return false
}
