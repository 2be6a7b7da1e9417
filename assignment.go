// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package npos

// Assignment is a voter's stake assignment among a set of targets,
// represented as ratios summing to one.
type Assignment[I Id] struct {
	Who          I
	Distribution []AssignmentEntry[I]
}

// AssignmentEntry is one (target, ratio) pair of an Assignment.
type AssignmentEntry[I Id] struct {
	Target I
	Ratio  Ratio
}

// StakedAssignment is a voter's stake assignment among a set of targets,
// represented as absolute ExtendedBalance values summing to the voter's
// budget.
type StakedAssignment[I Id] struct {
	Who          I
	Distribution []StakedEntry[I]
}

// StakedEntry is one (target, weight) pair of a StakedAssignment.
type StakedEntry[I Id] struct {
	Target I
	Weight ExtendedBalance
}

// Total returns the sum of this staked assignment's distribution (the
// voter's effective committed budget).
func (s StakedAssignment[I]) Total() ExtendedBalance {
	var total ExtendedBalance
	for _, e := range s.Distribution {
		total, _ = SatAdd(total, e.Weight)
	}
	return total
}

// IntoAssignment converts a voter's non-zero edges into a ratio Assignment,
// dropping zero-ratio edges. It returns false if the resulting
// distribution is empty.
func IntoAssignment[I Id](voter Voter[I], accuracy uint64) (Assignment[I], bool) {
	var dist []AssignmentEntry[I]
	for _, e := range voter.Edges {
		r := RatioFromRationalApproximation(e.Weight, voter.Budget, accuracy)
		if r.IsZero() {
			continue
		}
		dist = append(dist, AssignmentEntry[I]{Target: e.TargetID, Ratio: r})
	}
	if len(dist) == 0 {
		return Assignment[I]{}, false
	}
	return Assignment[I]{Who: voter.ID, Distribution: dist}, true
}

// IntoStaked converts a ratio Assignment into a StakedAssignment given the
// voter's total stake, using nearest-rounding multiplication and dropping
// zero-ratio entries.
func (a Assignment[I]) IntoStaked(stake ExtendedBalance) StakedAssignment[I] {
	var dist []StakedEntry[I]
	for _, e := range a.Distribution {
		if e.Ratio.IsZero() {
			continue
		}
		dist = append(dist, StakedEntry[I]{Target: e.Target, Weight: e.Ratio.MulBalance(stake)})
	}
	return StakedAssignment[I]{Who: a.Who, Distribution: dist}
}

// IntoAssignment converts a StakedAssignment back into a ratio Assignment,
// dropping entries whose approximated ratio is exactly zero.
func (s StakedAssignment[I]) IntoAssignment(accuracy uint64) Assignment[I] {
	total := s.Total()
	var dist []AssignmentEntry[I]
	for _, e := range s.Distribution {
		r := RatioFromRationalApproximation(e.Weight, total, accuracy)
		if r.IsZero() {
			continue
		}
		dist = append(dist, AssignmentEntry[I]{Target: e.Target, Ratio: r})
	}
	return Assignment[I]{Who: s.Who, Distribution: dist}
}

// TryNormalize adjusts this assignment's ratios so they sum to exactly
// OneRatio(accuracy).
func (a *Assignment[I]) TryNormalize(accuracy uint64) error {
	ratios := make([]Ratio, len(a.Distribution))
	for i, e := range a.Distribution {
		ratios[i] = e.Ratio
	}
	normalized, err := NormalizeRatios(ratios, accuracy)
	if err != nil {
		return err
	}
	for i := range a.Distribution {
		a.Distribution[i].Ratio = normalized[i]
	}
	return nil
}

// TryNormalize adjusts this staked assignment's weights so they sum to
// exactly stake.
func (s *StakedAssignment[I]) TryNormalize(stake ExtendedBalance) error {
	weights := make([]ExtendedBalance, len(s.Distribution))
	for i, e := range s.Distribution {
		weights[i] = e.Weight
	}
	normalized, err := Normalize(weights, stake)
	if err != nil {
		return err
	}
	for i := range s.Distribution {
		s.Distribution[i].Weight = normalized[i]
	}
	return nil
}
