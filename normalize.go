// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package npos

import "sort"

// Normalize adjusts items so their sum equals target, minimizing distortion,
// and preserving the input order in the returned slice.
//
// The discrepancy between the current sum and target is split into an equal
// per-element quotient plus a remainder of single units. A deficit tops up
// the smallest-valued elements first; an excess shaves the largest first.
// This hands the correction where it equalizes the elements rather than
// skewing them further, and runs in O(n log n) rather than O(|diff|), which
// matters once diff can be a large saturated value.
func Normalize(items []ExtendedBalance, target ExtendedBalance) ([]ExtendedBalance, error) {
	n := len(items)
	if n == 0 {
		if target.IsZero() {
			return nil, nil
		}
		return nil, ErrArithmetic("cannot normalize an empty sequence to a non-zero target")
	}

	var sum ExtendedBalance
	for _, it := range items {
		var overflowed bool
		sum, overflowed = SatAdd(sum, it)
		if overflowed {
			return nil, ErrArithmetic("sum of sequence overflowed ExtendedBalance")
		}
	}

	if sum.Cmp(target) == 0 {
		out := make([]ExtendedBalance, n)
		copy(out, items)
		return out, nil
	}

	out := make([]ExtendedBalance, n)
	copy(out, items)

	increasing := target.GreaterThan(sum)

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		if increasing {
			return items[order[i]].LessThan(items[order[j]])
		}
		return items[order[i]].GreaterThan(items[order[j]])
	})

	var diff ExtendedBalance
	if increasing {
		diff = SatSub(target, sum)
	} else {
		diff = SatSub(sum, target)
	}

	perItem := Div(diff, ExtendedBalanceFromUint64(uint64(n)))
	remainder := SatSub(diff, func() ExtendedBalance { p, _ := SatMul(perItem, ExtendedBalanceFromUint64(uint64(n))); return p }()).Uint64()

	for rank, idx := range order {
		share := perItem
		if uint64(rank) < remainder {
			share, _ = SatAdd(share, ExtendedBalanceFromUint64(1))
		}
		if share.IsZero() {
			continue
		}
		if increasing {
			out[idx], _ = SatAdd(out[idx], share)
		} else {
			if out[idx].LessThan(share) {
				return nil, ErrArithmetic("normalize: reduction exceeds element value")
			}
			out[idx] = SatSub(out[idx], share)
		}
	}

	return out, nil
}

// NormalizeRatios adjusts a sequence of ratios (all sharing one accuracy) so
// they sum to exactly OneRatio(accuracy), used by Assignment.TryNormalize.
func NormalizeRatios(ratios []Ratio, accuracy uint64) ([]Ratio, error) {
	parts := make([]ExtendedBalance, len(ratios))
	for i, r := range ratios {
		parts[i] = ExtendedBalanceFromUint64(r.Parts)
	}
	normalized, err := Normalize(parts, ExtendedBalanceFromUint64(accuracy))
	if err != nil {
		return nil, err
	}
	out := make([]Ratio, len(ratios))
	for i, p := range normalized {
		out[i] = Ratio{Accuracy: accuracy, Parts: p.Uint64()}
	}
	return out, nil
}
