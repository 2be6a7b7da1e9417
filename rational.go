// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package npos

import "github.com/holiman/uint256"

// Rational128 is an arbitrary-precision ratio over the ExtendedBalance
// (128-bit unsigned) domain, used as the scoring key during the greedy
// selection round and to derive the per-round cutoff.
//
// Comparisons cross-multiply numerator/denominator pairs; the product of two
// 128-bit values needs up to 256 bits, which is exactly the width
// github.com/holiman/uint256 provides, so comparisons never need a
// gcd-reduction fallback (see DESIGN.md).
type Rational128 struct {
	N ExtendedBalance
	D ExtendedBalance
}

// NewRational128 constructs n/d. A zero denominator is never passed by any
// caller in this package; scores always carry a denominator of at least 1.
func NewRational128(n, d ExtendedBalance) Rational128 {
	return Rational128{N: n, D: d}
}

// NewRational128FromUint64 is a convenience constructor for literal ratios
// (e.g. the initial per-round score 1/ACCURACY).
func NewRational128FromUint64(n, d uint64) Rational128 {
	return Rational128{N: ExtendedBalanceFromUint64(n), D: ExtendedBalanceFromUint64(d)}
}

// ZeroRational128 is 0/1, the ranking floor that every candidate score must
// beat to become the round's best.
func ZeroRational128() Rational128 {
	return Rational128{N: ExtendedBalance{}, D: ExtendedBalanceFromUint64(1)}
}

// Cmp returns -1, 0, or 1 as this ratio is less than, equal to, or greater
// than other, by comparing the exact 256-bit cross products this.N*other.D
// and other.N*this.D.
func (r Rational128) Cmp(other Rational128) int {
	var left, right uint256.Int
	left.Mul(&r.N.v, &other.D.v)
	right.Mul(&other.N.v, &r.D.v)
	return left.Cmp(&right)
}

func (r Rational128) GreaterThan(other Rational128) bool { return r.Cmp(other) > 0 }
func (r Rational128) LessThan(other Rational128) bool    { return r.Cmp(other) < 0 }
func (r Rational128) Equal(other Rational128) bool       { return r.Cmp(other) == 0 }

// ThresholdCompare compares this ratio against other, treating them as equal
// whenever the absolute difference of their cross-multiplied values is
// within threshold*other.D of each other. This backs the epsilon-tolerant
// three-way comparison used by IsScoreBetter.
func (r Rational128) ThresholdCompare(other Rational128, threshold ExtendedBalance) int {
	left, _ := SatMul(r.N, other.D)
	right, _ := SatMul(other.N, r.D)
	scaledThreshold, _ := SatMul(threshold, other.D)
	diff := AbsDiff(left, right)
	if diff.Cmp(scaledThreshold) <= 0 {
		return 0
	}
	if left.GreaterThan(right) {
		return 1
	}
	return -1
}

// ToDen rescales this ratio to an equivalent fraction with denominator
// targetDen, truncating the new numerator (floor(N*targetDen/D)). It reports
// ok=false if the rescaled numerator would overflow ExtendedBalance, a
// genuine failure rather than a silent clamp, since folding this case into
// the ambient saturating discipline would corrupt the cutoff derived from
// it.
func (r Rational128) ToDen(targetDen ExtendedBalance) (ExtendedBalance, bool) {
	if r.D.IsZero() {
		return ExtendedBalance{}, false
	}
	var product, z uint256.Int
	product.Mul(&r.N.v, &targetDen.v)
	z.Div(&product, &r.D.v)
	if z.Gt(&maxExtendedBalance) {
		return ExtendedBalance{}, false
	}
	return ExtendedBalance{v: z}, true
}
