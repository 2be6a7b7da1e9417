// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package npos

// Common accuracies for the fixed-point ratio type Ratio, whose denominator
// is a positive integer ACCURACY. Any positive uint64 works as an accuracy;
// these are simply the conventional ones.
const (
	AccuracyPercent    uint64 = 100
	AccuracyPerMille   uint64 = 1_000
	AccuracyPerMillion uint64 = 1_000_000
	AccuracyPerBillion uint64 = 1_000_000_000
)

// Ratio is a fixed-point value in [0, 1], represented as Parts/Accuracy.
// Rather than a Go generic type parameter (which would need compile-time
// monomorphic accuracy), the accuracy is carried alongside the value so a
// single Election can be configured with any accuracy at construction time.
type Ratio struct {
	Accuracy uint64
	Parts    uint64
}

// ZeroRatio is the additive identity for the given accuracy.
func ZeroRatio(accuracy uint64) Ratio { return Ratio{Accuracy: accuracy, Parts: 0} }

// OneRatio is P::one(): Parts == Accuracy.
func OneRatio(accuracy uint64) Ratio { return Ratio{Accuracy: accuracy, Parts: accuracy} }

// IsZero reports whether this ratio is exactly 0.
func (r Ratio) IsZero() bool { return r.Parts == 0 }

// IsOne reports whether this ratio is exactly 1.
func (r Ratio) IsOne() bool { return r.Parts == r.Accuracy }

// Deconstruct returns the raw parts (the ACCURACY-scaled integer numerator).
func (r Ratio) Deconstruct() uint64 { return r.Parts }

// RatioFromRationalApproximation approximates n/d into a Ratio of the given
// accuracy, clamped to [0, 1] and truncated to the largest representable
// part not exceeding the true ratio. Truncation (rather than
// round-to-nearest) keeps the sum of a voter's emitted ratios at or below
// one, so normalization only ever needs to top entries up.
func RatioFromRationalApproximation(n, d ExtendedBalance, accuracy uint64) Ratio {
	if d.IsZero() || n.IsZero() {
		return ZeroRatio(accuracy)
	}
	if n.Cmp(d) >= 0 {
		return OneRatio(accuracy)
	}
	parts, ok := NewRational128(n, d).ToDen(ExtendedBalanceFromUint64(accuracy))
	if !ok {
		return OneRatio(accuracy)
	}
	p := parts.Uint64()
	if p > accuracy {
		p = accuracy
	}
	return Ratio{Accuracy: accuracy, Parts: p}
}

// MulBalance computes round(r * stake), the nearest-rounding multiplication
// used by Assignment.IntoStaked to convert a ratio-based assignment back into
// staked amounts.
func (r Ratio) MulBalance(stake ExtendedBalance) ExtendedBalance {
	if r.IsZero() || stake.IsZero() {
		return ExtendedBalance{}
	}
	num, _ := SatMul(stake, ExtendedBalanceFromUint64(r.Parts))
	half := Div(ExtendedBalanceFromUint64(r.Accuracy), ExtendedBalanceFromUint64(2))
	rounded, _ := SatAdd(num, half)
	return Div(rounded, ExtendedBalanceFromUint64(r.Accuracy))
}

// MulCeil multiplies by stake, rounding up, used to scale an epsilon ratio
// into an absolute threshold in IsScoreBetter.
func (r Ratio) MulCeil(stake ExtendedBalance) ExtendedBalance {
	if r.IsZero() || stake.IsZero() {
		return ExtendedBalance{}
	}
	num, _ := SatMul(stake, ExtendedBalanceFromUint64(r.Parts))
	denom := ExtendedBalanceFromUint64(r.Accuracy)
	quotient := Div(num, denom)
	remainder := SatSub(num, func() ExtendedBalance { p, _ := SatMul(quotient, denom); return p }())
	if remainder.IsZero() {
		return quotient
	}
	out, _ := SatAdd(quotient, ExtendedBalanceFromUint64(1))
	return out
}
