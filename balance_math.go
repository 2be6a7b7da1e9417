// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package npos

import "github.com/holiman/uint256"

// ExtendedBalance is the 128-bit unsigned integer domain used for all stake
// arithmetic. It is carried as the low 128 bits of a
// github.com/holiman/uint256.Int: every intermediate
// product of two ExtendedBalance values needs up to 256 bits to represent
// exactly (a 128-by-128 multiply), which uint256 provides natively without
// reaching for math/big. Values never exceed maxExtendedBalance; every
// constructor and arithmetic helper in this file enforces that ceiling by
// saturation, never by panicking.
type ExtendedBalance struct {
	v uint256.Int
}

// maxExtendedBalance is 2^128 - 1.
var maxExtendedBalance = func() uint256.Int {
	var z uint256.Int
	z.Lsh(uint256.NewInt(1), 128)
	z.SubUint64(&z, 1)
	return z
}()

// ExtendedBalanceFromUint64 promotes a VoteWeight/u64 stake into the
// ExtendedBalance domain.
func ExtendedBalanceFromUint64(n uint64) ExtendedBalance {
	return ExtendedBalance{v: *uint256.NewInt(n)}
}

// IsZero reports whether the value is 0.
func (b ExtendedBalance) IsZero() bool { return b.v.IsZero() }

// Uint64 truncates to the low 64 bits; callers must only use this once a
// value is known to fit (e.g. emitted stake for small test fixtures).
func (b ExtendedBalance) Uint64() uint64 { return b.v.Uint64() }

// Cmp returns -1, 0, or 1 as a is less than, equal to, or greater than other.
func (b ExtendedBalance) Cmp(other ExtendedBalance) int { return b.v.Cmp(&other.v) }

func (b ExtendedBalance) LessThan(other ExtendedBalance) bool    { return b.Cmp(other) < 0 }
func (b ExtendedBalance) GreaterThan(other ExtendedBalance) bool { return b.Cmp(other) > 0 }

func clamp(z *uint256.Int) (clamped bool) {
	if z.Gt(&maxExtendedBalance) {
		*z = maxExtendedBalance
		return true
	}
	return false
}

// SatAdd returns a + b, saturating at 2^128 - 1.
func SatAdd(a, b ExtendedBalance) (ExtendedBalance, bool) {
	var z uint256.Int
	z.Add(&a.v, &b.v)
	sat := clamp(&z)
	return ExtendedBalance{v: z}, sat
}

// SatSub returns a - b, saturating at 0 (never underflows below zero).
func SatSub(a, b ExtendedBalance) ExtendedBalance {
	if a.v.Lt(&b.v) {
		return ExtendedBalance{}
	}
	var z uint256.Int
	z.Sub(&a.v, &b.v)
	return ExtendedBalance{v: z}
}

// SatMul returns a * b, saturating at 2^128 - 1. The intermediate product
// never exceeds 256 bits (the maximum possible product of two 128-bit
// operands is strictly less than 2^256), so the underlying uint256
// multiplication never wraps before the saturation check runs.
func SatMul(a, b ExtendedBalance) (ExtendedBalance, bool) {
	var z uint256.Int
	z.Mul(&a.v, &b.v)
	sat := clamp(&z)
	return ExtendedBalance{v: z}, sat
}

// Div returns the integer quotient a / b. Callers must ensure b is non-zero;
// every call site in this package only ever divides by a provably non-zero
// divisor, such as a bucket count or element count of at least one.
func Div(a, b ExtendedBalance) ExtendedBalance {
	var z uint256.Int
	z.Div(&a.v, &b.v)
	return ExtendedBalance{v: z}
}

// MulDiv returns floor(a * b / c) without intermediate overflow, used by
// ApplyElected's redistribution step to compute the part of an edge's weight
// to move, edge weight times cutoff divided by the candidate's backed stake.
func MulDiv(a, b, c ExtendedBalance) ExtendedBalance {
	var prod uint256.Int
	prod.Mul(&a.v, &b.v)
	var z uint256.Int
	z.Div(&prod, &c.v)
	return ExtendedBalance{v: z}
}

// AbsDiff returns |a - b|.
func AbsDiff(a, b ExtendedBalance) ExtendedBalance {
	if a.LessThan(b) {
		return SatSub(b, a)
	}
	return SatSub(a, b)
}
