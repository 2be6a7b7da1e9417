// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package npos

import "fmt"

// ArithmeticError reports that a saturating operation produced an
// unacceptable result, or that final-assignment normalization failed.
type ArithmeticError struct {
	msg string
}

func (e *ArithmeticError) Error() string { return "npos: arithmetic error: " + e.msg }

// ErrArithmetic constructs an ArithmeticError.
func ErrArithmetic(msg string) error { return &ArithmeticError{msg: msg} }

// The remaining error kinds below belong to the compact (indexed) encoding
// collaborator, out of scope for this module, but are kept as named values
// since they share a taxonomy with ArithmeticError. Nothing in this package
// ever returns them.
var (
	// ErrCompactStakeOverflow: going from compact to staked, the stake of
	// all edges exceeded the total and the last stake could not be
	// assigned.
	ErrCompactStakeOverflow = fmt.Errorf("npos: compact stake overflow")
	// ErrCompactTargetOverflow: a compact voter's target count is out of
	// bound.
	ErrCompactTargetOverflow = fmt.Errorf("npos: compact target overflow")
	// ErrCompactInvalidIndex: one of the compact index lookups returned
	// none.
	ErrCompactInvalidIndex = fmt.Errorf("npos: compact invalid index")
)
