// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package npos

// Id is the constraint on candidate/voter identifiers. The election core
// only compares identifiers for equality and uses them as map keys: they are
// never ordered, displayed, or serialized by this package. Totally ordered built-in
// types (integers, strings) satisfy it directly; opaque identifiers from a
// calling layer (e.g. an account id) should be mapped to one of these before
// crossing into this package.
type Id interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~string
}
