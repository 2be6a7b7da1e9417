// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package npos implements a Nominated Proof-of-Stake election engine: a
// deterministic, balanced-heuristic variant of sequential Phragmén scored by
// inverse load, followed by a star-balancing post-processor that equalizes
// support across elected candidates.
//
// The algorithm never performs I/O, never uses floating point, and saturates
// rather than panics on arithmetic overflow. A single call either completes
// with a result or fails with an error; there is no partial result on
// failure.
//
// More information on the underlying method can be found at:
// https://arxiv.org/abs/2004.12990
package npos
