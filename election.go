// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package npos

// BalancedHeuristic runs the election pipeline end to end with default
// settings (per-billion accuracy, the shipped (2, 0) balancer pair, no
// logging or metrics): build the graph, run up to toElect rounds of
// {score, apply, balance}, then emit normalized assignments.
//
// Use NewElection directly (with WithAccuracy/WithBalanceConfig/WithLogger/
// WithMetrics) for anything beyond the defaults.
func BalancedHeuristic[I Id](toElect int, candidates []I, voters []VoterInput[I]) (ElectionResult[I], error) {
	return Run(NewElection(toElect), candidates, voters)
}
