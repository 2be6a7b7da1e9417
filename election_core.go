// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package npos

import "github.com/luxfi/log"

// Winner is a winning candidate zipped with its final backed stake.
type Winner[I Id] struct {
	ID          I
	BackedStake ExtendedBalance
}

// ElectionResult is the final result of the election: the winners in the
// order their round completed, and the per-voter ratio assignments.
type ElectionResult[I Id] struct {
	Winners     []Winner[I]
	Assignments []Assignment[I]
}

// Election drives the balanced-heuristic pipeline. The zero value is not
// usable; construct with NewElection.
type Election struct {
	ToElect  int
	Accuracy uint64
	Balance  BalanceConfig
	Logger   log.Logger
	Metrics  *Metrics
}

// Option configures an Election at construction time.
type Option func(*Election)

// WithAccuracy sets the PerThing accuracy used for scoring and assignment
// ratios. Defaults to AccuracyPerBillion.
func WithAccuracy(accuracy uint64) Option {
	return func(e *Election) { e.Accuracy = accuracy }
}

// WithBalanceConfig overrides the star balancer's (iterations, tolerance)
// pair. Defaults to DefaultBalanceConfig().
func WithBalanceConfig(cfg BalanceConfig) Option {
	return func(e *Election) { e.Balance = cfg }
}

// WithLogger attaches a structured logger; round boundaries are logged at
// debug level. A nil logger (the default) disables logging.
func WithLogger(l log.Logger) Option {
	return func(e *Election) { e.Logger = l }
}

// WithMetrics attaches a Prometheus metrics sink.
func WithMetrics(m *Metrics) Option {
	return func(e *Election) { e.Metrics = m }
}

// NewElection constructs an Election that will elect up to toElect
// candidates.
func NewElection(toElect int, opts ...Option) *Election {
	e := &Election{
		ToElect:  toElect,
		Accuracy: AccuracyPerBillion,
		Balance:  DefaultBalanceConfig(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Election) logf(msg string, kvs ...any) {
	if e.Logger != nil {
		e.Logger.Debug(msg, kvs...)
	}
}

// Run executes the balanced-heuristic pipeline over the given raw candidates
// and voters: build the graph, run up to ToElect rounds of {score, apply,
// balance}, then emit and normalize assignments. A single error aborts the
// whole election with no partial result.
func Run[I Id](e *Election, candidates []I, voters []VoterInput[I]) (ElectionResult[I], error) {
	g := BuildGraph(candidates, voters)

	onSaturate := func() { e.Metrics.observeSaturation() }

	numEligible := 0
	for _, c := range g.Candidates {
		if !c.ApprovalStake.IsZero() {
			numEligible++
		}
	}
	toElect := e.ToElect
	if toElect > numEligible {
		toElect = numEligible
	}
	if toElect > len(g.Candidates) {
		toElect = len(g.Candidates)
	}

	winners := make([]int, 0, toElect)
	for round := 0; round < toElect; round++ {
		winnerIdx := CalculateMaxScore(&g, e.Accuracy)
		if g.Candidates[winnerIdx].Elected || g.Candidates[winnerIdx].ApprovalStake.IsZero() {
			// No remaining eligible candidate: every candidate with positive
			// approval stake is already elected, so stop early.
			break
		}

		ApplyElected(&g, winnerIdx, onSaturate)

		g.Candidates[winnerIdx].Round = round
		g.Candidates[winnerIdx].Elected = true
		winners = append(winners, winnerIdx)

		passes := Balance(&g, e.Balance)

		e.Metrics.observeRound()
		e.Metrics.observeBalancePasses(passes)
		e.logf("round complete",
			"round", round,
			"winner_index", winnerIdx,
			"winner_backed_stake", g.Candidates[winnerIdx].BackedStake.Uint64(),
			"balance_passes", passes,
		)
	}

	assignments := make([]Assignment[I], 0, len(g.Voters))
	for _, voter := range g.Voters {
		a, ok := IntoAssignment(voter, e.Accuracy)
		if !ok {
			continue
		}
		assignments = append(assignments, a)
	}

	for i := range assignments {
		if err := assignments[i].TryNormalize(e.Accuracy); err != nil {
			return ElectionResult[I]{}, err
		}
	}

	out := make([]Winner[I], len(winners))
	for i, idx := range winners {
		out[i] = Winner[I]{ID: g.Candidates[idx].ID, BackedStake: g.Candidates[idx].BackedStake}
	}

	return ElectionResult[I]{Winners: out, Assignments: assignments}, nil
}
