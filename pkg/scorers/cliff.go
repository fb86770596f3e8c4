// Package scorers holds the scoring policies that turn candidate selections
// into ordered scores for an external optimizer to rank.
package scorers

import (
	"github.com/XiaoConstantine/knapsack-go/pkg/core"
	"github.com/XiaoConstantine/knapsack-go/pkg/knapsack"
)

// CliffScorer scores candidates with a hard feasibility threshold: a
// selection whose total weight exceeds the instance capacity scores
// Overloaded, and every other selection scores the total value it achieves.
// There is no partial credit near the boundary; the score landscape drops
// off a cliff at capacity, ranking every feasible selection above every
// infeasible one.
//
// The scorer is stateless apart from the read-only instance it wraps, so a
// single scorer can evaluate many candidates concurrently.
type CliffScorer struct {
	instance *knapsack.Knapsack
}

// NewCliffScorer builds a scorer for the given instance.
func NewCliffScorer(instance *knapsack.Knapsack) *CliffScorer {
	return &CliffScorer{instance: instance}
}

// Score implements core.Scorer with the cliff policy. It is pure and total:
// the same choices always produce the same score, and no input can fail. A
// zero-capacity instance still scores, since a selection of total weight
// zero remains feasible.
func (s *CliffScorer) Score(choices []bool) core.Score {
	if s.instance.Weight(choices) > s.instance.Capacity() {
		return core.Overloaded()
	}
	return core.Value(s.instance.Value(choices))
}
