// Package stats computes population statistics for generation reporting:
// diversity metrics over choice vectors and summary figures over scores.
package stats

import (
	"math"

	"github.com/XiaoConstantine/knapsack-go/pkg/core"
)

// BitEntropy measures population diversity as the mean per-locus Shannon
// entropy of the choice bits, in bits. Each locus contributes
// -p*log2(p) - q*log2(q), where p is the fraction of the population choosing
// that item and q = 1-p. The result is 0 when every individual carries the
// same vector and 1 when every locus is split evenly. Loci align by
// position; an individual shorter than the longest vector counts as
// unchosen at the loci it lacks.
func BitEntropy(pop core.Population) float64 {
	if len(pop) == 0 {
		return 0
	}

	maxLen := 0
	for _, ind := range pop {
		if ind != nil && len(ind.Choices) > maxLen {
			maxLen = len(ind.Choices)
		}
	}
	if maxLen == 0 {
		return 0
	}

	total := float64(len(pop))
	var sum float64
	for locus := 0; locus < maxLen; locus++ {
		ones := 0
		for _, ind := range pop {
			if ind != nil && locus < len(ind.Choices) && ind.Choices[locus] {
				ones++
			}
		}
		sum += binaryEntropy(float64(ones) / total)
	}
	return sum / float64(maxLen)
}

// binaryEntropy is the Shannon entropy of a Bernoulli(p) variable in bits.
func binaryEntropy(p float64) float64 {
	var h float64
	if p > 0 {
		h -= p * math.Log2(p)
	}
	if q := 1 - p; q > 0 {
		h -= q * math.Log2(q)
	}
	return h
}

// ScoreEntropy measures diversity in score space: the Shannon entropy, in
// bits, of the distribution of distinct score values across the population.
// A population scoring identically has entropy 0; k equally common score
// classes have entropy log2(k).
func ScoreEntropy(pop core.Population) float64 {
	if len(pop) == 0 {
		return 0
	}

	counts := make(map[core.Score]int)
	for _, score := range pop.Scores() {
		counts[score]++
	}

	total := float64(len(pop))
	var entropy float64
	for _, n := range counts {
		p := float64(n) / total
		entropy -= p * math.Log2(p)
	}
	return entropy
}

// Summary holds the headline figures for one generation's population.
type Summary struct {
	Size             int
	Feasible         int
	FeasibleFraction float64
	Best             core.Score
	Worst            core.Score
	MeanValue        float64
}

// Summarize computes a Summary over the population. MeanValue averages the
// achieved values of the feasible individuals only; when none are feasible
// it is 0 and Best and Worst are both Overloaded.
func Summarize(pop core.Population) Summary {
	s := Summary{Size: len(pop)}
	if len(pop) == 0 {
		return s
	}

	var sum float64
	for i, score := range pop.Scores() {
		if i == 0 {
			s.Best, s.Worst = score, score
		} else {
			s.Best = core.MaxScore(s.Best, score)
			if score.Less(s.Worst) {
				s.Worst = score
			}
		}
		if total, ok := score.Total(); ok {
			s.Feasible++
			sum += float64(total)
		}
	}

	if s.Feasible > 0 {
		s.MeanValue = sum / float64(s.Feasible)
	}
	s.FeasibleFraction = float64(s.Feasible) / float64(s.Size)
	return s
}
