package core

// Population is one generation's worth of scored individuals.
type Population []*Individual

// Best returns the highest-scoring individual under the score order. Ties
// keep the earliest individual, so the result is deterministic for a fixed
// population order. The second return is false for an empty population.
func (p Population) Best() (*Individual, bool) {
	var best *Individual
	for _, ind := range p {
		if ind == nil {
			continue
		}
		if best == nil || ind.Score.Cmp(best.Score) > 0 {
			best = ind
		}
	}
	if best == nil {
		return nil, false
	}
	return best, true
}

// Scores returns the individuals' scores in population order. Nil entries
// contribute the zero score, Overloaded.
func (p Population) Scores() []Score {
	scores := make([]Score, len(p))
	for i, ind := range p {
		if ind != nil {
			scores[i] = ind.Score
		}
	}
	return scores
}
