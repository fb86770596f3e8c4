package core

// Scorer evaluates a candidate selection against a knapsack instance.
// Implementations must be pure: they do not mutate the instance or the
// choice vector, they return the same score for the same input, and they are
// safe for concurrent use from multiple goroutines.
type Scorer interface {
	Score(choices []bool) Score
}

// ScorerFunc adapts a plain function to the Scorer interface.
type ScorerFunc func(choices []bool) Score

// Score implements Scorer by calling f.
func (f ScorerFunc) Score(choices []bool) Score {
	return f(choices)
}
