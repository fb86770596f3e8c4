package core

import "github.com/google/uuid"

// Individual is one scored member of a population: a candidate selection,
// the score it earned, and a stable identity for tracking across
// generations.
type Individual struct {
	ID      string
	Choices []bool
	Score   Score
}

// NewIndividual wraps a candidate selection in a fresh Individual with a
// generated ID. The score starts at the zero value, Overloaded, until a
// scorer assigns one.
func NewIndividual(choices []bool) *Individual {
	return &Individual{
		ID:      uuid.New().String(),
		Choices: choices,
	}
}

// Clone returns a deep copy whose choice vector is independent of the
// receiver's.
func (ind *Individual) Clone() *Individual {
	if ind == nil {
		return nil
	}
	choices := make([]bool, len(ind.Choices))
	copy(choices, ind.Choices)
	return &Individual{
		ID:      ind.ID,
		Choices: choices,
		Score:   ind.Score,
	}
}
