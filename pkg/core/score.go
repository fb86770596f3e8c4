package core

import "fmt"

// Score is the outcome of evaluating one candidate selection against a
// knapsack instance. A score is either Overloaded, marking a selection whose
// total weight exceeds the instance capacity, or a Value carrying the
// selection's total item value.
//
// Scores are totally ordered: Overloaded sorts strictly below every value
// score, including Value(0), so any feasible selection outranks any
// infeasible one. Among value scores the order is numeric. The zero value of
// Score is Overloaded.
type Score struct {
	feasible bool
	value    uint64
}

// Overloaded returns the score of an infeasible selection.
func Overloaded() Score {
	return Score{}
}

// Value returns the score of a feasible selection with the given total value.
func Value(total uint64) Score {
	return Score{feasible: true, value: total}
}

// IsOverloaded reports whether the score marks an infeasible selection.
func (s Score) IsOverloaded() bool {
	return !s.feasible
}

// Total returns the achieved value and true for a value score, or 0 and
// false for an Overloaded score.
func (s Score) Total() (uint64, bool) {
	if !s.feasible {
		return 0, false
	}
	return s.value, true
}

// Cmp compares two scores under the total order. It returns -1 when s sorts
// below other, 0 when the scores are equal, and +1 when s sorts above other.
func (s Score) Cmp(other Score) int {
	switch {
	case !s.feasible && !other.feasible:
		return 0
	case !s.feasible:
		return -1
	case !other.feasible:
		return 1
	case s.value < other.value:
		return -1
	case s.value > other.value:
		return 1
	default:
		return 0
	}
}

// Less reports whether s sorts strictly below other.
func (s Score) Less(other Score) bool {
	return s.Cmp(other) < 0
}

// Equal reports whether the two scores are the same.
func (s Score) Equal(other Score) bool {
	return s.Cmp(other) == 0
}

// String renders the score as "Overloaded" or "Value(n)".
func (s Score) String() string {
	if !s.feasible {
		return "Overloaded"
	}
	return fmt.Sprintf("Value(%d)", s.value)
}

// MaxScore returns the greater of a and b under the score order; when the
// two are equal it returns a.
func MaxScore(a, b Score) Score {
	if b.Cmp(a) > 0 {
		return b
	}
	return a
}

// BestScore returns the greatest of the given scores, or Overloaded when
// called with none. Ties keep the earliest argument.
func BestScore(scores ...Score) Score {
	best := Overloaded()
	for _, s := range scores {
		best = MaxScore(best, s)
	}
	return best
}
