package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/XiaoConstantine/knapsack-go/pkg/core"
)

// PopulationOf builds a population of single-bit individuals carrying the
// given scores, for tests that only exercise score bookkeeping.
func PopulationOf(scores ...core.Score) core.Population {
	pop := make(core.Population, len(scores))
	for i, score := range scores {
		ind := core.NewIndividual([]bool{true})
		ind.Score = score
		pop[i] = ind
	}
	return pop
}

// ScoredIndividual builds one individual with the given choices and score.
func ScoredIndividual(choices []bool, score core.Score) *core.Individual {
	ind := core.NewIndividual(choices)
	ind.Score = score
	return ind
}

// WriteInstanceFile writes an instance file under a test temp directory and
// returns its path.
func WriteInstanceFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "instance.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
