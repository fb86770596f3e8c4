// Package tracking implements the per-generation bookkeeping an external
// optimizer drives: reporting each generation's best score and population
// diversity, and holding the single best candidate seen across the run.
package tracking

import (
	"context"

	"github.com/google/uuid"

	"github.com/XiaoConstantine/knapsack-go/pkg/core"
	"github.com/XiaoConstantine/knapsack-go/pkg/logging"
	"github.com/XiaoConstantine/knapsack-go/pkg/stats"
)

// Selector picks a generation's best individual from a population. The
// comparison must follow the core.Score order; the tie-break among equal
// scores is the selector's to choose, as long as it is deterministic.
type Selector func(pop core.Population) (*core.Individual, bool)

// DiversityFunc reduces a population to a scalar diversity measure for the
// generation report.
type DiversityFunc func(pop core.Population) float64

// Tracker observes one optimization run, generation by generation. It is
// owned by a single run loop: the optimizer finishes evaluating a
// generation, calls ObserveGeneration, and only then moves on, so the
// tracker carries no lock. It never fails; load and scoring problems belong
// to the collaborators that produce the populations.
type Tracker struct {
	runID     string
	selector  Selector
	diversity DiversityFunc
	logger    *logging.Logger

	best *core.Individual
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithSelector replaces the default selection policy. The default picks the
// maximum under the score order, keeping the earliest individual on ties.
func WithSelector(selector Selector) Option {
	return func(t *Tracker) {
		t.selector = selector
	}
}

// WithDiversity replaces the default diversity metric, stats.BitEntropy.
func WithDiversity(fn DiversityFunc) Option {
	return func(t *Tracker) {
		t.diversity = fn
	}
}

// WithLogger directs the tracker's reports to the given logger instead of
// the global one.
func WithLogger(logger *logging.Logger) Option {
	return func(t *Tracker) {
		t.logger = logger
	}
}

// NewTracker creates a tracker for one run with an empty best-ever record.
func NewTracker(opts ...Option) *Tracker {
	t := &Tracker{
		runID: uuid.New().String(),
		selector: func(pop core.Population) (*core.Individual, bool) {
			return pop.Best()
		},
		diversity: stats.BitEntropy,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// RunID returns the tracker's generated run identifier.
func (t *Tracker) RunID() string {
	return t.runID
}

// ObserveGeneration records one finished generation: it selects the
// generation's best individual, reports its score and the population's
// diversity, and then folds the result into the best-ever record. The
// record only ever improves; a generation whose best is not strictly better
// than the record leaves it untouched, so re-observing the same population
// is idempotent. The stored individual is a clone, immune to later caller
// mutation.
func (t *Tracker) ObserveGeneration(ctx context.Context, generation int, pop core.Population) {
	logger := t.log()

	best, ok := t.selector(pop)
	if !ok {
		logger.Warn(ctx, "generation %d had no individuals to observe", generation)
		return
	}

	logger.Info(ctx, "best score in generation %d was %s", generation, best.Score)
	logger.Info(ctx, "population entropy was %.4f", t.diversity(pop))

	if t.best == nil || best.Score.Cmp(t.best.Score) > 0 {
		t.best = best.Clone()
	}
}

// Best returns a copy of the best individual seen so far, or false before
// the first non-empty generation is observed.
func (t *Tracker) Best() (*core.Individual, bool) {
	if t.best == nil {
		return nil, false
	}
	return t.best.Clone(), true
}

// ReportFinal logs the best of the final population alongside the best of
// the whole run.
func (t *Tracker) ReportFinal(ctx context.Context, finalPop core.Population) {
	logger := t.log()

	if best, ok := t.selector(finalPop); ok {
		logger.Info(ctx, "best in final generation: %s with choices %s",
			best.Score, core.FormatChoices(best.Choices))
	}

	if t.best == nil {
		logger.Info(ctx, "no individuals were observed in this run")
		return
	}
	logger.Info(ctx, "best in overall run: %s with choices %s",
		t.best.Score, core.FormatChoices(t.best.Choices))
}

func (t *Tracker) log() *logging.Logger {
	if t.logger != nil {
		return t.logger
	}
	return logging.GetLogger()
}
