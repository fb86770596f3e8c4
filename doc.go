// Package knapsack is the evaluation core for 0/1 knapsack optimization:
// problem-instance loading, candidate scoring, and best-record tracking
// for generational optimizers that live outside this module.
//
// The module deliberately contains no search algorithm. An external
// optimizer proposes candidate choice vectors; this module answers how
// good each candidate is and remembers the best answer seen so far. It
// focuses on making it easy to:
//   - Load knapsack instances from the plain-text benchmark format
//   - Score candidate choice vectors with a capacity-cliff fitness
//   - Compare scores under a total order that ranks every overloaded
//     candidate below every feasible one
//   - Track the best individual across generations and report run summaries
//   - Measure population diversity with entropy-based statistics
//
// Key Components:
//
//   - Core: Fundamental abstractions like Score, Scorer, Individual and
//     Population for representing candidates and their fitness, plus
//     choice-vector text helpers for talking to external optimizers.
//
//   - Knapsack: The immutable problem instance (ordered items plus a
//     capacity) with value/weight aggregation over choice vectors, and a
//     loader for the plain-text instance format.
//
//   - Scorers: Fitness functions mapping choice vectors to Scores:
//     * CliffScorer: full value while the load fits, Overloaded the
//     moment total weight exceeds capacity
//
//   - Tracking: Run observation for generational runs:
//     * Tracker: logs each generation's best score and diversity, and
//     keeps a clone of the best individual ever observed
//     * Pluggable Selector and DiversityFunc for custom notions of
//     "best" and "diverse"
//
//   - Stats: Population statistics:
//     * BitEntropy: mean per-locus Shannon entropy of the choice bits
//     * ScoreEntropy: entropy over score equivalence classes
//     * Summarize: best/worst/mean value and feasible fraction
//
//   - Instances: Bundled benchmark instances (tiny, small_1, small_2)
//     addressable by name, plus download-on-demand for instances from
//     the JorikJooken benchmark collection.
//
// Simple Example:
//
//	import (
//	    "context"
//	    "fmt"
//	    "log"
//
//	    "github.com/XiaoConstantine/knapsack-go/pkg/core"
//	    "github.com/XiaoConstantine/knapsack-go/pkg/instances"
//	    "github.com/XiaoConstantine/knapsack-go/pkg/scorers"
//	    "github.com/XiaoConstantine/knapsack-go/pkg/tracking"
//	)
//
//	func main() {
//	    // Load a bundled instance (or a file path via instances.Resolve)
//	    instance, err := instances.Load("tiny")
//	    if err != nil {
//	        log.Fatalf("Failed to load instance: %v", err)
//	    }
//
//	    scorer := scorers.NewCliffScorer(instance)
//	    tracker := tracking.NewTracker()
//
//	    // Candidate choice vectors come from an external optimizer.
//	    choices, _ := core.ParseChoices("101")
//	    ind := core.NewIndividual(choices)
//	    ind.Score = scorer.Score(ind.Choices)
//
//	    tracker.ObserveGeneration(context.Background(), 1, core.Population{ind})
//	    if best, ok := tracker.Best(); ok {
//	        fmt.Printf("Best so far: %s\n", best.Score)
//	    }
//	}
//
// Scoring Semantics:
//
//   - Scores form a total order: Overloaded < Value(0) < Value(n), so a
//     candidate that packs nothing still beats every candidate that
//     bursts the knapsack.
//   - A choice vector and an instance may disagree on length; the
//     shorter side wins and the excess is ignored on either side.
//   - Scoring is pure and safe for concurrent use: no allocation, no
//     I/O, no shared mutable state.
//
// Additional Features:
//
//   - Structured Logging: Severity-filtered logging with console and
//     file outputs, used by the tracker for generation reports.
//
//   - Error Handling: Coded errors (IOFailed, InvalidFormat, ...) with
//     structured fields naming the offending path, line, or value.
//
//   - Configuration: YAML run configuration with defaults and
//     struct-tag validation.
//
//   - Instance Management: Built-in support for materializing bundled
//     instances to disk and fetching benchmark instances on demand.
//
// For more examples and detailed documentation, visit:
// https://github.com/XiaoConstantine/knapsack-go
//
// Knapsack-Go is released under the MIT License.
package knapsack
