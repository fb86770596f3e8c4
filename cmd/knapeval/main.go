// Command knapeval scores candidate choice vectors against a knapsack
// instance and reports a generation-style summary, standing in for the
// evaluation half of a full optimization run.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/XiaoConstantine/knapsack-go/pkg/config"
	"github.com/XiaoConstantine/knapsack-go/pkg/core"
	"github.com/XiaoConstantine/knapsack-go/pkg/errors"
	"github.com/XiaoConstantine/knapsack-go/pkg/instances"
	"github.com/XiaoConstantine/knapsack-go/pkg/knapsack"
	"github.com/XiaoConstantine/knapsack-go/pkg/logging"
	"github.com/XiaoConstantine/knapsack-go/pkg/scorers"
	"github.com/XiaoConstantine/knapsack-go/pkg/stats"
	"github.com/XiaoConstantine/knapsack-go/pkg/tracking"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func main() {
	instancePath := flag.String("instance", "",
		"Instance file path or bundled instance name ("+strings.Join(instances.Names(), ", ")+")")
	candidatesPath := flag.String("candidates", "",
		"File of candidate choice vectors, one per line (defaults to stdin)")
	configPath := flag.String("config", "", "YAML configuration file")
	logLevel := flag.String("log-level", "", "Log severity (DEBUG, INFO, WARN, ERROR)")
	quiet := flag.Bool("quiet", false, "Suppress per-candidate reporting")
	flag.Parse()

	ctx := context.Background()

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *instancePath != "" {
		cfg.Instance.Path = *instancePath
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}

	logger := newLogger(cfg.Logging)
	logging.SetLogger(logger)

	instance, err := instances.Resolve(cfg.Instance.Path)
	if err != nil {
		logger.Fatalf(ctx, "failed to load instance %s: %v", cfg.Instance.Path, err)
	}

	printer := message.NewPrinter(language.English)
	logger.Info(ctx, "loaded instance %s: %d items, capacity %s",
		cfg.Instance.Path, instance.NumItems(), printer.Sprintf("%d", instance.Capacity()))

	var in io.Reader = os.Stdin
	if *candidatesPath != "" {
		f, err := os.Open(*candidatesPath)
		if err != nil {
			logger.Fatalf(ctx, "failed to open candidates file %s: %v", *candidatesPath, err)
		}
		defer f.Close()
		in = f
	}

	pop, err := readCandidates(in)
	if err != nil {
		logger.Fatalf(ctx, "failed to read candidates: %v", err)
	}

	if err := scoreAll(ctx, scorers.NewCliffScorer(instance), pop); err != nil {
		logger.Fatalf(ctx, "scoring was interrupted: %v", err)
	}

	if !*quiet {
		reportCandidates(ctx, logger, printer, instance, pop)
	}

	tracker := tracking.NewTracker(tracking.WithLogger(logger))
	tracker.ObserveGeneration(ctx, 0, pop)

	summary := stats.Summarize(pop)
	logger.Info(ctx, "%d of %d candidates were feasible", summary.Feasible, summary.Size)
}

func newLogger(cfg config.LoggingConfig) *logging.Logger {
	outputs := []logging.Output{
		logging.NewConsoleOutput(true, logging.WithColor(cfg.Color)),
	}
	if cfg.File != "" {
		fileOutput, err := logging.NewFileOutput(cfg.File)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file %s: %v\n", cfg.File, err)
			os.Exit(1)
		}
		outputs = append(outputs, fileOutput)
	}
	return logging.NewLogger(logging.Config{
		Severity: logging.ParseSeverity(cfg.Level),
		Outputs:  outputs,
	})
}

// readCandidates parses one choice vector per line, skipping blank
// lines. Parse failures carry the offending line number.
func readCandidates(r io.Reader) (core.Population, error) {
	var pop core.Population

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		choices, err := core.ParseChoices(text)
		if err != nil {
			return nil, errors.WithFields(err, errors.Fields{"line": line})
		}
		pop = append(pop, core.NewIndividual(choices))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, errors.IOFailed, "failed to read candidate input")
	}
	return pop, nil
}

func scoreAll(ctx context.Context, scorer core.Scorer, pop core.Population) error {
	for _, ind := range pop {
		if err := errors.CheckContext(ctx, "scoring"); err != nil {
			return err
		}
		ind.Score = scorer.Score(ind.Choices)
	}
	return nil
}

func reportCandidates(ctx context.Context, logger *logging.Logger, printer *message.Printer, instance *knapsack.Knapsack, pop core.Population) {
	capacity := printer.Sprintf("%d", instance.Capacity())
	for i, ind := range pop {
		weight := instance.Weight(ind.Choices)
		logger.Info(ctx, "candidate %d scored %s (weight %s of %s)",
			i+1, ind.Score, printer.Sprintf("%d", weight), capacity)
	}
}
