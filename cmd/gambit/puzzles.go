package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/seekerror/logw"

	"github.com/waxwing/gambit/pkg/trainer"
)

// runPuzzles scores the configured (default) weights against a puzzle
// corpus, the standalone exercise of the same parallel scorer the trainer
// drives every iteration.
func runPuzzles(ctx context.Context, cfg fileConfig, args []string) {
	fs := flag.NewFlagSet("puzzles", flag.ExitOnError)
	corpus := fs.String("corpus", cfg.Train.CorpusPath, "Path to the puzzle corpus CSV")
	depth := fs.Int("depth", 4, "Search depth per puzzle")
	n := fs.Int("n", 500, "Number of puzzles to score")
	workers := fs.Int("workers", 16, "Number of parallel scoring workers")
	weights := fs.String("weights", cfg.Search.WeightsPath, "Path to a trained best_params.txt (optional)")
	fs.Parse(args)

	if *corpus == "" {
		logw.Exitf(ctx, "puzzles: -corpus is required")
	}
	cfg.Search.WeightsPath = *weights

	progress := func(completed, total, passes int) {
		fmt.Printf("progress: %d/%d scored, %d passed\n", completed, total, passes)
	}

	passes := trainer.ScorePuzzles(ctx, *corpus, weightsFromConfig(ctx, cfg), *depth, *n, *workers, progress)
	fmt.Printf("result: %d/%d puzzles passed\n", passes, *n)
}
