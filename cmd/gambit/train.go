package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/pkg/profile"
	"github.com/seekerror/logw"

	"github.com/waxwing/gambit/pkg/trainer"
)

// runTrain drives the elitist mutation loop to completion, optionally
// wrapped in a CPU profile, since a training run is the one CPU-bound,
// long-lived operation in this program worth profiling.
func runTrain(ctx context.Context, cfg fileConfig, args []string) {
	fs := flag.NewFlagSet("train", flag.ExitOnError)
	corpus := fs.String("corpus", cfg.Train.CorpusPath, "Path to the puzzle corpus CSV")
	output := fs.String("output", orDefault(cfg.Train.OutputPath, "best_params.txt"), "Path to write the best-weights file")
	iterations := fs.Int("iterations", orDefaultInt(cfg.Train.Iterations, 1000), "Number of mutation iterations")
	numPuzzles := fs.Int("puzzles", orDefaultInt(cfg.Train.NumPuzzles, 500), "Puzzle corpus size to score against")
	workers := fs.Int("workers", orDefaultInt(cfg.Train.NumWorkers, 16), "Number of parallel scoring workers")
	depth := fs.Int("depth", orDefaultInt(cfg.Train.Depth, 4), "Search depth per puzzle")
	cpuProfile := fs.Bool("cpuprofile", false, "Write a CPU profile of the training run")
	fs.Parse(args)

	if *corpus == "" {
		logw.Exitf(ctx, "train: -corpus is required")
	}

	if *cpuProfile {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	runCfg := trainer.Config{
		CorpusPath: *corpus,
		OutputPath: *output,
		Iterations: *iterations,
		NumPuzzles: *numPuzzles,
		NumWorkers: *workers,
		Depth:      *depth,
		Progress: func(completed, total, passes int) {
			logw.Debugf(ctx, "scoring progress: %d/%d, %d passed", completed, total, passes)
		},
	}

	logw.Infof(ctx, "training: corpus=%v iterations=%v puzzles=%v workers=%v depth=%v output=%v",
		*corpus, *iterations, *numPuzzles, *workers, *depth, *output)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	best, err := trainer.Train(ctx, runCfg, rng)
	if err != nil {
		logw.Exitf(ctx, "training failed: %v", err)
	}

	fmt.Printf("training complete: best score %d/%d, weights written to %v\n", best, *numPuzzles, *output)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func orDefaultInt(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
