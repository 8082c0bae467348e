// gambit is a chess engine with a parameterized evaluator tuned offline by
// simulated-annealing mutation against a tactical-puzzle corpus.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/seekerror/logw"
)

var (
	configPath = flag.String("config", "", "Path to a TOML configuration file (optional)")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: gambit <command> [options]

Commands:
  play       interactive console play against the engine
  puzzles    score a weight set against a puzzle corpus
  train      run the elitist mutation trainer against a puzzle corpus

Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		logw.Exitf(ctx, "No command given")
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logw.Exitf(ctx, "Invalid config %q: %v", *configPath, err)
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "play":
		runPlay(ctx, cfg, rest)
	case "puzzles":
		runPuzzles(ctx, cfg, rest)
	case "train":
		runTrain(ctx, cfg, rest)
	default:
		flag.Usage()
		logw.Exitf(ctx, "Unknown command %q", cmd)
	}
}
