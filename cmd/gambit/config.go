package main

import (
	"context"

	"github.com/BurntSushi/toml"
	"github.com/seekerror/logw"

	"github.com/waxwing/gambit/pkg/eval"
	"github.com/waxwing/gambit/pkg/trainer"
)

// fileConfig is the shape of the optional TOML configuration file (-config):
// a struct decoded wholesale by BurntSushi/toml, with flags layered on top
// for the values a user actually wants to override per invocation.
type fileConfig struct {
	Search searchConfig
	Train  trainConfig
}

type searchConfig struct {
	Depth       int
	WeightsPath string
}

type trainConfig struct {
	CorpusPath string
	Iterations int
	NumPuzzles int
	NumWorkers int
	Depth      int
	OutputPath string
}

func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return cfg, nil
	}
	_, err := toml.DecodeFile(path, &cfg)
	return cfg, err
}

// weightsFromConfig loads the weights a previous training run wrote to
// cfg.Search.WeightsPath, falling back to the baseline weights when no path
// is configured or the file cannot be read.
func weightsFromConfig(ctx context.Context, cfg fileConfig) eval.Weights {
	if cfg.Search.WeightsPath == "" {
		return eval.DefaultWeights()
	}
	w, err := trainer.ReadBestParams(cfg.Search.WeightsPath)
	if err != nil {
		logw.Infof(ctx, "could not load weights from %q, using baseline: %v", cfg.Search.WeightsPath, err)
		return eval.DefaultWeights()
	}
	return w
}
