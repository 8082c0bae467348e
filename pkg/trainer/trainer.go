package trainer

import (
	"context"
	"math/rand"

	"github.com/seekerror/logw"
	"github.com/waxwing/gambit/pkg/eval"
)

// Config bundles one training run's parameters.
type Config struct {
	CorpusPath string
	OutputPath string
	Iterations int
	NumPuzzles int
	NumWorkers int
	Depth      int
	Progress   ProgressFunc
}

// Train runs the elitist mutation loop to completion, returning the best
// score found. Iteration 0 seeds the population with the baseline weights,
// scored once; every subsequent iteration perturbs a uniformly chosen parent
// from the current top-5 and re-scores the child.
func Train(ctx context.Context, cfg Config, rng *rand.Rand) (int, error) {
	pop := NewPopulation()

	baseline := eval.DefaultWeights()
	baselineScore := ScorePuzzles(ctx, cfg.CorpusPath, baseline, cfg.Depth, cfg.NumPuzzles, cfg.NumWorkers, cfg.Progress)
	pop.Insert(Champion{Weights: baseline, Score: baselineScore})

	bestScore := baselineScore
	if err := WriteBestParams(cfg.OutputPath, 0, baselineScore, baseline); err != nil {
		return 0, err
	}
	logw.Infof(ctx, "iteration 0: baseline score=%d", baselineScore)

	for k := 1; k <= cfg.Iterations; k++ {
		parent := pop.At(rng.Intn(pop.Len()))
		sigma := Sigma(k)
		child := parent.Weights.Perturb(rng, sigma)

		childScore := ScorePuzzles(ctx, cfg.CorpusPath, child, cfg.Depth, cfg.NumPuzzles, cfg.NumWorkers, cfg.Progress)

		best, _ := pop.Best()
		accepted := childScore > best.Score || rng.Float64() < AcceptanceProbability(best.Score, childScore, k, cfg.Iterations)

		inserted := pop.Insert(Champion{Weights: child, Score: childScore})

		logw.Infof(ctx, "iteration %d: sigma=%.4f score=%d accepted=%v inserted=%v", k, sigma, childScore, accepted, inserted)

		if childScore > bestScore {
			bestScore = childScore
			if err := WriteBestParams(cfg.OutputPath, k, childScore, child); err != nil {
				return bestScore, err
			}
			logw.Infof(ctx, "iteration %d: new best score=%d, wrote %s", k, childScore, cfg.OutputPath)
		}
	}

	return bestScore, nil
}
