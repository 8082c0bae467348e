// Package trainer implements an elitist mutation loop: a top-5 population of
// (weights, score) champions, mutated by cooling Gaussian noise and evaluated
// against the puzzle corpus in parallel.
package trainer

import "github.com/waxwing/gambit/pkg/eval"

// populationSize is the top-5 champion pool kept across generations.
const populationSize = 5

// Champion pairs a weight set with the puzzle score it earned.
type Champion struct {
	Weights eval.Weights
	Score   int
}

// Population is the sorted top-5, descending by Score. Score ties keep
// insertion order (stable), for deterministic tie-breaking.
type Population struct {
	champions []Champion
}

// NewPopulation returns an empty population.
func NewPopulation() *Population {
	return &Population{}
}

// Best returns the current leader, if any.
func (p *Population) Best() (Champion, bool) {
	if len(p.champions) == 0 {
		return Champion{}, false
	}
	return p.champions[0], true
}

// Worst returns the population's current floor score, or -1 if the
// population has fewer than populationSize members (anything beats an
// unfilled slot).
func (p *Population) Worst() int {
	if len(p.champions) < populationSize {
		return -1
	}
	return p.champions[len(p.champions)-1].Score
}

// Len returns the number of champions currently held.
func (p *Population) Len() int {
	return len(p.champions)
}

// At returns the champion at rank i (0 = best).
func (p *Population) At(i int) Champion {
	return p.champions[i]
}

// Insert adds c to the population if it beats the current floor (or the
// population is not yet full), keeping the pool sorted and capped at
// populationSize. Acceptance is pure elitism: a challenger only ever joins by
// strictly outscoring the current floor.
func (p *Population) Insert(c Champion) bool {
	if len(p.champions) >= populationSize && c.Score <= p.Worst() {
		return false
	}

	i := 0
	for i < len(p.champions) && p.champions[i].Score >= c.Score {
		i++
	}
	p.champions = append(p.champions, Champion{})
	copy(p.champions[i+1:], p.champions[i:])
	p.champions[i] = c

	if len(p.champions) > populationSize {
		p.champions = p.champions[:populationSize]
	}
	return true
}
