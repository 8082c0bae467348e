package trainer

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/waxwing/gambit/pkg/eval"
	"github.com/waxwing/gambit/pkg/puzzle"
)

// ProgressFunc is invoked every 5th completed puzzle during a scoring pass,
// with the running completed/total/passes counts.
type ProgressFunc func(completed, total, passes int)

// ScorePuzzles runs the puzzle corpus at path against w using nWorkers
// parallel workers sharing a work queue of puzzle indices. It returns the
// number of puzzles solved.
//
// Each worker loads its own puzzle row (the CSV reader is reentrant, opening
// the file per call) and scores it with its own Searcher/Evaluator, so no
// transposition-table state crosses puzzle boundaries.
func ScorePuzzles(ctx context.Context, corpusPath string, w eval.Weights, depth, nPuzzles, nWorkers int, progress ProgressFunc) int {
	var (
		queueMu sync.Mutex
		next    int

		resultsMu sync.Mutex
		results   = make([]bool, nPuzzles)
		completed int
		passes    int
	)

	popNext := func() (int, bool) {
		queueMu.Lock()
		defer queueMu.Unlock()
		if next >= nPuzzles {
			return 0, false
		}
		i := next
		next++
		return i, true
	}

	recordResult := func(i int, passed bool) {
		resultsMu.Lock()
		defer resultsMu.Unlock()
		results[i] = passed
		completed++
		if passed {
			passes++
		}
		if progress != nil && completed%5 == 0 {
			progress(completed, nPuzzles, passes)
		}
	}

	sem := semaphore.NewWeighted(int64(nWorkers))
	var wg sync.WaitGroup

	for {
		i, ok := popNext()
		if !ok {
			break
		}
		if err := sem.Acquire(ctx, 1); err != nil {
			break
		}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer sem.Release(1)
			recordResult(i, scoreOne(corpusPath, i, w, depth))
		}(i)
	}
	wg.Wait()

	return passes
}

func scoreOne(corpusPath string, i int, w eval.Weights, depth int) bool {
	p, err := puzzle.Load(corpusPath, i)
	if err != nil {
		return false
	}
	passed, err := puzzle.Score(p, w, depth)
	if err != nil {
		return false
	}
	return passed
}
