// Package engine wraps one game in progress: its current state, its
// evaluator and its searcher, guarded by a single mutex so the interactive
// console and any future UI can share one Engine safely.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/seekerror/build"
	"github.com/seekerror/logw"

	"github.com/waxwing/gambit/pkg/board"
	"github.com/waxwing/gambit/pkg/eval"
	"github.com/waxwing/gambit/pkg/fen"
	"github.com/waxwing/gambit/pkg/rules"
	"github.com/waxwing/gambit/pkg/search"
)

var version = build.NewVersion(0, 1, 0)

// Options configure a new Engine.
type Options struct {
	Depth   int // search depth limit; 0 defaults to 4
	Weights eval.Weights
}

func (o Options) String() string {
	return fmt.Sprintf("{depth=%v}", o.Depth)
}

// Engine owns a single GameState and the evaluator/searcher pair it uses to
// play it. Every public method takes the mutex, so one Engine can be shared
// safely across goroutines driving it.
type Engine struct {
	opts Options

	mu sync.Mutex
	gs board.GameState
	ev *eval.Evaluator
	s  *search.Searcher
}

// New returns an Engine at the standard starting position.
func New(ctx context.Context, opts Options) *Engine {
	if opts.Depth == 0 {
		opts.Depth = 4
	}

	e := &Engine{opts: opts}
	e.ev = eval.NewEvaluator(opts.Weights)
	e.s = search.NewSearcher(e.ev)
	e.gs = board.NewGame()

	logw.Infof(ctx, "Initialized engine %v, options=%v", version, opts)
	return e
}

// Name returns the engine's name and version, for banners and UCI-style ids.
func (e *Engine) Name() string {
	return fmt.Sprintf("gambit %v", version)
}

// Reset replaces the current game with the position described by fenString.
func (e *Engine) Reset(ctx context.Context, fenString string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	gs, err := fen.Decode(fenString)
	if err != nil {
		return err
	}
	e.gs = gs
	e.ev = eval.NewEvaluator(e.opts.Weights)
	e.s = search.NewSearcher(e.ev)

	logw.Infof(ctx, "Reset to %v", fenString)
	return nil
}

// State returns a copy of the current game state.
func (e *Engine) State() board.GameState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.gs.Clone()
}

// Move plays a reference-move string as the side to move, usually an
// opponent's move entered interactively.
func (e *Engine) Move(ctx context.Context, moveStr string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	candidate, err := board.ParseMove(moveStr)
	if err != nil {
		return fmt.Errorf("invalid move %q: %w", moveStr, err)
	}

	for _, m := range rules.GenerateLegal(&e.gs) {
		if !candidate.Equals(m) {
			continue
		}
		e.gs = rules.ApplyMove(e.gs, m)
		logw.Infof(ctx, "move %v played: %v", m, &e.gs)
		return nil
	}
	return fmt.Errorf("illegal move: %v", candidate)
}

// Search runs the engine's search at the configured depth and returns the
// chosen variation, without committing it to the game state -- the caller
// (console loop, UCI-style driver) decides whether to play it.
func (e *Engine) Search(ctx context.Context) search.Variation {
	e.mu.Lock()
	defer e.mu.Unlock()

	v := e.s.Search(ctx, &e.gs, e.opts.Depth)
	logw.Infof(ctx, "search depth=%v: %v", e.opts.Depth, v)
	return v
}

// Play runs the search and commits its top move to the game state, returning
// the variation that was played.
func (e *Engine) Play(ctx context.Context) (search.Variation, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	v := e.s.Search(ctx, &e.gs, e.opts.Depth)
	if v.Len == 0 {
		return v, fmt.Errorf("no legal move available")
	}
	e.gs = rules.ApplyMove(e.gs, v.Moves[0])
	logw.Infof(ctx, "played %v: %v", v.Moves[0], v)
	return v, nil
}

// Evaluate returns the static evaluation of the current position.
func (e *Engine) Evaluate() eval.Score {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ev.Evaluate(&e.gs)
}
