package board

// Counters are per-game-state search and evaluation statistics, threaded
// through the evaluator and search by pointer rather than kept as
// process-wide globals.
type Counters struct {
	Evaluations       uint64
	TranspositionHits uint64
	AlphaBetaCutoffs  uint64
	FutilityPrunes    uint64
}
