package eval

import (
	"sync/atomic"
	"unsafe"
)

// ttSize is the number of slots in the direct-mapped table: a fixed 2^16,
// not a size-configurable megabyte budget, since this cache only memoizes
// static evaluations.
const ttSize = 1 << 16

// entry is one memoized evaluation. hash 0 marks an unused slot; a position
// that genuinely hashes to 0 is remapped to the sentinel key 1 (see Key)
// rather than colliding with "empty".
type entry struct {
	hash  uint64
	score Score
}

// Table is a direct-mapped transposition table caching static evaluations by
// position hash. Each puzzle or worker constructs its own Evaluator, and so
// its own unshared Table; lookups and stores go through atomic pointer loads
// and stores, although nothing in this module uses one Table from more than
// one goroutine. Keyed on the full evaluation rather than (bound, depth, move)
// search metadata, since the evaluator has no notion of search depth or best
// move.
type Table struct {
	slots []unsafe.Pointer // *entry
	mask  uint64

	hits   uint64
	misses uint64
}

// NewTable allocates a fresh table with ttSize slots.
func NewTable() *Table {
	return &Table{
		slots: make([]unsafe.Pointer, ttSize),
		mask:  ttSize - 1,
	}
}

// Key maps a raw position hash to the table's lookup key, reserving 0 for
// "slot unused": a position whose hash is genuinely 0 is remapped to 1.
func Key(hash uint64) uint64 {
	if hash == 0 {
		return 1
	}
	return hash
}

// Lookup returns the memoized score for key, if present.
func (t *Table) Lookup(key uint64) (Score, bool) {
	idx := key & t.mask
	ptr := (*entry)(atomic.LoadPointer(&t.slots[idx]))
	if ptr != nil && ptr.hash == key {
		atomic.AddUint64(&t.hits, 1)
		return ptr.score, true
	}
	atomic.AddUint64(&t.misses, 1)
	return 0, false
}

// Store records score under key, unconditionally overwriting whatever
// occupied the slot -- the evaluator has no depth or ply to weigh a
// replacement policy by, so direct-mapped overwrite is all there is.
func (t *Table) Store(key uint64, score Score) {
	idx := key & t.mask
	atomic.StorePointer(&t.slots[idx], unsafe.Pointer(&entry{hash: key, score: score}))
}

// Stats returns the table's own running hit/miss counts. These are kept
// separately from Counters.TranspositionHits, which Evaluator.Evaluate
// increments itself.
func (t *Table) Stats() (hits, misses uint64) {
	return atomic.LoadUint64(&t.hits), atomic.LoadUint64(&t.misses)
}
