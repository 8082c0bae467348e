package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/waxwing/gambit/pkg/board"
)

func TestHistoryCount(t *testing.T) {
	var h board.History
	assert.Equal(t, 0, h.Count(42))

	h.Push(42)
	assert.Equal(t, 1, h.Count(42))

	h.Push(42)
	h.Push(42)
	assert.Equal(t, 3, h.Count(42))
	assert.Equal(t, 0, h.Count(7))
}

func TestHistoryWrapsAtCapacity(t *testing.T) {
	var h board.History
	for i := 0; i < 199; i++ {
		h.Push(uint64(i))
	}
	h.Push(999) // the 200th entry, fills the ring exactly
	assert.Equal(t, 1, h.Count(999))
	assert.Equal(t, 1, h.Count(0))

	h.Push(1000) // overwrites the oldest entry (hash 0)
	assert.Equal(t, 1, h.Count(1000))
	assert.Equal(t, 0, h.Count(0))
}
