package trainer_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waxwing/gambit/pkg/eval"
	"github.com/waxwing/gambit/pkg/trainer"
)

func writeCorpus(t *testing.T, rows ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.csv")
	content := ""
	for _, r := range rows {
		content += r + "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestScorePuzzlesCountsAllPasses(t *testing.T) {
	path := writeCorpus(t,
		"a,6k1/1p3ppp/8/8/8/8/8/R5K1 b - - 0 1,b7b6 a1a8,1000,50,10,10,mate,url,tags",
		"b,6k1/1p3ppp/8/8/8/8/8/R5K1 b - - 0 1,b7b6 a1a8,1000,50,10,10,mate,url,tags",
	)

	ctx := context.Background()
	passes := trainer.ScorePuzzles(ctx, path, eval.DefaultWeights(), 1, 2, 2, nil)
	assert.Equal(t, 2, passes)
}

func TestScorePuzzlesIsOrderIndependentUnderConcurrency(t *testing.T) {
	path := writeCorpus(t,
		"a,6k1/1p3ppp/8/8/8/8/8/R5K1 b - - 0 1,b7b6 a1a8,1000,50,10,10,mate,url,tags",
		"b,q3k3/7p/8/8/8/8/8/R3K3 b - - 0 1,h7h6 e1e2,1000,50,10,10,none,url,tags",
		"c,6k1/1p3ppp/8/8/8/8/8/R5K1 b - - 0 1,b7b6 a1a8,1000,50,10,10,mate,url,tags",
	)

	ctx := context.Background()
	passes := trainer.ScorePuzzles(ctx, path, eval.DefaultWeights(), 1, 3, 4, nil)
	assert.Equal(t, 2, passes)
}

func TestScorePuzzlesReportsProgress(t *testing.T) {
	path := writeCorpus(t,
		"a,6k1/p4ppp/8/8/8/8/8/R5K1 b - - 0 1,a7a6 a1a8,1000,50,10,10,mate,url,tags",
		"b,6k1/p4ppp/8/8/8/8/8/R5K1 b - - 0 1,a7a6 a1a8,1000,50,10,10,mate,url,tags",
		"c,6k1/p4ppp/8/8/8/8/8/R5K1 b - - 0 1,a7a6 a1a8,1000,50,10,10,mate,url,tags",
		"d,6k1/p4ppp/8/8/8/8/8/R5K1 b - - 0 1,a7a6 a1a8,1000,50,10,10,mate,url,tags",
		"e,6k1/p4ppp/8/8/8/8/8/R5K1 b - - 0 1,a7a6 a1a8,1000,50,10,10,mate,url,tags",
	)

	var calls int
	progress := func(completed, total, passes int) {
		calls++
		assert.Equal(t, 5, total)
	}

	ctx := context.Background()
	trainer.ScorePuzzles(ctx, path, eval.DefaultWeights(), 1, 5, 1, progress)
	assert.Equal(t, 1, calls)
}
