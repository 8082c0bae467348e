package eval_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/waxwing/gambit/pkg/eval"
)

func TestDefaultWeightsAreAlreadyClamped(t *testing.T) {
	w := eval.DefaultWeights()
	clamped := w.Clone()
	clamped.Clamp()
	assert.Equal(t, w, clamped)
}

func TestClampBoundsPSTAndScalars(t *testing.T) {
	w := eval.DefaultWeights()
	w.PST[eval.PawnPST][0][0] = 999
	w.PST[eval.PawnPST][1][1] = -999
	w.CheckPenalty = -50
	w.Material[1] = -10

	w.Clamp()

	assert.Equal(t, 50.0, w.PST[eval.PawnPST][0][0])
	assert.Equal(t, -50.0, w.PST[eval.PawnPST][1][1])
	assert.Equal(t, 0.0, w.CheckPenalty)
	assert.Equal(t, 0.0, w.Material[1])
}

func TestCloneIsIndependent(t *testing.T) {
	w := eval.DefaultWeights()
	c := w.Clone()
	c.Material[1] = 12345

	assert.NotEqual(t, w.Material[1], c.Material[1])
}

func TestPerturbStaysWithinClampBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	w := eval.DefaultWeights()

	for i := 0; i < 50; i++ {
		w = w.Perturb(rng, 30)
		assert.GreaterOrEqual(t, w.CheckPenalty, 0.0)
		assert.LessOrEqual(t, w.CheckPenalty, 500.0)
		for f := 0; f < 8; f++ {
			for r := 0; r < 8; r++ {
				assert.GreaterOrEqual(t, w.PST[eval.KnightPST][f][r], -50.0)
				assert.LessOrEqual(t, w.PST[eval.KnightPST][f][r], 50.0)
			}
		}
	}
}

func TestPerturbZeroSigmaIsIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	w := eval.DefaultWeights()
	p := w.Perturb(rng, 0)

	assert.Equal(t, w, p)
}
