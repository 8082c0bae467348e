package trainer_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waxwing/gambit/pkg/eval"
	"github.com/waxwing/gambit/pkg/trainer"
)

func TestWriteThenReadBestParamsRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "best_params.txt")

	w := eval.DefaultWeights()
	w.Material[1] = 123.5
	w.PST[eval.KnightPST][2][3] = -7.25
	w.CheckPenalty = 42
	w.IslandTermEnabled = true

	require.NoError(t, trainer.WriteBestParams(path, 7, 314, w))

	got, err := trainer.ReadBestParams(path)
	require.NoError(t, err)

	assert.Equal(t, w.Material, got.Material)
	assert.Equal(t, w.PST[eval.KnightPST][2][3], got.PST[eval.KnightPST][2][3])
	assert.Equal(t, w.CheckPenalty, got.CheckPenalty)
	assert.Equal(t, w.IslandTermEnabled, got.IslandTermEnabled)
	assert.Equal(t, w.MoveDirectionTable, got.MoveDirectionTable)
	assert.Equal(t, w.MoveDistanceTable, got.MoveDistanceTable)
}

func TestReadBestParamsFillsMissingKeysFromBaseline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.txt")
	content := "# iteration 1 score 10\nmaterial 0 100 300 300 500 900 20000\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	got, err := trainer.ReadBestParams(path)
	require.NoError(t, err)

	baseline := eval.DefaultWeights()
	assert.Equal(t, baseline.CheckPenalty, got.CheckPenalty)
	assert.Equal(t, baseline.StalemateValue, got.StalemateValue)
}

func TestReadBestParamsMissingFileErrors(t *testing.T) {
	_, err := trainer.ReadBestParams(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
