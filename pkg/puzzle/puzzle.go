// Package puzzle loads the tactical-puzzle corpus and scores an evaluator's
// weights against it by driving the search through each puzzle's reference
// line.
package puzzle

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Puzzle is one row of the corpus CSV.
type Puzzle struct {
	ID              string
	FEN             string
	Moves           []string // reference-move strings, space-separated in the source row
	Rating          int
	RatingDeviation int
	Popularity      int
	NbPlays         int
	Themes          string
	GameURL         string
	OpeningTags     string
}

// Load reads row n (0-indexed) of the corpus at path. It opens and closes
// the file per call so parallel workers can call it reentrantly -- no shared
// file handle or cache survives the call.
func Load(path string, n int) (Puzzle, error) {
	f, err := os.Open(path)
	if err != nil {
		return Puzzle{}, fmt.Errorf("puzzle: open %q: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 10
	r.ReuseRecord = true

	for i := 0; ; i++ {
		rec, err := r.Read()
		if err != nil {
			return Puzzle{}, fmt.Errorf("puzzle: row %d not found in %q: %w", n, path, err)
		}
		if i != n {
			continue
		}
		return parseRow(rec)
	}
}

func parseRow(rec []string) (Puzzle, error) {
	rating, err := strconv.Atoi(rec[3])
	if err != nil {
		return Puzzle{}, fmt.Errorf("puzzle: bad rating %q: %w", rec[3], err)
	}
	deviation, err := strconv.Atoi(rec[4])
	if err != nil {
		return Puzzle{}, fmt.Errorf("puzzle: bad rating_deviation %q: %w", rec[4], err)
	}
	popularity, err := strconv.Atoi(rec[5])
	if err != nil {
		return Puzzle{}, fmt.Errorf("puzzle: bad popularity %q: %w", rec[5], err)
	}
	nbPlays, err := strconv.Atoi(rec[6])
	if err != nil {
		return Puzzle{}, fmt.Errorf("puzzle: bad nb_plays %q: %w", rec[6], err)
	}

	return Puzzle{
		ID:              rec[0],
		FEN:             rec[1],
		Moves:           strings.Fields(rec[2]),
		Rating:          rating,
		RatingDeviation: deviation,
		Popularity:      popularity,
		NbPlays:         nbPlays,
		Themes:          rec[7],
		GameURL:         rec[8],
		OpeningTags:     rec[9],
	}, nil
}

