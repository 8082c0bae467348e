package trainer

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/waxwing/gambit/pkg/eval"
)

// WriteBestParams rewrites path with w's full-precision weights, headed by
// the iteration and score that produced them. Called on every improvement,
// never in append mode, so the file always reflects the single current best.
func WriteBestParams(path string, iteration, score int, w eval.Weights) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# iteration %d score %d\n", iteration, score)

	fmt.Fprintf(&sb, "material")
	for _, m := range w.Material {
		fmt.Fprintf(&sb, " %.17g", m)
	}
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "center_table_scale %.17g\n", w.CenterTableScale)
	writeTable(&sb, "center_table", w.CenterTable)

	for t := range w.PST {
		fmt.Fprintf(&sb, "pst_%d_scale %.17g\n", t, w.PSTScale[t])
		writeTable(&sb, fmt.Sprintf("pst_%d", t), w.PST[t])
	}

	fmt.Fprintf(&sb, "development_penalty_per_move %.17g\n", w.DevelopmentPenaltyPerMove)
	fmt.Fprintf(&sb, "central_pawn_undefended_penalty %.17g\n", w.CentralPawnUndefendedPenalty)
	fmt.Fprintf(&sb, "central_pawn_presence_bonus %.17g\n", w.CentralPawnPresenceBonus)
	fmt.Fprintf(&sb, "promotion_immediate_distance %d\n", w.PromotionImmediateDistance)
	fmt.Fprintf(&sb, "promotion_immediate_bonus %.17g\n", w.PromotionImmediateBonus)
	fmt.Fprintf(&sb, "promotion_delayed_distance %d\n", w.PromotionDelayedDistance)
	fmt.Fprintf(&sb, "promotion_delayed_bonus %.17g\n", w.PromotionDelayedBonus)

	fmt.Fprintf(&sb, "knight_backstop_penalty %.17g\n", w.KnightBackstopPenalty)
	fmt.Fprintf(&sb, "knight_edge_penalty %.17g\n", w.KnightEdgePenalty)

	fmt.Fprintf(&sb, "slider_mobility_per_square %.17g\n", w.SliderMobilityPerSquare)

	fmt.Fprintf(&sb, "king_hasmoved_penalty %.17g\n", w.KingHasMovedPenalty)
	fmt.Fprintf(&sb, "king_center_exposure_penalty %.17g\n", w.KingCenterExposurePenalty)
	fmt.Fprintf(&sb, "king_castled_bonus %.17g\n", w.KingCastledBonus)
	fmt.Fprintf(&sb, "king_adjacent_attack_bonus %.17g\n", w.KingAdjacentAttackBonus)

	fmt.Fprintf(&sb, "check_penalty %.17g\n", w.CheckPenalty)
	fmt.Fprintf(&sb, "check_bonus %.17g\n", w.CheckBonus)

	fmt.Fprintf(&sb, "stalemate_value %.17g\n", w.StalemateValue)

	fmt.Fprintf(&sb, "island_term_enabled %v\n", w.IslandTermEnabled)
	fmt.Fprintf(&sb, "island_bonus %.17g\n", w.IslandBonus)

	fmt.Fprintf(&sb, "move_direction_table")
	for _, v := range w.MoveDirectionTable {
		fmt.Fprintf(&sb, " %.17g", v)
	}
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "move_distance_table")
	for _, v := range w.MoveDistanceTable {
		fmt.Fprintf(&sb, " %.17g", v)
	}
	sb.WriteString("\n")

	return os.WriteFile(path, []byte(sb.String()), 0644)
}

// ReadBestParams parses a file written by WriteBestParams back into a Weights,
// starting from eval.DefaultWeights() so that a file produced by an earlier,
// less complete version of this program still loads: any key it does not
// recognize (or that is simply absent) keeps its baseline value rather than
// failing the load.
func ReadBestParams(path string) (eval.Weights, error) {
	f, err := os.Open(path)
	if err != nil {
		return eval.Weights{}, err
	}
	defer f.Close()

	w := eval.DefaultWeights()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		key, values := fields[0], fields[1:]

		switch {
		case key == "material":
			for i, v := range values {
				if i < len(w.Material) {
					w.Material[i] = parseFloat(v)
				}
			}
		case key == "center_table_scale":
			w.CenterTableScale = parseFloat(values[0])
		case strings.HasPrefix(key, "center_table_"):
			readTableRow(&w.CenterTable, strings.TrimPrefix(key, "center_table_"), values)
		case strings.HasPrefix(key, "pst_") && strings.HasSuffix(key, "_scale"):
			idx := parseInt(strings.TrimSuffix(strings.TrimPrefix(key, "pst_"), "_scale"))
			if idx >= 0 && idx < len(w.PSTScale) {
				w.PSTScale[idx] = parseFloat(values[0])
			}
		case strings.HasPrefix(key, "pst_"):
			rest := strings.TrimPrefix(key, "pst_")
			parts := strings.SplitN(rest, "_", 2)
			if len(parts) == 2 {
				idx := parseInt(parts[0])
				if idx >= 0 && idx < len(w.PST) {
					readTableRow(&w.PST[idx], parts[1], values)
				}
			}
		case key == "development_penalty_per_move":
			w.DevelopmentPenaltyPerMove = parseFloat(values[0])
		case key == "central_pawn_undefended_penalty":
			w.CentralPawnUndefendedPenalty = parseFloat(values[0])
		case key == "central_pawn_presence_bonus":
			w.CentralPawnPresenceBonus = parseFloat(values[0])
		case key == "promotion_immediate_distance":
			w.PromotionImmediateDistance = parseInt(values[0])
		case key == "promotion_immediate_bonus":
			w.PromotionImmediateBonus = parseFloat(values[0])
		case key == "promotion_delayed_distance":
			w.PromotionDelayedDistance = parseInt(values[0])
		case key == "promotion_delayed_bonus":
			w.PromotionDelayedBonus = parseFloat(values[0])
		case key == "knight_backstop_penalty":
			w.KnightBackstopPenalty = parseFloat(values[0])
		case key == "knight_edge_penalty":
			w.KnightEdgePenalty = parseFloat(values[0])
		case key == "slider_mobility_per_square":
			w.SliderMobilityPerSquare = parseFloat(values[0])
		case key == "king_hasmoved_penalty":
			w.KingHasMovedPenalty = parseFloat(values[0])
		case key == "king_center_exposure_penalty":
			w.KingCenterExposurePenalty = parseFloat(values[0])
		case key == "king_castled_bonus":
			w.KingCastledBonus = parseFloat(values[0])
		case key == "king_adjacent_attack_bonus":
			w.KingAdjacentAttackBonus = parseFloat(values[0])
		case key == "check_penalty":
			w.CheckPenalty = parseFloat(values[0])
		case key == "check_bonus":
			w.CheckBonus = parseFloat(values[0])
		case key == "stalemate_value":
			w.StalemateValue = parseFloat(values[0])
		case key == "island_term_enabled":
			w.IslandTermEnabled = values[0] == "true"
		case key == "island_bonus":
			w.IslandBonus = parseFloat(values[0])
		case key == "move_direction_table":
			for i, v := range values {
				if i < len(w.MoveDirectionTable) {
					w.MoveDirectionTable[i] = parseFloat(v)
				}
			}
		case key == "move_distance_table":
			for i, v := range values {
				if i < len(w.MoveDistanceTable) {
					w.MoveDistanceTable[i] = parseFloat(v)
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return eval.Weights{}, err
	}

	w.Clamp()
	return w, nil
}

func readTableRow(t *[8][8]float64, indexStr string, values []string) {
	file := parseInt(indexStr)
	if file < 0 || file >= 8 {
		return
	}
	for rank, v := range values {
		if rank < 8 {
			t[file][rank] = parseFloat(v)
		}
	}
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func parseInt(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return -1
	}
	return v
}

func writeTable(sb *strings.Builder, name string, t [8][8]float64) {
	for file := 0; file < 8; file++ {
		fmt.Fprintf(sb, "%s_%d", name, file)
		for rank := 0; rank < 8; rank++ {
			fmt.Fprintf(sb, " %.17g", t[file][rank])
		}
		sb.WriteString("\n")
	}
}
