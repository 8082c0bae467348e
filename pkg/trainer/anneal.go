package trainer

import "math"

// Cooling schedule constants.
const (
	sigma0      = 30
	coolingRate = 0.99
	sigmaMin    = 0.001
)

// Sigma returns the mutation rate for iteration k: sigma0 * coolingRate^k,
// floored at sigmaMin.
func Sigma(k int) float64 {
	s := sigma0 * math.Pow(coolingRate, float64(k))
	if s < sigmaMin {
		return sigmaMin
	}
	return s
}

// AcceptanceProbability computes a simulated-annealing "accepted" display
// flag: exp(-(best-child)/(T*10+1)) with T = iter/totalIters, and 1 when
// the child outscores best. It is informational only -- the population
// itself is pure elitism and never consults this value to decide membership.
func AcceptanceProbability(best, child int, iter, totalIters int) float64 {
	t := 0.0
	if totalIters > 0 {
		t = float64(iter) / float64(totalIters)
	}
	delta := float64(best - child)
	if delta < 0 {
		return 1
	}
	return math.Exp(-delta / (t*10 + 1))
}
