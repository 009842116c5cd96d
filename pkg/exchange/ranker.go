package exchange

import (
	"cmp"
	"math"
	"math/rand/v2"
	"slices"
)

// candidateRanker interface is designed to give every giver its own order in which receivers are tried
type candidateRanker interface {
	// Returns a permutation of all participant indices, from the most to the least likely receiver of the giver
	Rank(giver int) []int
}

func newCandidateRanker(participants int, compatibility func(giver, receiver int) float64, rng *rand.Rand) candidateRanker {
	return &weightedRanker{
		participants:  participants,
		compatibility: compatibility,
		rng:           rng,
	}
}

type weightedRanker struct {
	participants  int
	compatibility func(giver, receiver int) float64 // nil yields uniformly random rankings
	rng           *rand.Rand
}

func (ranker *weightedRanker) Rank(giver int) []int {
	if ranker.compatibility == nil {
		return ranker.rng.Perm(ranker.participants)
	}

	weights := make([]float64, ranker.participants)
	for receiver := range weights {
		if receiver != giver { // Self-assignment is always rejected, so it's left with the lowest priority
			weights[receiver] = ranker.compatibility(giver, receiver)
		}
	}
	return WeightedOrder(weights, ranker.rng)
}

// WeightedOrder returns a random permutation of the indices of weights where, in expectation, heavier
// items come first: a weighted sampling without replacement done in a single sort.
//
// Every item draws u uniformly from (0, 1] and is keyed by -ln(u)/w, which orders items exactly as
// u^(1/w) in decreasing order while staying accurate for tiny weights. Items are sorted by ascending key.
// Zero weights (and any weight that is not positive) get an infinite key and therefore the last positions,
// ties among them being broken uniformly at random. Equal weights reduce to a uniform shuffle.
func WeightedOrder(weights []float64, rng *rand.Rand) []int {
	keys := make([]float64, len(weights))
	for item, weight := range weights {
		keys[item] = weightKey(1-rng.Float64(), weight)
	}

	order := rng.Perm(len(weights)) // Random starting order so equal keys end up in random order
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(keys[a], keys[b])
	})
	return order
}

func weightKey(draw, weight float64) float64 {
	if !(weight > 0) {
		return math.Inf(1)
	}
	return -math.Log(draw) / weight
}
