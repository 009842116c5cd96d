package exchange

import (
	"github.com/onsi/gomega/matchers/support/goraph/bipartitegraph"
	"github.com/samber/lo"
)

// feasible checks a necessary condition for an assignment to exist: every giver must be matched to a
// distinct allowed receiver (a perfect matching on the giver/receiver bipartite graph). Any valid gift
// exchange is such a matching, so a false result proves infeasibility without searching. A true result
// proves nothing about 2-cycles, which are left to the search.
func feasible(participants int, evaluator predicateEvaluator) (bool, error) {
	// Build neighbors predicate based on the pairwise conditions
	neighbors := func(giverAny any, receiverAny any) (bool, error) {
		return allowed(evaluator, giverAny.(int), receiverAny.(int)), nil
	}

	nodes := lo.Map(lo.Range(participants), func(index int, _ int) any { return index })

	graph, err := bipartitegraph.NewBipartiteGraph(nodes, nodes, neighbors)
	if err != nil {
		return false, err
	}

	matching := graph.LargestMatching()
	return len(matching) == participants, nil
}
