package exchange

// matrixPredicateEvaluator answers from precomputed matrices, so the caller's restriction is evaluated
// exactly once per (giver, receiver) pair no matter how much the search backtracks
type matrixPredicateEvaluator struct {
	excluded   [][]bool // excluded[giver][receiver] = true if and only if receiver is in giver's exclusion set
	restricted [][]bool // restricted[giver][receiver] = true if and only if the restriction forbids giver -> receiver
}

func newMatrixPredicateEvaluator(participants int, source predicateEvaluator) *matrixPredicateEvaluator {
	evaluator := matrixPredicateEvaluator{
		excluded:   make([][]bool, participants),
		restricted: make([][]bool, participants),
	}

	for giver := range participants {
		evaluator.excluded[giver] = make([]bool, participants)
		evaluator.restricted[giver] = make([]bool, participants)

		for receiver := range participants {
			if giver == receiver { // Self-assignment is rejected before these predicates are consulted
				continue
			}
			evaluator.excluded[giver][receiver] = source.Excluded(giver, receiver)
			evaluator.restricted[giver][receiver] = source.Restricted(giver, receiver)
		}
	}

	return &evaluator
}

func (evaluator *matrixPredicateEvaluator) Excluded(giver, receiver int) bool {
	return evaluator.excluded[giver][receiver]
}

func (evaluator *matrixPredicateEvaluator) Restricted(giver, receiver int) bool {
	return evaluator.restricted[giver][receiver]
}
