package exchange

import "slices"

type predicateEvaluator interface {
	// Checks whether the receiver belongs to the giver's history exclusion set
	Excluded(giver, receiver int) bool

	// Checks whether the caller's restriction forbids the giver from giving to the receiver
	Restricted(giver, receiver int) bool
}

type predicateEvaluatorStandard struct {
	exclusions  [][]int                        // History exclusion set per giver
	restriction func(giver, receiver int) bool // nil when no restriction was supplied
}

func newPredicateEvaluator(exclusions [][]int, restriction func(giver, receiver int) bool) predicateEvaluator {
	return &predicateEvaluatorStandard{
		exclusions:  exclusions,
		restriction: restriction,
	}
}

func (evaluator *predicateEvaluatorStandard) Excluded(giver, receiver int) bool {
	return slices.Contains(evaluator.exclusions[giver], receiver)
}

func (evaluator *predicateEvaluatorStandard) Restricted(giver, receiver int) bool {
	return evaluator.restriction != nil && evaluator.restriction(giver, receiver)
}

// allowed checks every pairwise condition that does not depend on the rest of the assignment
func allowed(evaluator predicateEvaluator, giver, receiver int) bool {
	return giver != receiver &&
		!evaluator.Excluded(giver, receiver) &&
		!evaluator.Restricted(giver, receiver)
}
