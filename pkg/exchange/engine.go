package exchange

import (
	"context"
	"fmt"
	"log/slog"
)

const (
	unassigned = -1

	// Number of candidate evaluations between two checks of the context
	cancellationInterval = 1024
)

// backtrackingEngine searches for a derangement without 2-cycles that honors the evaluator's predicates.
//
// The search is a depth-first traversal of the assignment tree, written as a loop over a giver pointer
// instead of recursion so the call depth does not grow with the number of participants. Givers are
// committed in givingOrder; each giver walks its own ranking through its attempt cursor. When a giver
// runs out of candidates its cursor is reset and the previous giver moves on to its next candidate.
// For fixed orderings this visits every reachable combination once, so it fails only if no assignment exists.
type backtrackingEngine struct {
	givingOrder []int
	rankings    [][]int
	evaluator   predicateEvaluator
	maxSteps    int
	logger      *slog.Logger

	assignment []int  // assignment[giver] = receiver, or unassigned
	taken      []bool // taken[receiver] = true if and only if some giver is currently assigned to receiver
	cursors    []int  // cursors[giver] = number of candidates of rankings[giver] already tried on this branch
}

func newBacktrackingEngine(givingOrder []int, rankings [][]int, evaluator predicateEvaluator, maxSteps int, logger *slog.Logger) *backtrackingEngine {
	participants := len(givingOrder)

	engine := backtrackingEngine{
		givingOrder: givingOrder,
		rankings:    rankings,
		evaluator:   evaluator,
		maxSteps:    maxSteps,
		logger:      logger,
		assignment:  make([]int, participants),
		taken:       make([]bool, participants),
		cursors:     make([]int, participants),
	}
	for giver := range engine.assignment {
		engine.assignment[giver] = unassigned
	}

	return &engine
}

// Search returns assignment[giver] = receiver for every participant index, or ErrNoAssignment once the
// search space is exhausted
func (engine *backtrackingEngine) Search(ctx context.Context) ([]int, error) {
	participants := len(engine.givingOrder)
	steps, backtracks := 0, 0
	position := 0

	for position < participants {
		giver := engine.givingOrder[position]

		// Coming back to a giver after a backtrack: release its receiver before trying the next one
		engine.release(giver)

		accepted := false
		for engine.cursors[giver] < participants {
			receiver := engine.rankings[giver][engine.cursors[giver]]
			engine.cursors[giver]++

			if steps++; steps%cancellationInterval == 0 {
				if err := ctx.Err(); err != nil {
					return nil, fmt.Errorf("search interrupted after %d steps: %w", steps, err)
				}
			}
			if engine.maxSteps > 0 && steps > engine.maxSteps {
				return nil, fmt.Errorf("%w: %d steps", ErrStepBudgetExceeded, engine.maxSteps)
			}

			if engine.rejected(giver, receiver) {
				continue
			}

			engine.assignment[giver] = receiver
			engine.taken[receiver] = true
			accepted = true
			break
		}

		if accepted {
			position++
			continue
		}

		// Every candidate of the giver failed: forget its attempts and revisit the previous giver
		engine.cursors[giver] = 0
		position--
		backtracks++
		if position < 0 {
			engine.logger.Debug("search space exhausted", "steps", steps, "backtracks", backtracks)
			return nil, ErrNoAssignment
		}
		engine.logger.Debug("backtracking", "giver", giver, "to", engine.givingOrder[position], "position", position)
	}

	engine.logger.Debug("assignment found", "steps", steps, "backtracks", backtracks)
	return engine.assignment, nil
}

// rejected applies the rejection rules in order; the first match rejects
func (engine *backtrackingEngine) rejected(giver, receiver int) bool {
	return engine.taken[receiver] || // Receiver is already assigned to someone
		engine.assignment[receiver] == giver || // No closed loop between giver and receiver
		receiver == giver || // Giver and receiver must not be the same participant
		engine.evaluator.Excluded(giver, receiver) || // Receiver is part of the giver's history
		engine.evaluator.Restricted(giver, receiver) // Caller-defined incompatibility
}

func (engine *backtrackingEngine) release(giver int) {
	if receiver := engine.assignment[giver]; receiver != unassigned {
		engine.taken[receiver] = false
		engine.assignment[giver] = unassigned
	}
}
