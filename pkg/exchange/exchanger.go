package exchange

import (
	"context"
	"math/rand/v2"
)

// Exchanger computes gift exchanges: every participant gives to exactly one other participant and receives
// from exactly one, nobody gives to themselves, no two participants give to each other, recent pairings
// from the history are avoided and the caller's restriction is honored.
type Exchanger[P any, ID comparable] interface {
	// Assign returns a giver ID -> receiver ID mapping covering every participant.
	// rng drives every random decision of the call; nil uses a fresh source seeded from the configuration.
	// A *rand.Rand is not safe for concurrent use, so concurrent calls must not share one.
	Assign(ctx context.Context, input Input[P, ID], rng *rand.Rand) (map[ID]ID, error)

	// Verify checks whether result is a valid gift exchange for input
	Verify(result map[ID]ID, input Input[P, ID]) bool
}

type backtrackingExchanger[P any, ID comparable] struct {
	config Config
}

// NewExchanger builds an Exchanger from config. A config without participant bounds
// (both zero, as in Config{}) takes the bounds of DefaultConfig.
func NewExchanger[P any, ID comparable](config Config) Exchanger[P, ID] {
	if config.MinParticipants == 0 && config.MaxParticipants == 0 {
		defaults := DefaultConfig()
		config.MinParticipants = defaults.MinParticipants
		config.MaxParticipants = defaults.MaxParticipants
	}
	return &backtrackingExchanger[P, ID]{
		config: config,
	}
}

// Assign computes a gift exchange with DefaultConfig
func Assign[P any, ID comparable](ctx context.Context, input Input[P, ID], rng *rand.Rand) (map[ID]ID, error) {
	return NewExchanger[P, ID](DefaultConfig()).Assign(ctx, input, rng)
}

func (exchanger *backtrackingExchanger[P, ID]) Assign(ctx context.Context, input Input[P, ID], rng *rand.Rand) (map[ID]ID, error) {
	logger := exchanger.config.logger()

	//** Validate input
	if err := Validate(input, exchanger.config); err != nil {
		return nil, err
	}

	if rng == nil {
		rng = newRand(exchanger.config.Seed)
	}

	participants := len(input.Participants)
	ids := input.ids()

	//** Build history exclusions
	exclusions := buildExclusions(ids, input.History, input.HistoryLimit, input.ParticipationRequired)

	//** Initialize dependencies
	var evaluator predicateEvaluator = newPredicateEvaluator(exclusions, exchanger.restriction(input))
	ranker := newCandidateRanker(participants, exchanger.compatibility(input), rng)

	//** Randomize giving order and rank candidates
	givingOrder := rng.Perm(participants)
	rankings := make([][]int, participants)
	for giver := range rankings {
		rankings[giver] = ranker.Rank(giver)
	}

	//** Reject configurations without a perfect matching
	if exchanger.config.Precheck {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		evaluator = newMatrixPredicateEvaluator(participants, evaluator)

		ok, err := feasible(participants, evaluator)
		if err != nil {
			return nil, err
		} else if !ok {
			logger.Debug("no perfect matching between givers and receivers", "participants", participants)
			return nil, ErrNoAssignment
		}
	}

	//** Search
	logger.Debug("searching assignment", "participants", participants, "givingOrder", givingOrder)
	engine := newBacktrackingEngine(givingOrder, rankings, evaluator, exchanger.config.MaxSteps, logger)
	assignment, err := engine.Search(ctx)
	if err != nil {
		return nil, err
	}

	return mapResult(assignment, ids), nil
}

func (exchanger *backtrackingExchanger[P, ID]) Verify(result map[ID]ID, input Input[P, ID]) bool {
	return verify(result, input)
}

func (exchanger *backtrackingExchanger[P, ID]) restriction(input Input[P, ID]) func(giver, receiver int) bool {
	if input.Restriction == nil {
		return nil
	}
	return func(giver, receiver int) bool {
		return input.Restriction(input.Participants[giver], input.Participants[receiver])
	}
}

func (exchanger *backtrackingExchanger[P, ID]) compatibility(input Input[P, ID]) func(giver, receiver int) float64 {
	if input.Compatibility == nil {
		return nil
	}
	return func(giver, receiver int) float64 {
		return input.Compatibility(input.Participants[giver], input.Participants[receiver])
	}
}
