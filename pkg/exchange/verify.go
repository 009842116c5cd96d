package exchange

import (
	"slices"

	"github.com/samber/lo"
)

func verify[P any, ID comparable](result map[ID]ID, input Input[P, ID]) bool {
	if input.UniqueID == nil {
		return false
	}

	ids, err := probe(input.ids)
	if err != nil {
		return false
	}
	lookup := indices(ids)
	exclusions := buildExclusions(ids, input.History, input.HistoryLimit, input.ParticipationRequired)

	// Every participant must give exactly once
	if len(result) != len(ids) {
		return false
	}

	received := make(map[ID]bool, len(ids))
	for giverId, receiverId := range result {
		giver, okGiver := lookup[giverId]
		receiver, okReceiver := lookup[receiverId]

		// Check that:
		// - Giver and receiver are participants
		// - Receiver receives only once
		// - Giver does not give to themselves
		// - Receiver does not give back to giver
		// - Receiver is not part of the giver's history
		// - Restriction does not forbid the pair
		if !okGiver || !okReceiver ||
			received[receiverId] ||
			giver == receiver ||
			result[receiverId] == giverId ||
			slices.Contains(exclusions[giver], receiver) ||
			(input.Restriction != nil && input.Restriction(input.Participants[giver], input.Participants[receiver])) {
			return false
		}

		received[receiverId] = true
	}

	// Every participant must receive exactly once
	return lo.EveryBy(ids, func(id ID) bool { return received[id] })
}
