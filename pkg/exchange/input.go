package exchange

import "github.com/samber/lo"

// Input describes one gift exchange.
//
// Participants are referenced internally by their position in Participants (their index),
// while the caller only ever sees the identifiers produced by UniqueID.
type Input[P any, ID comparable] struct {
	Participants []P
	UniqueID     func(participant P) ID

	// History holds past exchanges (giver ID -> receiver ID), scanned in the given order
	History               []map[ID]ID
	HistoryLimit          int  // Depth of history considered per giver; zero or less ignores history
	ParticipationRequired bool // Whether a record in which a giver is absent still consumes one unit of depth

	Compatibility func(giver, receiver P) float64 // Optional non-negative score biasing the receiver ranking
	Restriction   func(giver, receiver P) bool    // Optional predicate, true forbids giver -> receiver
}

// ids extracts the unique identifier of every participant, preserving the participants' order
func (input Input[P, ID]) ids() []ID {
	return lo.Map(input.Participants, func(participant P, _ int) ID {
		return input.UniqueID(participant)
	})
}

// indices maps every identifier to its participant index
func indices[ID comparable](ids []ID) map[ID]int {
	return lo.SliceToMap(lo.Range(len(ids)), func(index int) (ID, int) {
		return ids[index], index
	})
}
