package exchange

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

// Member is a participant as described in a roster file
type Member struct {
	Id      string             `mapstructure:"id"`
	Name    string             `mapstructure:"name"`
	Team    string             `mapstructure:"team"`
	Weights map[string]float64 `mapstructure:"weights"` // Compatibility with other members by ID; missing members weigh 1
}

type RawRoster struct {
	Participants []Member            `mapstructure:"participants"`
	History      []map[string]string `mapstructure:"history"` // Most recent exchange first
}

// RosterOptions selects how a roster turns into an Input
type RosterOptions struct {
	HistoryLimit          int
	ParticipationRequired bool
	RestrictTeams         bool // Members of the same team do not give to each other
}

func MemberId(member Member) string { return member.Id }

func SameTeam(giver, receiver Member) bool {
	return giver.Team != "" && giver.Team == receiver.Team
}

func InputFromJson(file string, options RosterOptions) (Input[Member, string], error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Input[Member, string]{}, err
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return Input[Member, string]{}, err
	}

	var rawRoster RawRoster
	if err := mapstructure.Decode(inputJson, &rawRoster); err != nil {
		return Input[Member, string]{}, fmt.Errorf("cannot decode roster: %w", err)
	}
	return ProcessRawRoster(rawRoster, options), nil
}

func ProcessRawRoster(rawRoster RawRoster, options RosterOptions) Input[Member, string] {
	input := Input[Member, string]{
		Participants:          rawRoster.Participants,
		UniqueID:              MemberId,
		History:               rawRoster.History,
		HistoryLimit:          options.HistoryLimit,
		ParticipationRequired: options.ParticipationRequired,
	}

	if options.RestrictTeams {
		input.Restriction = SameTeam
	}

	// Weights are only taken into account when at least one member states a preference
	if lo.SomeBy(rawRoster.Participants, func(member Member) bool { return len(member.Weights) > 0 }) {
		input.Compatibility = func(giver, receiver Member) float64 {
			if weight, ok := giver.Weights[receiver.Id]; ok {
				return weight
			}
			return 1
		}
	}

	return input
}
