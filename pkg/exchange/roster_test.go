package exchange

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rosterJson = `{
	"participants": [
		{"id": "1", "name": "A", "team": "red"},
		{"id": "2", "name": "B", "team": "blue", "weights": {"1": 3.5, "4": 0}},
		{"id": "3", "name": "C", "team": "blue"},
		{"id": "4", "name": "D", "team": "green"}
	],
	"history": [
		{"1": "2", "2": "4", "4": "3", "3": "1"}
	]
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(file, []byte(content), 0666))
	return file
}

func TestInputFromJson(t *testing.T) {
	t.Run("Roster is decoded", func(t *testing.T) {
		//** Arrange
		file := writeFile(t, "roster.json", rosterJson)

		//** Act
		input, err := InputFromJson(file, RosterOptions{HistoryLimit: 1, RestrictTeams: true})

		//** Assert
		require.NoError(t, err)
		require.Len(t, input.Participants, 4)
		assert.Equal(t, Member{Id: "2", Name: "B", Team: "blue", Weights: map[string]float64{"1": 3.5, "4": 0}}, input.Participants[1])
		assert.Equal(t, []map[string]string{{"1": "2", "2": "4", "4": "3", "3": "1"}}, input.History)
		assert.Equal(t, 1, input.HistoryLimit)
		require.NotNil(t, input.Restriction)
		assert.True(t, input.Restriction(input.Participants[1], input.Participants[2]))
		require.NotNil(t, input.Compatibility)
		assert.Equal(t, 3.5, input.Compatibility(input.Participants[1], input.Participants[0]))
		assert.Equal(t, 0.0, input.Compatibility(input.Participants[1], input.Participants[3]))
		assert.Equal(t, 1.0, input.Compatibility(input.Participants[0], input.Participants[1]))
	})

	t.Run("Roster is assignable", func(t *testing.T) {
		//** Arrange
		file := writeFile(t, "roster.json", rosterJson)
		input, err := InputFromJson(file, RosterOptions{HistoryLimit: 1, RestrictTeams: true})
		require.NoError(t, err)

		//** Act
		result, err := Assign(context.Background(), input, NewSeededRand(3))

		//** Assert
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"1": "3", "3": "4", "4": "2", "2": "1"}, result)
	})

	t.Run("Members without weights", func(t *testing.T) {
		input := ProcessRawRoster(RawRoster{Participants: []Member{{Id: "a"}, {Id: "b"}, {Id: "c"}}}, RosterOptions{})
		assert.Nil(t, input.Compatibility)
		assert.Nil(t, input.Restriction)
	})

	t.Run("Members without team are never restricted", func(t *testing.T) {
		assert.False(t, SameTeam(Member{Id: "a"}, Member{Id: "b"}))
	})

	t.Run("Malformed file", func(t *testing.T) {
		file := writeFile(t, "roster.json", `{"participants": [`)
		_, err := InputFromJson(file, RosterOptions{})
		assert.Error(t, err)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := InputFromJson(filepath.Join(t.TempDir(), "missing.json"), RosterOptions{})
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestConfigFromYaml(t *testing.T) {
	t.Run("Overrides defaults", func(t *testing.T) {
		//** Arrange
		file := writeFile(t, "config.yaml", "max_participants: 200\nseed: 42\nprecheck: false\n")

		//** Act
		config, err := ConfigFromYaml(file)

		//** Assert
		require.NoError(t, err)
		assert.Equal(t, 3, config.MinParticipants)
		assert.Equal(t, 200, config.MaxParticipants)
		assert.Equal(t, int64(42), config.Seed)
		assert.Equal(t, 0, config.MaxSteps)
		assert.False(t, config.Precheck)
	})

	t.Run("Malformed file", func(t *testing.T) {
		file := writeFile(t, "config.yaml", "max_participants: [\n")
		_, err := ConfigFromYaml(file)
		assert.Error(t, err)
	})
}
