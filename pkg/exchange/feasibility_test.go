package exchange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeasible(t *testing.T) {
	t.Run("Unconstrained", func(t *testing.T) {
		ok, err := feasible(5, newPredicateEvaluator(noExclusions(5), nil))
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Giver without receivers", func(t *testing.T) {
		//** Arrange
		evaluator := newPredicateEvaluator(noExclusions(4), func(giver, receiver int) bool {
			return giver == 3
		})

		//** Act
		ok, err := feasible(4, evaluator)

		//** Assert
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Receivers competing for the same giver", func(t *testing.T) {
		//** Arrange
		// Givers 1 and 2 can only give to 0
		exclusions := [][]int{{}, {2, 3}, {1, 3}, {}}

		//** Act
		ok, err := feasible(4, newPredicateEvaluator(exclusions, nil))

		//** Assert
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Matching alone does not rule out 2-cycles", func(t *testing.T) {
		ok, err := feasible(2, newPredicateEvaluator(noExclusions(2), nil))
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestMatrixPredicateEvaluator(t *testing.T) {
	//** Arrange
	calls := 0
	exclusions := [][]int{{1, absent}, {2}, {}, {0}}
	source := newPredicateEvaluator(exclusions, func(giver, receiver int) bool {
		calls++
		return (giver+receiver)%3 == 0
	})

	//** Act
	evaluator := newMatrixPredicateEvaluator(4, source)
	callsAfterBuild := calls

	//** Assert
	for giver := range 4 {
		for receiver := range 4 {
			if giver == receiver {
				continue
			}
			assert.Equal(t, source.Excluded(giver, receiver), evaluator.Excluded(giver, receiver))
			assert.Equal(t, (giver+receiver)%3 == 0, evaluator.Restricted(giver, receiver))
		}
	}
	assert.Equal(t, 12, callsAfterBuild)
}
