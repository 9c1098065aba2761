package gpart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPartitionWeights(t *testing.T) {
	oldMapp := []int{5, 5, 5, 7, 7, 9}
	pweights, nodeToPart := BuildPartitionWeights(oldMapp)

	assert.Equal(t, []int{3, 2, 1}, pweights)
	assert.Equal(t, map[int]int{5: 0, 7: 1, 9: 2}, nodeToPart)
}

func TestLinearStrategy(t *testing.T) {
	mapping, err := LinearStrategy{}.Map([]int{3, 2, 1}, 6)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 1, 1, 2}, mapping)
}

func TestLinearStrategyRejectsBadWeights(t *testing.T) {
	_, err := LinearStrategy{}.Map([]int{3, 2}, 6) // sums to 5, not 6
	assert.ErrorIs(t, err, ErrInvalidPartWeights)

	_, err = LinearStrategy{}.Map(nil, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRoundRobinStrategy(t *testing.T) {
	mapping, err := RoundRobinStrategy{}.Map([]int{2, 1}, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 0}, mapping)
}

func TestRoundRobinStrategySkipsExhaustedPartitions(t *testing.T) {
	mapping, err := RoundRobinStrategy{}.Map([]int{1, 3}, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 1, 1}, mapping)
}

func TestApplyWithRoundRobin(t *testing.T) {
	oldMapp := []int{5, 5, 5, 5, 7, 7, 9, 9}
	newMapp, pweights, err := Apply(oldMapp, RoundRobinStrategy{})
	require.NoError(t, err)
	require.Equal(t, []int{4, 2, 2}, pweights)

	count := map[int]int{}
	for _, p := range newMapp {
		count[p]++
	}
	assert.Equal(t, 4, count[0])
	assert.Equal(t, 2, count[1])
	assert.Equal(t, 2, count[2])
}

func TestGraphStrategyRejectsMismatchedVertexCount(t *testing.T) {
	g := gridGraph(t, 2, 2)
	_, err := GraphStrategy{Graph: g}.Map([]int{2, 2}, 5)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGraphStrategyDelegatesToPartitionRecursive(t *testing.T) {
	g := gridGraph(t, 4, 4)
	mapping, err := GraphStrategy{Graph: g, Opts: []Option{WithSeed(9)}}.Map([]int{8, 8}, 16)
	require.NoError(t, err)
	require.Len(t, mapping, 16)

	count := map[int]int{}
	for _, p := range mapping {
		count[p]++
	}
	assert.Equal(t, 16, count[0]+count[1])
	assert.InDelta(t, 8, count[0], 2)
	assert.InDelta(t, 8, count[1], 2)
}
