package gpart

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cycleGraph(t *testing.T) *Graph {
	t.Helper()
	g, err := NewGraphFromAdjacency([][]int{
		{1, 3},
		{0, 2},
		{1, 3},
		{0, 2},
	})
	require.NoError(t, err)
	return g
}

func TestNewGraphFromAdjacencyBasics(t *testing.T) {
	g := cycleGraph(t)
	assert.Equal(t, 4, g.NumVertices())
	assert.Equal(t, 4, g.NumEdges())
	assert.Equal(t, 2, g.Degree(0))
	assert.Equal(t, []int{1, 3}, g.Neighbors(0))
	assert.Equal(t, 1, g.VertexWeight(0))
	assert.Equal(t, 4, g.TotalVertexWeight())
	assert.Equal(t, 1, g.EdgeWeight(0, 1))
	assert.Equal(t, 0, g.EdgeWeight(0, 2))
}

func TestNewGraphFromAdjacencyRejectsAsymmetric(t *testing.T) {
	_, err := NewGraphFromAdjacency([][]int{
		{1},
		{},
	})
	assert.ErrorIs(t, err, ErrMalformedGraphFile)
}

func TestWriteReadRoundTrip(t *testing.T) {
	g := cycleGraph(t)
	g.VWeights = []int{2, 3, 4, 5}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, g))

	got, err := Read(&buf)
	require.NoError(t, err)

	assert.Equal(t, g.AdjIndexes, got.AdjIndexes)
	assert.Equal(t, g.AdjV, got.AdjV)
	assert.Equal(t, g.Edges, got.Edges)
	assert.Equal(t, g.VWeights, got.VWeights)
}

func TestReadMalformedHeader(t *testing.T) {
	_, err := Read(bytes.NewBufferString("not-a-number\n"))
	assert.ErrorIs(t, err, ErrMalformedGraphFile)
}

func TestReadTruncatedFile(t *testing.T) {
	_, err := Read(bytes.NewBufferString("4 4\n1 1\n"))
	assert.ErrorIs(t, err, ErrMalformedGraphFile)
}

func TestComputeEdgeCut(t *testing.T) {
	g := cycleGraph(t)

	// Split {0,1} | {2,3}: edges (1,2) and (3,0) are cut.
	part := []int{0, 0, 1, 1}
	assert.Equal(t, uint64(2), ComputeEdgeCut(g, part))

	// Everything in one partition: no cut at all.
	part = []int{0, 0, 0, 0}
	assert.Equal(t, uint64(0), ComputeEdgeCut(g, part))
}

func TestGenerateBruckIsSymmetric(t *testing.T) {
	g, err := GenerateBruck(8)
	require.NoError(t, err)
	assertSymmetric(t, g)
}

func TestGenerateRecDoublingRequiresPowerOfTwo(t *testing.T) {
	_, err := GenerateRecDoubling(6)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))

	g, err := GenerateRecDoubling(8)
	require.NoError(t, err)
	assertSymmetric(t, g)
}

// assertSymmetric checks that every edge (u, v) generated appears in both
// u's and v's adjacency list with matching weight.
func assertSymmetric(t *testing.T, g *Graph) {
	t.Helper()
	for u := 0; u < g.NumVertices(); u++ {
		for idx, v := range g.Neighbors(u) {
			w := g.NeighborWeights(u)[idx]
			assert.Equal(t, w, g.EdgeWeight(v, u), "edge (%d,%d) weight mismatch", u, v)
		}
	}
}

func TestBisectProducesInducedSubgraphsWithParentLineage(t *testing.T) {
	g := cycleGraph(t)
	bisection := []int{0, 0, 1, 1}

	left, right, err := g.Bisect(bisection)
	require.NoError(t, err)

	assert.Equal(t, 2, left.NumVertices())
	assert.Equal(t, 2, right.NumVertices())
	assert.Equal(t, []int{0, 1}, left.VParents)
	assert.Equal(t, []int{2, 3}, right.VParents)
}
