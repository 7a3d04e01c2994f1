package relabel_test

import (
	"testing"

	"github.com/csrgraph/csrgraph/csr"
	"github.com/csrgraph/csrgraph/relabel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDegreeDescendingRanksHighestDegreeFirst(t *testing.T) {
	// Star: center 0 has degree 4, leaves 1..4 have degree 1 each.
	e := csr.SliceEdges{{0, 1}, {0, 2}, {0, 3}, {0, 4}}
	g, err := csr.BuildUndirected(e, csr.WithLayout(csr.Sorted))
	require.NoError(t, err)

	newID, err := relabel.DegreeDescendingUndirected(g)
	require.NoError(t, err)

	assert.EqualValues(t, 0, newID[0], "center must map to rank 0 (highest degree)")

	// Leaves 1..4 keep relative order among themselves (ties broken by
	// ascending original ID): 1 -> 1, 2 -> 2, 3 -> 3, 4 -> 4.
	assert.EqualValues(t, 1, newID[1])
	assert.EqualValues(t, 2, newID[2])
	assert.EqualValues(t, 3, newID[3])
	assert.EqualValues(t, 4, newID[4])

	// Topology must be preserved: the relabeled center (0) has degree 4.
	assert.Equal(t, 4, g.Degree(0))
	assert.EqualValues(t, 5, g.NodeCount())
	assert.Equal(t, 4, g.EdgeCount())
}

func TestDegreeDescendingPreservesIsomorphism(t *testing.T) {
	e := csr.SliceEdges{{0, 1}, {1, 2}, {2, 0}, {2, 3}}
	g, err := csr.BuildUndirected(e, csr.WithLayout(csr.Sorted))
	require.NoError(t, err)

	totalBefore := 0
	for u := uint32(0); u < g.NodeCount(); u++ {
		totalBefore += g.Degree(u)
	}

	_, err = relabel.DegreeDescendingUndirected(g)
	require.NoError(t, err)

	totalAfter := 0
	for u := uint32(0); u < g.NodeCount(); u++ {
		totalAfter += g.Degree(u)
	}
	assert.Equal(t, totalBefore, totalAfter)
	assert.Equal(t, csr.Sorted, g.Layout())
}

func TestDegreeDescendingFailsFastWhileBorrowed(t *testing.T) {
	e := csr.SliceEdges{{0, 1}, {1, 2}, {2, 0}}
	g, err := csr.BuildUndirected(e, csr.WithLayout(csr.Sorted))
	require.NoError(t, err)

	_, release := g.Neighbors(0)
	defer release()

	_, err = relabel.DegreeDescendingUndirected(g)
	assert.ErrorIs(t, err, csr.ErrAliasingViolation)
	assert.Equal(t, csr.Sorted, g.Layout(), "graph must be left unchanged")
}

func TestDegreeDescendingDirectedPreservesEdgeCount(t *testing.T) {
	e := csr.SliceEdges{{0, 1}, {0, 2}, {1, 2}, {1, 3}, {2, 3}}
	g, err := csr.BuildDirected(e, csr.WithLayout(csr.Sorted))
	require.NoError(t, err)

	newID, err := relabel.DegreeDescending(g, relabel.WithDegreeMode(relabel.TotalDegree))
	require.NoError(t, err)
	assert.Len(t, newID, 4)
	assert.Equal(t, 5, g.EdgeCount())
}
