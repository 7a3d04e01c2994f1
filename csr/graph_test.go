package csr_test

import (
	"testing"

	"github.com/csrgraph/csrgraph/csr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBorrowCountTracksOutstandingSlices(t *testing.T) {
	e := edges([2]uint32{0, 1}, [2]uint32{1, 2})
	g, err := csr.BuildDirected(e)
	require.NoError(t, err)

	assert.EqualValues(t, 0, g.OutstandingBorrows())

	_, release := g.OutNeighbors(0)
	assert.EqualValues(t, 1, g.OutstandingBorrows())

	_, release2 := g.InNeighbors(1)
	assert.EqualValues(t, 2, g.OutstandingBorrows())

	release()
	assert.EqualValues(t, 1, g.OutstandingBorrows())

	release2()
	assert.EqualValues(t, 0, g.OutstandingBorrows())
}

func TestReplaceWithRejectsWhileBorrowed(t *testing.T) {
	e := edges([2]uint32{0, 1}, [2]uint32{1, 2})
	g, err := csr.BuildDirected(e)
	require.NoError(t, err)

	other, err := csr.BuildDirected(e, csr.WithLayout(csr.Sorted))
	require.NoError(t, err)

	_, release := g.OutNeighbors(0)
	defer release()

	err = g.ReplaceWith(other)
	assert.ErrorIs(t, err, csr.ErrAliasingViolation)
	assert.Equal(t, csr.Unsorted, g.Layout(), "graph must be left unchanged on aliasing violation")
}

func TestReplaceWithSucceedsWhenNoBorrows(t *testing.T) {
	e := edges([2]uint32{0, 1}, [2]uint32{1, 2})
	g, err := csr.BuildDirected(e)
	require.NoError(t, err)

	other, err := csr.BuildDirected(e, csr.WithLayout(csr.Sorted))
	require.NoError(t, err)

	require.NoError(t, g.ReplaceWith(other))
	assert.Equal(t, csr.Sorted, g.Layout())
}
