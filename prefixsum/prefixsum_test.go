package prefixsum_test

import (
	"testing"

	"github.com/csrgraph/csrgraph/prefixsum"
	"github.com/stretchr/testify/assert"
)

func TestExclusiveInPlaceSmall(t *testing.T) {
	a := []uint64{2, 0, 3, 1, 4}
	total := prefixsum.ExclusiveInPlace(a)

	assert.Equal(t, uint64(10), total)
	assert.Equal(t, []uint64{0, 2, 2, 5, 6}, a)
}

func TestExclusiveInPlaceEmpty(t *testing.T) {
	a := []uint64{}
	total := prefixsum.ExclusiveInPlace(a)
	assert.Equal(t, uint64(0), total)
	assert.Empty(t, a)
}

func TestExclusiveInPlaceAllZero(t *testing.T) {
	a := make([]uint64, 50)
	total := prefixsum.ExclusiveInPlace(a)
	assert.Equal(t, uint64(0), total)
	for _, v := range a {
		assert.Equal(t, uint64(0), v)
	}
}

func TestExclusiveInPlaceDeterministicRegardlessOfSize(t *testing.T) {
	// A large, non-uniform input should still reduce to the same closed
	// form regardless of how the parallel chunking falls out.
	n := 10007 // prime, awkward to chunk evenly
	a := make([]uint64, n)
	for i := range a {
		a[i] = uint64(i % 7)
	}
	want := make([]uint64, n)
	var running uint64
	for i, v := range a {
		want[i] = running
		running += v
	}

	total := prefixsum.ExclusiveInPlace(a)
	assert.Equal(t, running, total)
	assert.Equal(t, want, a)
}
