package nodeid_test

import (
	"testing"

	"github.com/csrgraph/csrgraph/nodeid"
	"github.com/stretchr/testify/assert"
)

func TestCastWidening(t *testing.T) {
	var v uint32 = 4294967295
	got := nodeid.Cast[uint64](v)
	assert.Equal(t, uint64(4294967295), got)
}

func TestCastNarrowingTruncates(t *testing.T) {
	var v uint64 = 1<<32 + 7
	got := nodeid.Cast[uint32](v)
	assert.Equal(t, uint32(7), got)
}

func TestMax(t *testing.T) {
	assert.Equal(t, uint32(4294967295), nodeid.Max[uint32]())
	assert.Equal(t, uint64(18446744073709551615), nodeid.Max[uint64]())
}
