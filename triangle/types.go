package triangle

import (
	"errors"
	"time"
)

// Sentinel errors for the triangle package.
var (
	// ErrNilGraph indicates a nil *csr.UndirectedGraph was passed to
	// GlobalCount.
	ErrNilGraph = errors.New("triangle: graph is nil")
)

// Result is global triangle counting's output.
type Result struct {
	// Count is the number of distinct undirected triangles.
	Count uint64
	// Elapsed is the wall-clock duration of the GlobalCount call.
	Elapsed time.Duration
}
