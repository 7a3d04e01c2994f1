package topogen

import "errors"

// Sentinel errors for the topogen package. Callers branch with
// errors.Is; implementations wrap these with "%w" plus a short
// call-site context rather than constructing new dynamic errors.
var (
	// ErrTooFewNodes indicates a size parameter (n, rows, cols, degree)
	// is smaller than the minimum the requested topology requires.
	ErrTooFewNodes = errors.New("topogen: parameter too small")

	// ErrInvalidProbability indicates an edge probability outside [0, 1]
	// was passed to RandomSparse.
	ErrInvalidProbability = errors.New("topogen: probability out of range")

	// ErrInfeasibleDegree indicates RandomRegular was asked for a
	// (n, degree) pair with no valid d-regular simple graph (n*degree
	// must be even and degree must be < n).
	ErrInfeasibleDegree = errors.New("topogen: infeasible degree for node count")

	// ErrConstructFailed indicates RandomRegular exhausted its stub-
	// matching retry budget without completing a simple regular graph.
	ErrConstructFailed = errors.New("topogen: construction failed")
)
