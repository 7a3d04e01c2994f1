package pagerank

import (
	"errors"
	"time"
)

// Sentinel errors for the pagerank package.
var (
	// ErrNilGraph indicates a nil *csr.Graph was passed to Run.
	ErrNilGraph = errors.New("pagerank: graph is nil")
)

// Config controls PageRank's iteration bound, convergence tolerance, and
// damping factor.
type Config struct {
	MaxIterations int
	Tolerance     float32
	DampingFactor float32
}

// Option is a functional option mutating Config.
type Option func(*Config)

// DefaultConfig returns {MaxIterations: 20, Tolerance: 1e-4, DampingFactor: 0.85}.
func DefaultConfig() Config {
	return Config{
		MaxIterations: 20,
		Tolerance:     1e-4,
		DampingFactor: 0.85,
	}
}

// WithMaxIterations sets the iteration cap. Panics if n < 1: a PageRank
// run must perform at least one iteration.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic("pagerank: MaxIterations must be >= 1")
	}
	return func(c *Config) { c.MaxIterations = n }
}

// WithTolerance sets the L1 convergence threshold. Panics if tau < 0.
func WithTolerance(tau float32) Option {
	if tau < 0 {
		panic("pagerank: Tolerance must be >= 0")
	}
	return func(c *Config) { c.Tolerance = tau }
}

// WithDampingFactor sets the damping factor d. Panics if d is outside
// the open interval (0, 1).
func WithDampingFactor(d float32) Option {
	if d <= 0 || d >= 1 {
		panic("pagerank: DampingFactor must be in (0, 1)")
	}
	return func(c *Config) { c.DampingFactor = d }
}

func resolveConfig(opts []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Result is PageRank's output: the score vector plus run metadata.
type Result struct {
	// Scores holds one f32 rank per node, indexed by node ID.
	Scores []float32
	// IterationsRun is how many iterations actually executed.
	IterationsRun int
	// FinalDelta is the L1 norm of the last iteration's score change.
	FinalDelta float32
	// Elapsed is the wall-clock duration of the Run call.
	Elapsed time.Duration
}
