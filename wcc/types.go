package wcc

import (
	"errors"
	"time"
)

// Sentinel errors for the wcc package.
var (
	// ErrNilGraph indicates a nil *csr.Graph was passed to Run.
	ErrNilGraph = errors.New("wcc: graph is nil")
)

// Config controls Afforest's neighbor-linking prefix, root-sampling
// size, and the chunk granularity its parallel phases use.
type Config struct {
	NeighborRounds int
	SamplingSize   int
	ChunkSize      int
}

// Option is a functional option mutating Config.
type Option func(*Config)

// DefaultConfig returns {NeighborRounds: 2, SamplingSize: 1024, ChunkSize: 64}.
func DefaultConfig() Config {
	return Config{
		NeighborRounds: 2,
		SamplingSize:   1024,
		ChunkSize:      64,
	}
}

// WithNeighborRounds sets how many leading outgoing neighbors of each
// node the first linking phase visits. Panics if k < 1.
func WithNeighborRounds(k int) Option {
	if k < 1 {
		panic("wcc: NeighborRounds must be >= 1")
	}
	return func(c *Config) { c.NeighborRounds = k }
}

// WithSamplingSize sets how many parent slots the dominant-component
// guess samples. Panics if s < 1.
func WithSamplingSize(s int) Option {
	if s < 1 {
		panic("wcc: SamplingSize must be >= 1")
	}
	return func(c *Config) { c.SamplingSize = s }
}

// WithChunkSize sets the granularity internal/parallel splits node
// ranges into for the linking and compression phases. Panics if c < 1.
func WithChunkSize(c int) Option {
	if c < 1 {
		panic("wcc: ChunkSize must be >= 1")
	}
	return func(cfg *Config) { cfg.ChunkSize = c }
}

func resolveConfig(opts []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Result is Afforest's output.
type Result struct {
	// Components holds, for each node, the representative root of its
	// weakly-connected component. find(u)==find(v) iff u and v share a
	// component; use Result.Find rather than indexing directly, since
	// Components may still contain non-root entries from path halving's
	// best-effort compression.
	Components []uint32
	// Elapsed is the wall-clock duration of the Run call.
	Elapsed time.Duration
}

// Find returns the representative root of u's component by following
// Components until it reaches an entry that points to itself. It does
// not modify Components. Run's final path-halving pass leaves the trees
// shallow, so this walk is short, but it is not always a single step.
func (r Result) Find(u uint32) uint32 {
	for r.Components[u] != u {
		u = r.Components[u]
	}
	return u
}
