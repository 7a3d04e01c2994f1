package topogen

import "math/rand"

// Config holds the configurable parameters for randomized generators:
// currently just the RNG seed. A zero Config (no WithSeed) falls back
// to a fixed default seed, so calls are reproducible even without an
// explicit seed.
type Config struct {
	seed    int64
	hasSeed bool
}

// Option customizes a randomized generator's Config.
type Option func(*Config)

// WithSeed fixes the RNG seed so RandomSparse/RandomRegular reproduce
// the same edge stream across runs.
func WithSeed(seed int64) Option {
	return func(cfg *Config) {
		cfg.seed = seed
		cfg.hasSeed = true
	}
}

func resolveConfig(opts []Option) Config {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func (cfg Config) newRand() *rand.Rand {
	if cfg.hasSeed {
		return rand.New(rand.NewSource(cfg.seed))
	}
	return rand.New(rand.NewSource(1))
}
