package relabel

// DegreeMode selects which degree measure ranks nodes when relabeling a
// directed Graph (an undirected UndirectedGraph always ranks by its
// single Degree).
type DegreeMode int

const (
	// TotalDegree ranks by out_degree(u) + in_degree(u). This is the
	// default: it matches the notion of "degree" used for the undirected
	// case without requiring the caller to pick a direction.
	TotalDegree DegreeMode = iota

	// OutDegreeOnly ranks by out_degree(u) alone.
	OutDegreeOnly

	// InDegreeOnly ranks by in_degree(u) alone.
	InDegreeOnly
)

// Config controls DegreeDescending's behavior on directed graphs.
type Config struct {
	DegreeMode DegreeMode
}

// Option is a functional option mutating Config.
type Option func(*Config)

// DefaultConfig returns {DegreeMode: TotalDegree}.
func DefaultConfig() Config {
	return Config{DegreeMode: TotalDegree}
}

// WithDegreeMode selects the degree measure used to rank directed-graph
// nodes before relabeling.
func WithDegreeMode(mode DegreeMode) Option {
	return func(c *Config) { c.DegreeMode = mode }
}

func resolveConfig(opts []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
