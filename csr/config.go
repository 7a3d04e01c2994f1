package csr

// BuildOptions controls how BuildDirected and BuildUndirected interpret and
// lay out an edge stream.
//
//   - NodeCount: declared node count. Zero means "infer as max(id)+1 over
//     the edge stream".
//   - Layout:    post-build adjacency ordering (default Unsorted).
//   - Orientation: recorded but not read by either builder; BuildDirected
//     always builds the outgoing and incoming CSRs and BuildUndirected
//     always builds the undirected one.
type BuildOptions struct {
	NodeCount   uint32
	Layout      Layout
	Orientation Orientation
}

// Option is a functional option mutating BuildOptions before a builder runs.
type Option func(*BuildOptions)

// DefaultBuildOptions returns {NodeCount: 0 (infer), Layout: Unsorted,
// Orientation: DirectedOut}.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{
		NodeCount:   0,
		Layout:      Unsorted,
		Orientation: DirectedOut,
	}
}

// WithNodeCount declares the node count explicitly instead of inferring it
// from the edge stream's maximum ID. Use this when the graph has trailing
// isolated nodes with no incident edges.
func WithNodeCount(n uint32) Option {
	return func(o *BuildOptions) { o.NodeCount = n }
}

// WithLayout sets the post-build adjacency ordering.
func WithLayout(l Layout) Option {
	return func(o *BuildOptions) { o.Layout = l }
}

// WithOrientation sets BuildOptions.Orientation. Neither BuildDirected nor
// BuildUndirected reads that field, so it does not change what they build.
func WithOrientation(or Orientation) Option {
	return func(o *BuildOptions) { o.Orientation = or }
}

func resolveOptions(opts []Option) BuildOptions {
	cfg := DefaultBuildOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
