package astparser

// options mirrors ParserOptions from §4.2/§6: ignore_comments, ignore_locations, and
// max_depth (default 64). Functional options keep Parser.Parse's call shape aligned
// with the teacher's own Opts/_opts pattern (see engine/plan/planner.go's
// plan.IncludeQueryPlanInResponse()).
type options struct {
	ignoreComments  bool
	ignoreLocations bool
	maxDepth        int
}

func defaultOptions() options {
	return options{maxDepth: DefaultMaxDepth}
}

// Option configures a single Parser.Parse call.
type Option func(*options)

// DefaultMaxDepth is the max_depth default named in §4.2/§6.
const DefaultMaxDepth = 64

// WithIgnoreComments drops comments at the lexer boundary; they are never attached to
// nodes or surfaced in Document.UnattachedComments.
func WithIgnoreComments() Option {
	return func(o *options) { o.ignoreComments = true }
}

// WithIgnoreLocations leaves every node's Location zeroed rather than populated from
// token offsets.
func WithIgnoreLocations() Option {
	return func(o *options) { o.ignoreLocations = true }
}

// WithMaxDepth overrides the default max_depth bound. n <= 0 is treated as "use the
// default" rather than "unbounded" — an explicit unbounded mode isn't offered, per §5's
// reliance on max_depth as the structural recursion bound.
func WithMaxDepth(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxDepth = n
		}
	}
}
