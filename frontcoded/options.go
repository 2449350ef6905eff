package frontcoded

// config holds Builder/Load behavior that would otherwise explode the
// constructor signature; see options.go in the teacher for the same
// functional-options shape applied to Vecgo itself.
type config struct {
	logger *Logger
}

// Option configures Build/BuildFromSlice.
type Option func(*config)

// WithLogger attaches a Logger used to report build/rebuild progress and
// anomalies. If unset, no logging occurs.
func WithLogger(l *Logger) Option {
	return func(c *config) { c.logger = l }
}

func newConfig(opts []Option) *config {
	c := &config{}
	for _, o := range opts {
		o(c)
	}
	return c
}
