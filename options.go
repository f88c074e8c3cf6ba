package rowgo

type options struct {
	minSizeForSparse    int
	maxDensityForSparse float64
	concurrency         int
	logger              *Logger
}

func defaultOptions() options {
	return options{
		minSizeForSparse:    MinSizeForSparse,
		maxDensityForSparse: MaxDensityForSparse,
		concurrency:         16,
		logger:              NoopLogger(),
	}
}

// Option configures representation selection and batch construction.
type Option func(*options)

// WithMinSizeForSparse overrides the length threshold below which a row is
// always dense.
func WithMinSizeForSparse(n int) Option {
	return func(o *options) {
		o.minSizeForSparse = n
	}
}

// WithMaxDensityForSparse overrides the non-zero density at and above which a
// row stays dense.
func WithMaxDensityForSparse(d float64) Option {
	return func(o *options) {
		o.maxDensityForSparse = d
	}
}

// WithConcurrency limits the number of rows BuildBatch constructs in
// parallel. Values below 1 fall back to the default.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n < 1 {
			return
		}
		o.concurrency = n
	}
}

// WithLogger configures the logger used to trace representation decisions
// and batch construction. If nil is passed, logging stays disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			return
		}
		o.logger = l
	}
}
