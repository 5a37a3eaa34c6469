package laws

import (
	"runtime"

	"go.uber.org/zap"
)

// Option configures Run.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	parallelism int         // > 0; GOMAXPROCS by default
	failFast    bool        // cancel outstanding checks on the first failure
	logger      *zap.Logger // never nil
}

// DefaultOptions runs GOMAXPROCS checks at a time, never stops early and
// does not log.
func DefaultOptions() Options {
	return Options{parallelism: runtime.GOMAXPROCS(0), logger: zap.NewNop()}
}

// WithParallelism bounds the number of checks running at once.
// Panics if n <= 0.
func WithParallelism(n int) Option {
	if n <= 0 {
		panic(panicParallelismInvalid)
	}

	return func(o *Options) { o.parallelism = n }
}

// WithFailFast stops the battery at the first failing check.
func WithFailFast() Option {
	return func(o *Options) { o.failFast = true }
}

// WithLogger reports failures to l. A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
