// SPDX-License-Identifier: MIT

package completion

import "go.uber.org/zap"

// Option configures packages and extensions.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	fallback bool        // evaluate at a dense witness instead of failing
	logger   *zap.Logger // never nil; zap.NewNop by default
}

// DefaultOptions returns the configuration used when no Option is given:
// no fallback, no logging.
func DefaultOptions() Options {
	return Options{logger: zap.NewNop()}
}

// WithFallback makes Extend evaluate f at a dense pre-image of y when f is
// not uniformly continuous or no limit is found. The value is unspecified.
func WithFallback() Option {
	return func(o *Options) { o.fallback = true }
}

// WithLogger routes diagnostics to l. A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

// Fallback reports whether the degenerate branch is enabled.
func (o Options) Fallback() bool { return o.fallback }

func gatherOptions(base Options, opts []Option) Options {
	o := base
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
