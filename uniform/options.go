// SPDX-License-Identifier: MIT

package uniform

import "go.uber.org/zap"

// DefaultFuel bounds how many basis sets are pulled from a caller's basis.
const DefaultFuel = 32

// Option configures space construction.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	fuel   int         // > 0; DefaultFuel
	logger *zap.Logger // never nil; zap.NewNop by default
}

// DefaultOptions returns the configuration used when no Option is given.
func DefaultOptions() Options {
	return Options{fuel: DefaultFuel, logger: zap.NewNop()}
}

// WithFuel sets how many basis sets are pulled from lazy bases.
// Panics if n <= 0 (programmer error).
func WithFuel(n int) Option {
	if n <= 0 {
		panic(panicFuelInvalid)
	}

	return func(o *Options) { o.fuel = n }
}

// WithLogger routes construction diagnostics to l. A nil logger disables logging.
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
