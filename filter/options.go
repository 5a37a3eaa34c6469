package filter

// DefaultFuel bounds how many basis sets a witness search pulls.
const DefaultFuel = 32

// MaxFuel caps the budget of filters combined from several bases.
const MaxFuel = 1 << 12

const panicFuelInvalid = "filter: WithFuel: fuel must be > 0"

// Option configures a Filter at construction.
type Option func(*Options)

// Options holds the effective filter configuration.
type Options struct {
	fuel int // > 0; DefaultFuel
}

// DefaultOptions returns the configuration used when no Option is given.
func DefaultOptions() Options {
	return Options{fuel: DefaultFuel}
}

// WithFuel sets the maximum number of basis sets inspected per query.
// Panics if n <= 0 (programmer error).
func WithFuel(n int) Option {
	if n <= 0 {
		panic(panicFuelInvalid)
	}

	return func(o *Options) { o.fuel = n }
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
