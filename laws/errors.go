package laws

import (
	"errors"
	"fmt"
)

var (
	// ErrLawViolated indicates a counterexample to a law.
	ErrLawViolated = errors.New("laws: law violated")

	// ErrSkipped indicates a check that never ran because the battery was cancelled.
	ErrSkipped = errors.New("laws: check skipped")
)

const panicParallelismInvalid = "laws: WithParallelism: n must be > 0"

// violated formats a counterexample wrapping ErrLawViolated.
func violated(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrLawViolated, fmt.Sprintf(format, args...))
}
