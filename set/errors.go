package set

import "errors"

// ErrTooLarge indicates that a power-set enumeration was requested for a
// carrier larger than the configured limit.
var ErrTooLarge = errors.New("set: carrier too large to enumerate subsets")
