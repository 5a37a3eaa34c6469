// Package laws turns the algebraic laws of filters, entourages, uniform
// spaces and completions into runtime checks, and runs batteries of them
// concurrently.
//
// A Check is a named func() error; a nil error means the law holds and an
// error wrapping ErrLawViolated names the counterexample. Run executes a
// battery on an errgroup bounded by WithParallelism and returns one Result
// per Check, in input order. WithFailFast cancels the remaining checks
// after the first failure; they report ErrSkipped.
//
//	checks := laws.SpaceChecks("metric", u)
//	checks = append(checks, laws.CompletionChecks("reals", pkg)...)
//	results, err := laws.Run(ctx, checks, laws.WithParallelism(4))
//	for _, r := range laws.Failed(results) { ... }
package laws
