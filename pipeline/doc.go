// Package pipeline orchestrates the core's fixed, linear stage order
// (spec section 2): Tabulate(per unit) -> Allocate(per unit) -> Aggregate
// -> Gates -> Label -> BuildResult. It owns Params, DivisionRegistry,
// Ballots, ResultDoc, and RunRecord, and is the only package that threads
// an rng.Stream end to end and composes errors from every leaf package
// into one run outcome, mirroring the teacher's core/api.go discipline:
// "no algorithms or hidden state here" applied to stage composition
// rather than graph construction.
//
// There is no feedback between stages, no cross-stage mutation, and no
// concurrency: Run is a single straight-line pass over sorted units.
package pipeline
