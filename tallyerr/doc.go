// Package tallyerr defines the structured error taxonomy shared across
// tabulation, allocation, and pipeline (spec section 7). Each kind is a
// package-level sentinel for errors.Is matching, paired with a concrete
// struct carrying the offending fields for errors.As extraction — the same
// "sentinel + wrapped struct" discipline the teacher uses throughout
// (core/types.go, matrix/errors.go), applied across package boundaries
// instead of within one package.
//
// Propagation policy: every stage returns a structured error unchanged; the
// pipeline aborts on the first error (spec section 7). No stage silently
// patches its input. Gate failures are data, not errors, and never appear
// here — see the gates package's LegitimacyReport instead.
package tallyerr
