// Package label selects the final Decisive / Marginal / Invalid outcome
// from gate results, national margin, and frontier-risk flags, following
// the short-circuit precedence chain in spec section 4.8.
package label
