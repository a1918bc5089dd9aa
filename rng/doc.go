// Package rng implements the single deterministic source of randomness
// this engine ever consumes: a ChaCha20-keyed tie-break stream, used only
// when a run's tie policy is Random (spec section 4.2).
//
// The stream never touches OS entropy, the clock, or any process-wide
// random source: Stream is constructed from a u64 seed
// (ChaCha20Rng::seed_from_u64 in spec terms) and is otherwise pure, so the
// identical (seed, sequence of calls) produces byte-identical output on
// every platform and architecture.
//
// Stream is not safe for concurrent use — it is threaded explicitly through
// the one pipeline run that owns it (spec section 5: "No shared mutable
// state... the RNG is the only stateful object").
package rng
