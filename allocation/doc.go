// Package allocation converts per-unit option scores into seats or power
// shares, per spec section 4.4: winner-take-all, largest remainder
// (Hare/Droop), highest averages (D'Hondt/Sainte-Laguë), and
// mixed-member-proportional with national or regional correction.
//
// Every family shares the same output shape, Allocation, and consults
// tiebreak for any last-seat or sole-winner tie, threading an optional
// rng.Stream exactly as tabulation does. Highest averages compares
// divisor-adjusted quotients via rounding.CmpRatio rather than floating
// point, per spec section 4.4 ("never floating point").
package allocation
