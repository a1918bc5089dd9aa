// Package gates evaluates the legitimacy panel described in spec
// section 4.7: quorum, majority, double-majority, and symmetry, each an
// exact rational comparison via rounding.GePercentHalfEven, never a
// floating-point one. A LegitimacyReport ANDs every gate's pass/fail into
// one overall verdict and lists short snake_case reason codes for every
// failing gate in the fixed order spec section 4.7 requires: quorum,
// majority, double-majority, symmetry.
package gates
