// Package config loads a ParameterSet from YAML (spec section 6), external
// to the core per spec section 1 ("JSON parsing/serialization of inputs
// and outputs... are thin layers over the core"). It translates the
// wire's string-tagged enums (tie policy, tabulation method, allocation
// family, ...) into the pipeline package's typed Params, the one place in
// the repository where a string is matched against a closed set of
// pipeline/tabulation/allocation/aggregation tags.
package config
