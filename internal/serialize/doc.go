// Package serialize is the external JSON boundary for ResultDoc,
// RunRecord, and FrontierMap (spec section 1: "JSON parsing/serialization
// of inputs and outputs... are thin layers over the core"; spec section
// 6). It also assigns the content-hash document ids of the form
// "<kind>:<hex64>" spec section 6 specifies, and a RunRecord trace id for
// log correlation, orthogonal to that content hash.
package serialize
