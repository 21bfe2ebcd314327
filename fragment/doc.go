// Package fragment provides named, reusable assembler text fragments.
//
// A fragment is defined once with a parameter list and a body; at
// expansion each `$param` placeholder in the body is replaced by the
// caller's sub-token-sequence.  [Expand] rewrites `name!(args...)`
// invocations found in a token stream, so fragments compose across
// independent emission sites without relying on an assembler's own
// macro facility.
package fragment
