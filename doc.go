// Package asmblock renders token streams of assembler instruction text
// into normalized strings suitable for concatenation with other such
// fragments before being handed to an assembler.
//
// The renderer relies on the whitespace leniency of the underlying
// assembler and guarantees only a small set of normalized properties:
//
//   - `;` becomes a newline
//   - no space before or after `@` and `:`
//   - a space always follows a `.`-prefixed token pair
//   - `{...}` groups are transcribed with no interior or trailing space
//   - `[...]` and `(...)` groups are rendered recursively with exactly
//     one space after the closing delimiter
//   - every other token is followed by exactly one space
//
// Because `;` is repurposed as a statement separator, assembler-style
// `;` comments are unsupported.
package asmblock
