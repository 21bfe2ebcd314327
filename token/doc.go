// Package token provides tokenization support for assembler instruction
// fragments.
//
// [Tokenize] is a function for tokenizing bytes.
//
// [Nest] turns flat delimiter tokens into group tokens so that the token
// sequence is context free: after Nest, no unmatched `{`, `[` or `(`
// remains in the stream.
package token
