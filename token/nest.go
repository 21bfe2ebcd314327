package token

// Nest turns the flat delimiter tokens produced by [Tokenize] into group
// tokens: each balanced `{...}`, `[...]` or `(...)` run becomes a single
// TBrace, TBracket or TParen token whose Inner holds the (recursively
// nested) enclosed tokens.  After Nest no flat delimiter token remains
// in the stream.
func Nest(toks []Token) ([]Token, error) {
	dst, n, err := nestInto(nil, toks, nil)
	if err != nil {
		return nil, err
	}
	if n < len(toks) {
		// only a stray closer stops nestInto early at top level
		return nil, &ErrImbalancedDelim{Close: &toks[n]}
	}
	return dst, nil
}

var groupType = map[Type]Type{
	TLCurl:   TBrace,
	TLSquare: TBracket,
	TLParen:  TParen,
}

var closerFor = map[Type]Type{
	TLCurl:   TRCurl,
	TLSquare: TRSquare,
	TLParen:  TRParen,
}

// nestInto consumes tokens from toks until it hits a closer belonging to
// an enclosing group (or the end), appending nested results to dst.  The
// open token of the enclosing group, if any, is passed for error
// reporting.
func nestInto(dst, toks []Token, open *Token) ([]Token, int, error) {
	i := 0
	for i < len(toks) {
		tok := &toks[i]
		switch {
		case tok.Type.IsOpen():
			inner, n, err := nestInto(nil, toks[i+1:], tok)
			if err != nil {
				return nil, 0, err
			}
			at := i + 1 + n
			if at >= len(toks) {
				return nil, 0, &ErrImbalancedDelim{Open: tok}
			}
			if toks[at].Type != closerFor[tok.Type] {
				return nil, 0, &ErrImbalancedDelim{Open: tok, Close: &toks[at]}
			}
			dst = append(dst, Token{
				Type:  groupType[tok.Type],
				Pos:   tok.Pos,
				Bytes: tok.Bytes,
				Inner: inner,
			})
			i = at + 1
		case tok.Type.IsClose():
			// the caller matches (or rejects) this closer
			return dst, i, nil
		default:
			dst = append(dst, *tok)
			i++
		}
	}
	if open != nil {
		return nil, 0, &ErrImbalancedDelim{Open: open}
	}
	return dst, i, nil
}
