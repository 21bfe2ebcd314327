package asmblock

import (
	"github.com/asm-block/asmblock/token"
)

// Block tokenizes src, nests its delimiter groups and renders the
// result.  It is the one-call form of the pipeline
// [token.Tokenize] -> [token.Nest] -> [Render].
func Block(src string) (string, error) {
	toks, err := token.Tokenize(nil, []byte(src))
	if err != nil {
		return "", err
	}
	toks, err = token.Nest(toks)
	if err != nil {
		return "", err
	}
	return Render(toks), nil
}
