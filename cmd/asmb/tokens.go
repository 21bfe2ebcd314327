package main

import (
	"fmt"
	"io"

	"github.com/asm-block/asmblock/token"

	"github.com/scott-cotton/cli"
)

func tokens(cfg *TokensConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tokens.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachInput(cc, args, func(path string, d []byte) error {
		toks, err := token.Tokenize(nil, d)
		if err != nil {
			return err
		}
		if cfg.Nested {
			toks, err = token.Nest(toks)
			if err != nil {
				return err
			}
		}
		return dumpTokens(cc.Out, toks, 0)
	})
}

func dumpTokens(w io.Writer, toks []token.Token, depth int) error {
	for i := range toks {
		tok := &toks[i]
		for j := 0; j < depth; j++ {
			if _, err := fmt.Fprint(w, "  "); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s %q\n", tok.Type, tok.Surface()); err != nil {
			return err
		}
		if tok.Type.IsGroup() {
			if err := dumpTokens(w, tok.Inner, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}
