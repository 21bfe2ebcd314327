package fragment

import (
	"fmt"

	"github.com/asm-block/asmblock/debug"
	"github.com/asm-block/asmblock/token"
)

// maxDepth bounds nested fragment expansion so that mutually recursive
// definitions terminate with an error instead of looping.
const maxDepth = 64

// Expand rewrites every `name!(arg, ...)` invocation in toks with the
// named fragment's instantiated body.  Arguments are split on top-level
// commas; group contents are themselves scanned for invocations.  The
// remaining tokens pass through untouched, so a stream without
// invocations is returned as-is.
func Expand(reg *Registry, toks []token.Token) ([]token.Token, error) {
	return expand(reg, toks, 0)
}

func expand(reg *Registry, toks []token.Token, depth int) ([]token.Token, error) {
	if depth > maxDepth {
		return nil, ErrExpandDepth
	}
	dst := make([]token.Token, 0, len(toks))
	for i := 0; i < len(toks); i++ {
		t := toks[i]
		if name, ok := invocation(toks, i); ok {
			frag, defined := reg.Lookup(name)
			if !defined {
				return nil, fmt.Errorf("%w: %q at %s",
					ErrUnknownFragment, name, t.Pos.String())
			}
			args, err := splitArgs(reg, toks[i+2].Inner, depth)
			if err != nil {
				return nil, fmt.Errorf("fragment %q: %w", name, err)
			}
			body, err := frag.Instantiate(args)
			if err != nil {
				return nil, err
			}
			if debug.Expand() {
				debug.Logf("expand %s!/%d at %s\n", name, len(args), t.Pos.String())
			}
			body, err = expand(reg, body, depth+1)
			if err != nil {
				return nil, err
			}
			dst = append(dst, body...)
			i += 2
			continue
		}
		if t.Type.IsGroup() {
			inner, err := expand(reg, t.Inner, depth)
			if err != nil {
				return nil, err
			}
			t.Inner = inner
		}
		dst = append(dst, t)
	}
	return dst, nil
}

// invocation recognizes the token triple `ident` `!` `(...)` at i.
func invocation(toks []token.Token, i int) (string, bool) {
	if i+2 >= len(toks) {
		return "", false
	}
	if toks[i].Type != token.TIdent {
		return "", false
	}
	bang := &toks[i+1]
	if bang.Type != token.TPunct || len(bang.Bytes) != 1 || bang.Bytes[0] != '!' {
		return "", false
	}
	if toks[i+2].Type != token.TParen {
		return "", false
	}
	return string(toks[i].Bytes), true
}

// splitArgs splits the inner stream of an invocation's paren group on
// top-level commas, expanding invocations inside each argument first.
func splitArgs(reg *Registry, inner []token.Token, depth int) ([][]token.Token, error) {
	if len(inner) == 0 {
		return nil, nil
	}
	var args [][]token.Token
	arg := []token.Token{}
	for i := range inner {
		t := &inner[i]
		if t.Type == token.TPunct && len(t.Bytes) == 1 && t.Bytes[0] == ',' {
			args = append(args, arg)
			arg = []token.Token{}
			continue
		}
		arg = append(arg, *t)
	}
	args = append(args, arg)
	for i, a := range args {
		ex, err := expand(reg, a, depth+1)
		if err != nil {
			return nil, err
		}
		args[i] = ex
	}
	return args, nil
}
