package fragment

import (
	"fmt"

	"github.com/asm-block/asmblock/token"
)

// Fragment is a named piece of assembler text with `$param`
// placeholders in its body.
type Fragment struct {
	Name   string
	Params []string
	body   []token.Token
}

// Registry holds fragment definitions by name.
type Registry struct {
	frags map[string]*Fragment
}

func NewRegistry() *Registry {
	return &Registry{frags: map[string]*Fragment{}}
}

// Define tokenizes and nests body, checks that every `$name`
// placeholder refers to a declared parameter, and registers the
// fragment.
func (r *Registry) Define(name string, params []string, body string) (*Fragment, error) {
	toks, err := token.Tokenize(nil, []byte(body))
	if err != nil {
		return nil, fmt.Errorf("fragment %q: %w", name, err)
	}
	nested, err := token.Nest(toks)
	if err != nil {
		return nil, fmt.Errorf("fragment %q: %w", name, err)
	}
	return r.DefineTokens(name, params, nested)
}

// DefineTokens is [Registry.Define] for an already tokenized and nested
// body.
func (r *Registry) DefineTokens(name string, params []string, body []token.Token) (*Fragment, error) {
	if !identName(name) {
		return nil, fmt.Errorf("%w: %q", ErrBadName, name)
	}
	if _, ok := r.frags[name]; ok {
		return nil, fmt.Errorf("%w: %q", ErrRedefined, name)
	}
	declared := map[string]bool{}
	for _, p := range params {
		declared[p] = true
	}
	if err := checkParams(body, declared, name); err != nil {
		return nil, err
	}
	f := &Fragment{Name: name, Params: params, body: body}
	r.frags[name] = f
	return f, nil
}

func (r *Registry) Lookup(name string) (*Fragment, bool) {
	f, ok := r.frags[name]
	return f, ok
}

// Names returns the defined fragment names in no particular order.
func (r *Registry) Names() []string {
	res := make([]string, 0, len(r.frags))
	for name := range r.frags {
		res = append(res, name)
	}
	return res
}

func identName(name string) bool {
	toks, err := token.Tokenize(nil, []byte(name))
	if err != nil {
		return false
	}
	return len(toks) == 1 && toks[0].Type == token.TIdent
}

func checkParams(body []token.Token, declared map[string]bool, frag string) error {
	for i := 0; i < len(body); i++ {
		t := &body[i]
		if t.Type.IsGroup() {
			if err := checkParams(t.Inner, declared, frag); err != nil {
				return err
			}
			continue
		}
		ref, _, ok := paramRef(body, i)
		if !ok {
			continue
		}
		if !declared[ref] {
			return fmt.Errorf("fragment %q: %w: $%s", frag, ErrUnboundParam, ref)
		}
		i++
	}
	return nil
}

// paramRef recognizes the `$` `ident` token pair at i and returns the
// referenced parameter name and the index after the pair.
func paramRef(toks []token.Token, i int) (string, int, bool) {
	if i+1 >= len(toks) {
		return "", 0, false
	}
	t := &toks[i]
	if t.Type != token.TPunct || len(t.Bytes) != 1 || t.Bytes[0] != '$' {
		return "", 0, false
	}
	if toks[i+1].Type != token.TIdent {
		return "", 0, false
	}
	return string(toks[i+1].Bytes), i + 2, true
}

// Instantiate substitutes args for the fragment's parameters in order
// and returns the resulting token stream.  Each argument may be any
// sub-token-sequence, including group tokens.
func (f *Fragment) Instantiate(args [][]token.Token) ([]token.Token, error) {
	if len(args) != len(f.Params) {
		return nil, fmt.Errorf("fragment %q: %w: got %d, want %d",
			f.Name, ErrArity, len(args), len(f.Params))
	}
	env := map[string][]token.Token{}
	for i, p := range f.Params {
		env[p] = args[i]
	}
	return substitute(f.body, env), nil
}

func substitute(body []token.Token, env map[string][]token.Token) []token.Token {
	dst := make([]token.Token, 0, len(body))
	for i := 0; i < len(body); i++ {
		t := body[i]
		if ref, next, ok := paramRef(body, i); ok {
			if arg, bound := env[ref]; bound {
				dst = append(dst, arg...)
				i = next - 1
				continue
			}
		}
		if t.Type.IsGroup() {
			t.Inner = substitute(t.Inner, env)
		}
		dst = append(dst, t)
	}
	return dst
}
