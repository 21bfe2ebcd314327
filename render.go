package asmblock

import (
	"strings"

	"github.com/asm-block/asmblock/debug"
	"github.com/asm-block/asmblock/token"
)

// frame is one level of group nesting in the render work list.  closing
// is emitted when the frame's tokens are exhausted.
type frame struct {
	toks    []token.Token
	i       int
	closing string
}

// Render converts a nested token stream (see [token.Nest]) into a single
// normalized string.  It is a pure function: identical input always
// yields an identical output, no token is mutated, and no state is
// shared across calls.
//
// Rules are applied to the front of the remaining stream in priority
// order; the first match wins:
//
//  1. empty stream renders as ""
//  2. `;` renders as "\n"
//  3. an identifier directly followed by `:`, `@` or `.` is emitted
//     with no trailing space
//  4. `:` and `@` are emitted with no trailing space
//  5. `.` followed by a token T emits ".", T's surface and one space
//  6. a `{...}` group is transcribed verbatim with no separators and
//     no trailing space
//  7. a `[...]` or `(...)` group renders its inner stream with the
//     full rule set, then the closing delimiter and one space
//  8. any other token is emitted followed by exactly one space
//
// The dispatch is an iterative loop over an explicit frame stack, so
// stream length does not bound the call stack; only group nesting
// depth grows the work list.
func Render(stream []token.Token) string {
	var sb strings.Builder
	stack := []frame{{toks: stream}}
	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		if f.i >= len(f.toks) {
			sb.WriteString(f.closing)
			stack = stack[:len(stack)-1]
			continue
		}
		tok := &f.toks[f.i]
		if debug.Render() {
			debug.Logf("render %s\n", tok.Info())
		}
		switch tok.Type {
		case token.TSemi:
			sb.WriteString("\n")
			f.i++
		case token.TIdent:
			sb.WriteString(tok.Surface())
			if !bindsTight(f.toks, f.i+1) {
				sb.WriteString(" ")
			}
			f.i++
		case token.TColon, token.TAt:
			sb.Write(tok.Bytes)
			f.i++
		case token.TDot:
			sb.WriteString(".")
			if f.i+1 < len(f.toks) {
				sb.WriteString(f.toks[f.i+1].Surface())
				f.i++
			}
			sb.WriteString(" ")
			f.i++
		case token.TBrace:
			sb.WriteString(tok.Surface())
			f.i++
		case token.TBracket:
			sb.WriteString("[")
			f.i++
			stack = append(stack, frame{toks: tok.Inner, closing: "] "})
		case token.TParen:
			sb.WriteString("(")
			f.i++
			stack = append(stack, frame{toks: tok.Inner, closing: ") "})
		default:
			sb.WriteString(tok.Surface())
			sb.WriteString(" ")
			f.i++
		}
	}
	return sb.String()
}

// bindsTight reports whether the token at i glues to a preceding
// identifier: label colons, symbol `@` decorations and `.` suffixes
// must not be spaced apart from the identifier they follow.
func bindsTight(toks []token.Token, i int) bool {
	if i >= len(toks) {
		return false
	}
	switch toks[i].Type {
	case token.TColon, token.TAt, token.TDot:
		return true
	}
	return false
}
