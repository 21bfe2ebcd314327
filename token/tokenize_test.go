package token

import (
	"errors"
	"testing"
)

type tkTest struct {
	in    string
	types []Type
	surfs []string
}

func TestTokenize(t *testing.T) {
	var tks = []tkTest{
		{
			in:    `mov rax, 1`,
			types: []Type{TIdent, TIdent, TPunct, TNumber},
			surfs: []string{"mov", "rax", ",", "1"},
		},
		{
			in:    `_start: ret`,
			types: []Type{TIdent, TColon, TIdent},
			surfs: []string{"_start", ":", "ret"},
		},
		{
			in:    `.section .text`,
			types: []Type{TDot, TIdent, TDot, TIdent},
			surfs: []string{".", "section", ".", "text"},
		},
		{
			in:    `-0x30`,
			types: []Type{TPunct, TNumber},
			surfs: []string{"-", "0x30"},
		},
		{
			in:    `v19.4s`,
			types: []Type{TIdent, TDot, TNumber},
			surfs: []string{"v19", ".", "4s"},
		},
		{
			in:    `call _WriteConsoleA@20;`,
			types: []Type{TIdent, TIdent, TAt, TNumber, TSemi},
			surfs: []string{"call", "_WriteConsoleA", "@", "20", ";"},
		},
		{
			in:    `{x:e}`,
			types: []Type{TLCurl, TIdent, TColon, TIdent, TRCurl},
			surfs: []string{"{", "x", ":", "e", "}"},
		},
		{
			in:    `[(a)]`,
			types: []Type{TLSquare, TLParen, TIdent, TRParen, TRSquare},
			surfs: []string{"[", "(", "a", ")", "]"},
		},
		{
			in:    `db "Hello, World", 10`,
			types: []Type{TIdent, TString, TPunct, TNumber},
			surfs: []string{"db", `"Hello, World"`, ",", "10"},
		},
		{
			in:    `.ascii "a\"b\n"`,
			types: []Type{TDot, TIdent, TString},
			surfs: []string{".", "ascii", `"a\"b\n"`},
		},
		{
			in:    "mov\t eax , ebx \n inc",
			types: []Type{TIdent, TIdent, TPunct, TIdent, TIdent},
			surfs: []string{"mov", "eax", ",", "ebx", "inc"},
		},
	}
	for _, tk := range tks {
		toks, err := Tokenize(nil, []byte(tk.in))
		if err != nil {
			t.Errorf("%s: %v", tk.in, err)
			continue
		}
		if len(toks) != len(tk.types) {
			t.Errorf("%s: got %d tokens want %d", tk.in, len(toks), len(tk.types))
			continue
		}
		for i := range toks {
			if toks[i].Type != tk.types[i] {
				t.Errorf("%s: token %d got %s want %s", tk.in, i, toks[i].Type, tk.types[i])
			}
			if toks[i].Surface() != tk.surfs[i] {
				t.Errorf("%s: token %d got %q want %q", tk.in, i, toks[i].Surface(), tk.surfs[i])
			}
		}
	}
}

func TestTokenizeAppends(t *testing.T) {
	toks, err := Tokenize(nil, []byte(`mov`))
	if err != nil {
		t.Fatal(err)
	}
	toks, err = Tokenize(toks, []byte(`rax`))
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 2 {
		t.Fatalf("got %d tokens want 2", len(toks))
	}
	if toks[0].Surface() != "mov" || toks[1].Surface() != "rax" {
		t.Errorf("got %q %q", toks[0].Surface(), toks[1].Surface())
	}
}

type tkErrTest struct {
	in  string
	err error
}

func TestTokenizeErrs(t *testing.T) {
	var tks = []tkErrTest{
		{in: `'a'`, err: ErrSingleQuote},
		{in: `"abc`, err: ErrUnterminated},
		{in: "\"ab\nc\"", err: ErrUnterminated},
		{in: `"ab\`, err: ErrBadEscape},
		{in: "\xff", err: ErrBadUTF8},
	}
	for _, tk := range tks {
		_, err := Tokenize(nil, []byte(tk.in))
		if err == nil {
			t.Errorf("%q: expected error", tk.in)
			continue
		}
		if !errors.Is(err, tk.err) {
			t.Errorf("%q: got %v want %v", tk.in, err, tk.err)
		}
	}
}

func TestTokenizePos(t *testing.T) {
	toks, err := Tokenize(nil, []byte("mov rax\ninc rbx"))
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 4 {
		t.Fatalf("got %d tokens want 4", len(toks))
	}
	if l := toks[2].Pos.Line(); l != 1 {
		t.Errorf("got line %d want 1", l)
	}
	if c := toks[3].Pos.Col(); c != 4 {
		t.Errorf("got col %d want 4", c)
	}
}
