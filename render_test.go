package asmblock

import (
	"testing"

	"github.com/asm-block/asmblock/token"
)

type bTest struct {
	in, out string
}

func TestBlockSingleItem(t *testing.T) {
	var bts = []bTest{
		{in: ``, out: ``},
		{in: `eax`, out: `eax `},
		{in: `mov`, out: `mov `},
		{in: `_WriteConsoleA@20`, out: `_WriteConsoleA@20 `},
		{in: `@20`, out: `@20 `},
		{in: `@a`, out: `@a `},
		{in: `%0`, out: `% 0 `},
		{in: `%a`, out: `% a `},
		{in: `%a@0`, out: `% a@0 `},
		{in: `%{a}`, out: `% {a}`},
		{in: `#0`, out: `# 0 `},
		{in: `#a`, out: `# a `},
		{in: `#a_0`, out: `# a_0 `},
		{in: `.0`, out: `.0 `},
		{in: `.a`, out: `.a `},
		{in: `.a_0`, out: `.a_0 `},
		{in: `"$a"`, out: `"$a" `},
		{in: `${a}`, out: `$ {a}`},
		{in: `${a:e}`, out: `$ {a:e}`},
		{in: `v19.4s`, out: `v19.4s `},
		{in: `v1.4s`, out: `v1.4s `},
		{in: `{x:v}.4s`, out: `{x:v}.4s `},
		{in: `a`, out: `a `},
		{in: `A`, out: `A `},
		{in: `0`, out: `0 `},
		{in: `0x1234`, out: `0x1234 `},
		{in: `-0x1234`, out: `- 0x1234 `},
		{in: `gs:[eax + 4*{b:e} - 0x30]`, out: `gs:[eax + 4 * {b:e}- 0x30 ] `},
		{in: `%gs:4(,%eax,8)`, out: `% gs:4 (, % eax , 8 ) `},
	}
	for _, bt := range bts {
		got, err := Block(bt.in)
		if err != nil {
			t.Errorf("%s: %v", bt.in, err)
			continue
		}
		if got != bt.out {
			t.Errorf("%s: got %q want %q", bt.in, got, bt.out)
		}
	}
}

func TestBlockSingleInstruction(t *testing.T) {
	var bts = []bTest{
		{in: `mov {x}, [{x}]`, out: `mov {x}, [{x}] `},
		{in: `inc`, out: `inc `},
		{in: `_start: mov rax, 1`, out: `_start:mov rax , 1 `},
		{in: `mov $1, %rax`, out: `mov $ 1 , % rax `},
		{in: `.section .text`, out: `.section .text `},
		{in: `L001:`, out: `L001:`},
		{in: `pushl %fs:table(%ebx, %ecx, 8)`, out: `pushl % fs:table (% ebx , % ecx , 8 ) `},
		{in: `message:  db        "Hello, World", 10`, out: `message:db "Hello, World" , 10 `},
		{in: `.ascii  "Hello, world\n"`, out: `.ascii "Hello, world\n" `},
		{in: `call    _WriteConsoleA@20`, out: `call _WriteConsoleA@20 `},
		{in: `str  fp, [sp, -4]!`, out: `str fp , [sp , - 4 ] ! `},
		{in: `ldr fp, [{x}], 4`, out: `ldr fp , [{x}] , 4 `},
		{in: `add   v19.4s, v2.4s, v4.4s`, out: `add v19.4s , v2.4s , v4.4s `},
	}
	for _, bt := range bts {
		got, err := Block(bt.in)
		if err != nil {
			t.Errorf("%s: %v", bt.in, err)
			continue
		}
		if got != bt.out {
			t.Errorf("%s: got %q want %q", bt.in, got, bt.out)
		}
	}
}

func TestBlockStatements(t *testing.T) {
	got, err := Block(`
		push 0;
		push offset written;
		push 13;
		push offset msg;
		push handle;
		call _WriteConsoleA@20;
	`)
	if err != nil {
		t.Fatal(err)
	}
	want := "push 0 \n" +
		"push offset written \n" +
		"push 13 \n" +
		"push offset msg \n" +
		"push handle \n" +
		"call _WriteConsoleA@20 \n"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}

	got, err = Block(`
		mov {t1:e}, {d:e};
		not {t1:e};
		add {a:e}, {k:e};
		or {t1:e}, {b:e};
		xor {t1:e}, {c:e};
		lea {a:e}, [{a:e} + {t1:e} + 0xf4d50d87];
		rol {a:e}, 7;
		add {a:e}, {b:e};
	`)
	if err != nil {
		t.Fatal(err)
	}
	want = "mov {t1:e}, {d:e}\n" +
		"not {t1:e}\n" +
		"add {a:e}, {k:e}\n" +
		"or {t1:e}, {b:e}\n" +
		"xor {t1:e}, {c:e}\n" +
		"lea {a:e}, [{a:e}+ {t1:e}+ 0xf4d50d87 ] \n" +
		"rol {a:e}, 7 \n" +
		"add {a:e}, {b:e}\n"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestRenderDeterministic(t *testing.T) {
	in := `gs:[eax + 4*{b:e} - 0x30]; .section .text; mov $1, %rax`
	a, err := Block(in)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Block(in)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("got %q then %q", a, b)
	}
}

func TestRenderEmpty(t *testing.T) {
	if got := Render(nil); got != "" {
		t.Errorf("got %q want %q", got, "")
	}
}

func TestRenderRules(t *testing.T) {
	ident := func(s string) token.Token {
		return token.Token{Type: token.TIdent, Bytes: []byte(s)}
	}
	num := func(s string) token.Token {
		return token.Token{Type: token.TNumber, Bytes: []byte(s)}
	}
	punct := func(typ token.Type, s string) token.Token {
		return token.Token{Type: typ, Bytes: []byte(s)}
	}
	group := func(typ token.Type, inner ...token.Token) token.Token {
		return token.Token{Type: typ, Bytes: []byte(""), Inner: inner}
	}
	type rTest struct {
		in  []token.Token
		out string
	}
	var rts = []rTest{
		// statement separator becomes a newline
		{in: []token.Token{punct(token.TSemi, ";"), ident("inc")}, out: "\ninc "},
		// label colon binds to the identifier
		{in: []token.Token{ident("L"), punct(token.TColon, ":"), ident("inc")}, out: "L:inc "},
		// brace group concatenates with no spacing rules applied inside
		{
			in: []token.Token{group(token.TBrace,
				ident("x"), punct(token.TColon, ":"), ident("e"))},
			out: "{x:e}",
		},
		// nested groups inside braces are transcribed raw too
		{
			in: []token.Token{group(token.TBrace,
				ident("a"), group(token.TBracket, ident("b"), punct(token.TPunct, "+"), num("1")))},
			out: "{a[b+1]}",
		},
		// bracket group renders its inner stream recursively
		{
			in: []token.Token{group(token.TBracket,
				ident("eax"), punct(token.TPunct, "+"), num("4"))},
			out: "[eax + 4 ] ",
		},
		// default rule: surface plus one space
		{in: []token.Token{num("42"), ident("plain")}, out: "42 plain "},
		// a trailing dot falls through to plain dot output
		{in: []token.Token{punct(token.TDot, ".")}, out: ". "},
	}
	for _, rt := range rts {
		if got := Render(rt.in); got != rt.out {
			t.Errorf("got %q want %q", got, rt.out)
		}
	}
}

func TestRenderLongStream(t *testing.T) {
	// stream length must not bound the dispatch stack
	toks := make([]token.Token, 0, 200000)
	for i := 0; i < 100000; i++ {
		toks = append(toks,
			token.Token{Type: token.TIdent, Bytes: []byte("nop")},
			token.Token{Type: token.TSemi, Bytes: []byte(";")})
	}
	out := Render(toks)
	if len(out) != 100000*len("nop \n") {
		t.Errorf("got %d bytes", len(out))
	}
}

func TestBlockErrs(t *testing.T) {
	var ins = []string{
		`'a'`,
		`"unterminated`,
		`{ a`,
		`[ a )`,
		`)`,
	}
	for _, in := range ins {
		if _, err := Block(in); err == nil {
			t.Errorf("%s: expected error", in)
		}
	}
}
