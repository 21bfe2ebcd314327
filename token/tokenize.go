package token

import (
	"unicode"
	"unicode/utf8"

	"github.com/asm-block/asmblock/debug"
)

// Tokenize appends the tokens of src to dst and returns the result.  The
// token classes are identifiers, numbers, double-quoted strings, flat
// delimiters and single punctuation characters; whitespace only
// separates tokens and is never part of one.
//
// Single-quoted strings are a documented limitation of the format and
// produce [ErrSingleQuote].
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	n0 := len(dst)
	posDoc := &PosDoc{d: make([]byte, len(src))}
	copy(posDoc.d, src)
	d := posDoc.d
	n := len(d)
	i := 0
	for i < n {
		c := d[i]
		switch {
		case c == '\n':
			posDoc.nl(i)
			i++
		case c == ' ' || c == '\t' || c == '\r' || c == '\v' || c == '\f':
			i++
		case isIdentStart(c):
			j := i + 1
			for j < n && isIdentByte(d[j]) {
				j++
			}
			dst = append(dst, Token{
				Type:  TIdent,
				Pos:   posDoc.Pos(i),
				Bytes: d[i:j],
			})
			i = j
		case c >= '0' && c <= '9':
			// numbers carry radix prefixes and unit suffixes
			// verbatim: 0x30, 4s, 19b
			j := i + 1
			for j < n && isIdentByte(d[j]) {
				j++
			}
			dst = append(dst, Token{
				Type:  TNumber,
				Pos:   posDoc.Pos(i),
				Bytes: d[i:j],
			})
			i = j
		case c == '"':
			j, err := quoted(d[i:])
			if err != nil {
				return nil, NewTokenizeErr(err, posDoc.Pos(i))
			}
			dst = append(dst, Token{
				Type:  TString,
				Pos:   posDoc.Pos(i),
				Bytes: d[i : i+j],
			})
			i += j
		case c == '\'':
			return nil, NewTokenizeErr(ErrSingleQuote, posDoc.Pos(i))
		default:
			typ, ok := punctType[c]
			if ok {
				dst = append(dst, Token{
					Type:  typ,
					Pos:   posDoc.Pos(i),
					Bytes: d[i : i+1],
				})
				i++
				continue
			}
			r, sz := utf8.DecodeRune(d[i:])
			if r == utf8.RuneError && sz == 1 {
				return nil, NewTokenizeErr(ErrBadUTF8, posDoc.Pos(i))
			}
			if unicode.Is(unicode.Other, r) {
				return nil, UnexpectedErr("unicode other", posDoc.Pos(i))
			}
			dst = append(dst, Token{
				Type:  TPunct,
				Pos:   posDoc.Pos(i),
				Bytes: d[i : i+sz],
			})
			i += sz
		}
	}
	if debug.Tokens() {
		for i := n0; i < len(dst); i++ {
			debug.Logf("%s\n", dst[i].Info())
		}
	}
	return dst, nil
}

var punctType = map[byte]Type{
	';': TSemi,
	':': TColon,
	'@': TAt,
	'.': TDot,
	'{': TLCurl,
	'}': TRCurl,
	'[': TLSquare,
	']': TRSquare,
	'(': TLParen,
	')': TRParen,
	',': TPunct,
	'%': TPunct,
	'#': TPunct,
	'$': TPunct,
	'-': TPunct,
	'+': TPunct,
	'*': TPunct,
	'/': TPunct,
	'!': TPunct,
	'&': TPunct,
	'|': TPunct,
	'^': TPunct,
	'~': TPunct,
	'<': TPunct,
	'>': TPunct,
	'=': TPunct,
	'?': TPunct,
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentByte(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

// quoted returns the length of the double-quoted string at the start of
// d, including both quotes.
func quoted(d []byte) (int, error) {
	i := 1
	for i < len(d) {
		switch d[i] {
		case '"':
			return i + 1, nil
		case '\\':
			if i+1 >= len(d) {
				return 0, ErrBadEscape
			}
			i += 2
		case '\n':
			return 0, ErrUnterminated
		default:
			i++
		}
	}
	return 0, ErrUnterminated
}
