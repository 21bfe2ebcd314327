package token

import (
	"fmt"
	"strings"
)

type Type int

const (
	TIdent Type = iota
	TNumber
	TString
	TSemi
	TColon
	TAt
	TDot
	TPunct
	TLCurl
	TRCurl
	TLSquare
	TRSquare
	TLParen
	TRParen

	// group types, produced by Nest
	TBrace
	TBracket
	TParen
)

func (t Type) String() string {
	return map[Type]string{
		TIdent:   "TIdent",
		TNumber:  "TNumber",
		TString:  "TString",
		TSemi:    "TSemi",
		TColon:   "TColon",
		TAt:      "TAt",
		TDot:     "TDot",
		TPunct:   "TPunct",
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
		TLParen:  "TLParen",
		TRParen:  "TRParen",
		TBrace:   "TBrace",
		TBracket: "TBracket",
		TParen:   "TParen",
	}[t]
}

// IsGroup reports whether t is one of the group types produced by [Nest].
func (t Type) IsGroup() bool {
	switch t {
	case TBrace, TBracket, TParen:
		return true
	}
	return false
}

// IsOpen reports whether t is a flat opening delimiter from [Tokenize].
func (t Type) IsOpen() bool {
	switch t {
	case TLCurl, TLSquare, TLParen:
		return true
	}
	return false
}

// IsClose reports whether t is a flat closing delimiter from [Tokenize].
func (t Type) IsClose() bool {
	switch t {
	case TRCurl, TRSquare, TRParen:
		return true
	}
	return false
}

// Token is an atomic lexical unit of assembler text.  Inner is non-nil
// only for group tokens (TBrace, TBracket, TParen), whose Bytes hold the
// opening delimiter only.
type Token struct {
	Type  Type
	Pos   *Pos
	Bytes []byte
	Inner []Token
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

// Surface returns the verbatim surface text of t: the literal text as it
// would appear in source, independent of any surrounding whitespace rule.
// For a group token, the surface is the opening delimiter, the
// concatenated surfaces of the inner tokens with no separators, and the
// closing delimiter.
func (t *Token) Surface() string {
	if !t.Type.IsGroup() {
		return string(t.Bytes)
	}
	var sb strings.Builder
	sb.WriteString(openDelim(t.Type))
	for i := range t.Inner {
		sb.WriteString(t.Inner[i].Surface())
	}
	sb.WriteString(closeDelim(t.Type))
	return sb.String()
}

func openDelim(t Type) string {
	return map[Type]string{TBrace: "{", TBracket: "[", TParen: "("}[t]
}

func closeDelim(t Type) string {
	return map[Type]string{TBrace: "}", TBracket: "]", TParen: ")"}[t]
}
