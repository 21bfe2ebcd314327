package token

import (
	"errors"
	"fmt"
)

var (
	ErrBadUTF8      = errors.New("bad utf8")
	ErrUnterminated = errors.New("unterminated string")
	ErrSingleQuote  = errors.New("single-quoted strings are unsupported")
	ErrBadEscape    = errors.New("bad escape")
	ErrImbalanced   = errors.New("imbalanced delimiters")
)

type TokenizeErr struct {
	Err error
	Pos Pos
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Unwrap() error {
	return e.Err
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func UnexpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("unexpected %s", what), p)
}

// ErrImbalancedDelim reports an unmatched delimiter pair found by [Nest].
// Open is nil for a stray closer, Close is nil for an unclosed opener.
type ErrImbalancedDelim struct {
	Open, Close *Token
}

func (e *ErrImbalancedDelim) Unwrap() error {
	return ErrImbalanced
}

func (e *ErrImbalancedDelim) Error() string {
	if e.Open == nil {
		return ErrImbalanced.Error() + ": " + UnexpectedErr(string(e.Close.Bytes), e.Close.Pos).Error()
	}
	if e.Close == nil {
		return fmt.Sprintf("%s: unmatched %s at %s",
			ErrImbalanced.Error(), string(e.Open.Bytes), e.Open.Pos.String())
	}
	return fmt.Sprintf("%s: %s at %s closed by %s at %s",
		ErrImbalanced.Error(),
		string(e.Open.Bytes), e.Open.Pos.String(),
		string(e.Close.Bytes), e.Close.Pos.String())
}
