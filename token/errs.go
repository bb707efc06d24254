package token

import (
	"errors"
	"fmt"
)

var (
	ErrBadUTF8      = errors.New("bad utf8")
	ErrUnterminated = errors.New("unterminated quoted string")
	ErrBadEscape    = errors.New("bad escape")
	ErrBadUnicode   = errors.New("bad unicode")
	ErrControl      = errors.New("unicode control")
	ErrReserved     = errors.New("reserved token")
	ErrQuote        = errors.New("quote character in unquoted string")
	ErrBlockOpen    = errors.New("text block delimiter must stand alone")
	ErrBlockEnd     = errors.New("unterminated text block")
	ErrOutdent      = errors.New("outdented past the closing delimiter")
)

// Err ties a sentinel error to a source position.
type Err struct {
	Err error
	Pos Pos
}

func NewErr(e error, p Pos) *Err {
	return &Err{Err: e, Pos: p}
}

func (e *Err) Unwrap() error {
	return e.Err
}

func (e *Err) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func ExpectedErr(what string, p Pos) error {
	return NewErr(fmt.Errorf("expected %s", what), p)
}

func UnexpectedErr(what string, p Pos) error {
	return NewErr(fmt.Errorf("unexpected %s", what), p)
}
