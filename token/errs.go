package token

import (
	"errors"
	"fmt"
)

var (
	ErrIdent           = errors.New("bad identifier")
	ErrEmptyKey        = errors.New("identifier cannot be empty")
	ErrExpectedEq      = errors.New("expected '='")
	ErrExpectedValue   = errors.New("expected value")
	ErrExpectedSep     = errors.New("expected array separator")
	ErrUnexpectedClose = errors.New("unexpected array terminator")
	ErrNewlineInString = errors.New("unexpected newline in string")
	ErrNewlineInKey    = errors.New("unexpected newline in key")
	ErrBadEscape       = errors.New("bad escape")
	ErrIncomplete      = errors.New("incomplete token at end of input")
	ErrNumber          = errors.New("bad number")
	ErrDateTime        = errors.New("bad date-time")
	ErrKeyword         = errors.New("bad keyword")
)

// ScanErr is the single structured error surfaced for any parse
// failure. It carries the position (line, column, offending line text)
// of the failure and wraps a sentinel naming the violated expectation.
type ScanErr struct {
	Err error
	Pos Pos
}

func NewScanErr(e error, p Pos) *ScanErr {
	return &ScanErr{Err: e, Pos: p}
}

func (e *ScanErr) Unwrap() error {
	return e.Err
}

func (e *ScanErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func UnexpectedErr(what string, p Pos) error {
	return NewScanErr(fmt.Errorf("unexpected %s", what), p)
}
