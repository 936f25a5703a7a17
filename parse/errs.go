package parse

import (
	"errors"
	"fmt"

	"github.com/vortex-format/go-vcfg/scan"
)

var (
	// ErrNoBuffer is returned by Parse when no input buffer is set or
	// the buffer is empty.
	ErrNoBuffer = errors.New("no buffer")

	// ErrParse wraps all strict-mode syntax errors.
	ErrParse = errors.New("parse error")
)

// ParseErr is a positioned syntax error, produced only in strict mode.
type ParseErr struct {
	Err error
	Pos scan.Pos
}

func (e *ParseErr) Unwrap() error {
	return e.Err
}

func (e *ParseErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func newParseErr(err error, pos scan.Pos) error {
	return &ParseErr{Err: err, Pos: pos}
}

func unexpectedErr(what string, pos scan.Pos) error {
	return newParseErr(fmt.Errorf("%w: unexpected %s", ErrParse, what), pos)
}

func expectedErr(what string, pos scan.Pos) error {
	return newParseErr(fmt.Errorf("%w: expected %s", ErrParse, what), pos)
}
