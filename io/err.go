package io

import (
	"errors"

	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	// Rom errors
	ErrRomFull   = errors.New(f("rom full"))
	ErrRomBinary = errors.New(f("not an 8-bit binary value"))

	// Console errors
	ErrConsoleOutput = errors.New(f("console output missing"))
)

// ErrRomSyntax indicates the source line of a malformed ROM entry.
type ErrRomSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrRomSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrRomSyntax) Unwrap() error {
	return err.Err
}
