package emulator

import (
	"errors"

	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	ErrMissingProgram = errors.New(f("missing program"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Address int
	LineNo  int
	Err     error
}

func (err *ErrRuntime) Error() string {
	if err.LineNo == 0 {
		return f("address %02x %v", err.Address, err.Err)
	}
	return f("line %d address %02x %v", err.LineNo, err.Address, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
