package cpu

import (
	"errors"

	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrOutOfBounds    = errors.New(f("out of bounds"))
	ErrFlagUnset      = errors.New(f("flag read before compare"))
	ErrPrinterInvalid = errors.New(f("printer invalid"))
	ErrHalted         = errors.New(f("halted"))

	// ALU errors
	ErrAluUnsupported  = errors.New(f("unsupported alu operation"))
	ErrAluDivideByZero = errors.New(f("divide or modulo by zero"))

	// Assembler errors
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate  = errors.New(f("label duplicated"))
	ErrLabelInvalid    = errors.New(f("label invalid"))
	ErrOperandCount    = errors.New(f("operand count"))
	ErrOpcodeInvalid   = errors.New(f("opcode invalid"))
	ErrRegisterInvalid = errors.New(f("register invalid"))
	ErrValueRange      = errors.New(f("value out of byte range"))
	ErrProgramTooLarge = errors.New(f("program too large"))
)

// ErrUnknownOpcode reports an opcode with no handler, and where it was fetched.
type ErrUnknownOpcode struct {
	Opcode  Opcode
	Address int
}

func (err ErrUnknownOpcode) Error() string {
	return f("unknown instruction 0x%02x at address %v", byte(err.Opcode), err.Address)
}

type ErrInstruction Instruction

func (ei ErrInstruction) Error() string {
	return f("%02x: %v", ei.Address, Instruction(ei).String())
}

func (ei ErrInstruction) Is(err error) (ok bool) {
	_, ok = err.(ErrInstruction)
	return
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseCharacter string

func (err ErrParseCharacter) Error() string {
	return f("'%v' is not a character", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrAddress int

func (err ErrAddress) Error() string {
	return f("address 0x%x", int(err))
}

type ErrRegister byte

func (err ErrRegister) Error() string {
	return f("register R%d", byte(err))
}
