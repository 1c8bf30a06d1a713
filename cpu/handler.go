package cpu

import (
	"errors"
)

// Step is the control outcome of a handler: either halt, or continue at Pc.
type Step struct {
	Halt bool
	Pc   int
}

// Handler executes one instruction against the cpu state.
//
// a and b are the two bytes following the opcode, read whether or not the
// instruction uses them. Handlers never assign cpu.Pc; the returned Step
// says where execution continues.
type Handler func(cpu *Cpu, a, b byte) (step Step, err error)

// dispatch maps each opcode to its handler. It is never modified at run time.
var dispatch = map[Opcode]Handler{
	OP_HLT:  doHlt,
	OP_LDI:  doLdi,
	OP_PRN:  doPrn,
	OP_PUSH: doPush,
	OP_POP:  doPop,
	OP_CALL: doCall,
	OP_RET:  doRet,
	OP_JMP:  doJmp,
	OP_JEQ:  doJeq,
	OP_JNE:  doJne,
	OP_ADD:  aluHandler(OP_ADD, ALU_OP_ADD),
	OP_MUL:  aluHandler(OP_MUL, ALU_OP_MUL),
	OP_MOD:  aluHandler(OP_MOD, ALU_OP_MOD),
	OP_CMP:  aluHandler(OP_CMP, ALU_OP_CMP),
	OP_AND:  aluHandler(OP_AND, ALU_OP_AND),
	OP_OR:   aluHandler(OP_OR, ALU_OP_OR),
	OP_XOR:  aluHandler(OP_XOR, ALU_OP_XOR),
	OP_NOT:  aluHandler(OP_NOT, ALU_OP_NOT),
	OP_SHL:  aluHandler(OP_SHL, ALU_OP_SHL),
	OP_SHR:  aluHandler(OP_SHR, ALU_OP_SHR),
}

// HandlerOf returns the handler for an opcode, if there is one.
func HandlerOf(op Opcode) (handler Handler, ok bool) {
	handler, ok = dispatch[op]
	return
}

// next continues at the instruction after op.
func next(cpu *Cpu, op Opcode) Step {
	return Step{Pc: cpu.Pc + op.Size()}
}

// jump continues at the address held in register reg.
func jump(cpu *Cpu, reg byte) (step Step, err error) {
	target, err := cpu.Register.Get(reg)
	if err != nil {
		return
	}

	step = Step{Pc: int(target)}
	return
}

func doHlt(cpu *Cpu, a, b byte) (step Step, err error) {
	step = Step{Halt: true}
	return
}

func doLdi(cpu *Cpu, a, b byte) (step Step, err error) {
	err = cpu.setRegister(a, b)
	if err != nil {
		return
	}

	step = next(cpu, OP_LDI)
	return
}

func doPrn(cpu *Cpu, a, b byte) (step Step, err error) {
	if cpu.Printer == nil {
		err = ErrPrinterInvalid
		return
	}

	value, err := cpu.Register.Get(a)
	if err != nil {
		return
	}

	err = cpu.Printer.Print(value)
	if err != nil {
		return
	}

	step = next(cpu, OP_PRN)
	return
}

func doPush(cpu *Cpu, a, b byte) (step Step, err error) {
	value, err := cpu.Register.Get(a)
	if err != nil {
		return
	}

	err = cpu.Push(value)
	if err != nil {
		return
	}

	step = next(cpu, OP_PUSH)
	return
}

func doPop(cpu *Cpu, a, b byte) (step Step, err error) {
	// Validate the target before the stack pointer moves.
	_, err = cpu.Register.Get(a)
	if err != nil {
		return
	}

	value, err := cpu.Pop()
	if err != nil {
		return
	}

	err = cpu.setRegister(a, value)
	if err != nil {
		return
	}

	step = next(cpu, OP_POP)
	return
}

func doCall(cpu *Cpu, a, b byte) (step Step, err error) {
	step, err = jump(cpu, a)
	if err != nil {
		return
	}

	// The return address must fit in a stack byte.
	ret := next(cpu, OP_CALL).Pc
	if ret >= MEMORY_SIZE {
		err = errors.Join(ErrOutOfBounds, ErrAddress(ret))
		return
	}

	err = cpu.Push(byte(ret))
	return
}

func doRet(cpu *Cpu, a, b byte) (step Step, err error) {
	ret, err := cpu.Pop()
	if err != nil {
		return
	}

	step = Step{Pc: int(ret)}
	return
}

func doJmp(cpu *Cpu, a, b byte) (step Step, err error) {
	return jump(cpu, a)
}

func doJeq(cpu *Cpu, a, b byte) (step Step, err error) {
	if cpu.Flag == FLAG_UNSET {
		err = ErrFlagUnset
		return
	}

	if cpu.Flag == FLAG_EQUAL {
		return jump(cpu, a)
	}

	step = next(cpu, OP_JEQ)
	return
}

func doJne(cpu *Cpu, a, b byte) (step Step, err error) {
	if cpu.Flag == FLAG_UNSET {
		err = ErrFlagUnset
		return
	}

	if cpu.Flag != FLAG_EQUAL {
		return jump(cpu, a)
	}

	step = next(cpu, OP_JNE)
	return
}

// aluHandler builds the handler for an ALU instruction:
// reg_a = op(reg_a, reg_b), or flag = CMP(reg_a, reg_b).
func aluHandler(code Opcode, op AluOp) Handler {
	return func(cpu *Cpu, a, b byte) (step Step, err error) {
		value_a, err := cpu.Register.Get(a)
		if err != nil {
			return
		}

		// Unary operations ignore the second operand entirely.
		var value_b byte
		if code.Operands() > 1 {
			value_b, err = cpu.Register.Get(b)
			if err != nil {
				return
			}
		}

		output, flag, err := Alu(op, value_a, value_b)
		if err != nil {
			return
		}

		if op == ALU_OP_CMP {
			cpu.Flag = flag
		} else {
			err = cpu.setRegister(a, output)
			if err != nil {
				return
			}
		}

		step = next(cpu, code)
		return
	}
}
