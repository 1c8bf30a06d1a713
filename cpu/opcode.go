package cpu

import (
	"fmt"
)

// Opcode is an LS-8 instruction byte.
//
// The encoding is self describing:
//
//	AABCDDDD
//	AA   - number of operand bytes that follow
//	B    - instruction is handled by the ALU
//	C    - instruction sets the program counter
//	DDDD - instruction identifier
type Opcode byte

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_HLT  = Opcode(0b00000001) // HLT
	OP_RET  = Opcode(0b00010001) // RET
	OP_PUSH = Opcode(0b01000101) // PUSH
	OP_POP  = Opcode(0b01000110) // POP
	OP_PRN  = Opcode(0b01000111) // PRN
	OP_CALL = Opcode(0b01010000) // CALL
	OP_JMP  = Opcode(0b01010100) // JMP
	OP_JEQ  = Opcode(0b01010101) // JEQ
	OP_JNE  = Opcode(0b01010110) // JNE
	OP_NOT  = Opcode(0b01101001) // NOT
	OP_LDI  = Opcode(0b10000010) // LDI
	OP_ADD  = Opcode(0b10100000) // ADD
	OP_MUL  = Opcode(0b10100010) // MUL
	OP_MOD  = Opcode(0b10100100) // MOD
	OP_CMP  = Opcode(0b10100111) // CMP
	OP_AND  = Opcode(0b10101000) // AND
	OP_OR   = Opcode(0b10101010) // OR
	OP_XOR  = Opcode(0b10101011) // XOR
	OP_SHL  = Opcode(0b10101100) // SHL
	OP_SHR  = Opcode(0b10101101) // SHR
)

// Opcodes lists every opcode with a handler, in encoding order.
var Opcodes = []Opcode{
	OP_HLT, OP_RET,
	OP_PUSH, OP_POP, OP_PRN,
	OP_CALL, OP_JMP, OP_JEQ, OP_JNE,
	OP_NOT,
	OP_LDI,
	OP_ADD, OP_MUL, OP_MOD, OP_CMP, OP_AND, OP_OR, OP_XOR, OP_SHL, OP_SHR,
}

// Operands returns the number of operand bytes encoded after the opcode.
func (op Opcode) Operands() int {
	return int(op >> 6)
}

// Size returns the encoded length of the instruction in bytes.
func (op Opcode) Size() int {
	return 1 + op.Operands()
}

// IsAlu returns true if the instruction is computed by the ALU.
func (op Opcode) IsAlu() bool {
	return (op & 0b0010_0000) != 0
}

// SetsPc returns true if the instruction assigns the program counter itself.
func (op Opcode) SetsPc() bool {
	return (op & 0b0001_0000) != 0
}

// Immediate returns true if operand n is an immediate value rather than a
// register index.
func (op Opcode) Immediate(n int) bool {
	return op == OP_LDI && n == 1
}

// Instruction is a fetched opcode with its two lookahead bytes.
type Instruction struct {
	Address int
	Opcode  Opcode
	A       byte
	B       byte
}

// String returns the assembly representation of the instruction.
func (ins Instruction) String() (out string) {
	op := ins.Opcode
	operands := []byte{ins.A, ins.B}[:min(op.Operands(), 2)]

	out = op.String()
	for n, operand := range operands {
		sep := ","
		if n == 0 {
			sep = " "
		}
		if op.Immediate(n) {
			out += fmt.Sprintf("%v%d", sep, operand)
		} else {
			out += fmt.Sprintf("%vR%d", sep, operand)
		}
	}

	return
}
