package cpu

import (
	"errors"
)

const (
	MEMORY_SIZE    = 256 // Bytes of addressable memory.
	REGISTER_COUNT = 8   // General purpose registers.
	REG_SP         = 7   // Register mirroring the stack pointer.
	SP_INIT        = 0xf4
)

// Memory is the flat, byte addressable LS-8 memory.
type Memory [MEMORY_SIZE]byte

// Read returns the byte at address.
func (mem *Memory) Read(address int) (value byte, err error) {
	if address < 0 || address >= len(mem) {
		err = errors.Join(ErrOutOfBounds, ErrAddress(address))
		return
	}

	value = mem[address]
	return
}

// Write sets the byte at address.
func (mem *Memory) Write(address int, value byte) (err error) {
	if address < 0 || address >= len(mem) {
		err = errors.Join(ErrOutOfBounds, ErrAddress(address))
		return
	}

	mem[address] = value
	return
}

// Peek returns the byte at address modulo the memory size. Used for
// operand lookahead, which must never fault.
func (mem *Memory) Peek(address int) byte {
	return mem[address&(MEMORY_SIZE-1)]
}

// Registers is the register file.
type Registers [REGISTER_COUNT]byte

// Get returns the value of register index.
func (reg *Registers) Get(index byte) (value byte, err error) {
	if int(index) >= len(reg) {
		err = errors.Join(ErrOutOfBounds, ErrRegister(index))
		return
	}

	value = reg[index]
	return
}

// Set assigns the value of register index.
func (reg *Registers) Set(index byte, value byte) (err error) {
	if int(index) >= len(reg) {
		err = errors.Join(ErrOutOfBounds, ErrRegister(index))
		return
	}

	reg[index] = value
	return
}
