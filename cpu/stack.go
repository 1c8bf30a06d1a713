package cpu

// The stack lives in Memory and grows down from SP_INIT. The stack pointer
// wraps modulo 256, so it can never address outside of Memory.

// setSp moves the stack pointer, keeping REG_SP in step.
func (cpu *Cpu) setSp(sp byte) {
	cpu.Sp = sp
	cpu.Register[REG_SP] = sp
}

// setRegister writes a register, keeping the stack pointer in step with
// REG_SP.
func (cpu *Cpu) setRegister(index byte, value byte) (err error) {
	err = cpu.Register.Set(index, value)
	if err != nil {
		return
	}

	if index == REG_SP {
		cpu.Sp = value
	}

	return
}

// Push decrements the stack pointer, then stores value at it.
func (cpu *Cpu) Push(value byte) (err error) {
	sp := cpu.Sp - 1
	err = cpu.Memory.Write(int(sp), value)
	if err != nil {
		return
	}

	cpu.setSp(sp)
	return
}

// Pop reads the value at the stack pointer, then increments it.
func (cpu *Cpu) Pop() (value byte, err error) {
	value, err = cpu.Memory.Read(int(cpu.Sp))
	if err != nil {
		return
	}

	cpu.setSp(cpu.Sp + 1)
	return
}

// Peek returns the value at the top of the stack without popping it.
func (cpu *Cpu) Peek() (value byte) {
	return cpu.Memory.Peek(int(cpu.Sp))
}
