package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzCpu(f *testing.F) {
	for _, op := range Opcodes {
		f.Add(byte(op), byte(0), byte(1), byte(FLAG_EQUAL), byte(0))
		f.Add(byte(op), byte(7), byte(2), byte(FLAG_LESS), byte(0xfe))
	}
	f.Add(byte(0xff), byte(0), byte(0), byte(FLAG_UNSET), byte(0))

	f.Fuzz(func(t *testing.T, opcode byte, a byte, b byte, flag byte, pc byte) {
		assert := assert.New(t)

		cpu := NewCpu()
		cpu.Printer = &printed{}
		for n := range byte(REG_SP) {
			cpu.Register[n] = n*0x11 + 1
		}
		cpu.Flag = Flag(flag) & (FLAG_EQUAL | FLAG_GREATER | FLAG_LESS)
		cpu.Pc = int(pc)
		cpu.Memory[cpu.Pc] = opcode
		cpu.Memory[(cpu.Pc+1)&0xff] = a
		cpu.Memory[(cpu.Pc+2)&0xff] = b

		before := *cpu

		err := cpu.Tick()

		assert.Equal(cpu.Sp, cpu.Register[REG_SP], "sp mirror")

		_, known := HandlerOf(Opcode(opcode))
		if !known {
			assert.NoError(err)
			assert.False(cpu.Running)
			assert.Equal(ErrUnknownOpcode{Opcode: Opcode(opcode), Address: int(pc)}, cpu.Stop)
			assert.Equal(before.Memory, cpu.Memory)
			assert.Equal(before.Register, cpu.Register)
			assert.Equal(before.Pc, cpu.Pc)
			return
		}

		if err != nil {
			assert.False(cpu.Running)
			assert.ErrorIs(err, ErrInstruction{})
			switch {
			case errors.Is(err, ErrOutOfBounds):
			case errors.Is(err, ErrFlagUnset):
				assert.Equal(FLAG_UNSET, before.Flag)
			case errors.Is(err, ErrAluDivideByZero):
				assert.Equal(OP_MOD, Opcode(opcode))
			default:
				assert.NoError(err)
			}
			return
		}

		op := Opcode(opcode)
		switch {
		case op == OP_HLT:
			assert.False(cpu.Running)
			assert.Equal(before.Pc, cpu.Pc)
		case op.SetsPc():
			assert.True(cpu.Running)
			assert.LessOrEqual(cpu.Pc, 0xff)
		default:
			assert.True(cpu.Running)
			assert.Equal(before.Pc+op.Size(), cpu.Pc)
			assert.LessOrEqual(cpu.Pc, 0xff)
		}
		assert.Equal(1, cpu.Ticks)
	})
}
