package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack_Push(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	assert.Equal(byte(SP_INIT), cpu.Sp)
	assert.Equal(byte(SP_INIT), cpu.Register[REG_SP])

	err := cpu.Push(0x12)
	assert.NoError(err)
	assert.Equal(byte(SP_INIT-1), cpu.Sp)
	assert.Equal(byte(SP_INIT-1), cpu.Register[REG_SP])
	assert.Equal(byte(0x12), cpu.Memory[SP_INIT-1])
	assert.Equal(byte(0x12), cpu.Peek())
}

func TestStack_Pop(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	assert.NoError(cpu.Push(0x12))
	assert.NoError(cpu.Push(0xab))

	val, err := cpu.Pop()
	assert.NoError(err)
	assert.Equal(byte(0xab), val)
	assert.Equal(byte(SP_INIT-1), cpu.Sp)

	val, err = cpu.Pop()
	assert.NoError(err)
	assert.Equal(byte(0x12), val)
	assert.Equal(byte(SP_INIT), cpu.Sp)
	assert.Equal(byte(SP_INIT), cpu.Register[REG_SP])
}

func TestStack_WrapDown(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.setSp(0x00)

	err := cpu.Push(0x5a)
	assert.NoError(err)
	assert.Equal(byte(0xff), cpu.Sp)
	assert.Equal(byte(0x5a), cpu.Memory[0xff])
}

func TestStack_WrapUp(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.setSp(0xff)
	cpu.Memory[0xff] = 0x77

	val, err := cpu.Pop()
	assert.NoError(err)
	assert.Equal(byte(0x77), val)
	assert.Equal(byte(0x00), cpu.Sp)
	assert.Equal(byte(0x00), cpu.Register[REG_SP])
}

func TestStack_RegisterMirror(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()

	err := cpu.setRegister(REG_SP, 0x80)
	assert.NoError(err)
	assert.Equal(byte(0x80), cpu.Sp)

	err = cpu.setRegister(0, 0x10)
	assert.NoError(err)
	assert.Equal(byte(0x80), cpu.Sp)

	err = cpu.setRegister(REGISTER_COUNT, 0x10)
	assert.ErrorIs(err, ErrOutOfBounds)
	assert.Equal(byte(0x80), cpu.Sp)
}
