package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/ls8/io"
)

// Printer is the output collaborator for PRN.
type Printer io.Printer

var _cpu_defines = map[string]string{
	"MEMORY_SIZE": fmt.Sprintf("%v", MEMORY_SIZE),
	"SP_INIT":     fmt.Sprintf("0x%x", SP_INIT),
	"REG_SP":      fmt.Sprintf("%v", REG_SP),
}

// Cpu is the LS-8 machine state.
type Cpu struct {
	Verbose bool // Set to log a trace line before every instruction.

	Memory   Memory    // Program and stack memory.
	Register Registers // Register bank. Register[REG_SP] mirrors Sp.
	Pc       int       // Address of the next instruction to fetch.
	Sp       byte      // Stack pointer.
	Flag     Flag      // Result of the last CMP.

	Running bool  // Cleared by HLT, an unknown opcode, or a fault.
	Stop    error // Why the cpu stopped cleanly; nil after HLT.
	Ticks   int   // Instructions executed since reset.

	Printer Printer // PRN output.
}

// NewCpu creates a reset CPU.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}
	cpu.Reset()

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Reset the CPU state.
//   - Clears memory, registers, and the flag.
//   - Sets the stack pointer to SP_INIT.
//   - Sets the program counter to 0, and marks the cpu running.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Memory[:])
	clear(cpu.Register[:])
	cpu.setSp(SP_INIT)
	cpu.Pc = 0
	cpu.Flag = FLAG_UNSET
	cpu.Running = true
	cpu.Stop = nil
	cpu.Ticks = 0
}

// Load copies a program image into memory, starting at address 0.
func (cpu *Cpu) Load(program []byte) (err error) {
	if len(program) > len(cpu.Memory) {
		err = errors.Join(ErrOutOfBounds, ErrAddress(len(program)))
		return
	}

	for addr, value := range program {
		err = cpu.Memory.Write(addr, value)
		if err != nil {
			return
		}
	}

	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("% 5s: %02X\n", "pc", cpu.Pc)
	text += fmt.Sprintf("% 5s: %v\n", "fl", cpu.Flag)
	text += fmt.Sprintf("% 5s: %02X\n", "sp", cpu.Sp)
	for n, val := range cpu.Register {
		text += fmt.Sprintf("% 5s: %02X\n", fmt.Sprintf("r%d", n), val)
	}

	return
}

// Trace renders the instruction at PC and the register bank in hex.
// It never changes cpu state.
func (cpu *Cpu) Trace() (text string) {
	text = fmt.Sprintf("TRACE: %02X | %02X %02X %02X |",
		cpu.Pc,
		cpu.Memory.Peek(cpu.Pc),
		cpu.Memory.Peek(cpu.Pc+1),
		cpu.Memory.Peek(cpu.Pc+2),
	)

	for _, val := range cpu.Register {
		text += fmt.Sprintf(" %02X", val)
	}

	return
}

// Fetch reads the instruction at the program counter.
//
// Both operand bytes are always read, even for instructions that take
// fewer. They are read modulo the memory size, so the lookahead of a short
// instruction at the top of memory never faults.
func (cpu *Cpu) Fetch() (ins Instruction, err error) {
	op, err := cpu.Memory.Read(cpu.Pc)
	if err != nil {
		return
	}

	ins = Instruction{
		Address: cpu.Pc,
		Opcode:  Opcode(op),
		A:       cpu.Memory.Peek(cpu.Pc + 1),
		B:       cpu.Memory.Peek(cpu.Pc + 2),
	}

	return
}

// Execute runs a single fetched instruction and applies its Step.
// An instruction that would continue past the end of memory faults with
// ErrOutOfBounds, leaving Pc at the instruction.
func (cpu *Cpu) Execute(ins Instruction) (err error) {
	handler, ok := dispatch[ins.Opcode]
	if !ok {
		err = ErrUnknownOpcode{Opcode: ins.Opcode, Address: ins.Address}
		return
	}

	defer func() {
		if err != nil {
			err = errors.Join(ErrInstruction(ins), err)
		}
	}()

	step, err := handler(cpu, ins.A, ins.B)
	if err != nil {
		return
	}

	if !step.Halt && step.Pc >= MEMORY_SIZE {
		err = errors.Join(ErrOutOfBounds, ErrAddress(step.Pc))
		return
	}

	cpu.Ticks += 1

	if step.Halt {
		cpu.Running = false
		return
	}

	cpu.Pc = step.Pc

	return
}

// Tick executes a single CPU instruction cycle.
//
// An opcode with no handler stops the cpu cleanly: Running is cleared, Stop
// records the opcode and address, and no error is returned. Any other
// fault also clears Running, and is returned.
func (cpu *Cpu) Tick() (err error) {
	if !cpu.Running {
		err = ErrHalted
		return
	}

	defer func() {
		if err != nil {
			cpu.Running = false
		}
	}()

	ins, err := cpu.Fetch()
	if err != nil {
		return
	}

	if cpu.Verbose {
		log.Printf("%v", cpu.Trace())
	}

	err = cpu.Execute(ins)

	var unknown ErrUnknownOpcode
	if errors.As(err, &unknown) {
		log.Printf("cpu: %v", unknown)
		cpu.Stop = unknown
		cpu.Running = false
		err = nil
	}

	return
}

// Run ticks until the cpu stops, returning the first fault.
func (cpu *Cpu) Run() (err error) {
	for cpu.Running {
		err = cpu.Tick()
		if err != nil {
			return
		}
	}

	return
}
