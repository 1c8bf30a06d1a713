// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	stdio "io"
	"iter"
	"log"
	"maps"
	"os"
	"path/filepath"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/internal"
	"github.com/ezrec/ls8/io"
)

const (
	ASM_EXT = ".asm" // Source files with this extension are assembled.
)

var _emulator_defines = map[string]string{
	"ROM_CAPACITY": fmt.Sprintf("%v", io.ROM_CAPACITY),
}

// Emulator state. CPU + program ROM + console.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Assembled listing, if the program came from source.

	Rom     io.Rom     // Program image copied into memory on reset.
	Console io.Console // PRN output.

	Equates map[string]string // Extra assembler predefines.
}

// NewEmulator creates a new emulator printing to standard output.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
	}

	emu.Console.Output = os.Stdout
	emu.Cpu.Printer = &emu.Console

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
		maps.All(emu.Equates),
	)
}

// Assemble assembles source into the ROM, keeping the listing for line
// number lookups.
func (emu *Emulator) Assemble(source stdio.Reader) (err error) {
	asm := &cpu.Assembler{Verbose: emu.Verbose}
	asm.PredefineAll(emu.Defines())

	prog, err := asm.Parse(source)
	if err != nil {
		return
	}

	emu.Program = prog
	emu.Rom.Data = prog.Binary()
	return
}

// LoadFile loads a program into the ROM. Files ending in ASM_EXT are
// assembled; anything else is read in the binary text encoding.
func (emu *Emulator) LoadFile(path string) (err error) {
	if len(path) == 0 {
		err = ErrMissingProgram
		return
	}

	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	if emu.Verbose {
		log.Printf("emulator: load %v", path)
	}

	if filepath.Ext(path) == ASM_EXT {
		return emu.Assemble(inf)
	}

	emu.Program = &cpu.Program{}
	return emu.Rom.Load(inf)
}

// Listing writes the loaded program in the ROM text encoding. Assembled
// programs are annotated with their source lines.
func (emu *Emulator) Listing(output stdio.Writer) (err error) {
	if len(emu.Program.Lines) == 0 {
		return emu.Rom.Save(output)
	}

	return emu.Program.Listing(output)
}

// Reset the cpu, and copy the ROM into memory.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()

	err = emu.Cpu.Load(emu.Rom.Data)
	return
}

// LineNo returns the source line number for the instruction at the program
// counter, or 0 if unknown.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(emu.Cpu.Pc)
	if dbg.Line == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	address := emu.Cpu.Pc
	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Address: address, LineNo: lineno, Err: err}
		}
	}()

	err = emu.Cpu.Tick()
	if err != nil {
		return
	}

	done = !emu.Cpu.Running
	return
}

// Run ticks until the program halts or faults.
func (emu *Emulator) Run() (err error) {
	for done, err := emu.Tick(); !done; done, err = emu.Tick() {
		if err != nil {
			return err
		}
	}

	if emu.Verbose {
		log.Printf("emulator: stopped after %v ticks", emu.Cpu.Ticks)
	}

	return
}
