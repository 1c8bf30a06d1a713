package cpu

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// Line is one assembled source line and the bytes it generated.
type Line struct {
	LineNo  int            // Source line number.
	Address int            // Address of the first generated byte.
	Words   []string       // Source words, after equate expansion.
	Bytes   []byte         // Generated bytes.
	Links   map[int]string // Byte index to label, patched at link time.
}

// String returns the source of the line as "MNEMONIC op,op".
func (line *Line) String() string {
	if len(line.Words) == 0 {
		return ""
	}

	return strings.TrimSpace(line.Words[0] + " " + strings.Join(line.Words[1:], ","))
}

// Program is an assembled LS-8 program.
type Program struct {
	Lines []Line
}

type Debug struct {
	*Line
	Index int
}

// Debug finds the line that generated the byte at address.
func (prog *Program) Debug(address int) (dbg Debug) {
	for n, line := range prog.Lines {
		if address >= line.Address && address < line.Address+len(line.Bytes) {
			dbg = Debug{
				Line:  &prog.Lines[n],
				Index: address - line.Address,
			}
			break
		}
	}

	return
}

// Binary returns the memory image of the program.
func (prog *Program) Binary() (bins []byte) {
	for _, code := range prog.Codes() {
		bins = append(bins, code)
	}

	return
}

// Codes iterates over every generated byte and its address.
func (prog *Program) Codes() iter.Seq2[int, byte] {
	return func(yield func(address int, code byte) bool) {
		for _, line := range prog.Lines {
			for n, code := range line.Bytes {
				if !yield(line.Address+n, code) {
					return
				}
			}
		}
	}
}

// Listing writes the program in the loader's text encoding: one binary
// byte per line, the first byte of each source line annotated with its
// source as a '#' comment.
func (prog *Program) Listing(w io.Writer) (err error) {
	for _, line := range prog.Lines {
		for n, code := range line.Bytes {
			text := fmt.Sprintf("%08b", code)
			if n == 0 {
				text += " # " + line.String()
			}
			_, err = fmt.Fprintln(w, text)
			if err != nil {
				return
			}
		}
	}

	return
}
