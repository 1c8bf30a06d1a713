package cpu

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"log"
	"maps"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
}

// Assembler is a two pass assembler for LS-8 programs.
//
// Source is line oriented:
//
//	; comment
//	.equ COUNT 5
//	Loop:   LDI R0,COUNT    ; registers R0-R7, or SP for R7
//	        LDI R1,Loop     ; labels may be forward references
//	        LDI R2,$(COUNT * 2)
//	        LDI R3,'A'
//	Data:   DB 0x10,0b11,7
type Assembler struct {
	Verbose bool   // If set, verbosely logs the assembler actions.
	Lines   []Line // List of generated lines.

	predefine map[string]string // Predefines
	Label     map[string]int    // Map of labels to addresses.
	Equate    map[string]string // Map of equates.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// PredefineAll predefines every equate in defines.
func (asm *Assembler) PredefineAll(defines iter.Seq2[string, string]) {
	for equ, value := range defines {
		asm.Predefine(equ, value)
	}
}

// mnemonicMap maps instruction names to opcodes.
var mnemonicMap = func() map[string]Opcode {
	mnemonics := make(map[string]Opcode, len(Opcodes))
	for _, op := range Opcodes {
		mnemonics[op.String()] = op
	}
	return mnemonics
}()

// regMap maps register names to register indexes.
var regMap = map[string]byte{
	"R0": 0,
	"R1": 1,
	"R2": 2,
	"R3": 3,
	"R4": 4,
	"R5": 5,
	"R6": 6,
	"R7": 7,
	"SP": REG_SP,
}

var (
	reCharacter  = regexp.MustCompile(`'\\?[^']'`)
	reExpression = regexp.MustCompile(`\$\([^\$]*\)`)
	reLabel      = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// valueOf returns the byte value of a numeric word.
// Negative values are stored in two's complement.
func (asm *Assembler) valueOf(word string) (value byte, err error) {
	invert := false
	if strings.HasPrefix(word, "~") {
		invert = true
		word = word[1:]
	}

	v64, err := strconv.ParseInt(word, 0, 16)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	if v64 > 0xff || v64 < -0x80 {
		err = ErrValueRange
		return
	}

	value = byte(v64)
	if invert {
		value = ^value
	}

	return
}

// registerOf returns the register index named by word.
func (asm *Assembler) registerOf(word string) (reg byte, err error) {
	reg, ok := regMap[strings.ToUpper(word)]
	if !ok {
		err = ErrRegisterInvalid
	}

	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var v64 int64
		v64, err = strconv.ParseInt(str, 0, 64)
		if err != nil {
			// Ignore non-integer equates. They may be registers
			// or something else.
			err = nil
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}
	for key, addr := range asm.Label {
		pred[key] = starlark.MakeInt(addr)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

// expandCharacters replaces 'x' character literals with their values.
func expandCharacters(text string) string {
	return reCharacter.ReplaceAllStringFunc(text, func(word string) string {
		str := word[1 : len(word)-1]
		if str[0] == '\\' {
			str = str[1:]
			switch str {
			case "\\":
				str = "\\"
			case "n":
				str = "\n"
			case "r":
				str = "\r"
			case "e":
				str = "\033"
			default:
				return word
			}
		} else if len(str) != 1 {
			return word
		}
		return fmt.Sprintf("%v", str[0])
	})
}

// parseLine expands a single line into words.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do $() evaluations
	line = reExpression.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%v", value)
	})
	if err != nil {
		return
	}

	words = strings.FieldsFunc(line, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for len(words) > 0 && strings.HasSuffix(words[0], ":") {
		label := words[0][:len(words[0])-1]
		if !reLabel.MatchString(label) {
			err = ErrLabelInvalid
			return
		}
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}

		asm.Label[label] = asm.currentAddress()
		words = words[1:]
	}

	for n, word := range words {
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	return
}

// operandOf encodes one operand word into line, recording a link for a
// label reference.
func (asm *Assembler) operandOf(line *Line, word string, immediate bool) (err error) {
	var value byte

	switch {
	case !immediate:
		value, err = asm.registerOf(word)
	case reLabel.MatchString(word):
		if line.Links == nil {
			line.Links = map[int]string{}
		}
		line.Links[len(line.Bytes)] = word
	default:
		value, err = asm.valueOf(word)
	}
	if err != nil {
		return
	}

	line.Bytes = append(line.Bytes, value)
	return
}

// parseWords assembles an expanded line.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	if len(words) == 0 {
		return
	}

	line := Line{
		LineNo:  lineno,
		Address: asm.currentAddress(),
		Words:   words,
	}

	mnemonic := strings.ToUpper(words[0])
	args := words[1:]

	if mnemonic == "DB" {
		if len(args) == 0 {
			err = ErrOperandCount
			return
		}
		for _, arg := range args {
			err = asm.operandOf(&line, arg, true)
			if err != nil {
				return
			}
		}
	} else {
		op, ok := mnemonicMap[mnemonic]
		if !ok {
			err = ErrOpcodeInvalid
			return
		}
		if len(args) != op.Operands() {
			err = ErrOperandCount
			return
		}
		line.Bytes = append(line.Bytes, byte(op))
		for n, arg := range args {
			err = asm.operandOf(&line, arg, op.Immediate(n))
			if err != nil {
				return
			}
		}
	}

	if line.Address+len(line.Bytes) > MEMORY_SIZE {
		err = ErrProgramTooLarge
		return
	}

	asm.Lines = append(asm.Lines, line)
	return
}

// currentAddress gets the address of the next generated byte.
func (asm *Assembler) currentAddress() int {
	if len(asm.Lines) == 0 {
		return 0
	}

	last := asm.Lines[len(asm.Lines)-1]

	return last.Address + len(last.Bytes)
}

// link patches every label reference with the label's address.
func (asm *Assembler) link() (err error) {
	for n := range asm.Lines {
		line := &asm.Lines[n]
		for index, label := range line.Links {
			addr, ok := asm.Label[label]
			if !ok {
				err = &ErrSyntax{LineNo: line.LineNo, Line: line.String(), Err: ErrLabelMissing(label)}
				return
			}
			// A label past the last byte of a full program has no address.
			if addr >= MEMORY_SIZE {
				err = &ErrSyntax{LineNo: line.LineNo, Line: line.String(), Err: ErrValueRange}
				return
			}
			line.Bytes[index] = byte(addr)
		}
	}

	return
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	asm.Lines = nil
	asm.Label = make(map[string]int, 16)
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		// Literals first, so that ';' is not taken as a comment.
		line = strings.TrimSpace(strings.Split(expandCharacters(text), ";")[0])

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err == nil {
			err = asm.parseWords(words, lineno)
		}
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	err = asm.link()
	if err != nil {
		return
	}

	prog = &Program{Lines: asm.Lines}
	return
}
