package io

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	ROM_CAPACITY = 256 // Bytes of program memory.
	ROM_COMMENT  = "#" // Starts a trailing comment.
)

// Rom is a program image read from its text encoding: one base-2 byte per
// line, with optional '#' comments. Blank and comment-only lines are skipped.
//
//	10000010 # LDI R0,8
//	00000000
//	00001000
type Rom struct {
	Data []byte
}

// Load replaces the ROM contents with the program read from input.
func (rc *Rom) Load(input io.Reader) (err error) {
	scanner := bufio.NewScanner(input)

	var lineno int
	var data []byte

	for scanner.Scan() {
		text := scanner.Text()
		lineno++

		line, _, _ := strings.Cut(text, ROM_COMMENT)
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		var value uint64
		value, err = strconv.ParseUint(line, 2, 8)
		if err != nil {
			err = &ErrRomSyntax{LineNo: lineno, Line: text, Err: ErrRomBinary}
			return
		}

		if len(data) == ROM_CAPACITY {
			err = &ErrRomSyntax{LineNo: lineno, Line: text, Err: ErrRomFull}
			return
		}

		data = append(data, byte(value))
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	rc.Data = data
	return
}

// Save writes the ROM contents in the text encoding read by Load.
func (rc *Rom) Save(output io.Writer) (err error) {
	for _, value := range rc.Data {
		_, err = fmt.Fprintf(output, "%08b\n", value)
		if err != nil {
			return
		}
	}

	return
}
