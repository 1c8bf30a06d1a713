package io

import (
	"fmt"
	"io"
)

// Console writes PRN values to Output in decimal, one per line.
type Console struct {
	Output io.Writer
}

var _ Printer = (*Console)(nil)

// Print writes value in decimal followed by a newline.
func (cc *Console) Print(value byte) (err error) {
	if cc.Output == nil {
		err = ErrConsoleOutput
		return
	}

	_, err = fmt.Fprintf(cc.Output, "%d\n", value)
	return
}
