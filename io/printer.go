// Package io provides the peripherals attached to the LS-8 machine: the
// program ROM loaded from its text encoding, and the console that PRN
// writes to.
package io

// Printer receives the values emitted by PRN.
type Printer interface {
	// Print emits a single register value.
	Print(value byte) error
}
