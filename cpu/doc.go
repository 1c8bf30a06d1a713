// Package cpu implements the LS-8 virtual machine and its assembler.
//
// The machine has 256 bytes of memory, eight 8-bit registers (r7 doubles as
// the stack pointer), a comparison flag, and a program counter. Each tick
// fetches the opcode at the program counter plus the two bytes after it,
// looks the opcode up in a fixed dispatch table, and applies the Step the
// handler returns.
//
// The assembler turns LS-8 assembly source into a Program whose listing is
// the one-binary-byte-per-line text the loader in package io consumes.
package cpu
