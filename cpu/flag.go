package cpu

// Flag is the result of the most recent comparison.
//
// The values follow the LS-8 FL register layout (00000LGE).
type Flag byte

//go:generate go tool stringer -linecomment -type=Flag
const (
	FLAG_UNSET   = Flag(0b000) // unset
	FLAG_EQUAL   = Flag(0b001) // equal
	FLAG_GREATER = Flag(0b010) // greater
	FLAG_LESS    = Flag(0b100) // less
)
