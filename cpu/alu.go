package cpu

// AluOp is an ALU operation.
type AluOp int

//go:generate go tool stringer -linecomment -type=AluOp
const (
	ALU_OP_ADD = AluOp(0) // ADD
	ALU_OP_MUL = AluOp(1) // MUL
	ALU_OP_AND = AluOp(2) // AND
	ALU_OP_OR  = AluOp(3) // OR
	ALU_OP_XOR = AluOp(4) // XOR
	ALU_OP_NOT = AluOp(5) // NOT
	ALU_OP_SHL = AluOp(6) // SHL
	ALU_OP_SHR = AluOp(7) // SHR
	ALU_OP_MOD = AluOp(8) // MOD
	ALU_OP_CMP = AluOp(9) // CMP
)

// Alu computes op on two register values.
//
// All results are truncated to 8 bits. CMP leaves output at zero and
// returns the comparison in flag; every other operation returns
// FLAG_UNSET, meaning the flag is not touched.
func Alu(op AluOp, a byte, b byte) (output byte, flag Flag, err error) {
	switch op {
	case ALU_OP_ADD:
		output = a + b
	case ALU_OP_MUL:
		output = a * b
	case ALU_OP_AND:
		output = a & b
	case ALU_OP_OR:
		output = a | b
	case ALU_OP_XOR:
		output = a ^ b
	case ALU_OP_NOT: // unary
		output = ^a
	case ALU_OP_SHL:
		output = a << b
	case ALU_OP_SHR:
		output = a >> b
	case ALU_OP_MOD:
		if b == 0 {
			err = ErrAluDivideByZero
			return
		}
		output = a % b
	case ALU_OP_CMP:
		switch {
		case a > b:
			flag = FLAG_GREATER
		case a < b:
			flag = FLAG_LESS
		default:
			flag = FLAG_EQUAL
		}
	default:
		err = ErrAluUnsupported
	}

	return
}
