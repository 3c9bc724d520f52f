package bfvm

type Op uint8

const (
	OpRight Op = iota + 1
	OpLeft
	OpIncrement
	OpDecrement
	OpJumpForward
	OpJumpBackward
	OpRead
	OpWrite
)

// Ops lists every instruction in declaration order.
var Ops = []Op{
	OpRight,
	OpLeft,
	OpIncrement,
	OpDecrement,
	OpJumpForward,
	OpJumpBackward,
	OpRead,
	OpWrite,
}

func (o Op) Valid() bool {
	return o >= OpRight && o <= OpWrite
}

func (o Op) String() string {
	switch o {
	case OpRight:
		return "right"
	case OpLeft:
		return "left"
	case OpIncrement:
		return "increment"
	case OpDecrement:
		return "decrement"
	case OpJumpForward:
		return "jump-forward"
	case OpJumpBackward:
		return "jump-backward"
	case OpRead:
		return "read"
	case OpWrite:
		return "write"
	}
	return "unknown"
}
