// Package brainfuck reads and writes the classical one-symbol-per-instruction
// brainfuck syntax.
package brainfuck

import (
	"fmt"
	"io"

	"github.com/reusee/bergen/bfvm"
)

var symbols = map[bfvm.Op]byte{
	bfvm.OpRight:        '>',
	bfvm.OpLeft:         '<',
	bfvm.OpIncrement:    '+',
	bfvm.OpDecrement:    '-',
	bfvm.OpJumpForward:  '[',
	bfvm.OpJumpBackward: ']',
	bfvm.OpRead:         ',',
	bfvm.OpWrite:        '.',
}

var ops = func() (ret [256]bfvm.Op) {
	for op, sym := range symbols {
		ret[sym] = op
	}
	return
}()

// Symbol returns the source character of op, or 0 for an invalid op.
func Symbol(op bfvm.Op) byte {
	return symbols[op]
}

type UnknownCharacterError struct {
	Char   byte
	Offset int
}

func (e *UnknownCharacterError) Error() string {
	return fmt.Sprintf("brainfuck: unknown character %q at offset %d", e.Char, e.Offset)
}

// Parse maps each symbol to its instruction. Space, CR and LF are skipped;
// any other byte is an error.
func Parse(src []byte) (bfvm.Program, error) {
	program := make(bfvm.Program, 0, len(src))
	for i, c := range src {
		switch c {
		case ' ', '\r', '\n':
			continue
		}
		op := ops[c]
		if op == 0 {
			return nil, &UnknownCharacterError{
				Char:   c,
				Offset: i,
			}
		}
		program = append(program, op)
	}
	return program, nil
}

func Format(program bfvm.Program) []byte {
	buf := make([]byte, len(program))
	for i, op := range program {
		buf[i] = symbols[op]
	}
	return buf
}

func Write(w io.Writer, program bfvm.Program) error {
	_, err := w.Write(Format(program))
	return err
}
