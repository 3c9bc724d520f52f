// Package bfvm implements the brainfuck tape machine.
//
// A Machine executes a Program one instruction at a time over a tape of
// TapeSize byte cells. Cell arithmetic wraps modulo 256 and the cell pointer
// wraps modulo TapeSize in both directions, so neither ever fails.
//
// Loops are resolved by scanning the program for the matching bracket each
// time a jump is taken. There is no precomputed jump table; an unmatched
// bracket is only detected when the jump that needs it is taken.
package bfvm

import (
	"fmt"
	"io"
)

const TapeSize = 30_000

type Machine struct {
	Program Program
	IP      int
	Pointer int
	Tape    [TapeSize]byte
	Input   io.Reader
	Output  io.Writer

	buf [1]byte
}

func New(program Program) *Machine {
	return &Machine{
		Program: program,
	}
}

func WithIO(program Program, input io.Reader, output io.Writer) *Machine {
	return &Machine{
		Program: program,
		Input:   input,
		Output:  output,
	}
}

func (m *Machine) Halted() bool {
	return m.IP >= len(m.Program)
}

func (m *Machine) Cell() byte {
	return m.Tape[m.Pointer]
}

// Step executes the instruction at IP. On error the registers are left as
// they were before the step.
func (m *Machine) Step() error {
	if m.Halted() {
		return &RuntimeError{
			Err:     ErrHalted,
			IP:      m.IP,
			Pointer: m.Pointer,
		}
	}
	op := m.Program[m.IP]
	if err := m.exec(op); err != nil {
		return &RuntimeError{
			Err:     err,
			IP:      m.IP,
			Pointer: m.Pointer,
			Op:      op,
		}
	}
	return nil
}

func (m *Machine) exec(op Op) error {
	switch op {

	case OpRight:
		m.Pointer = (m.Pointer + 1) % TapeSize

	case OpLeft:
		m.Pointer = (m.Pointer + TapeSize - 1) % TapeSize

	case OpIncrement:
		m.Tape[m.Pointer]++

	case OpDecrement:
		m.Tape[m.Pointer]--

	case OpJumpForward:
		if m.Tape[m.Pointer] == 0 {
			target, ok := m.matchForward()
			if !ok {
				return ErrUnmatchedForwardJump
			}
			m.IP = target + 1
			return nil
		}

	case OpJumpBackward:
		if m.Tape[m.Pointer] != 0 {
			target, ok := m.matchBackward()
			if !ok {
				return ErrUnmatchedBackwardJump
			}
			m.IP = target + 1
			return nil
		}

	case OpRead:
		if m.Input == nil {
			return ErrNoInput
		}
		n, err := m.Input.Read(m.buf[:])
		if n < 1 {
			if err == nil || err == io.EOF {
				return ErrEndOfInput
			}
			return fmt.Errorf("read: %w", err)
		}
		// a byte delivered together with io.EOF still counts
		if err != nil && err != io.EOF {
			return fmt.Errorf("read: %w", err)
		}
		m.Tape[m.Pointer] = m.buf[0]

	case OpWrite:
		if m.Output == nil {
			return ErrNoOutput
		}
		m.buf[0] = m.Tape[m.Pointer]
		n, err := m.Output.Write(m.buf[:])
		if err != nil {
			return fmt.Errorf("write: %w", err)
		}
		if n < 1 {
			return ErrShortWrite
		}

	default:
		return ErrUnknownOp
	}

	m.IP++
	return nil
}

func (m *Machine) matchForward() (int, bool) {
	depth := 0
	for i := m.IP; i < len(m.Program); i++ {
		switch m.Program[i] {
		case OpJumpForward:
			depth++
		case OpJumpBackward:
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

func (m *Machine) matchBackward() (int, bool) {
	depth := 0
	for i := m.IP; i >= 0; i-- {
		switch m.Program[i] {
		case OpJumpBackward:
			depth++
		case OpJumpForward:
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}
