package bfvm

import (
	"errors"
	"fmt"
)

var (
	ErrHalted                = errors.New("machine already halted")
	ErrUnknownOp             = errors.New("unknown op")
	ErrUnmatchedForwardJump  = errors.New("unmatched forward jump")
	ErrUnmatchedBackwardJump = errors.New("unmatched backward jump")
	ErrNoInput               = errors.New("no input bound")
	ErrNoOutput              = errors.New("no output bound")
	ErrEndOfInput            = errors.New("end of input")
	ErrShortWrite            = errors.New("short write")
)

// RuntimeError is a failed step. IP and Pointer are the machine registers at
// the time the failing instruction was fetched.
type RuntimeError struct {
	Err     error
	IP      int
	Pointer int
	Op      Op
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("bfvm: runtime error @ IP %d pointer %d: %s: %v", e.IP, e.Pointer, e.Op, e.Err)
}

func (e *RuntimeError) Unwrap() error {
	return e.Err
}
