package bfvm

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func prog(src string) Program {
	var p Program
	for _, c := range src {
		switch c {
		case '>':
			p = append(p, OpRight)
		case '<':
			p = append(p, OpLeft)
		case '+':
			p = append(p, OpIncrement)
		case '-':
			p = append(p, OpDecrement)
		case '[':
			p = append(p, OpJumpForward)
		case ']':
			p = append(p, OpJumpBackward)
		case ',':
			p = append(p, OpRead)
		case '.':
			p = append(p, OpWrite)
		}
	}
	return p
}

func TestNewMachine(t *testing.T) {
	m := New(prog("+"))
	if m.IP != 0 || m.Pointer != 0 {
		t.Fatalf("got %d %d", m.IP, m.Pointer)
	}
	for i, c := range m.Tape {
		if c != 0 {
			t.Fatalf("cell %d is %d", i, c)
		}
	}
	if m.Halted() {
		t.Fatal()
	}
	if !New(nil).Halted() {
		t.Fatal("empty program should be halted")
	}
}

func TestIncrementWraps(t *testing.T) {
	m := New(prog("+"))
	m.Tape[0] = 255
	if err := m.Run(); err != nil {
		t.Fatal(err)
	}
	if m.Cell() != 0 {
		t.Fatalf("got %d", m.Cell())
	}
}

func TestDecrementWraps(t *testing.T) {
	m := New(prog("-"))
	if err := m.Run(); err != nil {
		t.Fatal(err)
	}
	if m.Cell() != 255 {
		t.Fatalf("got %d", m.Cell())
	}
}

func TestPointerWrapsLeft(t *testing.T) {
	m := New(prog("<+"))
	if err := m.Run(); err != nil {
		t.Fatal(err)
	}
	if m.Pointer != TapeSize-1 {
		t.Fatalf("got %d", m.Pointer)
	}
	if m.Tape[TapeSize-1] != 1 {
		t.Fatalf("got %d", m.Tape[TapeSize-1])
	}
}

func TestPointerWrapsRight(t *testing.T) {
	m := New(prog(">+"))
	m.Pointer = TapeSize - 1
	if err := m.Run(); err != nil {
		t.Fatal(err)
	}
	if m.Pointer != 0 {
		t.Fatalf("got %d", m.Pointer)
	}
	if m.Tape[0] != 1 {
		t.Fatalf("got %d", m.Tape[0])
	}
}

func TestStepAdvancesIP(t *testing.T) {
	m := New(prog("+>"))
	if err := m.Step(); err != nil {
		t.Fatal(err)
	}
	if m.IP != 1 || m.Tape[0] != 1 {
		t.Fatalf("got %d %d", m.IP, m.Tape[0])
	}
	if err := m.Step(); err != nil {
		t.Fatal(err)
	}
	if m.IP != 2 || m.Pointer != 1 {
		t.Fatalf("got %d %d", m.IP, m.Pointer)
	}
	if !m.Halted() {
		t.Fatal()
	}
}

func TestStepHalted(t *testing.T) {
	m := New(prog("+"))
	if err := m.Run(); err != nil {
		t.Fatal(err)
	}
	err := m.Step()
	if !errors.Is(err, ErrHalted) {
		t.Fatalf("got %v", err)
	}
	if m.IP != 1 {
		t.Fatalf("got %d", m.IP)
	}
}

func TestJumpForwardSkipsOnZero(t *testing.T) {
	m := New(prog("[+]>+"))
	if err := m.Step(); err != nil {
		t.Fatal(err)
	}
	if m.IP != 3 {
		t.Fatalf("got %d", m.IP)
	}
	if err := m.Run(); err != nil {
		t.Fatal(err)
	}
	if m.Tape[0] != 0 || m.Tape[1] != 1 {
		t.Fatalf("got %v", m.Tape[:2])
	}
}

func TestJumpForwardSkipsNested(t *testing.T) {
	m := New(prog("[[+]+]+"))
	if err := m.Step(); err != nil {
		t.Fatal(err)
	}
	if m.IP != 6 {
		t.Fatalf("got %d", m.IP)
	}
}

func TestJumpForwardFallsThrough(t *testing.T) {
	m := New(prog("+[-]"))
	if err := m.Step(); err != nil {
		t.Fatal(err)
	}
	if err := m.Step(); err != nil {
		t.Fatal(err)
	}
	if m.IP != 2 {
		t.Fatalf("got %d", m.IP)
	}
}

func TestJumpBackward(t *testing.T) {
	m := New(prog("+[-]"))
	m.IP = 3
	m.Tape[0] = 1
	if err := m.Step(); err != nil {
		t.Fatal(err)
	}
	if m.IP != 2 {
		t.Fatalf("got %d", m.IP)
	}
	m.IP = 3
	m.Tape[0] = 0
	if err := m.Step(); err != nil {
		t.Fatal(err)
	}
	if m.IP != 4 {
		t.Fatalf("got %d", m.IP)
	}
}

func TestDecrementToZeroLoop(t *testing.T) {
	m := New(Program{
		OpIncrement,
		OpIncrement,
		OpJumpForward,
		OpDecrement,
		OpJumpBackward,
	})
	var steps int
	for _, err := range m.Trace {
		if err != nil {
			t.Fatal(err)
		}
		steps++
	}
	if !m.Halted() {
		t.Fatal()
	}
	if m.Cell() != 0 {
		t.Fatalf("got %d", m.Cell())
	}
	// + + [ - ] - ]
	if steps != 7 {
		t.Fatalf("got %d", steps)
	}
}

func TestNestedLoops(t *testing.T) {
	m := New(prog("++[>+++[>+<-]<-]"))
	if err := m.Run(); err != nil {
		t.Fatal(err)
	}
	if m.Tape[0] != 0 || m.Tape[1] != 0 || m.Tape[2] != 6 {
		t.Fatalf("got %v", m.Tape[:3])
	}
}

func TestUnmatchedForwardJump(t *testing.T) {
	m := New(prog("+-["))
	err := m.Run()
	if !errors.Is(err, ErrUnmatchedForwardJump) {
		t.Fatalf("got %v", err)
	}
	var rtErr *RuntimeError
	if !errors.As(err, &rtErr) {
		t.Fatalf("got %T", err)
	}
	if rtErr.IP != 2 || rtErr.Op != OpJumpForward {
		t.Fatalf("got %+v", rtErr)
	}
	if m.IP != 2 {
		t.Fatalf("got %d", m.IP)
	}
}

func TestUnmatchedBackwardJump(t *testing.T) {
	m := New(prog("+]"))
	err := m.Run()
	if !errors.Is(err, ErrUnmatchedBackwardJump) {
		t.Fatalf("got %v", err)
	}
	if !strings.Contains(err.Error(), "jump-backward") {
		t.Fatalf("got %v", err)
	}
}

func TestLoneBracketsWithoutJumping(t *testing.T) {
	// brackets are only matched when the jump is taken
	if err := New(prog("]")).Run(); err != nil {
		t.Fatal(err)
	}
	if err := New(prog("+[")).Run(); err != nil {
		t.Fatal(err)
	}
}

func TestReadWrite(t *testing.T) {
	out := new(bytes.Buffer)
	m := WithIO(Program{OpRead, OpWrite}, strings.NewReader("a"), out)
	if err := m.Run(); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out.Bytes(), []byte{97}) {
		t.Fatalf("got %v", out.Bytes())
	}
}

func TestEcho(t *testing.T) {
	out := new(bytes.Buffer)
	m := WithIO(prog(",[.,]"), strings.NewReader("hello\x00"), out)
	if err := m.Run(); err != nil {
		t.Fatal(err)
	}
	if out.String() != "hello" {
		t.Fatalf("got %q", out.String())
	}
}

func TestReadWithoutInput(t *testing.T) {
	err := New(prog(",")).Run()
	if !errors.Is(err, ErrNoInput) {
		t.Fatalf("got %v", err)
	}
}

func TestReadEndOfInput(t *testing.T) {
	m := WithIO(prog(",,"), strings.NewReader("x"), nil)
	err := m.Run()
	if !errors.Is(err, ErrEndOfInput) {
		t.Fatalf("got %v", err)
	}
	if m.IP != 1 || m.Cell() != 'x' {
		t.Fatalf("got %d %d", m.IP, m.Cell())
	}
}

type eofWithByte struct {
	done bool
}

func (e *eofWithByte) Read(p []byte) (int, error) {
	if e.done {
		return 0, io.EOF
	}
	e.done = true
	p[0] = 'z'
	return 1, io.EOF
}

func TestReadByteWithEOF(t *testing.T) {
	m := WithIO(prog(","), new(eofWithByte), nil)
	if err := m.Run(); err != nil {
		t.Fatal(err)
	}
	if m.Cell() != 'z' {
		t.Fatalf("got %d", m.Cell())
	}
}

type failingIO struct{}

var errBroken = errors.New("broken")

func (failingIO) Read([]byte) (int, error) {
	return 0, errBroken
}

func (failingIO) Write([]byte) (int, error) {
	return 0, errBroken
}

func TestReadError(t *testing.T) {
	err := WithIO(prog(","), failingIO{}, nil).Run()
	if !errors.Is(err, errBroken) {
		t.Fatalf("got %v", err)
	}
}

func TestWriteWithoutOutput(t *testing.T) {
	err := New(prog(".")).Run()
	if !errors.Is(err, ErrNoOutput) {
		t.Fatalf("got %v", err)
	}
}

func TestWriteError(t *testing.T) {
	err := WithIO(prog("."), nil, failingIO{}).Run()
	if !errors.Is(err, errBroken) {
		t.Fatalf("got %v", err)
	}
}

type shortWriter struct{}

func (shortWriter) Write([]byte) (int, error) {
	return 0, nil
}

func TestShortWrite(t *testing.T) {
	err := WithIO(prog("."), nil, shortWriter{}).Run()
	if !errors.Is(err, ErrShortWrite) {
		t.Fatalf("got %v", err)
	}
}

func TestUnknownOp(t *testing.T) {
	err := New(Program{0}).Run()
	if !errors.Is(err, ErrUnknownOp) {
		t.Fatalf("got %v", err)
	}
}

func TestTraceBreak(t *testing.T) {
	m := New(prog("+[]"))
	var ops []Op
	for op, err := range m.Trace {
		if err != nil {
			t.Fatal(err)
		}
		ops = append(ops, op)
		if len(ops) == 10 {
			break
		}
	}
	if len(ops) != 10 {
		t.Fatalf("got %d", len(ops))
	}
	if ops[0] != OpIncrement || ops[1] != OpJumpForward || ops[2] != OpJumpBackward {
		t.Fatalf("got %v", ops)
	}
	if m.Halted() {
		t.Fatal()
	}
}

func TestTraceStopsOnError(t *testing.T) {
	m := New(prog("+.+"))
	var n int
	var last error
	for _, err := range m.Trace {
		n++
		last = err
	}
	if n != 2 {
		t.Fatalf("got %d", n)
	}
	if !errors.Is(last, ErrNoOutput) {
		t.Fatalf("got %v", last)
	}
}

func TestHelloWorld(t *testing.T) {
	out := new(bytes.Buffer)
	m := WithIO(prog(`
		++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]
		>>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++.
	`), nil, out)
	if err := m.Run(); err != nil {
		t.Fatal(err)
	}
	if out.String() != "Hello World!\n" {
		t.Fatalf("got %q", out.String())
	}
}
