package debugs

import (
	"github.com/reusee/bergen/bfvm"
)

// Registers is the machine state shown to a tap as a dict.
type Registers struct {
	IP      int
	Pointer int
	Cell    byte
	Op      *bfvm.Op // nil once halted
	Halted  bool
}

// MachineGlobals exposes a machine's registers and tape to a tap.
// Everything but cell is read at call time; cell reads the live tape and wraps its index like the pointer does.
func MachineGlobals(m *bfvm.Machine) map[string]any {
	registers := &Registers{
		IP:      m.IP,
		Pointer: m.Pointer,
		Cell:    m.Cell(),
		Halted:  m.Halted(),
	}
	if !m.Halted() {
		op := m.Program[m.IP]
		registers.Op = &op
	}

	ops := make(map[string]int)
	for _, op := range m.Program {
		ops[op.String()]++
	}

	return map[string]any{
		"ip":        m.IP,
		"pointer":   m.Pointer,
		"program":   m.Program,
		"halted":    m.Halted(),
		"registers": registers,
		"ops":       ops,
		"touched":   touched(m),
		"cell": func(i int) int {
			i %= bfvm.TapeSize
			if i < 0 {
				i += bfvm.TapeSize
			}
			return int(m.Tape[i])
		},
	}
}

// touched returns the tape up to the pointer or the last non-zero cell, whichever is further.
func touched(m *bfvm.Machine) []int {
	end := m.Pointer
	for i := bfvm.TapeSize - 1; i > end; i-- {
		if m.Tape[i] != 0 {
			end = i
			break
		}
	}
	cells := make([]int, end+1)
	for i := range cells {
		cells[i] = int(m.Tape[i])
	}
	return cells
}
