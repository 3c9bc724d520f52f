package bfvm

// Run steps until the machine halts or a step fails.
func (m *Machine) Run() error {
	for !m.Halted() {
		if err := m.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Trace steps the machine once per iteration, yielding the op executed and
// the step's error. Iteration ends at halt, after the first error, or when
// the loop body breaks:
//
//	for op, err := range m.Trace {
//		...
//	}
func (m *Machine) Trace(yield func(Op, error) bool) {
	for !m.Halted() {
		op := m.Program[m.IP]
		err := m.Step()
		if !yield(op, err) {
			return
		}
		if err != nil {
			return
		}
	}
}
