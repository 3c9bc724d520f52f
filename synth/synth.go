// Package synth generates programs that print a given byte string.
//
// The cell under the pointer holds the last byte printed. To move it to the
// next byte the difference is split into prime factors, and all but the last
// factor become nested counting loops on the cells to the right:
//
//	6 = 2 × 3:      >++[<+++>-]<
//	12 = 2 × 2 × 3: >++[>++[<<+++>>-]<-]<
//
// Counter cells are left at zero, so every byte starts from the same layout.
package synth

import "github.com/reusee/bergen/bfvm"

func Synthesize(text []byte) bfvm.Program {
	var program bfvm.Program
	var current byte
	for _, b := range text {
		// cells wrap, so take the shorter way round
		program = adjust(program, int(int8(b-current)))
		program = append(program, bfvm.OpWrite)
		current = b
	}
	return program
}

func adjust(program bfvm.Program, delta int) bfvm.Program {
	op := bfvm.OpIncrement
	if delta < 0 {
		op = bfvm.OpDecrement
		delta = -delta
	}
	switch delta {
	case 0:
		return program
	case 1:
		return append(program, op)
	}
	return multiply(program, Factorize(delta), op, 0)
}

// multiply opens one counting loop per factor but the last, each on the cell
// right of the previous counter. The last factor is applied to the target
// cell from inside the innermost loop. The pointer ends where it started.
func multiply(program bfvm.Program, factors []int, op bfvm.Op, depth int) bfvm.Program {
	if len(factors) == 1 {
		program = repeat(program, bfvm.OpLeft, depth)
		program = repeat(program, op, factors[0])
		return repeat(program, bfvm.OpRight, depth)
	}
	program = append(program, bfvm.OpRight)
	program = repeat(program, bfvm.OpIncrement, factors[0])
	program = append(program, bfvm.OpJumpForward)
	program = multiply(program, factors[1:], op, depth+1)
	return append(program, bfvm.OpDecrement, bfvm.OpJumpBackward, bfvm.OpLeft)
}

func repeat(program bfvm.Program, op bfvm.Op, n int) bfvm.Program {
	for range n {
		program = append(program, op)
	}
	return program
}

// Factorize returns the prime factors of n in ascending order, with
// multiplicity. Numbers below 2 have none.
func Factorize(n int) (factors []int) {
	for p := 2; p*p <= n; p++ {
		for n%p == 0 {
			factors = append(factors, p)
			n /= p
		}
	}
	if n > 1 {
		factors = append(factors, n)
	}
	return
}
