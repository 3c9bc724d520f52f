package bergen

import (
	"io"
	"strings"

	"github.com/reusee/bergen/bfvm"
)

// Format draws the program as three newline-terminated rows. Invalid ops are
// skipped.
func Format(program bfvm.Program) []byte {
	var top, middle, bottom strings.Builder
	for _, op := range program {
		g, ok := glyphsByOp[op]
		if !ok {
			continue
		}
		top.WriteString(g.Top)
		middle.WriteString(g.Middle)
		bottom.WriteString(g.Bottom)
	}

	var b strings.Builder
	b.Grow(top.Len() + middle.Len() + bottom.Len() + 3)
	b.WriteString(top.String())
	b.WriteByte('\n')
	b.WriteString(middle.String())
	b.WriteByte('\n')
	b.WriteString(bottom.String())
	b.WriteByte('\n')
	return []byte(b.String())
}

func Write(w io.Writer, program bfvm.Program) error {
	_, err := w.Write(Format(program))
	return err
}
