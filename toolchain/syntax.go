package toolchain

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/reusee/bergen/bergen"
	"github.com/reusee/bergen/bfvm"
	"github.com/reusee/bergen/brainfuck"
)

type Syntax string

const (
	SyntaxBrainfuck Syntax = "brainfuck"
	SyntaxBergen    Syntax = "bergen"
)

var ErrUnknownSyntax = errors.New("unknown syntax")

func ParseSyntax(str string) (Syntax, error) {
	switch s := Syntax(strings.ToLower(strings.TrimSpace(str))); s {
	case SyntaxBrainfuck, SyntaxBergen:
		return s, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSyntax, str)
}

// SyntaxOf picks the syntax from the file extension, or fallback if the extension is not known.
func SyntaxOf(path string, fallback Syntax) Syntax {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".b", ".bf":
		return SyntaxBrainfuck
	case ".bergen":
		return SyntaxBergen
	}
	return fallback
}

func Parse(syntax Syntax, src []byte) (bfvm.Program, error) {
	switch syntax {
	case SyntaxBrainfuck:
		return brainfuck.Parse(src)
	case SyntaxBergen:
		return bergen.Parse(src)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSyntax, syntax)
}

// Emit writes program in syntax. Brainfuck output gets a trailing newline so it ends like a bergen drawing does.
func Emit(w io.Writer, syntax Syntax, program bfvm.Program) error {
	switch syntax {
	case SyntaxBrainfuck:
		_, err := w.Write(append(brainfuck.Format(program), '\n'))
		return err
	case SyntaxBergen:
		return bergen.Write(w, program)
	}
	return fmt.Errorf("%w: %q", ErrUnknownSyntax, syntax)
}
