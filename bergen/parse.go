// Package bergen implements the mountain-range syntax: every instruction is
// drawn as a small mountain across three rows of text, and a program is a
// range of mountains standing side by side.
//
// Programs are read column by column from the left, matching one glyph at a
// time. Rows must have the same length and nothing may separate two glyphs.
package bergen

import (
	"bytes"

	"github.com/reusee/bergen/bfvm"
)

func Parse(src []byte) (bfvm.Program, error) {
	top, middle, bottom, err := rows(src)
	if err != nil {
		return nil, err
	}
	if len(top) != len(middle) || len(middle) != len(bottom) {
		return nil, &RowLengthError{
			Top:    len(top),
			Middle: len(middle),
			Bottom: len(bottom),
		}
	}

	var program bfvm.Program
	column := 0
	for column < len(bottom) {
		matched := false
		for _, g := range Glyphs {
			if g.matchAt(top, middle, bottom, column) {
				program = append(program, g.Op)
				column += g.Width()
				matched = true
				break
			}
		}
		if !matched {
			return nil, &UnrecognizedGlyphError{
				Column: column,
			}
		}
	}

	return program, nil
}

func rows(src []byte) (top, middle, bottom []byte, err error) {
	var lines [3][]byte
	rest := src
	for i := range lines {
		end := bytes.IndexByte(rest, '\n')
		if end < 0 {
			return nil, nil, nil, ErrNotEnoughRows
		}
		lines[i] = bytes.TrimSuffix(rest[:end], []byte("\r"))
		rest = rest[end+1:]
	}

	for i, line := range bytes.Split(rest, []byte("\n")) {
		if len(bytes.TrimSpace(line)) > 0 {
			return nil, nil, nil, &TrailingContentError{
				Line: 4 + i,
			}
		}
	}

	return lines[0], lines[1], lines[2], nil
}
