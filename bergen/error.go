package bergen

import (
	"errors"
	"fmt"
)

var ErrNotEnoughRows = errors.New("bergen: not enough rows, want three newline-terminated rows")

type RowLengthError struct {
	Top    int
	Middle int
	Bottom int
}

func (e *RowLengthError) Error() string {
	return fmt.Sprintf("bergen: row length mismatch: top %d, middle %d, bottom %d", e.Top, e.Middle, e.Bottom)
}

type UnrecognizedGlyphError struct {
	Column int
}

func (e *UnrecognizedGlyphError) Error() string {
	return fmt.Sprintf("bergen: unrecognized glyph at column %d", e.Column)
}

// TrailingContentError reports a non-blank line after the three rows.
type TrailingContentError struct {
	Line int
}

func (e *TrailingContentError) Error() string {
	return fmt.Sprintf("bergen: unexpected content on line %d after the bottom row", e.Line)
}
