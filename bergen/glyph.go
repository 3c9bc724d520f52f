package bergen

import "github.com/reusee/bergen/bfvm"

// Glyph is the three-row drawing of one instruction.
type Glyph struct {
	Op     bfvm.Op
	Top    string
	Middle string
	Bottom string
}

func (g Glyph) Width() int {
	return len(g.Bottom)
}

// Glyphs in matching precedence, widest first. All glyphs differ in at least
// one column of their common width, so the order only matters for ties that
// cannot occur with this table.
var Glyphs = []Glyph{
	{
		Op:     bfvm.OpRead,
		Top:    `    /\    `,
		Middle: ` /\/  \/\ `,
		Bottom: `/        \`,
	},
	{
		Op:     bfvm.OpLeft,
		Top:    `  /\/\  `,
		Middle: ` /    \ `,
		Bottom: `/      \`,
	},
	{
		Op:     bfvm.OpJumpForward,
		Top:    `  /\    `,
		Middle: ` /  \/\ `,
		Bottom: `/      \`,
	},
	{
		Op:     bfvm.OpJumpBackward,
		Top:    `    /\  `,
		Middle: ` /\/  \ `,
		Bottom: `/      \`,
	},
	{
		Op:     bfvm.OpRight,
		Top:    `  /\  `,
		Middle: ` /  \ `,
		Bottom: `/    \`,
	},
	{
		Op:     bfvm.OpDecrement,
		Top:    `      `,
		Middle: ` /\/\ `,
		Bottom: `/    \`,
	},
	{
		Op:     bfvm.OpIncrement,
		Top:    `    `,
		Middle: ` /\ `,
		Bottom: `/  \`,
	},
	{
		Op:     bfvm.OpWrite,
		Top:    `  `,
		Middle: `  `,
		Bottom: `/\`,
	},
}

var glyphsByOp = func() map[bfvm.Op]Glyph {
	ret := make(map[bfvm.Op]Glyph, len(Glyphs))
	for _, g := range Glyphs {
		ret[g.Op] = g
	}
	return ret
}()

// GlyphOf returns the drawing of op.
func GlyphOf(op bfvm.Op) (Glyph, bool) {
	g, ok := glyphsByOp[op]
	return g, ok
}

func (g Glyph) matchAt(top, middle, bottom []byte, column int) bool {
	end := column + g.Width()
	if end > len(bottom) {
		return false
	}
	return string(top[column:end]) == g.Top &&
		string(middle[column:end]) == g.Middle &&
		string(bottom[column:end]) == g.Bottom
}
