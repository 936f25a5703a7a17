package scan

import "fmt"

// Pos is a human-oriented position in the buffer, used only on
// diagnostic paths; lines and columns are 1-based.
type Pos struct {
	Offset int
	Line   int
	Col    int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Pos computes the position of the current cursor offset by counting
// newlines. It is O(offset) and intended for error reporting, not for
// the parse hot path.
func (c *Cursor) Pos() Pos {
	return c.PosAt(c.i)
}

// PosAt computes the position of an arbitrary offset.
func (c *Cursor) PosAt(off int) Pos {
	if off > len(c.d) {
		off = len(c.d)
	}
	line, col := 1, 1
	for i := 0; i < off; i++ {
		if c.d[i] == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return Pos{Offset: off, Line: line, Col: col}
}
