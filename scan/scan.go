package scan

import "github.com/vortex-format/go-vcfg/debug"

// IsWhitespace reports whether b is vcfg whitespace: the space byte or
// the \b..\r control range (\b, \t, \n, \v, \f, \r).
func IsWhitespace(b byte) bool {
	return b == ' ' || (b >= '\b' && b <= '\r')
}

// Cursor advances over a byte buffer.
type Cursor struct {
	d []byte
	i int
}

func New(d []byte) *Cursor {
	return &Cursor{d: d}
}

// Offset returns the current byte offset.
func (c *Cursor) Offset() int {
	return c.i
}

// Len returns the total buffer length.
func (c *Cursor) Len() int {
	return len(c.d)
}

// EOF reports whether the cursor has reached the buffer end.
func (c *Cursor) EOF() bool {
	return c.i >= len(c.d)
}

// Peek returns the byte at the cursor, or 0 at the buffer end.
func (c *Cursor) Peek() byte {
	if c.i >= len(c.d) {
		return 0
	}
	return c.d[c.i]
}

// PeekAt returns the byte n positions past the cursor, or 0 past the
// buffer end.
func (c *Cursor) PeekAt(n int) byte {
	if c.i+n >= len(c.d) {
		return 0
	}
	return c.d[c.i+n]
}

// Advance moves the cursor forward n bytes, clamped to the buffer end.
func (c *Cursor) Advance(n int) {
	c.i += n
	if c.i > len(c.d) {
		c.i = len(c.d)
	}
}

// SkipWhitespace consumes a maximal run of whitespace and returns the
// number of bytes skipped.
func (c *Cursor) SkipWhitespace() int {
	start := c.i
	for c.i < len(c.d) && IsWhitespace(c.d[c.i]) {
		c.i++
	}
	return c.i - start
}

// SkipLineComment consumes a // comment through the end of line,
// including the terminating newline if present. It consumes nothing
// when the two-byte marker is absent.
func (c *Cursor) SkipLineComment() int {
	if c.Peek() != '/' || c.PeekAt(1) != '/' {
		return 0
	}
	start := c.i
	for c.i < len(c.d) && c.d[c.i] != '\n' {
		c.i++
	}
	if c.i < len(c.d) {
		c.i++ // the newline
	}
	return c.i - start
}

// SkipBlockComment consumes a /* comment through the first */ marker.
// An unterminated comment consumes the rest of the buffer silently.
// It consumes nothing when the opening marker is absent.
func (c *Cursor) SkipBlockComment() int {
	if c.Peek() != '/' || c.PeekAt(1) != '*' {
		return 0
	}
	start := c.i
	c.i += 2 // past "/*", so "/*/" does not self-close
	closed := false
	for c.i < len(c.d) {
		if c.d[c.i] == '*' && c.PeekAt(1) == '/' {
			c.i += 2
			closed = true
			break
		}
		c.i++
	}
	if !closed && debug.Scan() {
		debug.Logf("vcfg: unterminated block comment from %s\n", c.PosAt(start))
	}
	return c.i - start
}

// SkipComments tries a line comment and a block comment once each and
// returns the combined bytes skipped.
func (c *Cursor) SkipComments() int {
	n := c.SkipLineComment()
	n += c.SkipBlockComment()
	return n
}

// ReadQuoted consumes an opening quote and the following bytes through
// the closing quote or the buffer end, returning the bytes between the
// quotes. closed reports whether a closing quote was found. The cursor
// must be at a '"'.
func (c *Cursor) ReadQuoted() (inner []byte, closed bool) {
	c.i++ // opening quote
	start := c.i
	for c.i < len(c.d) {
		if c.d[c.i] == '"' {
			inner = c.d[start:c.i]
			c.i++
			return inner, true
		}
		c.i++
	}
	return c.d[start:c.i], false
}

// ReadUntil consumes bytes until stop reports true or the buffer ends,
// returning the consumed run.
func (c *Cursor) ReadUntil(stop func(byte) bool) []byte {
	start := c.i
	for c.i < len(c.d) && !stop(c.d[c.i]) {
		c.i++
	}
	return c.d[start:c.i]
}

// SkipUntil consumes bytes until b or the buffer end and returns the
// number of bytes skipped. The byte b itself is not consumed.
func (c *Cursor) SkipUntil(b byte) int {
	start := c.i
	for c.i < len(c.d) && c.d[c.i] != b {
		c.i++
	}
	return c.i - start
}
