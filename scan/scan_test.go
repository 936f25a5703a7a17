package scan

import "testing"

func TestIsWhitespace(t *testing.T) {
	for b := 0; b < 256; b++ {
		want := b == ' ' || (b >= 0x08 && b <= 0x0D)
		if got := IsWhitespace(byte(b)); got != want {
			t.Errorf("IsWhitespace(%#x): got %v want %v", b, got, want)
		}
	}
}

type skipTest struct {
	in   string
	n    int
	rest string
}

func TestSkipWhitespace(t *testing.T) {
	tests := []skipTest{
		{in: "", n: 0, rest: ""},
		{in: "abc", n: 0, rest: "abc"},
		{in: "   abc", n: 3, rest: "abc"},
		{in: " \t\n\v\f\r\babc", n: 7, rest: "abc"},
		{in: "   ", n: 3, rest: ""},
	}
	for _, tt := range tests {
		c := New([]byte(tt.in))
		if n := c.SkipWhitespace(); n != tt.n {
			t.Errorf("SkipWhitespace(%q): got %d want %d", tt.in, n, tt.n)
		}
		if rest := string(c.d[c.i:]); rest != tt.rest {
			t.Errorf("SkipWhitespace(%q): rest %q want %q", tt.in, rest, tt.rest)
		}
	}
}

func TestSkipLineComment(t *testing.T) {
	tests := []skipTest{
		{in: "", n: 0, rest: ""},
		{in: "x=1", n: 0, rest: "x=1"},
		{in: "/x=1", n: 0, rest: "/x=1"},
		{in: "// c\nx=1", n: 5, rest: "x=1"},
		{in: "// no newline", n: 13, rest: ""},
		{in: "//\nx", n: 3, rest: "x"},
	}
	for _, tt := range tests {
		c := New([]byte(tt.in))
		if n := c.SkipLineComment(); n != tt.n {
			t.Errorf("SkipLineComment(%q): got %d want %d", tt.in, n, tt.n)
		}
		if rest := string(c.d[c.i:]); rest != tt.rest {
			t.Errorf("SkipLineComment(%q): rest %q want %q", tt.in, rest, tt.rest)
		}
	}
}

func TestSkipBlockComment(t *testing.T) {
	tests := []skipTest{
		{in: "", n: 0, rest: ""},
		{in: "x=1", n: 0, rest: "x=1"},
		{in: "/* c */x=1", n: 7, rest: "x=1"},
		// the opener's slash must not double as the closer's
		{in: "/*/ x=1", n: 7, rest: ""},
		{in: "/*/ */x=1", n: 6, rest: "x=1"},
		{in: "/* unterminated", n: 15, rest: ""},
		{in: "/**/x", n: 4, rest: "x"},
	}
	for _, tt := range tests {
		c := New([]byte(tt.in))
		if n := c.SkipBlockComment(); n != tt.n {
			t.Errorf("SkipBlockComment(%q): got %d want %d", tt.in, n, tt.n)
		}
		if rest := string(c.d[c.i:]); rest != tt.rest {
			t.Errorf("SkipBlockComment(%q): rest %q want %q", tt.in, rest, tt.rest)
		}
	}
}

func TestReadQuoted(t *testing.T) {
	tests := []struct {
		in     string
		inner  string
		closed bool
		rest   string
	}{
		{in: `"abc"x`, inner: "abc", closed: true, rest: "x"},
		{in: `""x`, inner: "", closed: true, rest: "x"},
		{in: `"a b,c"`, inner: "a b,c", closed: true, rest: ""},
		{in: `"unclosed`, inner: "unclosed", closed: false, rest: ""},
		{in: `"`, inner: "", closed: false, rest: ""},
	}
	for _, tt := range tests {
		c := New([]byte(tt.in))
		inner, closed := c.ReadQuoted()
		if string(inner) != tt.inner || closed != tt.closed {
			t.Errorf("ReadQuoted(%q): got (%q, %v) want (%q, %v)",
				tt.in, inner, closed, tt.inner, tt.closed)
		}
		if rest := string(c.d[c.i:]); rest != tt.rest {
			t.Errorf("ReadQuoted(%q): rest %q want %q", tt.in, rest, tt.rest)
		}
	}
}

func TestReadUntil(t *testing.T) {
	c := New([]byte("abc=def"))
	got := c.ReadUntil(func(b byte) bool { return b == '=' })
	if string(got) != "abc" {
		t.Errorf("ReadUntil: got %q want %q", got, "abc")
	}
	if c.Peek() != '=' {
		t.Errorf("ReadUntil: stop byte consumed")
	}
	got = c.ReadUntil(func(b byte) bool { return false })
	if string(got) != "=def" || !c.EOF() {
		t.Errorf("ReadUntil to EOF: got %q, EOF %v", got, c.EOF())
	}
}

func TestPos(t *testing.T) {
	c := New([]byte("ab\ncd\nef"))
	tests := []struct {
		off       int
		line, col int
	}{
		{off: 0, line: 1, col: 1},
		{off: 2, line: 1, col: 3},
		{off: 3, line: 2, col: 1},
		{off: 7, line: 3, col: 2},
		{off: 100, line: 3, col: 3},
	}
	for _, tt := range tests {
		p := c.PosAt(tt.off)
		if p.Line != tt.line || p.Col != tt.col {
			t.Errorf("PosAt(%d): got %s want %d:%d", tt.off, p, tt.line, tt.col)
		}
	}
}
