package parse

import (
	"fmt"
	"strconv"

	"github.com/vortex-format/go-vcfg/debug"
	"github.com/vortex-format/go-vcfg/ir"
	"github.com/vortex-format/go-vcfg/scan"
)

// Parse parses one buffer into a fresh Document. The returned
// document always holds at least the root section; an empty buffer is
// the only input rejected in non-strict mode.
func Parse(d []byte, opts ...ParseOption) (*ir.Document, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	if len(d) == 0 {
		return nil, ErrNoBuffer
	}
	doc := ir.NewDocument()
	c := scan.New(d)
	for !c.EOF() {
		if c.SkipWhitespace() > 0 {
			continue
		}
		if c.SkipComments() > 0 {
			continue
		}
		n, err := trySection(c, doc, pOpts)
		if err != nil {
			return nil, err
		}
		if n > 0 {
			continue
		}
		start := c.Offset()
		key, err := parseKeyValue(c, pOpts)
		if err != nil {
			return nil, err
		}
		if key != nil {
			sec := doc.Sections[len(doc.Sections)-1]
			sec.Keys = append(sec.Keys, key)
		}
		if c.Offset() > start {
			continue
		}
		// All recognizers consumed nothing; parsing stops at the
		// first unrecognized byte.
		if pOpts.strict {
			return nil, unexpectedErr(fmt.Sprintf("%q", c.Peek()), c.Pos())
		}
		if debug.Parse() {
			debug.Logf("vcfg: parse stopped at %s (%q)\n", c.Pos(), c.Peek())
		}
		break
	}
	return doc, nil
}

// trySection matches a [name] header and appends a new section. The
// empty header [] consumes its bytes but creates nothing.
func trySection(c *scan.Cursor, doc *ir.Document, opts *parseOpts) (int, error) {
	if c.Peek() != '[' {
		return 0, nil
	}
	start := c.Offset()
	c.Advance(1)
	name := c.ReadUntil(func(b byte) bool { return b == ']' })
	closed := c.Peek() == ']'
	if closed {
		c.Advance(1)
	}
	n := c.Offset() - start
	if len(name) == 0 {
		if opts.strict {
			return n, newParseErr(fmt.Errorf("%w: empty section name", ErrParse), c.PosAt(start))
		}
		if debug.Parse() {
			debug.Logf("vcfg: discarding empty section header at %s\n", c.PosAt(start))
		}
		return n, nil
	}
	if opts.strict && !closed {
		return n, expectedErr("']'", c.Pos())
	}
	doc.AddSection(string(name))
	return n, nil
}

// parseKeyValue parses one key-value pair and returns the new key, or
// nil when the fragment was malformed and discarded. The caller
// detects progress through the cursor offset.
func parseKeyValue(c *scan.Cursor, opts *parseOpts) (*ir.Key, error) {
	start := c.Offset()
	var name []byte
	closed := true
	if c.Peek() == '"' {
		name, closed = c.ReadQuoted()
	} else {
		name = c.ReadUntil(func(b byte) bool { return scan.IsWhitespace(b) || b == '=' })
	}
	c.SkipWhitespace()
	if len(name) == 0 {
		if opts.strict && c.Offset() > start {
			return nil, newParseErr(fmt.Errorf("%w: empty key name", ErrParse), c.PosAt(start))
		}
		return nil, nil
	}
	if opts.strict && !closed {
		return nil, expectedErr(`closing '"'`, c.Pos())
	}
	if c.Peek() != '=' {
		// Not a key-value pair after all; the name bytes stay
		// consumed and the fragment is dropped.
		if opts.strict {
			return nil, expectedErr(fmt.Sprintf("'=' after key %q", name), c.Pos())
		}
		if debug.Parse() {
			debug.Logf("vcfg: discarding fragment %q at %s: no '='\n", name, c.Pos())
		}
		return nil, nil
	}
	c.Advance(1)
	c.SkipWhitespace()
	key := &ir.Key{Name: string(name)}
	if err := parseValue(c, key, opts); err != nil {
		return nil, err
	}
	return key, nil
}

func parseValue(c *scan.Cursor, key *ir.Key, opts *parseOpts) error {
	switch c.Peek() {
	case '{':
		return parseObject(c, key, opts)
	case '[':
		return parseArray(c, key, opts)
	default:
		return parseScalar(c, key, opts)
	}
}

// scalarStop terminates an unquoted scalar run.
func scalarStop(b byte) bool {
	return scan.IsWhitespace(b) || b == ',' || b == ';' || b == '}' || b == ']'
}

// parseScalar captures a quoted or unquoted scalar into key. An empty
// capture leaves the key without a value (NullType), not with an
// empty string.
func parseScalar(c *scan.Cursor, key *ir.Key, opts *parseOpts) error {
	var v []byte
	if c.Peek() == '"' {
		var closed bool
		v, closed = c.ReadQuoted()
		if opts.strict && !closed {
			return expectedErr(`closing '"'`, c.Pos())
		}
	} else {
		v = c.ReadUntil(scalarStop)
		if len(v) == 0 && opts.strict {
			// a quoted "" is an explicit empty; a bare missing
			// value is not
			return expectedErr("a value", c.Pos())
		}
	}
	if len(v) == 0 {
		return nil
	}
	key.Type = ir.ScalarType
	key.Scalar = string(v)
	return nil
}

// parseObject parses a {...} body into key.Children. Commas between
// entries are optional; an entry that consumes nothing triggers
// scan-forward recovery to the closing brace.
func parseObject(c *scan.Cursor, key *ir.Key, opts *parseOpts) error {
	c.Advance(1)
	key.Type = ir.ObjectType
	for !c.EOF() && c.Peek() != '}' {
		if c.SkipWhitespace() > 0 {
			continue
		}
		if c.SkipComments() > 0 {
			continue
		}
		start := c.Offset()
		child, err := parseKeyValue(c, opts)
		if err != nil {
			return err
		}
		if child != nil {
			key.Children = append(key.Children, child)
		}
		if c.Offset() == start {
			if opts.strict {
				return unexpectedErr(fmt.Sprintf("%q in object", c.Peek()), c.Pos())
			}
			if debug.Parse() {
				debug.Logf("vcfg: skipping to '}' from %s\n", c.Pos())
			}
			c.SkipUntil('}')
			continue
		}
		c.SkipWhitespace()
		if c.Peek() == ',' {
			c.Advance(1)
		}
	}
	if c.Peek() == '}' {
		c.Advance(1)
	} else if opts.strict {
		return expectedErr("'}'", c.Pos())
	}
	return nil
}

// parseArray parses a [...] body into key.Children, naming elements
// by their decimal index.
func parseArray(c *scan.Cursor, key *ir.Key, opts *parseOpts) error {
	c.Advance(1)
	key.Type = ir.ArrayType
	idx := 0
	for !c.EOF() && c.Peek() != ']' {
		if c.SkipWhitespace() > 0 {
			continue
		}
		if c.SkipComments() > 0 {
			continue
		}
		start := c.Offset()
		elt := &ir.Key{Name: strconv.Itoa(idx)}
		if err := parseValue(c, elt, opts); err != nil {
			return err
		}
		if c.Offset() == start {
			if opts.strict {
				return unexpectedErr(fmt.Sprintf("%q in array", c.Peek()), c.Pos())
			}
			if debug.Parse() {
				debug.Logf("vcfg: skipping to ']' from %s\n", c.Pos())
			}
			c.SkipUntil(']')
			continue
		}
		key.Children = append(key.Children, elt)
		idx++
		c.SkipWhitespace()
		if c.Peek() == ',' {
			c.Advance(1)
		}
	}
	if c.Peek() == ']' {
		c.Advance(1)
	} else if opts.strict {
		return expectedErr("']'", c.Pos())
	}
	return nil
}
