package parse

import (
	"os"

	"github.com/vortex-format/go-vcfg/ir"
)

// Parser owns one input buffer and the Document parsed from it. Each
// Parser is independent; distinct instances may be used concurrently.
// A single Parser provides no locking: its Document is safe for
// concurrent reads only while no Parse, Open or Clear runs.
type Parser struct {
	buf  []byte
	doc  *ir.Document
	opts []ParseOption
}

func NewParser(opts ...ParseOption) *Parser {
	return &Parser{doc: &ir.Document{}, opts: opts}
}

// SetBuffer sets the raw input buffer, replacing any previous one.
// The buffer is not parsed until Parse is called.
func (p *Parser) SetBuffer(d []byte) {
	p.buf = d
}

// Parse parses the current buffer, replacing any previously parsed
// tree. An empty buffer fails with ErrNoBuffer.
func (p *Parser) Parse() error {
	doc, err := Parse(p.buf, p.opts...)
	if err != nil {
		return err
	}
	p.doc = doc
	return nil
}

// Open reads the file at path fully into the buffer and parses it.
// On any failure no partially parsed document remains; the Parser is
// left cleared.
func (p *Parser) Open(path string) error {
	p.Clear()
	d, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	p.buf = d
	return p.Parse()
}

// Clear releases the buffer and the parsed tree. The document stays
// queryable; every lookup misses. Clear is idempotent and safe on a
// never-parsed Parser.
func (p *Parser) Clear() {
	p.buf = nil
	p.doc = &ir.Document{}
}

// Document returns the current document. It is empty (all lookups
// miss) before the first successful Parse and after Clear.
func (p *Parser) Document() *ir.Document {
	return p.doc
}
