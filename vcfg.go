// Package vcfg parses the vcfg configuration language: INI-style
// sections and key=value pairs extended with nested objects, arrays,
// quoted strings, and // and /* */ comments.
//
// The subpackages do the work: scan holds the lexical cursor, parse
// the recursive-descent parser, ir the document model and typed
// accessors, and encode the tree/JSON/YAML renderers behind the vcfg
// command. This package only provides the two common entry points.
package vcfg

import (
	"os"

	"github.com/vortex-format/go-vcfg/ir"
	"github.com/vortex-format/go-vcfg/parse"
)

// Parse parses a buffer into a Document.
func Parse(d []byte, opts ...parse.ParseOption) (*ir.Document, error) {
	return parse.Parse(d, opts...)
}

// Open reads the file at path fully and parses it.
func Open(path string, opts ...parse.ParseOption) (*ir.Document, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parse.Parse(d, opts...)
}
