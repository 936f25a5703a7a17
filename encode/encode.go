package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vortex-format/go-vcfg/format"
	"github.com/vortex-format/go-vcfg/ir"
)

type EncState struct {
	indent int
	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

func Encode(doc *ir.Document, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.JSONFormat:
		return encodeJSON(doc, w, es)
	case format.YAMLFormat:
		return encodeYAML(doc, w)
	default:
		return encodeTree(doc, w, es)
	}
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

// encodeTree writes the indented listing used by vcfg dump: root keys
// first, then one [section] block per named section, composite keys
// showing their sentinel followed by indented children.
func encodeTree(doc *ir.Document, w io.Writer, es *EncState) error {
	for _, sec := range doc.Sections {
		if sec.Name != "" {
			hdr := es.color(ir.ObjectType, SectionColor, "["+sec.Name+"]")
			if err := writeString(w, hdr+"\n"); err != nil {
				return err
			}
		}
		for _, k := range sec.Keys {
			if err := treeKey(k, w, es, 0); err != nil {
				return err
			}
		}
	}
	return nil
}

func treeKey(k *ir.Key, w io.Writer, es *EncState, depth int) error {
	pad := strings.Repeat(" ", depth*es.indent)
	name := es.color(k.Type, FieldColor, k.Name)
	var val string
	switch k.Type {
	case ir.ScalarType:
		val = es.color(k.Type, ValueColor, k.Scalar)
	case ir.ObjectType:
		val = es.color(k.Type, SentinelColor, ir.ObjectSentinel)
	case ir.ArrayType:
		val = es.color(k.Type, SentinelColor, ir.ArraySentinel)
	default:
		val = es.color(k.Type, ValueColor, "<unset>")
	}
	if err := writeString(w, fmt.Sprintf("%s%s = %s\n", pad, name, val)); err != nil {
		return err
	}
	for _, c := range k.Children {
		if err := treeKey(c, w, es, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// encodeJSON writes the document as JSON by hand so that object
// member order follows parse order, which map-based marshaling cannot
// give. Root keys become top-level members; each named section
// becomes a member holding an object of its keys.
func encodeJSON(doc *ir.Document, w io.Writer, es *EncState) error {
	j := &jsonWriter{w: w, indent: es.indent}
	j.open('{')
	for _, sec := range doc.Sections {
		if sec.Name == "" {
			for _, k := range sec.Keys {
				j.member(k.Name)
				j.key(k)
			}
			continue
		}
		j.member(sec.Name)
		j.open('{')
		for _, k := range sec.Keys {
			j.member(k.Name)
			j.key(k)
		}
		j.close('}')
	}
	j.close('}')
	j.nl()
	return j.err
}

type jsonWriter struct {
	w      io.Writer
	indent int
	depth  int
	first  []bool
	err    error
}

func (j *jsonWriter) write(s string) {
	if j.err != nil {
		return
	}
	j.err = writeString(j.w, s)
}

func (j *jsonWriter) pad() {
	j.write(strings.Repeat(" ", j.depth*j.indent))
}

func (j *jsonWriter) nl() {
	j.write("\n")
}

func (j *jsonWriter) open(b byte) {
	j.write(string(b))
	j.depth++
	j.first = append(j.first, true)
}

func (j *jsonWriter) close(b byte) {
	if !j.first[len(j.first)-1] {
		j.nl()
		j.depth--
		j.pad()
		j.depth++
	}
	j.depth--
	j.first = j.first[:len(j.first)-1]
	j.write(string(b))
}

// sep starts a new element line inside the current container.
func (j *jsonWriter) sep() {
	if !j.first[len(j.first)-1] {
		j.write(",")
	}
	j.first[len(j.first)-1] = false
	j.nl()
	j.pad()
}

func (j *jsonWriter) member(name string) {
	j.sep()
	j.write(strconv.Quote(name) + ": ")
}

func (j *jsonWriter) key(k *ir.Key) {
	switch k.Type {
	case ir.ScalarType:
		j.write(strconv.Quote(k.Scalar))
	case ir.ObjectType:
		j.open('{')
		for _, c := range k.Children {
			j.member(c.Name)
			j.key(c)
		}
		j.close('}')
	case ir.ArrayType:
		j.open('[')
		for _, c := range k.Children {
			j.sep()
			j.key(c)
		}
		j.close(']')
	default:
		j.write("null")
	}
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
