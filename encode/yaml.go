package encode

import (
	"io"

	"github.com/goccy/go-yaml"

	"github.com/vortex-format/go-vcfg/ir"
)

// encodeYAML renders the document through goccy's ordered MapSlice so
// key order follows parse order.
func encodeYAML(doc *ir.Document, w io.Writer) error {
	ms := yaml.MapSlice{}
	for _, sec := range doc.Sections {
		if sec.Name == "" {
			ms = append(ms, keysToItems(sec.Keys)...)
			continue
		}
		ms = append(ms, yaml.MapItem{
			Key:   sec.Name,
			Value: yaml.MapSlice(keysToItems(sec.Keys)),
		})
	}
	if len(ms) == 0 {
		return writeString(w, "{}\n")
	}
	d, err := yaml.Marshal(ms)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

func keysToItems(keys []*ir.Key) []yaml.MapItem {
	items := make([]yaml.MapItem, 0, len(keys))
	for _, k := range keys {
		items = append(items, yaml.MapItem{Key: k.Name, Value: keyValue(k)})
	}
	return items
}

func keyValue(k *ir.Key) any {
	switch k.Type {
	case ir.ScalarType:
		return k.Scalar
	case ir.ObjectType:
		return yaml.MapSlice(keysToItems(k.Children))
	case ir.ArrayType:
		vals := make([]any, 0, len(k.Children))
		for _, c := range k.Children {
			vals = append(vals, keyValue(c))
		}
		return vals
	default:
		return nil
	}
}
