package ir

import "strings"

// Lookup resolves a dotted path ("server.limits.0.max") within the
// named section, descending through nested objects and arrays. Array
// elements are addressed by their decimal index names. It returns nil
// when any step misses.
func (d *Document) Lookup(section, path string) *Key {
	if path == "" {
		return nil
	}
	parts := strings.Split(path, ".")
	k := d.GetNode(section, parts[0])
	for _, part := range parts[1:] {
		if k == nil {
			return nil
		}
		k = k.Child(part)
	}
	return k
}

// Path returns the dotted path of the walk from a section key down to
// child names, for presentation.
func Path(names ...string) string {
	return strings.Join(names, ".")
}
