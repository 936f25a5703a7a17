package ir

// Document is the full parsed tree produced from one buffer.
type Document struct {
	Sections []*Section
}

// Section is a named, ordered group of top-level keys. The root
// section has an empty Name.
type Section struct {
	Name string
	Keys []*Key
}

// Key is a single named entry: a scalar, an object, or an array.
// Scalar holds the payload only for ScalarType; composite payloads
// live in Children.
type Key struct {
	Name     string
	Type     Type
	Scalar   string
	Children []*Key
}

// NewDocument returns a Document holding only the root section.
func NewDocument() *Document {
	d := &Document{}
	d.Reset()
	return d
}

// Reset drops any parsed content and reinstalls a fresh root section.
func (d *Document) Reset() {
	d.Sections = []*Section{{}}
}

// Clear drops the whole tree. A cleared Document is still queryable;
// every lookup misses. Clear is idempotent.
func (d *Document) Clear() {
	d.Sections = nil
}

// Root returns the root section, or nil on a cleared Document.
func (d *Document) Root() *Section {
	if len(d.Sections) == 0 {
		return nil
	}
	return d.Sections[0]
}

// AddSection appends a new empty section and returns it.
func (d *Document) AddSection(name string) *Section {
	s := &Section{Name: name}
	d.Sections = append(d.Sections, s)
	return s
}

// GetSection returns the first section whose name is name; the empty
// name denotes the root section. Duplicate names hide all but the
// first occurrence.
func (d *Document) GetSection(name string) *Section {
	for _, s := range d.Sections {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// Key returns the first key named name, or nil.
func (s *Section) Key(name string) *Key {
	for _, k := range s.Keys {
		if k.Name == name {
			return k
		}
	}
	return nil
}

// Child returns the first child named name, or nil.
func (k *Key) Child(name string) *Key {
	for _, c := range k.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Value returns the key's value string. Composite keys report the
// sentinel markers; NullType keys report absence.
func (k *Key) Value() (string, bool) {
	switch k.Type {
	case ScalarType:
		return k.Scalar, true
	case ObjectType:
		return ObjectSentinel, true
	case ArrayType:
		return ArraySentinel, true
	default:
		return "", false
	}
}

// Visit walks the subtree rooted at k in document order. The walk
// stops at the first error.
func (k *Key) Visit(f func(k *Key) error) error {
	if err := f(k); err != nil {
		return err
	}
	for _, c := range k.Children {
		if err := c.Visit(f); err != nil {
			return err
		}
	}
	return nil
}
