package ir

// Typed accessors over the parsed tree. All lookups tolerate missing
// sections and keys: string access reports absence, numeric access
// reports the -1 error sentinel, boolean access reports false.

// GetString returns the value of key in section ("" for the root
// section). Composite keys yield their sentinel marker.
func (d *Document) GetString(section, key string) (string, bool) {
	k := d.GetNode(section, key)
	if k == nil {
		return "", false
	}
	return k.Value()
}

// GetInt returns the value of key coerced to an integer, or -1 when
// the key is absent or its value has no leading digit.
func (d *Document) GetInt(section, key string) int64 {
	v, ok := d.GetString(section, key)
	return strToInt(v, ok)
}

// GetFloat returns the value of key coerced to a float, or -1 when
// the key is absent or its value has no leading digit or dot.
func (d *Document) GetFloat(section, key string) float64 {
	v, ok := d.GetString(section, key)
	return strToFloat(v, ok)
}

// GetBool reports whether the value of key is the literal "true".
func (d *Document) GetBool(section, key string) bool {
	v, ok := d.GetString(section, key)
	return ok && v == "true"
}

// GetNode returns the key itself, for recursing into nested objects
// and arrays.
func (d *Document) GetNode(section, key string) *Key {
	s := d.GetSection(section)
	if s == nil {
		return nil
	}
	return s.Key(key)
}

// GetString returns the value of the child named key.
func (k *Key) GetString(key string) (string, bool) {
	c := k.Child(key)
	if c == nil {
		return "", false
	}
	return c.Value()
}

func (k *Key) GetInt(key string) int64 {
	v, ok := k.GetString(key)
	return strToInt(v, ok)
}

func (k *Key) GetFloat(key string) float64 {
	v, ok := k.GetString(key)
	return strToFloat(v, ok)
}

func (k *Key) GetBool(key string) bool {
	v, ok := k.GetString(key)
	return ok && v == "true"
}

func (k *Key) GetNode(key string) *Key {
	return k.Child(key)
}
