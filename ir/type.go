package ir

import "fmt"

type Type int

const (
	NullType Type = iota
	ScalarType
	ObjectType
	ArrayType
)

// Sentinel value strings reported for composite keys by string
// accessors, kept for compatibility with the text format's observable
// behavior.
const (
	ObjectSentinel = "{object}"
	ArraySentinel  = "[array]"
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:   "Null",
		ScalarType: "Scalar",
		ObjectType: "Object",
		ArrayType:  "Array",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Null":   NullType,
		"Scalar": ScalarType,
		"Object": ObjectType,
		"Array":  ArrayType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NullType,
		ScalarType,
		ObjectType,
		ArrayType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ObjectType, ArrayType:
		return false
	default:
		return true
	}
}
