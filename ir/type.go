package ir

import "fmt"

type Type int

const (
	StringType Type = iota
	MappingType
	SequenceType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		StringType:   "String",
		MappingType:  "Mapping",
		SequenceType: "Sequence",
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
		"String":   StringType,
		"Mapping":  MappingType,
		"Sequence": SequenceType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		StringType,
		MappingType,
		SequenceType,
	}
}

func (t Type) IsLeaf() bool {
	return t == StringType
}

// IsContainer reports whether a node of this type may appear as a
// parse root or serialization root.
func (t Type) IsContainer() bool {
	return t == MappingType || t == SequenceType
}
