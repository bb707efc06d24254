package ir

import (
	"maps"
	"slices"
)

// Node is the universal tree node of the perky data model.  A Node is
// one of a String, a Mapping or a Sequence, discriminated by Type.
//
// Mappings are ordered: Fields holds the string-typed key nodes and
// Values the corresponding values, index-aligned.  Sequences use
// Values only.  Strings use the String field only.
type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string

	Fields []*Node
	Values []*Node

	String string
}

func FromString(v string) *Node {
	return FromStringAt(&Node{}, v)
}

func FromStringAt(p *Node, v string) *Node {
	p.Type = StringType
	p.String = v
	return p
}

func NewMapping() *Node {
	return &Node{Type: MappingType}
}

func NewSequence() *Node {
	return &Node{Type: SequenceType}
}

type KeyVal struct {
	Key string
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	return FromKeyValsAt(&Node{}, kvs)
}

func FromKeyValsAt(res *Node, kvs []KeyVal) *Node {
	res.Type = MappingType
	res.Fields = make([]*Node, len(kvs))
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		key := &Node{
			Parent:      res,
			ParentIndex: i,
			ParentField: kv.Key,
			Type:        StringType,
			String:      kv.Key,
		}
		kv.Val.Parent = res
		kv.Val.ParentIndex = i
		kv.Val.ParentField = kv.Key
		res.Fields[i] = key
		res.Values[i] = kv.Val
	}
	return res
}

// FromMap builds a Mapping from a Go map with keys in sorted order.
// Parse-produced mappings keep insertion order instead.
func FromMap(m map[string]*Node) *Node {
	keys := slices.Sorted(maps.Keys(m))
	kvs := make([]KeyVal, len(keys))
	for i, key := range keys {
		kvs[i] = KeyVal{Key: key, Val: m[key]}
	}
	return FromKeyVals(kvs)
}

func FromSlice(vs []*Node) *Node {
	res := &Node{Type: SequenceType}
	res.Values = make([]*Node, len(vs))
	for i, v := range vs {
		v.Parent = res
		v.ParentIndex = i
		res.Values[i] = v
	}
	return res
}

// Get returns the value bound to field in a Mapping, or nil.
func Get(y *Node, field string) *Node {
	n := len(y.Fields)
	for i := range n {
		if y.Fields[i].String == field {
			return y.Values[i]
		}
	}
	return nil
}

func (y *Node) Has(field string) bool {
	return Get(y, field) != nil
}

// Set binds field to v in a Mapping, overwriting any existing binding
// for field while keeping its position.  New fields append in order.
func (y *Node) Set(field string, v *Node) {
	v.Parent = y
	v.ParentField = field
	for i := range y.Fields {
		if y.Fields[i].String == field {
			v.ParentIndex = i
			y.Values[i] = v
			return
		}
	}
	key := &Node{
		Parent:      y,
		ParentIndex: len(y.Fields),
		ParentField: field,
		Type:        StringType,
		String:      field,
	}
	v.ParentIndex = len(y.Values)
	y.Fields = append(y.Fields, key)
	y.Values = append(y.Values, v)
}

// Append adds v at the end of a Sequence.
func (y *Node) Append(v *Node) {
	v.Parent = y
	v.ParentIndex = len(y.Values)
	y.Values = append(y.Values, v)
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.String = y.String
	dst.Fields = make([]*Node, len(y.Fields))
	dst.Values = make([]*Node, len(y.Values))
	for i, yf := range y.Fields {
		dstI := &Node{}
		yf.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yf.String
		dst.Fields[i] = dstI
	}
	for i, yv := range y.Values {
		dstI := &Node{}
		yv.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yv.ParentField
		dst.Values[i] = dstI
	}
	return dst
}

// Equal reports structural equality: same types, same strings, same
// field order.  Parent backrefs are ignored.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case StringType:
		return a.String == b.String
	case MappingType:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for i := range a.Fields {
			if a.Fields[i].String != b.Fields[i].String {
				return false
			}
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	case SequenceType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}
