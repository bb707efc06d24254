package ir

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
)

// FromAny converts a Go value into a Node.  Containers map to
// Mapping/Sequence; strings stay strings; every other leaf converts to
// its display string, which is the format's only typing leniency:
// bools and integers via strconv, floats with strconv 'g' formatting,
// anything else via fmt.Sprint.
func FromAny(v any) (*Node, error) {
	switch t := v.(type) {
	case nil:
		return FromString(""), nil
	case *Node:
		return t, nil
	case string:
		return FromString(t), nil
	case map[string]any:
		keys := slices.Sorted(maps.Keys(t))
		kvs := make([]KeyVal, 0, len(keys))
		for _, key := range keys {
			val, err := FromAny(t[key])
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", key, err)
			}
			kvs = append(kvs, KeyVal{Key: key, Val: val})
		}
		return FromKeyVals(kvs), nil
	case map[any]any:
		return nil, fmt.Errorf("%w: map with non-string keys", ErrKeyType)
	case []any:
		vals := make([]*Node, 0, len(t))
		for i, el := range t {
			val, err := FromAny(el)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			vals = append(vals, val)
		}
		return FromSlice(vals), nil
	case []string:
		vals := make([]*Node, 0, len(t))
		for _, el := range t {
			vals = append(vals, FromString(el))
		}
		return FromSlice(vals), nil
	case bool:
		return FromString(strconv.FormatBool(t)), nil
	case int:
		return FromString(strconv.FormatInt(int64(t), 10)), nil
	case int64:
		return FromString(strconv.FormatInt(t, 10)), nil
	case uint64:
		return FromString(strconv.FormatUint(t, 10)), nil
	case float64:
		return FromString(strconv.FormatFloat(t, 'g', -1, 64)), nil
	case float32:
		return FromString(strconv.FormatFloat(float64(t), 'g', -1, 32)), nil
	case fmt.Stringer:
		return FromString(t.String()), nil
	default:
		return FromString(fmt.Sprint(v)), nil
	}
}

// ToAny converts a Node into plain Go values: Mapping to
// map[string]any, Sequence to []any, String to string.  Insertion
// order is lost for mappings.
func ToAny(y *Node) any {
	switch y.Type {
	case StringType:
		return y.String
	case MappingType:
		res := make(map[string]any, len(y.Fields))
		for i := range y.Fields {
			res[y.Fields[i].String] = ToAny(y.Values[i])
		}
		return res
	case SequenceType:
		res := make([]any, len(y.Values))
		for i := range y.Values {
			res[i] = ToAny(y.Values[i])
		}
		return res
	default:
		return nil
	}
}
