package shortcut

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/deploymenttheory/go-shortcut-composer/internal/common/errors"
)

// ValueKind identifies the variant held by a Value
type ValueKind int

const (
	// KindText holds a string
	KindText ValueKind = iota
	// KindInteger holds an int64
	KindInteger
	// KindReal holds a float64
	KindReal
	// KindBoolean holds a bool
	KindBoolean
	// KindList holds an ordered list of Values
	KindList
	// KindMap holds an ordered string-keyed map of Values
	KindMap
)

// String returns the kind name used in error messages
func (k ValueKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInteger:
		return "integer"
	case KindReal:
		return "real"
	case KindBoolean:
		return "boolean"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// Value is one node of an action parameter tree. Action parameters are
// recursive: a value is a text, integer, real or boolean scalar, a list of
// values, or a string-keyed map of values.
type Value struct {
	kind    ValueKind
	text    string
	integer int64
	real    float64
	boolean bool
	list    []Value
	dict    *Params
}

// Text creates a text value
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// Integer creates an integer value
func Integer(i int64) Value {
	return Value{kind: KindInteger, integer: i}
}

// Real creates a real (floating point) value
func Real(f float64) Value {
	return Value{kind: KindReal, real: f}
}

// Boolean creates a boolean value
func Boolean(b bool) Value {
	return Value{kind: KindBoolean, boolean: b}
}

// List creates a list value from the given items
func List(items ...Value) Value {
	return Value{kind: KindList, list: items}
}

// Map creates a map value from the given parameters
func Map(params *Params) Value {
	if params == nil {
		params = NewParams()
	}
	return Value{kind: KindMap, dict: params}
}

// Kind returns the variant held by the value
func (v Value) Kind() ValueKind { return v.kind }

// TextValue returns the string held by a text value
func (v Value) TextValue() string { return v.text }

// IntegerValue returns the int64 held by an integer value
func (v Value) IntegerValue() int64 { return v.integer }

// RealValue returns the float64 held by a real value
func (v Value) RealValue() float64 { return v.real }

// BooleanValue returns the bool held by a boolean value
func (v Value) BooleanValue() bool { return v.boolean }

// ListValue returns the items held by a list value
func (v Value) ListValue() []Value { return v.list }

// MapValue returns the parameters held by a map value
func (v Value) MapValue() *Params { return v.dict }

// Equal reports whether two values hold the same variant and contents
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindText:
		return v.text == other.text
	case KindInteger:
		return v.integer == other.integer
	case KindReal:
		return v.real == other.real
	case KindBoolean:
		return v.boolean == other.boolean
	case KindList:
		if len(v.list) != len(other.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(other.list[i]) {
				return false
			}
		}
		return true
	case KindMap:
		return v.dict.Equal(other.dict)
	}
	return false
}

// ValueFromAny converts a decoded JSON or plist value into a Value.
// Unsupported Go types fail with ErrUnsupportedValue.
func ValueFromAny(raw interface{}) (Value, error) {
	switch val := raw.(type) {
	case string:
		return Text(val), nil
	case bool:
		return Boolean(val), nil
	case int:
		return Integer(int64(val)), nil
	case int8:
		return Integer(int64(val)), nil
	case int16:
		return Integer(int64(val)), nil
	case int32:
		return Integer(int64(val)), nil
	case int64:
		return Integer(val), nil
	case uint:
		return Integer(int64(val)), nil
	case uint8:
		return Integer(int64(val)), nil
	case uint16:
		return Integer(int64(val)), nil
	case uint32:
		return Integer(int64(val)), nil
	case uint64:
		return Integer(int64(val)), nil
	case float32:
		return Real(float64(val)), nil
	case float64:
		return Real(val), nil
	case json.Number:
		// Integral JSON numbers keep their integer identity
		if i, err := val.Int64(); err == nil {
			return Integer(i), nil
		}
		f, err := val.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("%w: %s", errors.ErrUnsupportedValue, val.String())
		}
		return Real(f), nil
	case []interface{}:
		items := make([]Value, 0, len(val))
		for _, item := range val {
			converted, err := ValueFromAny(item)
			if err != nil {
				return Value{}, err
			}
			items = append(items, converted)
		}
		return List(items...), nil
	case map[string]interface{}:
		params := NewParams()
		// Decoded maps carry no order; sort keys for a stable result
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			converted, err := ValueFromAny(val[k])
			if err != nil {
				return Value{}, err
			}
			params.Set(k, converted)
		}
		return Map(params), nil
	case nil:
		return Value{}, fmt.Errorf("%w: null", errors.ErrUnsupportedValue)
	default:
		return Value{}, fmt.Errorf("%w: %T", errors.ErrUnsupportedValue, raw)
	}
}

// toPlist converts the value to a plist-native representation
func (v Value) toPlist() interface{} {
	switch v.kind {
	case KindText:
		return v.text
	case KindInteger:
		return v.integer
	case KindReal:
		return v.real
	case KindBoolean:
		return v.boolean
	case KindList:
		items := make([]interface{}, len(v.list))
		for i, item := range v.list {
			items[i] = item.toPlist()
		}
		return items
	case KindMap:
		return v.dict.toPlist()
	}
	return nil
}

// Params is an ordered string-keyed map of Values. Insertion order is
// preserved; setting an existing key keeps its original position.
type Params struct {
	keys   []string
	values map[string]Value
}

// NewParams creates an empty ordered parameter map
func NewParams() *Params {
	return &Params{values: make(map[string]Value)}
}

// Set stores a value under the given key
func (p *Params) Set(key string, value Value) {
	if _, exists := p.values[key]; !exists {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Get retrieves the value stored under the given key
func (p *Params) Get(key string) (Value, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Delete removes a key, reporting whether it existed
func (p *Params) Delete(key string) bool {
	if _, exists := p.values[key]; !exists {
		return false
	}
	delete(p.values, key)
	for i, k := range p.keys {
		if k == key {
			p.keys = append(p.keys[:i], p.keys[i+1:]...)
			break
		}
	}
	return true
}

// Keys returns the keys in insertion order
func (p *Params) Keys() []string {
	keys := make([]string, len(p.keys))
	copy(keys, p.keys)
	return keys
}

// Len returns the number of entries
func (p *Params) Len() int {
	return len(p.keys)
}

// Equal reports whether two parameter maps hold the same keys and values.
// Key order is not significant for equality.
func (p *Params) Equal(other *Params) bool {
	if p == nil || other == nil {
		return p == other
	}
	if len(p.keys) != len(other.keys) {
		return false
	}
	for k, v := range p.values {
		ov, ok := other.values[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// toPlist converts the parameter map to a plist-native map
func (p *Params) toPlist() map[string]interface{} {
	out := make(map[string]interface{}, len(p.keys))
	for _, k := range p.keys {
		out[k] = p.values[k].toPlist()
	}
	return out
}
