// Created by dhawalhost (2026-08-23 10:41:19)
package tjson

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

//------------------------------------------------------------------------------
// VALUE TYPES
//------------------------------------------------------------------------------

// ValueType represents the kind of a parsed JSON value.
type ValueType uint8

const (
	// TypeInvalid marks the zero Value. No successful parse produces it; it
	// is what Get and Index return for missing entries.
	TypeInvalid ValueType = iota
	// TypeNull is the JSON null literal.
	TypeNull
	// TypeBoolean is a JSON true or false literal.
	TypeBoolean
	// TypeNumber is a JSON number, held as a 64-bit float.
	TypeNumber
	// TypeString is a JSON string with all escapes decoded.
	TypeString
	// TypeArray is a JSON array.
	TypeArray
	// TypeObject is a JSON object.
	TypeObject
)

// String returns the name of the value type.
func (t ValueType) String() string {
	switch t {
	case TypeNull:
		return "Null"
	case TypeBoolean:
		return "Boolean"
	case TypeNumber:
		return "Number"
	case TypeString:
		return "String"
	case TypeArray:
		return "Array"
	case TypeObject:
		return "Object"
	default:
		return "Invalid"
	}
}

// Value is one node of a parsed JSON document. Exactly one payload field is
// meaningful, selected by Type. Values are plain data: once a parse returns,
// the tree never changes, so a Value may be read freely from any number of
// goroutines.
type Value struct {
	// Type is the kind of this node.
	Type ValueType
	// Str is the payload when Type is TypeString.
	Str string
	// Num is the payload when Type is TypeNumber.
	Num float64
	// Boolean is the payload when Type is TypeBoolean.
	Boolean bool
	// Items is the payload when Type is TypeArray. It is non-nil for every
	// parsed array, including the empty one.
	Items []Value
	// Fields is the payload when Type is TypeObject. It is non-nil for every
	// parsed object, including the empty one.
	Fields map[string]Value
}

//------------------------------------------------------------------------------
// ACCESSORS
//------------------------------------------------------------------------------

// Exists reports whether the value was produced by a parse. The zero Value,
// as returned by Get for a missing key, does not exist.
func (v Value) Exists() bool {
	return v.Type != TypeInvalid
}

// IsNull reports whether the value is the JSON null literal.
func (v Value) IsNull() bool {
	return v.Type == TypeNull
}

// Bool returns the value as a bool. Strings parse with strconv.ParseBool
// after lowering; numbers are true when nonzero.
func (v Value) Bool() bool {
	switch v.Type {
	case TypeBoolean:
		return v.Boolean
	case TypeString:
		b, _ := strconv.ParseBool(strings.ToLower(v.Str))
		return b
	case TypeNumber:
		return v.Num != 0
	default:
		return false
	}
}

// Int returns the value as an int64. Numbers truncate toward zero; strings
// are parsed as base-10 integers; true is 1.
func (v Value) Int() int64 {
	switch v.Type {
	case TypeBoolean:
		if v.Boolean {
			return 1
		}
		return 0
	case TypeNumber:
		if n, ok := safeInt(v.Num); ok {
			return n
		}
		return 0
	case TypeString:
		n, err := strconv.ParseInt(v.Str, 10, 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// Float returns the value as a float64. Strings are parsed as numbers; true
// is 1.
func (v Value) Float() float64 {
	switch v.Type {
	case TypeBoolean:
		if v.Boolean {
			return 1
		}
		return 0
	case TypeNumber:
		return v.Num
	case TypeString:
		n, _ := strconv.ParseFloat(v.Str, 64)
		return n
	default:
		return 0
	}
}

// Get returns the value of the named object member. The zero Value comes
// back when v is not an object or the key is absent; use Exists to tell a
// missing member from an explicit null.
func (v Value) Get(key string) Value {
	if v.Type != TypeObject {
		return Value{}
	}
	return v.Fields[key]
}

// Index returns the i'th element of an array, or the zero Value when v is
// not an array or i is out of range.
func (v Value) Index(i int) Value {
	if v.Type != TypeArray || i < 0 || i >= len(v.Items) {
		return Value{}
	}
	return v.Items[i]
}

// Len returns the number of elements of an array, members of an object, or
// bytes of a string. Other values have length 0.
func (v Value) Len() int {
	switch v.Type {
	case TypeArray:
		return len(v.Items)
	case TypeObject:
		return len(v.Fields)
	case TypeString:
		return len(v.Str)
	default:
		return 0
	}
}

// Array returns the elements of an array value. Null and nonexistent values
// yield an empty slice; any other non-array value yields a single-element
// slice holding the value itself.
func (v Value) Array() []Value {
	switch v.Type {
	case TypeArray:
		return v.Items
	case TypeNull, TypeInvalid:
		return []Value{}
	default:
		return []Value{v}
	}
}

// Map returns the members of an object value. Non-object values yield an
// empty map.
func (v Value) Map() map[string]Value {
	if v.Type == TypeObject {
		return v.Fields
	}
	return map[string]Value{}
}

//------------------------------------------------------------------------------
// ITERATION AND CONVERSION
//------------------------------------------------------------------------------

// ForEach calls fn for every element of an array or member of an object.
// Array elements are visited in index order with the index as a number key;
// object members are visited in sorted key order with the key as a string.
// Iteration stops early when fn returns false.
func (v Value) ForEach(fn func(key, value Value) bool) {
	switch v.Type {
	case TypeArray:
		for i, item := range v.Items {
			if !fn(Value{Type: TypeNumber, Num: float64(i)}, item) {
				return
			}
		}
	case TypeObject:
		for _, k := range v.sortedKeys() {
			if !fn(Value{Type: TypeString, Str: k}, v.Fields[k]) {
				return
			}
		}
	}
}

// Interface converts the value to the generic form used by encoding/json:
// nil, bool, float64, string, []interface{}, or map[string]interface{}.
func (v Value) Interface() interface{} {
	switch v.Type {
	case TypeBoolean:
		return v.Boolean
	case TypeNumber:
		return v.Num
	case TypeString:
		return v.Str
	case TypeArray:
		out := make([]interface{}, len(v.Items))
		for i, item := range v.Items {
			out[i] = item.Interface()
		}
		return out
	case TypeObject:
		out := make(map[string]interface{}, len(v.Fields))
		for k, item := range v.Fields {
			out[k] = item.Interface()
		}
		return out
	default:
		return nil
	}
}

// Equal reports whether two values are the same JSON value. Containers
// compare recursively; numbers compare exactly.
func (v Value) Equal(other Value) bool {
	if v.Type != other.Type {
		return false
	}
	switch v.Type {
	case TypeString:
		return v.Str == other.Str
	case TypeNumber:
		return v.Num == other.Num
	case TypeBoolean:
		return v.Boolean == other.Boolean
	case TypeArray:
		if len(v.Items) != len(other.Items) {
			return false
		}
		for i := range v.Items {
			if !v.Items[i].Equal(other.Items[i]) {
				return false
			}
		}
		return true
	case TypeObject:
		if len(v.Fields) != len(other.Fields) {
			return false
		}
		for k, item := range v.Fields {
			o, ok := other.Fields[k]
			if !ok || !item.Equal(o) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

//------------------------------------------------------------------------------
// RENDERING
//------------------------------------------------------------------------------

// String returns a text form of the value. Scalars render bare: strings
// return their decoded text without quotes, numbers their shortest form, and
// null the word "null". Containers render as compact JSON with object keys
// in sorted order.
func (v Value) String() string {
	switch v.Type {
	case TypeInvalid:
		return ""
	case TypeNull:
		return "null"
	case TypeBoolean:
		if v.Boolean {
			return "true"
		}
		return "false"
	case TypeNumber:
		return string(appendNumber(nil, v.Num))
	case TypeString:
		return v.Str
	default:
		return string(v.appendJSON(nil))
	}
}

// MarshalJSON renders the value as compact JSON with object keys in sorted
// order, satisfying json.Marshaler. Unlike String, scalar strings come back
// quoted.
func (v Value) MarshalJSON() ([]byte, error) {
	return v.appendJSON(nil), nil
}

// appendJSON appends the compact JSON form of v to dst.
func (v Value) appendJSON(dst []byte) []byte {
	switch v.Type {
	case TypeBoolean:
		if v.Boolean {
			return append(dst, "true"...)
		}
		return append(dst, "false"...)
	case TypeNumber:
		return appendNumber(dst, v.Num)
	case TypeString:
		return appendQuoted(dst, v.Str)
	case TypeArray:
		dst = append(dst, '[')
		for i, item := range v.Items {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = item.appendJSON(dst)
		}
		return append(dst, ']')
	case TypeObject:
		dst = append(dst, '{')
		for i, k := range v.sortedKeys() {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendQuoted(dst, k)
			dst = append(dst, ':')
			dst = v.Fields[k].appendJSON(dst)
		}
		return append(dst, '}')
	default:
		return append(dst, "null"...)
	}
}

// sortedKeys returns the object's keys in sorted order so that rendering and
// iteration are deterministic.
func (v Value) sortedKeys() []string {
	keys := make([]string, 0, len(v.Fields))
	for k := range v.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// appendNumber renders a float64 in its shortest round-trip form. Integral
// values inside the safe range render without a fraction or exponent.
// Infinities and NaN have no JSON spelling and render as null.
func appendNumber(dst []byte, f float64) []byte {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return append(dst, "null"...)
	}
	if n, ok := safeInt(f); ok && float64(n) == f {
		return strconv.AppendInt(dst, n, 10)
	}
	return strconv.AppendFloat(dst, f, 'g', -1, 64)
}

// appendQuoted renders s as a JSON string literal, escaping the quote, the
// backslash, and control characters.
func appendQuoted(dst []byte, s string) []byte {
	dst = append(dst, '"')
	for _, r := range s {
		switch r {
		case '"':
			dst = append(dst, '\\', '"')
		case '\\':
			dst = append(dst, '\\', '\\')
		case '\b':
			dst = append(dst, '\\', 'b')
		case '\f':
			dst = append(dst, '\\', 'f')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		default:
			if r < 0x20 {
				dst = append(dst, fmt.Sprintf(`\u%04x`, r)...)
			} else {
				dst = utf8.AppendRune(dst, r)
			}
		}
	}
	return append(dst, '"')
}

// safeInt converts f to an int64 when it lies inside the contiguous integer
// range of a float64.
func safeInt(f float64) (n int64, ok bool) {
	if f < -9007199254740991 || f > 9007199254740991 {
		return 0, false
	}
	return int64(f), true
}
