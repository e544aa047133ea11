package store

import (
	"encoding/json"
	"fmt"
	"math"
)

// Kind identifies which member of the value union is set.
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindInt
	KindFloat
	KindStringList
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindStringList:
		return "string-list"
	default:
		return "unknown"
	}
}

// Value is a closed tagged union over the types a settings document can
// hold: string, bool, int, float, or list of strings. A Value is only
// constructed through Set or document decoding, so the tag always matches
// the populated member.
type Value struct {
	kind Kind
	str  string
	b    bool
	i    int64
	f    float64
	list []string
}

// Kind reports which member of the union is populated.
func (v Value) Kind() Kind {
	return v.kind
}

// native returns the value as a plain Go type for serialization.
func (v Value) native() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindStringList:
		return v.list
	default:
		return v.str
	}
}

// Interface returns the value as its native Go representation, for
// callers that display values without knowing their type up front.
func (v Value) Interface() any {
	return v.native()
}

// MarshalJSON encodes the value as its native JSON type.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.native())
}

// UnmarshalJSON decodes a native JSON value into the union. Integral
// numbers decode as int; a float that happens to be whole therefore
// round-trips as int, which Get reconciles through coercion. Objects,
// nulls, and mixed lists are rejected.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch t := raw.(type) {
	case string:
		*v = Value{kind: KindString, str: t}
	case bool:
		*v = Value{kind: KindBool, b: t}
	case float64:
		if t == math.Trunc(t) && t >= math.MinInt64 && t <= math.MaxInt64 {
			*v = Value{kind: KindInt, i: int64(t)}
		} else {
			*v = Value{kind: KindFloat, f: t}
		}
	case []any:
		list := make([]string, 0, len(t))
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("list values must be strings, got %T", item)
			}
			list = append(list, s)
		}
		*v = Value{kind: KindStringList, list: list}
	default:
		return fmt.Errorf("unsupported value type %T", raw)
	}

	return nil
}

// Settable enumerates the Go types a settings document can store.
type Settable interface {
	string | bool | int | int64 | float64 | []string
}

// valueOf builds a Value from a settable Go value.
func valueOf[T Settable](val T) Value {
	switch t := any(val).(type) {
	case string:
		return Value{kind: KindString, str: t}
	case bool:
		return Value{kind: KindBool, b: t}
	case int:
		return Value{kind: KindInt, i: int64(t)}
	case int64:
		return Value{kind: KindInt, i: t}
	case float64:
		return Value{kind: KindFloat, f: t}
	case []string:
		list := make([]string, len(t))
		copy(list, t)
		return Value{kind: KindStringList, list: list}
	}
	// Unreachable: Settable is a closed union.
	return Value{}
}

// coerce converts a stored value to the requested type. It is total:
// every (value, type) pair either yields a converted value or reports
// failure, never an error. Int and float cross-coerce when the
// conversion is lossless; all other mismatches fail.
func coerce[T Settable](v Value) (T, bool) {
	var out T
	switch p := any(&out).(type) {
	case *string:
		if v.kind != KindString {
			return out, false
		}
		*p = v.str
	case *bool:
		if v.kind != KindBool {
			return out, false
		}
		*p = v.b
	case *int:
		switch v.kind {
		case KindInt:
			if v.i < math.MinInt || v.i > math.MaxInt {
				return out, false
			}
			*p = int(v.i)
		case KindFloat:
			if v.f != math.Trunc(v.f) || v.f < math.MinInt || v.f >= math.MaxInt {
				return out, false
			}
			*p = int(v.f)
		default:
			return out, false
		}
	case *int64:
		switch v.kind {
		case KindInt:
			*p = v.i
		case KindFloat:
			if v.f != math.Trunc(v.f) || v.f < math.MinInt64 || v.f >= math.MaxInt64 {
				return out, false
			}
			*p = int64(v.f)
		default:
			return out, false
		}
	case *float64:
		switch v.kind {
		case KindInt:
			*p = float64(v.i)
		case KindFloat:
			*p = v.f
		default:
			return out, false
		}
	case *[]string:
		if v.kind != KindStringList {
			return out, false
		}
		list := make([]string, len(v.list))
		copy(list, v.list)
		*p = list
	default:
		return out, false
	}
	return out, true
}
