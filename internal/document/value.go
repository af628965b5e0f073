package document

import (
	"strconv"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	// KindAbsent is a null or missing value.
	KindAbsent Kind = iota
	// KindScalar is a string, number, boolean or other plain value.
	KindScalar
	// KindSequence is an ordered list.
	KindSequence
	// KindMapping is a string-keyed, insertion-ordered mapping.
	KindMapping
)

// String returns a human readable kind name.
func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Style is a render hint consulted by the encoder.
type Style int

const (
	// StyleDefault lets the encoder pick the scalar style.
	StyleDefault Style = iota
	// StyleLiteral renders a scalar as a literal block (|), keeping newlines verbatim.
	StyleLiteral
)

// YAML short tags used for scalars.
const (
	TagString = "!!str"
	TagInt    = "!!int"
	TagFloat  = "!!float"
	TagBool   = "!!bool"
	TagNull   = "!!null"
)

// Value is a node of the generic tree. The zero Value is Absent.
type Value struct {
	kind  Kind
	tag   string
	text  string
	style Style
	items []Value
	m     *Map
}

// Null returns an Absent value.
func Null() Value {
	return Value{}
}

// ScalarOf returns a scalar with an explicit YAML tag and text.
func ScalarOf(tag, text string) Value {
	return Value{kind: KindScalar, tag: tag, text: text}
}

// String returns a string scalar.
func String(s string) Value {
	return ScalarOf(TagString, s)
}

// Int returns an integer scalar.
func Int(i int64) Value {
	return ScalarOf(TagInt, strconv.FormatInt(i, 10))
}

// Bool returns a boolean scalar.
func Bool(b bool) Value {
	return ScalarOf(TagBool, strconv.FormatBool(b))
}

// Float returns a floating point scalar.
func Float(f float64) Value {
	return ScalarOf(TagFloat, strconv.FormatFloat(f, 'g', -1, 64))
}

// Seq returns a sequence holding items.
func Seq(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindSequence, items: items}
}

// Mapping wraps m as a Value. A nil m yields an empty mapping.
func Mapping(m *Map) Value {
	if m == nil {
		m = NewMap()
	}
	return Value{kind: KindMapping, m: m}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsAbsent reports whether v is null or missing.
func (v Value) IsAbsent() bool {
	return v.kind == KindAbsent
}

// Tag returns the YAML short tag of a scalar, or "" for other kinds.
func (v Value) Tag() string {
	return v.tag
}

// Text returns the scalar text, or "" for other kinds.
func (v Value) Text() string {
	return v.text
}

// Style returns the render hint of a scalar.
func (v Value) Style() Style {
	return v.style
}

// WithStyle returns a copy of v carrying the given render hint.
func (v Value) WithStyle(s Style) Value {
	v.style = s
	return v
}

// Items returns the elements of a sequence, or nil for other kinds.
func (v Value) Items() []Value {
	return v.items
}

// Len returns the number of items of a sequence or entries of a mapping.
func (v Value) Len() int {
	switch v.kind {
	case KindSequence:
		return len(v.items)
	case KindMapping:
		return v.m.Len()
	default:
		return 0
	}
}

// Map returns the mapping held by v, or nil if v is not a mapping.
func (v Value) Map() *Map {
	if v.kind != KindMapping {
		return nil
	}
	return v.m
}

// Get looks up key when v is a mapping.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindMapping {
		return Value{}, false
	}
	return v.m.Get(key)
}

// SameKind reports whether a and b hold the same variant.
// All scalar types (string, number, boolean) are compatible with each other.
func SameKind(a, b Value) bool {
	return a.kind == b.kind
}

// Clone returns a deep copy of v sharing no mutable state with it.
func (v Value) Clone() Value {
	switch v.kind {
	case KindSequence:
		items := make([]Value, len(v.items))
		for i, item := range v.items {
			items[i] = item.Clone()
		}
		return Value{kind: KindSequence, items: items}
	case KindMapping:
		return Value{kind: KindMapping, m: v.m.Clone()}
	default:
		return v
	}
}

// Equal reports whether v and o hold the same tree. Mapping key order is
// significant; render hints are not.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindAbsent:
		return true
	case KindScalar:
		return v.tag == o.tag && v.text == o.text
	case KindSequence:
		if len(v.items) != len(o.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(o.items[i]) {
				return false
			}
		}
		return true
	case KindMapping:
		return v.m.Equal(o.m)
	}
	return false
}

// Interface converts v to plain Go values: map[string]any, []any, string,
// int, float64, bool or nil. Key order is lost.
func (v Value) Interface() any {
	switch v.kind {
	case KindScalar:
		return v.scalarInterface()
	case KindSequence:
		out := make([]any, len(v.items))
		for i, item := range v.items {
			out[i] = item.Interface()
		}
		return out
	case KindMapping:
		out := make(map[string]any, v.m.Len())
		for _, key := range v.m.Keys() {
			val, _ := v.m.Get(key)
			out[key] = val.Interface()
		}
		return out
	default:
		return nil
	}
}

func (v Value) scalarInterface() any {
	var out any
	if err := ToNode(v).Decode(&out); err != nil {
		return v.text
	}
	return out
}
