package frontmatter

import (
	"math"
	"strconv"
)

// Kind discriminates the variants a frontmatter value can take.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBool
	KindList    // ordered list of scalars
	KindRecords // ordered list of records (block sequence of maps)
)

// Value is one frontmatter field value.
type Value struct {
	Kind    Kind
	Str     string
	Num     float64
	Bool    bool
	List    []Value
	Records []Record
}

func String(s string) Value  { return Value{Kind: KindString, Str: s} }
func Number(n float64) Value { return Value{Kind: KindNumber, Num: n} }
func Boolean(b bool) Value   { return Value{Kind: KindBool, Bool: b} }

func ListOf(items ...Value) Value {
	return Value{Kind: KindList, List: items}
}

func RecordsOf(recs ...Record) Value {
	return Value{Kind: KindRecords, Records: recs}
}

// AsString renders a scalar value as its string form. Lists and records
// render as empty string.
func (v Value) AsString() string {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindNumber:
		return formatNumber(v.Num)
	case KindBool:
		if v.Bool {
			return "true"
		}
		return "false"
	}
	return ""
}

// AsInt returns the value as a non-fractional integer.
func (v Value) AsInt() (int, bool) {
	switch v.Kind {
	case KindNumber:
		if v.Num != math.Trunc(v.Num) {
			return 0, false
		}
		return int(v.Num), true
	case KindString:
		n, err := strconv.Atoi(v.Str)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// AsStringList flattens the value to a list of strings. A scalar becomes a
// single-element list, which keeps fields readable whether the document
// author wrote `author: X` or `author: [X, Y]`.
func (v Value) AsStringList() []string {
	if v.Kind == KindList {
		out := make([]string, 0, len(v.List))
		for _, item := range v.List {
			out = append(out, item.AsString())
		}
		return out
	}
	if s := v.AsString(); s != "" {
		return []string{s}
	}
	return nil
}

func formatNumber(n float64) string {
	if n == math.Trunc(n) && math.Abs(n) < 1e15 {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// Record is one entry of a list-of-records field. Key order is preserved
// verbatim so unknown record shapes round-trip untouched.
type Record struct {
	keys   []string
	fields map[string]Value
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{fields: make(map[string]Value)}
}

// Set inserts or updates a field, keeping first-insertion order.
func (r *Record) Set(key string, v Value) {
	if r.fields == nil {
		r.fields = make(map[string]Value)
	}
	if _, exists := r.fields[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.fields[key] = v
}

// Get returns the field value for key.
func (r *Record) Get(key string) (Value, bool) {
	v, ok := r.fields[key]
	return v, ok
}

// Keys returns the field names in insertion order.
func (r *Record) Keys() []string {
	return r.keys
}

// Map is an insertion-ordered frontmatter mapping.
type Map struct {
	keys   []string
	fields map[string]Value
}

// NewMap returns an empty mapping.
func NewMap() *Map {
	return &Map{fields: make(map[string]Value)}
}

// Set inserts or updates a key. Updating keeps the key's original position.
func (m *Map) Set(key string, v Value) {
	if m.fields == nil {
		m.fields = make(map[string]Value)
	}
	if _, exists := m.fields[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.fields[key] = v
}

// Get returns the value for key.
func (m *Map) Get(key string) (Value, bool) {
	v, ok := m.fields[key]
	return v, ok
}

// GetString returns the scalar string form of key, or "" when absent.
func (m *Map) GetString(key string) string {
	v, ok := m.fields[key]
	if !ok {
		return ""
	}
	return v.AsString()
}

// Delete removes a key if present.
func (m *Map) Delete(key string) {
	if _, ok := m.fields[key]; !ok {
		return
	}
	delete(m.fields, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Keys returns all keys in insertion order.
func (m *Map) Keys() []string {
	return m.keys
}

// Len returns the number of keys.
func (m *Map) Len() int {
	return len(m.keys)
}
