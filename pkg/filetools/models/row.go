// Package models defines data structures shared by the file tools.
package models

import (
	"bytes"
	"encoding/json"
)

// Field is a single header/value pair used to build a Row.
type Field struct {
	// Key is the column header.
	Key string
	// Value is the cell value (string, int64, float64, or "" when empty).
	Value interface{}
}

// Row represents one spreadsheet record. It maps column headers to cell
// values and remembers the order in which headers were first set.
type Row struct {
	keys   []string
	values map[string]interface{}
}

// NewRow creates a Row from the given fields, in order.
func NewRow(fields ...Field) Row {
	r := Row{values: make(map[string]interface{}, len(fields))}
	for _, f := range fields {
		r.Set(f.Key, f.Value)
	}
	return r
}

// Set assigns value to key. A new key is appended to the key order; an
// existing key keeps its position.
func (r *Row) Set(key string, value interface{}) {
	if r.values == nil {
		r.values = make(map[string]interface{})
	}
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Get returns the value stored under key.
func (r Row) Get(key string) (interface{}, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Len returns the number of keys in the row.
func (r Row) Len() int {
	return len(r.keys)
}

// Keys returns a copy of the row's keys in insertion order.
func (r Row) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// KeyAt returns the key at position i.
func (r Row) KeyAt(i int) (string, bool) {
	if i < 0 || i >= len(r.keys) {
		return "", false
	}
	return r.keys[i], true
}

// ValueAt returns the value of the key at position i.
func (r Row) ValueAt(i int) (interface{}, bool) {
	key, ok := r.KeyAt(i)
	if !ok {
		return nil, false
	}
	return r.values[key], true
}

// Values returns the row's values in key order.
func (r Row) Values() []interface{} {
	out := make([]interface{}, len(r.keys))
	for i, key := range r.keys {
		out[i] = r.values[key]
	}
	return out
}

// MarshalJSON encodes the row as a JSON object with keys in row order.
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(r.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
