package domain

import "sort"

// RecordID identifies a record for the lifetime of its store. IDs are minted
// by the store in increasing order and never reused.
type RecordID uint64

// Fields holds a record's field values keyed by field name
type Fields map[string]interface{}

// Clone returns a shallow copy of the field map
func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Names returns the field names in sorted order
func (f Fields) Names() []string {
	names := make([]string, 0, len(f))
	for k := range f {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Record is a structured value with a stable identity, independent of its
// position in the store.
type Record struct {
	ID     RecordID `json:"id" msgpack:"id"`
	Fields Fields   `json:"fields" msgpack:"fields"`
}

// Clone returns a copy of the record that shares no mutable state with r
func (r Record) Clone() Record {
	return Record{ID: r.ID, Fields: r.Fields.Clone()}
}

// Value returns the value of a field, or nil if the record has no such field
func (r Record) Value(name string) interface{} {
	return r.Fields[name]
}

// Text returns a text field's value, or "" if absent or not text
func (r Record) Text(name string) string {
	s, _ := r.Fields[name].(string)
	return s
}

// Integer returns an integer field's value, or 0 if absent or not numeric
func (r Record) Integer(name string) int {
	n, _ := ToInt(r.Fields[name])
	return n
}
