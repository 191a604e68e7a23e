package model

import (
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Object is the keyed form of a table: record key -> column key -> value.
// Records and fields keep the order in which they were first inserted, and
// the JSON encoding follows that order.
type Object struct {
	records *orderedmap.OrderedMap[string, *Record]
}

// Record holds the fields of one record in insertion order.
type Record struct {
	fields *orderedmap.OrderedMap[string, string]
}

// NewObject creates an empty object.
func NewObject() *Object {
	return &Object{records: orderedmap.New[string, *Record]()}
}

// NewRecord creates an empty record under key, replacing any record already
// stored there. A replaced record keeps its original position.
func (o *Object) NewRecord(key string) *Record {
	r := &Record{fields: orderedmap.New[string, string]()}
	o.records.Set(key, r)
	return r
}

// Record returns the record stored under key.
func (o *Object) Record(key string) (*Record, bool) {
	return o.records.Get(key)
}

// Has reports whether a record exists under key.
func (o *Object) Has(key string) bool {
	_, ok := o.records.Get(key)
	return ok
}

// Get returns the value at [record][field].
func (o *Object) Get(record, field string) (string, bool) {
	r, ok := o.records.Get(record)
	if !ok {
		return "", false
	}
	return r.Get(field)
}

// Len returns the number of records.
func (o *Object) Len() int {
	return o.records.Len()
}

// Keys returns the record keys in order.
func (o *Object) Keys() []string {
	keys := make([]string, 0, o.records.Len())
	for pair := o.records.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Fields returns the field names of a record in order, or nil if the
// record does not exist.
func (o *Object) Fields(record string) []string {
	r, ok := o.records.Get(record)
	if !ok {
		return nil
	}
	return r.Fields()
}

// Map returns the object as plain nested maps. The result is a copy.
func (o *Object) Map() map[string]map[string]string {
	out := make(map[string]map[string]string, o.records.Len())
	for pair := o.records.Oldest(); pair != nil; pair = pair.Next() {
		out[pair.Key] = pair.Value.Map()
	}
	return out
}

// MarshalJSON encodes the object with records and fields in insertion order.
func (o *Object) MarshalJSON() ([]byte, error) {
	if o == nil || o.records == nil {
		return []byte("null"), nil
	}
	return json.Marshal(o.records)
}

// Set stores value under field. An existing field keeps its position.
func (r *Record) Set(field, value string) {
	r.fields.Set(field, value)
}

// Get returns the value stored under field.
func (r *Record) Get(field string) (string, bool) {
	return r.fields.Get(field)
}

// Len returns the number of fields.
func (r *Record) Len() int {
	return r.fields.Len()
}

// Fields returns the field names in order.
func (r *Record) Fields() []string {
	names := make([]string, 0, r.fields.Len())
	for pair := r.fields.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Map returns the record as a plain map.
func (r *Record) Map() map[string]string {
	out := make(map[string]string, r.fields.Len())
	for pair := r.fields.Oldest(); pair != nil; pair = pair.Next() {
		out[pair.Key] = pair.Value
	}
	return out
}

// MarshalJSON encodes the fields in insertion order.
func (r *Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.fields)
}
