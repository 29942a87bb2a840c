package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// Extras holds the JSON keys of an object that the Go type does not model.
// They are written back unchanged so a load/save cycle is lossless.
type Extras map[string]json.RawMessage

// objectState remembers the shape an object had when it was decoded, so
// encoding writes back the same set of keys.
type objectState struct {
	extra Extras
	// present lists the modelled keys found at decode time. It is nil for
	// objects built in code, which encode with their struct tags alone.
	present map[string]bool
}

type knownField struct {
	name  string
	index int
}

var knownFieldCache sync.Map // reflect.Type -> []knownField

// knownFields returns the JSON keys declared by the struct type t.
func knownFields(t reflect.Type) []knownField {
	if cached, ok := knownFieldCache.Load(t); ok {
		return cached.([]knownField)
	}
	var fields []knownField
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if name == "" {
			name = f.Name
		}
		fields = append(fields, knownField{name: name, index: i})
	}
	knownFieldCache.Store(t, fields)
	return fields
}

// decodeObject unmarshals data into v (a pointer to a struct without custom
// unmarshalling) and records which keys were present.
func decodeObject(data []byte, v any) (objectState, error) {
	if err := json.Unmarshal(data, v); err != nil {
		return objectState{}, err
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return objectState{}, err
	}
	st := objectState{present: make(map[string]bool)}
	for _, f := range knownFields(reflect.TypeOf(v).Elem()) {
		if _, ok := all[f.name]; ok {
			st.present[f.name] = true
			delete(all, f.name)
		}
	}
	if len(all) > 0 {
		st.extra = all
	}
	return st, nil
}

// encodeObject marshals v (a struct value) so that the output carries the
// same keys the object was decoded with:
//   - a key that was present but now holds a zero value is still written;
//   - a key that was absent and still holds a zero value is left out;
//   - extra keys are appended.
//
// Keys set to a non-zero value since decoding are written as usual.
func encodeObject(v any, st objectState) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil || (st.present == nil && len(st.extra) == 0) {
		return data, err
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}

	if st.present != nil {
		rv := reflect.ValueOf(v)
		for _, f := range knownFields(rv.Type()) {
			fv := rv.Field(f.index)
			_, emitted := all[f.name]
			switch {
			case st.present[f.name] && !emitted:
				zero, err := json.Marshal(fv.Interface())
				if err != nil {
					return nil, err
				}
				all[f.name] = zero
			case !st.present[f.name] && emitted && fv.IsZero():
				delete(all, f.name)
			}
		}
	}
	for k, raw := range st.extra {
		if _, ok := all[k]; !ok {
			all[k] = raw
		}
	}
	return json.Marshal(all)
}

// Record is a loosely-typed configuration block that is read and written
// by key-merge: supplied keys overwrite, everything else is left alone.
type Record map[string]json.RawMessage

// Merge copies every key of patch into r and returns the merged record,
// allocating it when r is nil.
func (r Record) Merge(patch Record) Record {
	if r == nil {
		r = make(Record, len(patch))
	}
	for k, v := range patch {
		r[k] = v
	}
	return r
}

// ValueKind classifies the JSON type carried by a Value.
type ValueKind int

const (
	ValueAbsent ValueKind = iota
	ValueNull
	ValueString
	ValueNumber
	ValueBool
	ValueObject
	ValueArray
)

func (k ValueKind) String() string {
	switch k {
	case ValueAbsent:
		return "missing"
	case ValueNull:
		return "null"
	case ValueString:
		return "string"
	case ValueNumber:
		return "number"
	case ValueBool:
		return "boolean"
	case ValueObject:
		return "object"
	case ValueArray:
		return "array"
	default:
		return "unknown"
	}
}

// Value is a JSON scalar whose type depends on the record that owns it
// (a date reference value may be a string, a criterion value a number).
// The raw encoding is kept so validators can see exactly what was sent.
type Value struct {
	raw json.RawMessage
}

// StringValue returns a Value holding s.
func StringValue(s string) Value {
	b, _ := json.Marshal(s)
	return Value{raw: b}
}

// NumberValue returns a Value holding f.
func NumberValue(f float64) Value {
	b, _ := json.Marshal(f)
	return Value{raw: b}
}

// IsZero reports whether the value was absent. Used by omitzero.
func (v Value) IsZero() bool { return len(v.raw) == 0 }

func (v Value) Kind() ValueKind {
	if len(v.raw) == 0 {
		return ValueAbsent
	}
	switch c := v.raw[0]; {
	case c == 'n':
		return ValueNull
	case c == '"':
		return ValueString
	case c == 't' || c == 'f':
		return ValueBool
	case c == '{':
		return ValueObject
	case c == '[':
		return ValueArray
	default:
		return ValueNumber
	}
}

// AsString returns the string held by v, if it holds one.
func (v Value) AsString() (string, bool) {
	if v.Kind() != ValueString {
		return "", false
	}
	var s string
	if err := json.Unmarshal(v.raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// AsNumber returns the number held by v, if it holds one.
func (v Value) AsNumber() (float64, bool) {
	if v.Kind() != ValueNumber {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(v.raw, &f); err != nil {
		return 0, false
	}
	return f, true
}

// Describe renders the value with its JSON type for error messages,
// e.g. `number 2059` or `string "59"`.
func (v Value) Describe() string {
	switch v.Kind() {
	case ValueAbsent:
		return "nothing"
	case ValueNull:
		return "null"
	default:
		return fmt.Sprintf("%s %s", v.Kind(), string(v.raw))
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	if len(v.raw) == 0 {
		return []byte("null"), nil
	}
	return v.raw, nil
}

func (v *Value) UnmarshalJSON(data []byte) error {
	v.raw = append(json.RawMessage(nil), bytes.TrimSpace(data)...)
	return nil
}
