// Package jsondoc provides an order-preserving JSON object for documents whose
// shape is only partially modeled by Go types.
package jsondoc

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// Member is a single key/value pair of a JSON object, value kept raw.
type Member struct {
	Key   string
	Value json.RawMessage
}

// Object is a JSON object that remembers member order. Members that are never
// touched are written back exactly as they were read.
type Object struct {
	members []Member
}

// Parse reads a JSON object, keeping its members in document order.
// A repeated key keeps its first position and its last value.
func Parse(data []byte) (*Object, error) {
	if !gjson.ValidBytes(data) {
		return nil, &ParseError{Message: "invalid JSON"}
	}
	result := gjson.ParseBytes(data)
	if !result.IsObject() {
		return nil, &ParseError{Message: "expected a JSON object"}
	}

	obj := &Object{}
	result.ForEach(func(key, value gjson.Result) bool {
		obj.SetRaw(key.String(), json.RawMessage(value.Raw))
		return true
	})
	return obj, nil
}

// Len returns the number of members.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.members)
}

// Keys returns the member keys in order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	keys := make([]string, 0, len(o.members))
	for _, m := range o.members {
		keys = append(keys, m.Key)
	}
	return keys
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	return o.index(key) >= 0
}

// Get returns the raw value stored under key.
func (o *Object) Get(key string) (json.RawMessage, bool) {
	i := o.index(key)
	if i < 0 {
		return nil, false
	}
	return o.members[i].Value, true
}

// SetRaw replaces the value of key in place, or appends it when absent.
func (o *Object) SetRaw(key string, value json.RawMessage) {
	if i := o.index(key); i >= 0 {
		o.members[i].Value = value
		return
	}
	o.members = append(o.members, Member{Key: key, Value: value})
}

// Set marshals v and stores it under key.
func (o *Object) Set(key string, v any) error {
	raw, err := Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal member %q: %w", key, err)
	}
	o.SetRaw(key, raw)
	return nil
}

// Clone returns a copy whose member list can be modified independently.
func (o *Object) Clone() *Object {
	if o == nil {
		return &Object{}
	}
	members := make([]Member, len(o.members))
	copy(members, o.members)
	return &Object{members: members}
}

// MarshalJSON writes the members in order.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if o != nil {
		for i, m := range o.members {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := Marshal(m.Key)
			if err != nil {
				return nil, err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if len(m.Value) == 0 {
				buf.WriteString("null")
				continue
			}
			buf.Write(m.Value)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Object) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(data)
	if err != nil {
		return err
	}
	*o = *parsed
	return nil
}

func (o *Object) index(key string) int {
	if o == nil {
		return -1
	}
	for i, m := range o.members {
		if m.Key == key {
			return i
		}
	}
	return -1
}

// Marshal encodes v without HTML escaping and without a trailing newline.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// IsNull reports whether raw is the JSON literal null.
func IsNull(raw []byte) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}
