// SPDX-License-Identifier: MIT

package rshim

import (
	"sort"

	jsoniter "github.com/json-iterator/go"
)

// Reserved attribute keys of an object-like value.
const (
	KeyNames = "names"
	KeyNrow  = "nrow"
	KeyNcol  = "ncol"
)

// IsReserved reports whether key is one of the attribute keys that never
// count as data.
func IsReserved(key string) bool {
	return key == KeyNames || key == KeyNrow || key == KeyNcol
}

// Object is an ordered string-keyed mapping. Keys enumerate in first
// insertion order; re-setting a key keeps its position.
type Object struct {
	keys []string
	vals map[string]any
}

// NewObject returns an empty Object.
func NewObject() *Object {
	return &Object{vals: make(map[string]any)}
}

// Set binds key to v.
func (o *Object) Set(key string, v any) {
	if o.vals == nil {
		o.vals = make(map[string]any)
	}
	if _, ok := o.vals[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.vals[key] = v
}

// Get returns the value bound to key.
func (o *Object) Get(key string) (any, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.vals[key]

	return v, ok
}

// Has reports whether key is bound.
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Keys returns every own key, reserved ones included, in order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	cp := make([]string, len(o.keys))
	copy(cp, o.keys)

	return cp
}

// DataKeys returns the own keys that are not reserved, in order.
func (o *Object) DataKeys() []string {
	if o == nil {
		return nil
	}
	out := make([]string, 0, len(o.keys))
	for _, k := range o.keys {
		if !IsReserved(k) {
			out = append(out, k)
		}
	}

	return out
}

// Len is the number of own keys, reserved ones included.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// MarshalJSON writes the object with its keys in order.
func (o *Object) MarshalJSON() ([]byte, error) {
	if o == nil {
		return []byte("null"), nil
	}
	api := jsoniter.ConfigCompatibleWithStandardLibrary
	stream := api.BorrowStream(nil)
	defer api.ReturnStream(stream)

	stream.WriteObjectStart()
	for i, k := range o.keys {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectField(k)
		stream.WriteVal(o.vals[k])
	}
	stream.WriteObjectEnd()
	if stream.Error != nil {
		return nil, stream.Error
	}

	return append([]byte(nil), stream.Buffer()...), nil
}

// objectOf views v as an object-like value. Plain maps get sorted keys.
func objectOf(v any) (*Object, bool) {
	switch x := v.(type) {
	case *Object:
		return x, x != nil
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		o := NewObject()
		for _, k := range keys {
			o.Set(k, x[k])
		}
		return o, true
	default:
		return nil, false
	}
}
