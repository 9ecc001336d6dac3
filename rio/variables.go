// SPDX-License-Identifier: MIT

package rio

import (
	"errors"
	"fmt"
	"io"
	"os"

	errs "github.com/bdlm/errors"
	"github.com/bdlm/log"
	jsoniter "github.com/json-iterator/go"

	"github.com/katalvlaran/rcompat/rshim"
)

// Storage holds named variables. *rshim.Object implements it.
type Storage interface {
	Get(name string) (any, bool)
	Set(name string, v any)
}

var _ Storage = (*rshim.Object)(nil)

// Bindings maps variable names to assignment functions.
type Bindings map[string]func(v any) error

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DecodeObject decodes a JSON object keeping key order. Nested objects
// become *rshim.Object, arrays []any, numbers float64. Only whitespace may
// follow the object.
func DecodeObject(data []byte) (*rshim.Object, error) {
	iter := jsoniter.ParseBytes(json, data)
	if iter.WhatIsNext() != jsoniter.ObjectValue {
		return nil, ErrNotObject
	}
	v := readValue(iter)
	// A complete object never reads past its closing brace, so io.EOF here
	// means truncated input.
	if iter.Error != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, iter.Error)
	}
	if iter.WhatIsNext() != jsoniter.InvalidValue || !errors.Is(iter.Error, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after object", ErrDecode)
	}

	return v.(*rshim.Object), nil
}

func readValue(iter *jsoniter.Iterator) any {
	switch iter.WhatIsNext() {
	case jsoniter.ObjectValue:
		o := rshim.NewObject()
		iter.ReadObjectCB(func(it *jsoniter.Iterator, field string) bool {
			o.Set(field, readValue(it))
			return it.Error == nil
		})
		return o
	case jsoniter.ArrayValue:
		out := []any{}
		iter.ReadArrayCB(func(it *jsoniter.Iterator) bool {
			out = append(out, readValue(it))
			return it.Error == nil
		})
		return out
	case jsoniter.StringValue:
		return iter.ReadString()
	case jsoniter.NumberValue:
		return iter.ReadFloat64()
	case jsoniter.BoolValue:
		return iter.ReadBool()
	case jsoniter.NilValue:
		iter.ReadNil()
		return nil
	default:
		iter.ReportError("readValue", "unexpected token")
		return nil
	}
}

// ReadJSONFile decodes the object stored at path.
func ReadJSONFile(path string) (*rshim.Object, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrRead, errs.Wrap(err, 0, "reading "+path))
	}
	o, err := DecodeObject(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return o, nil
}

// ReadJSONVariables returns the top-level keys of the JSON object at path
// in file order.
func ReadJSONVariables(path string) ([]string, error) {
	o, err := ReadJSONFile(path)
	if err != nil {
		return nil, err
	}

	return o.Keys(), nil
}

// LoadJSON binds every top-level key of the JSON object at path into
// store and returns the bound names in file order.
func LoadJSON(path string, store Storage) ([]string, error) {
	o, err := ReadJSONFile(path)
	if err != nil {
		return nil, err
	}
	names := o.Keys()
	for _, name := range names {
		v, _ := o.Get(name)
		store.Set(name, v)
	}
	log.WithField("path", path).Debugf("loaded %d variables", len(names))

	return names, nil
}

// LoadJSONInto calls the binding of every top-level key of the JSON object
// at path. A key without a binding fails with ErrUnboundVariable before any
// binding runs.
func LoadJSONInto(path string, b Bindings) error {
	o, err := ReadJSONFile(path)
	if err != nil {
		return err
	}
	for _, name := range o.Keys() {
		if b[name] == nil {
			return fmt.Errorf("LoadJSONInto(%s): %q: %w", path, name, ErrUnboundVariable)
		}
	}
	for _, name := range o.Keys() {
		v, _ := o.Get(name)
		if err := b[name](v); err != nil {
			return fmt.Errorf("LoadJSONInto(%s): %q: %w", path, name, err)
		}
	}

	return nil
}

// CreateJSONString encodes the named variables of store as one JSON object,
// keys in the order given.
func CreateJSONString(store Storage, variables ...string) (string, error) {
	out := rshim.NewObject()
	for _, name := range variables {
		v, ok := store.Get(name)
		if !ok {
			return "", fmt.Errorf("CreateJSONString: %q: %w", name, ErrUnboundVariable)
		}
		out.Set(name, v)
	}
	b, err := json.Marshal(out)
	if err != nil {
		return "", err
	}

	return string(b), nil
}
