// Package ser encodes and decodes beans using only their meta-beans. Stored
// properties are written in declaration order; derived properties are
// computed and therefore never serialized.
package ser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"reflect"
	"slices"

	"goa.design/beans/runtime/beans"
)

// MarshalJSON encodes bean as a JSON object keyed by property name.
func MarshalJSON(bean any) ([]byte, error) {
	mb, err := beans.MetaBeanOf(bean)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for name, mp := range mb.MetaPropertyMap().All() {
		if mp.Style() == beans.StyleDerived {
			continue
		}
		v, err := mp.Get(bean)
		if err != nil {
			return nil, err
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode %s.%s: %w", mb.Name(), name, err)
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into a new bean built with the builder
// of mb. Unknown and derived properties are rejected.
func UnmarshalJSON(mb *beans.MetaBean, data []byte) (any, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("decode %s: %w", mb.Name(), err)
	}
	b := mb.Builder()
	for name := range mb.MetaPropertyMap().All() {
		raw, ok := fields[name]
		if !ok {
			continue
		}
		delete(fields, name)
		v, err := decodeJSONValue(mb, name, raw)
		if err != nil {
			return nil, err
		}
		if err := b.Set(name, v); err != nil {
			return nil, err
		}
	}
	if len(fields) > 0 {
		// Leftover fields name no property.
		_, err := mb.MetaProperty(slices.Sorted(maps.Keys(fields))[0])
		return nil, err
	}
	return b.Build()
}

func decodeJSONValue(mb *beans.MetaBean, name string, raw json.RawMessage) (any, error) {
	mp, err := mb.MetaProperty(name)
	if err != nil {
		return nil, err
	}
	if mp.Style() == beans.StyleDerived {
		return nil, &beans.PropertyError{Bean: mb.Name(), Property: name, Kind: beans.ErrUnsupported, Msg: "derived property is read-only"}
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, nil
	}
	target := reflect.New(mp.PropertyType())
	if err := json.Unmarshal(raw, target.Interface()); err != nil {
		return nil, &beans.PropertyError{Bean: mb.Name(), Property: name, Kind: beans.ErrTypeMismatch, Msg: err.Error()}
	}
	return target.Elem().Interface(), nil
}
