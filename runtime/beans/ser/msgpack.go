package ser

import (
	"bytes"
	"fmt"
	"reflect"

	"github.com/vmihailenco/msgpack/v5"
	"goa.design/beans/runtime/beans"
)

// MarshalMsgpack encodes bean as a MessagePack map of its stored properties
// in declaration order.
func MarshalMsgpack(bean any) ([]byte, error) {
	mb, err := beans.MetaBeanOf(bean)
	if err != nil {
		return nil, err
	}
	var stored []beans.MetaProperty
	for _, mp := range mb.MetaPropertyMap().All() {
		if mp.Style() != beans.StyleDerived {
			stored = append(stored, mp)
		}
	}
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := enc.EncodeMapLen(len(stored)); err != nil {
		return nil, err
	}
	for _, mp := range stored {
		v, err := mp.Get(bean)
		if err != nil {
			return nil, err
		}
		if err := enc.EncodeString(mp.Name()); err != nil {
			return nil, err
		}
		if err := enc.Encode(v); err != nil {
			return nil, fmt.Errorf("encode %s.%s: %w", mb.Name(), mp.Name(), err)
		}
	}
	return buf.Bytes(), nil
}

// UnmarshalMsgpack decodes a MessagePack map into a new bean built with the
// builder of mb.
func UnmarshalMsgpack(mb *beans.MetaBean, data []byte) (any, error) {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	n, err := dec.DecodeMapLen()
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", mb.Name(), err)
	}
	b := mb.Builder()
	for range n {
		name, err := dec.DecodeString()
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", mb.Name(), err)
		}
		mp, err := mb.MetaProperty(name)
		if err != nil {
			return nil, err
		}
		target := reflect.New(mp.PropertyType())
		if err := dec.Decode(target.Interface()); err != nil {
			return nil, &beans.PropertyError{Bean: mb.Name(), Property: name, Kind: beans.ErrTypeMismatch, Msg: err.Error()}
		}
		if err := b.Set(name, target.Elem().Interface()); err != nil {
			return nil, err
		}
	}
	return b.Build()
}
