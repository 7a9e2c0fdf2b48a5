package ser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"goa.design/beans/runtime/beans"
)

const draft = "https://json-schema.org/draft/2020-12/schema"

var (
	timeType = reflect.TypeFor[time.Time]()

	// compiled caches compiled schemas per meta-bean.
	compiled sync.Map // *beans.MetaBean -> *jsonschema.Schema
)

// JSONSchema returns the JSON Schema of the JSON encoding of beans described
// by mb. Required properties are listed as required and unknown properties
// are rejected.
func JSONSchema(mb *beans.MetaBean) ([]byte, error) {
	props := make(map[string]any, mb.MetaPropertyCount())
	var required []string
	for name, mp := range mb.MetaPropertyMap().All() {
		if mp.Style() == beans.StyleDerived {
			continue
		}
		props[name] = typeSchema(mp.PropertyType(), 0)
		if mp.Required() {
			required = append(required, name)
		}
	}
	doc := map[string]any{
		"$schema":              draft,
		"title":                mb.Name(),
		"type":                 "object",
		"properties":           props,
		"additionalProperties": false,
	}
	if len(required) > 0 {
		doc["required"] = required
	}
	return json.Marshal(doc)
}

// ValidateJSON validates data against the JSON Schema of mb.
func ValidateJSON(mb *beans.MetaBean, data []byte) error {
	schema, err := compile(mb)
	if err != nil {
		return err
	}
	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode %s instance: %w", mb.Name(), err)
	}
	return schema.Validate(instance)
}

func compile(mb *beans.MetaBean) (*jsonschema.Schema, error) {
	if s, ok := compiled.Load(mb); ok {
		return s.(*jsonschema.Schema), nil
	}
	raw, err := JSONSchema(mb)
	if err != nil {
		return nil, fmt.Errorf("generate %s schema: %w", mb.Name(), err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("unmarshal %s schema: %w", mb.Name(), err)
	}
	url := mb.Name() + ".json"
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	schema, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	s, _ := compiled.LoadOrStore(mb, schema)
	return s.(*jsonschema.Schema), nil
}

// typeSchema maps a Go type to the schema of its encoding/json form.
func typeSchema(t reflect.Type, depth int) map[string]any {
	if depth > 8 {
		return map[string]any{}
	}
	if t == timeType {
		return map[string]any{"type": "string", "format": "date-time"}
	}
	switch t.Kind() {
	case reflect.Bool:
		return map[string]any{"type": "boolean"}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return map[string]any{"type": "integer"}
	case reflect.Float32, reflect.Float64:
		return map[string]any{"type": "number"}
	case reflect.String:
		return map[string]any{"type": "string"}
	case reflect.Pointer:
		return map[string]any{"anyOf": []any{typeSchema(t.Elem(), depth+1), map[string]any{"type": "null"}}}
	case reflect.Slice, reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 {
			return map[string]any{"type": "string", "contentEncoding": "base64"}
		}
		return map[string]any{"type": "array", "items": typeSchema(t.Elem(), depth+1)}
	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			return map[string]any{"type": "object"}
		}
		return map[string]any{"type": "object", "additionalProperties": typeSchema(t.Elem(), depth+1)}
	case reflect.Struct:
		return map[string]any{"type": "object"}
	default:
		return map[string]any{}
	}
}
