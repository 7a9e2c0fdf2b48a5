package beans

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"
)

// maxHashDepth bounds recursion through self-referencing values.
const maxHashDepth = 32

// Equal reports whether a and b are equal property values. Values that
// implement Equal(T) bool decide for themselves; everything else is compared
// with reflect.DeepEqual.
func Equal[T any](a, b T) bool {
	if eq, ok := any(a).(interface{ Equal(T) bool }); ok {
		return eq.Equal(b)
	}
	return reflect.DeepEqual(a, b)
}

// Hash returns a hash code for a property value that is consistent with
// Equal: values that implement Hash() int provide their own, times hash by
// instant, and everything else hashes by structure. Values that decide
// equality with their own Equal method but provide no Hash all hash to 0,
// since their structure may differ between equal values.
func Hash(v any) int {
	if isNil(v) {
		return 0
	}
	if h, ok := v.(interface{ Hash() int }); ok {
		return h.Hash()
	}
	if t, ok := v.(time.Time); ok {
		return hashInt(t.UnixNano())
	}
	rv := reflect.ValueOf(v)
	if hasEqualMethod(rv.Type()) {
		return 0
	}
	return hashValue(rv, 0)
}

// hasEqualMethod reports whether t has a method Equal(T) bool that accepts
// values of t itself, the shape Equal delegates to.
func hasEqualMethod(t reflect.Type) bool {
	m, ok := t.MethodByName("Equal")
	if !ok {
		return false
	}
	mt := m.Type
	// Method types obtained from a reflect.Type include the receiver.
	return mt.NumIn() == 2 && mt.NumOut() == 1 &&
		mt.Out(0).Kind() == reflect.Bool && t.AssignableTo(mt.In(1))
}

func hashValue(rv reflect.Value, depth int) int {
	if !rv.IsValid() || depth > maxHashDepth {
		return 0
	}
	switch rv.Kind() {
	case reflect.Bool:
		if rv.Bool() {
			return 1231
		}
		return 1237
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return hashInt(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return hashInt(int64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return hashFloat(rv.Float())
	case reflect.Complex64, reflect.Complex128:
		c := rv.Complex()
		return 31*hashFloat(real(c)) + hashFloat(imag(c))
	case reflect.String:
		return int(DispatchKey(rv.String()))
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return 0
		}
		return hashValue(rv.Elem(), depth+1)
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return 0
		}
		h := 1
		for i := range rv.Len() {
			h = 31*h + hashValue(rv.Index(i), depth+1)
		}
		return h
	case reflect.Map:
		if rv.IsNil() {
			return 0
		}
		h := 0
		iter := rv.MapRange()
		for iter.Next() {
			h += hashValue(iter.Key(), depth+1) ^ hashValue(iter.Value(), depth+1)
		}
		return h
	case reflect.Struct:
		h := 1
		for i := range rv.NumField() {
			h = 31*h + hashValue(rv.Field(i), depth+1)
		}
		return h
	default:
		// funcs, channels and unsafe pointers are only DeepEqual when nil.
		return 0
	}
}

func hashInt(x int64) int {
	return int(x ^ int64(uint64(x)>>32))
}

func hashFloat(f float64) int {
	if f == 0 {
		f = 0 // fold -0 onto 0
	}
	return hashInt(int64(math.Float64bits(f)))
}

// ToString formats a bean as Name{k1=v1, k2=v2}. keyvals alternates property
// names and values.
func ToString(name string, keyvals ...any) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteByte('{')
	for i := 0; i < len(keyvals); i += 2 {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, keyvals[i])
		sb.WriteByte('=')
		if i+1 < len(keyvals) {
			sb.WriteString(Format(keyvals[i+1]))
		}
	}
	sb.WriteByte('}')
	return sb.String()
}

// Format renders a single property value, dereferencing pointers.
func Format(v any) string {
	if isNil(v) {
		return "nil"
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.Elem().CanInterface() {
		return Format(rv.Elem().Interface())
	}
	return fmt.Sprint(v)
}

// NotNull returns a validation error when v is nil. Values of types that
// cannot be nil always pass.
func NotNull[T any](v T, name string) error {
	if isNil(any(v)) {
		return invalid("", name, "must not be nil")
	}
	return nil
}

// Infallible adapts a setter without an error result to the setter shape
// accepted by the property constructors.
func Infallible[B, P any](set func(B, P)) func(B, P) error {
	return func(b B, v P) error {
		set(b, v)
		return nil
	}
}

// ReplaceSlice replaces the contents of *dst with src, reusing the backing
// array of *dst when it is large enough. The result is never nil.
func ReplaceSlice[S ~[]E, E any](dst *S, src S) {
	if *dst == nil {
		*dst = make(S, 0, len(src))
	}
	*dst = append((*dst)[:0], src...)
}

// ReplaceMap replaces the contents of *dst with src in place, allocating *dst
// when it is nil.
func ReplaceMap[M ~map[K]V, K comparable, V any](dst *M, src M) {
	if *dst == nil {
		*dst = make(M, len(src))
	} else {
		if reflect.ValueOf(*dst).UnsafePointer() == reflect.ValueOf(src).UnsafePointer() {
			return
		}
		clear(*dst)
	}
	for k, v := range src {
		(*dst)[k] = v
	}
}

// isNil reports whether v is nil or a nil value of a nillable kind.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// nillable reports whether the zero value of t is nil.
func nillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}
