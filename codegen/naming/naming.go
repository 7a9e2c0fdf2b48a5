package naming

import (
	"go/token"
	"unicode"
	"unicode/utf8"

	"goa.design/goa/v3/codegen"

	"goa.design/beans/codegen/markers"
	"goa.design/beans/runtime/beans"
)

// RuntimePackage is the package name generated code uses to reach the
// property runtime.
const RuntimePackage = "beans"

// Fixed lists the methods generated for every bean regardless of its
// properties.
var Fixed = []string{"MetaBean", "PropertyGet", "PropertySet", "Property", "Equal", "Hash", "String"}

// Exported returns the exported Go spelling of a property name, for example
// "number" -> "Number" and "homeUrl" -> "HomeURL".
func Exported(name string) string {
	return codegen.Goify(name, true)
}

// Receiver returns the receiver name used by generated methods of the bean:
// the lowered first letter of the bean name.
func Receiver(bean string) string {
	r, _ := utf8.DecodeRuneInString(bean)
	if r == utf8.RuneError {
		return "b"
	}
	return string(unicode.ToLower(r))
}

// Getter returns the accessor name of the property, or "" when the style
// generates no accessor.
func Getter(p *markers.PropertyDeclaration) string {
	switch {
	case p.Style == beans.StyleDerived:
		return p.FieldName
	case p.Style == beans.StyleFieldOnlyGet:
		return ""
	case p.Accessor != "":
		return p.Accessor
	default:
		return Exported(p.Name)
	}
}

// Setter returns the mutator name of the property, or "" when none is
// generated.
func Setter(m *markers.BeanModel, p *markers.PropertyDeclaration) string {
	if m.Immutable || p.Style == beans.StyleDerived {
		return ""
	}
	return "Set" + Exported(p.Name)
}

// Handle returns the name of the bound property handle factory.
func Handle(p *markers.PropertyDeclaration) string {
	return Exported(p.Name) + "Property"
}

// Param returns the parameter name the setter of p uses. It falls back to
// "value" when the property name is a keyword, shadows the receiver or the
// runtime package, or is not a plain identifier.
func Param(p *markers.PropertyDeclaration, receiver string) string {
	name := p.Name
	if !token.IsIdentifier(name) || name == receiver || name == RuntimePackage || predeclared[name] {
		return "value"
	}
	return name
}

// MetaFunc returns the name of the package function returning the cached
// meta-bean, for example "addressMeta".
func MetaFunc(bean string) string {
	return lowerFirst(bean) + "Meta"
}

// NewMetaFunc returns the name of the function building the meta-bean, for
// example "newAddressMeta".
func NewMetaFunc(bean string) string {
	return "new" + bean + "Meta"
}

// Builder returns the name of the builder factory, for example
// "NewAddressBuilder".
func Builder(bean string) string {
	return "New" + bean + "Builder"
}

// CheckCollisions reports the first generated name that clashes with another
// generated name, a fixed method or a struct field.
func CheckCollisions(m *markers.BeanModel) error {
	owner := make(map[string]*markers.PropertyDeclaration)
	for _, name := range Fixed {
		owner[name] = nil
	}
	fields := make(map[string]*markers.PropertyDeclaration)
	for _, p := range m.Stored() {
		fields[p.FieldName] = p
	}
	recv := Receiver(m.Name)
	for _, t := range m.TypeParamNames {
		if t == recv {
			return markers.Errorf(m.HeaderLine, "type parameter %s shadows the generated receiver %s", t, recv)
		}
	}
	for _, p := range m.Properties {
		for _, name := range []string{Getter(p), Setter(m, p), Handle(p)} {
			if name == "" {
				continue
			}
			if prev, ok := owner[name]; ok {
				if prev == nil {
					return markers.Errorf(p.Line, "property %s generates %s which collides with a generated bean method", p.Name, name)
				}
				return markers.Errorf(p.Line, "property %s generates %s which collides with property %s", p.Name, name, prev.Name)
			}
			if f, ok := fields[name]; ok {
				return markers.Errorf(f.Line, "field %s shadows the generated method %s of property %s", f.FieldName, name, p.Name)
			}
			owner[name] = p
		}
	}
	for _, f := range m.Stored() {
		if _, ok := owner[f.FieldName]; ok {
			return markers.Errorf(f.Line, "field %s shadows a generated bean method", f.FieldName)
		}
	}
	return nil
}

// predeclared holds identifiers a setter parameter must not shadow because
// generated code refers to them.
var predeclared = map[string]bool{
	"any": true, "bool": true, "error": true, "int": true, "nil": true,
	"string": true, "true": true, "false": true, "new": true,
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
