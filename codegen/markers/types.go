package markers

import (
	"fmt"
	"strings"

	"goa.design/beans/runtime/beans"
)

const (
	// DefinitionMarker marks the bean struct.
	DefinitionMarker = "//bean:definition"
	// PropertyMarker marks a bean property.
	PropertyMarker = "//bean:property"

	// ValidateNotNull is the only supported validate option value.
	ValidateNotNull = "notNull"
)

type (
	// BeanModel is the parsed form of one bean declaration.
	BeanModel struct {
		// Name is the struct name.
		Name string
		// TypeParams is the raw type parameter list without brackets, for
		// example "K comparable, V map[string][]string".
		TypeParams string
		// TypeParamNames lists the type parameter names in order.
		TypeParamNames []string
		// Immutable is set by style=immutable on the definition marker.
		Immutable bool
		// Properties lists the declared properties in document order.
		Properties []*PropertyDeclaration
		// HeaderLine is the 0-based line of the struct header.
		HeaderLine int
	}

	// PropertyDeclaration is one property marker and the declaration it
	// annotates.
	PropertyDeclaration struct {
		// Name is the property name.
		Name string
		// FieldName is the struct field name, or the method name of derived
		// properties.
		FieldName string
		// Type is the raw declared type text.
		Type string
		// Style classifies the property.
		Style beans.Style
		// Validate is the validation rule, ValidateNotNull or empty.
		Validate string
		// Accessor overrides the generated getter name.
		Accessor string
		// Initializer is the expression the bean factory assigns to the field.
		Initializer string
		// Line is the 0-based line of the declaration.
		Line int
	}

	// StructuralError reports malformed or inconsistent bean markup. Generation
	// of the offending unit stops; other units are unaffected.
	StructuralError struct {
		// File names the unit, set by the generation driver.
		File string
		// Line is 1-based, 0 when the error is not tied to a line.
		Line int
		// Msg describes the problem.
		Msg string
	}
)

// Errorf returns a StructuralError at the 0-based line idx.
func Errorf(idx int, format string, args ...any) *StructuralError {
	return &StructuralError{Line: idx + 1, Msg: fmt.Sprintf(format, args...)}
}

func (e *StructuralError) Error() string {
	var sb strings.Builder
	if e.File != "" {
		sb.WriteString(e.File)
		sb.WriteByte(':')
	}
	if e.Line > 0 {
		fmt.Fprintf(&sb, "%d:", e.Line)
	}
	if sb.Len() > 0 {
		sb.WriteByte(' ')
	}
	sb.WriteString(e.Msg)
	return sb.String()
}

// Generic reports whether the bean has type parameters.
func (m *BeanModel) Generic() bool {
	return len(m.TypeParamNames) > 0
}

// TypeRef returns the bean type as referenced inside its own methods, for
// example "Pair[F, S]".
func (m *BeanModel) TypeRef() string {
	if !m.Generic() {
		return m.Name
	}
	return m.Name + "[" + strings.Join(m.TypeParamNames, ", ") + "]"
}

// Stored returns the properties backed by a struct field.
func (m *BeanModel) Stored() []*PropertyDeclaration {
	var stored []*PropertyDeclaration
	for _, p := range m.Properties {
		if p.Style != beans.StyleDerived {
			stored = append(stored, p)
		}
	}
	return stored
}

// Validated reports whether the setter rejects nil.
func (p *PropertyDeclaration) Validated() bool {
	return p.Validate == ValidateNotNull || p.Style == beans.StyleCollection
}

// Slice reports whether the property type is a slice.
func (p *PropertyDeclaration) Slice() bool {
	return strings.HasPrefix(p.Type, "[]")
}

// Map reports whether the property type is a map.
func (p *PropertyDeclaration) Map() bool {
	return strings.HasPrefix(p.Type, "map[")
}

// Elem returns the pointed-to type of pointer properties.
func (p *PropertyDeclaration) Elem() string {
	return strings.TrimPrefix(p.Type, "*")
}
