package beangen

import (
	"fmt"
	"strconv"
	"strings"

	"goa.design/beans/codegen/markers"
	"goa.design/beans/codegen/naming"
	"goa.design/beans/runtime/beans"
)

type (
	// beanData is the template data of the bean-wide sections.
	beanData struct {
		Name        string
		TypeRef     string
		Recv        string
		TypeParams  string // "[F, S any]" or empty
		TypeArgs    string // "[F, S]" or empty
		MetaFunc    string
		NewMetaFunc string
		BuilderFunc string
		Immutable   bool
		Inits       []*propertyData
		Properties  []*propertyData
		Stored      []*propertyData
	}

	// propertyData is the template data of one property.
	propertyData struct {
		Name       string
		Field      string
		Type       string
		Elem       string
		Recv       string
		TypeRef    string
		Getter     string
		EmitGetter bool
		Setter     string
		Handle     string
		Param      string
		Optional   bool
		Validated  bool
		Assign     string
		Init       string
		Entry      string
	}
)

// constructors maps styles to the runtime property constructors.
var constructors = map[beans.Style]string{
	beans.StyleReadWrite:          "ReadWrite",
	beans.StyleReadWriteValidated: "ReadWriteValidated",
	beans.StyleFieldOnlyGet:       "FieldOnlyGet",
	beans.StyleOptionalWrapped:    "OptionalWrapped",
	beans.StyleDerived:            "Derived",
	beans.StyleCollection:         "Collection",
}

func buildBeanData(m *markers.BeanModel) *beanData {
	d := &beanData{
		Name:        m.Name,
		TypeRef:     m.TypeRef(),
		Recv:        naming.Receiver(m.Name),
		MetaFunc:    naming.MetaFunc(m.Name),
		NewMetaFunc: naming.NewMetaFunc(m.Name),
		BuilderFunc: naming.Builder(m.Name),
		Immutable:   m.Immutable,
	}
	if m.Generic() {
		d.TypeParams = "[" + m.TypeParams + "]"
		d.TypeArgs = "[" + strings.Join(m.TypeParamNames, ", ") + "]"
	}
	for _, p := range m.Properties {
		pd := buildPropertyData(m, d, p)
		d.Properties = append(d.Properties, pd)
		if p.Style == beans.StyleDerived {
			continue
		}
		d.Stored = append(d.Stored, pd)
		if pd.Init != "" {
			d.Inits = append(d.Inits, pd)
		}
	}
	return d
}

func buildPropertyData(m *markers.BeanModel, d *beanData, p *markers.PropertyDeclaration) *propertyData {
	pd := &propertyData{
		Name:       p.Name,
		Field:      p.FieldName,
		Type:       p.Type,
		Elem:       p.Elem(),
		Recv:       d.Recv,
		TypeRef:    d.TypeRef,
		Getter:     naming.Getter(p),
		EmitGetter: naming.Getter(p) != "" && p.Style != beans.StyleDerived,
		Setter:     naming.Setter(m, p),
		Handle:     naming.Handle(p),
		Param:      naming.Param(p, d.Recv),
		Optional:   p.Style == beans.StyleOptionalWrapped,
		Validated:  p.Validated(),
		Init:       p.Initializer,
	}
	pd.Assign = assignment(p, d.Recv, pd.Param)
	if pd.Init == "" && p.Style == beans.StyleCollection {
		pd.Init = p.Type + "{}"
	}
	pd.Entry = entry(m, d, p, pd)
	return pd
}

// assignment returns the statement storing param into the field of p.
func assignment(p *markers.PropertyDeclaration, recv, param string) string {
	switch {
	case p.Style == beans.StyleCollection && p.Slice():
		return fmt.Sprintf("beans.ReplaceSlice(&%s.%s, %s)", recv, p.FieldName, param)
	case p.Style == beans.StyleCollection && p.Map():
		return fmt.Sprintf("beans.ReplaceMap(&%s.%s, %s)", recv, p.FieldName, param)
	default:
		return fmt.Sprintf("%s.%s = %s", recv, p.FieldName, param)
	}
}

// entry returns the meta-property constructor call of p.
func entry(m *markers.BeanModel, d *beanData, p *markers.PropertyDeclaration, pd *propertyData) string {
	args := []string{strconv.Quote(p.Name), getExpr(d, p, pd)}
	if p.Style != beans.StyleDerived {
		args = append(args, setExpr(m, d, p, pd))
	}
	if p.Validate == markers.ValidateNotNull && (p.Style == beans.StyleFieldOnlyGet || p.Style == beans.StyleOptionalWrapped) {
		args = append(args, "beans.Required()")
	}
	return "beans." + constructors[p.Style] + "(" + strings.Join(args, ", ") + ")"
}

func getExpr(d *beanData, p *markers.PropertyDeclaration, pd *propertyData) string {
	if pd.Getter != "" && !pd.Optional {
		return "(*" + d.TypeRef + ")." + pd.Getter
	}
	return fmt.Sprintf("func(%s *%s) %s {\n\t\t\treturn %s.%s\n\t\t}", d.Recv, d.TypeRef, p.Type, d.Recv, p.FieldName)
}

func setExpr(m *markers.BeanModel, d *beanData, p *markers.PropertyDeclaration, pd *propertyData) string {
	if !m.Immutable {
		ref := "(*" + d.TypeRef + ")." + pd.Setter
		if pd.Validated {
			return ref
		}
		return "beans.Infallible(" + ref + ")"
	}
	return fmt.Sprintf("func(%s *%s, %s %s) error {\n\t\t\t%s\n\t\t\treturn nil\n\t\t}", d.Recv, d.TypeRef, pd.Param, p.Type, pd.Assign)
}
