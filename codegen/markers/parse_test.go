package markers_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goa.design/beans/codegen/markers"
	"goa.design/beans/runtime/beans"
)

func lines(src string) []string {
	return strings.Split(strings.TrimPrefix(src, "\n"), "\n")
}

const addressSource = `
package example

// Address is a postal address.
//bean:definition
type Address struct {
	//bean:property
	number int
	//bean:property validate=notNull
	street string // street name
	//bean:property get=field
	city string ` + "`json:\"city\"`" + `
	//bean:property get=optional
	owner *Person
	//bean:property
	tags map[string][]string
	// not a property
	scratch int
}

//bean:property style=derived
func (a *Address) Label() string {
	return a.street
}
`

func TestParseAddress(t *testing.T) {
	model, err := markers.Parse(lines(addressSource))
	require.NoError(t, err)
	require.NotNil(t, model)

	assert.Equal(t, "Address", model.Name)
	assert.False(t, model.Immutable)
	assert.False(t, model.Generic())
	assert.Equal(t, "Address", model.TypeRef())
	assert.Equal(t, 4, model.HeaderLine)

	want := []markers.PropertyDeclaration{
		{Name: "number", FieldName: "number", Type: "int", Style: beans.StyleReadWrite, Line: 6},
		{Name: "street", FieldName: "street", Type: "string", Style: beans.StyleReadWriteValidated, Validate: "notNull", Line: 8},
		{Name: "city", FieldName: "city", Type: "string", Style: beans.StyleFieldOnlyGet, Line: 10},
		{Name: "owner", FieldName: "owner", Type: "*Person", Style: beans.StyleOptionalWrapped, Line: 12},
		{Name: "tags", FieldName: "tags", Type: "map[string][]string", Style: beans.StyleCollection, Line: 14},
		{Name: "label", FieldName: "Label", Type: "string", Style: beans.StyleDerived, Line: 20},
	}
	require.Len(t, model.Properties, len(want))
	for i, w := range want {
		assert.Equal(t, w, *model.Properties[i], "property %d", i)
	}
	assert.Len(t, model.Stored(), 5)
	assert.True(t, model.Properties[4].Map())
	assert.True(t, model.Properties[4].Validated())
	assert.Equal(t, "Person", model.Properties[3].Elem())
}

func TestParseNotATarget(t *testing.T) {
	model, err := markers.Parse(lines("package x\n\ntype Plain struct {\n\tn int\n}\n"))
	require.NoError(t, err)
	assert.Nil(t, model)

	model, err = markers.Parse(nil)
	require.NoError(t, err)
	assert.Nil(t, model)
}

func TestParseGenericHeader(t *testing.T) {
	src := `
//bean:definition style=immutable
type Table[K comparable, V map[string][]string] struct {
	//bean:property
	rows map[K]V
	//bean:property init="func() []K { return nil }()"
	keys []K
}
`
	model, err := markers.Parse(lines(src))
	require.NoError(t, err)
	assert.True(t, model.Immutable)
	assert.Equal(t, "K comparable, V map[string][]string", model.TypeParams)
	assert.Equal(t, []string{"K", "V"}, model.TypeParamNames)
	assert.Equal(t, "Table[K, V]", model.TypeRef())
	require.Len(t, model.Properties, 2)
	assert.Equal(t, "map[K]V", model.Properties[0].Type)
	assert.Equal(t, "func() []K { return nil }()", model.Properties[1].Initializer)
}

func TestParseGroupedTypeParams(t *testing.T) {
	model, err := markers.Parse(lines("//bean:definition\ntype Pair[F, S any] struct {\n\t//bean:property\n\tfirst F\n}\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"F", "S"}, model.TypeParamNames)
	assert.Equal(t, "F", model.Properties[0].Type)
}

func TestParseHeaderOnMarkerLine(t *testing.T) {
	model, err := markers.Parse(lines("type Light struct { //bean:definition\n\t//bean:property accessor=IsOn\n\ton bool\n}\n"))
	require.NoError(t, err)
	assert.Equal(t, "Light", model.Name)
	assert.Equal(t, 0, model.HeaderLine)
	assert.Equal(t, "IsOn", model.Properties[0].Accessor)
}

func TestParseBodyBoundaries(t *testing.T) {
	src := `//bean:definition
type Pair[F, S any] struct {
	//bean:property
	first F ` + "`json:\"}\"`" + `
	nested struct {
		x int // }
	}
	//bean:property
	second S
}

//bean:property style=derived
func (p Pair[F, S]) Label() string {
	return "}"
}

//bean:property style=derived
func (*Pair[F, S]) Kind() string {
	return "pair"
}
`
	model, err := markers.Parse(lines(src))
	require.NoError(t, err)
	require.Len(t, model.Properties, 4)
	assert.Equal(t, "second", model.Properties[1].Name)
	assert.Equal(t, "label", model.Properties[2].Name)
	assert.Equal(t, "kind", model.Properties[3].Name)
}

func TestParseFieldPrefix(t *testing.T) {
	p := markers.Parser{FieldPrefix: "f"}
	model, err := p.Parse(lines("//bean:definition\ntype Light struct {\n\t//bean:property\n\tfNumber int\n\t//bean:property\n\tf int\n}\n"))
	require.NoError(t, err)
	assert.Equal(t, "number", model.Properties[0].Name)
	assert.Equal(t, "fNumber", model.Properties[0].FieldName)
	assert.Equal(t, "f", model.Properties[1].Name)
}

func TestParseOptionSyntax(t *testing.T) {
	model, err := markers.Parse(lines(`//bean:definition
type Light struct {
	//bean:property validate=notNull,accessor=Colour
	colour *string
	//bean:property init="map[string]int{\"a\": 1}", accessor="Counts"
	counts map[string]int
	//bean:property init=[]string{"x", "y"}
	names []string
}
`))
	require.NoError(t, err)
	assert.Equal(t, "Colour", model.Properties[0].Accessor)
	assert.Equal(t, beans.StyleReadWriteValidated, model.Properties[0].Style)
	assert.Equal(t, `map[string]int{"a": 1}`, model.Properties[1].Initializer)
	assert.Equal(t, "Counts", model.Properties[1].Accessor)
	assert.Equal(t, `[]string{"x", "y"}`, model.Properties[2].Initializer)
}

func TestParseIgnoresGeneratedRegion(t *testing.T) {
	src := `//bean:definition
type Light struct {
	//bean:property
	on bool
}

//------------------------- AUTOGENERATED START -------------------------
//bean:property
func (l *Light) On() bool { return l.on }
//-------------------------- AUTOGENERATED END --------------------------
`
	model, err := markers.Parse(lines(src))
	require.NoError(t, err)
	require.Len(t, model.Properties, 1)
}

func TestParseIgnoresBareRegionMarkers(t *testing.T) {
	src := `//bean:definition
type Light struct {
	//bean:property
	on bool
}
// AUTOGENERATED START
//bean:property
func (l *Light) On() bool { return l.on }
// AUTOGENERATED END`
	model, err := markers.Parse(lines(src))
	require.NoError(t, err)
	require.Len(t, model.Properties, 1)
	assert.True(t, markers.IsGeneratedStart("\t// AUTOGENERATED START"))
	assert.True(t, markers.IsGeneratedEnd("// AUTOGENERATED END"))
}

func TestParseStructuralErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		line int
		msg  string
	}{
		{"duplicate definition", "//bean:definition\ntype A struct {\n}\n//bean:definition\ntype B struct {\n}", 4, "duplicate"},
		{"no header", "//bean:definition\n\n// trailing comment", 1, "not followed by a struct"},
		{"not a struct", "//bean:definition\nfunc main() {", 2, "expected struct declaration"},
		{"interface", "//bean:definition\ntype A interface {", 2, "must be declared as a struct"},
		{"bad definition option", "//bean:definition style=frozen\ntype A struct {", 1, "unsupported option"},
		{"unknown property option", "//bean:definition\ntype A struct {\n//bean:property readonly=true\nn int\n}", 3, "unknown option"},
		{"bad validate", "//bean:definition\ntype A struct {\n//bean:property validate=positive\nn int\n}", 3, "unsupported validation"},
		{"bad get", "//bean:definition\ntype A struct {\n//bean:property get=lazy\nn int\n}", 3, "unsupported getter"},
		{"bad style", "//bean:definition\ntype A struct {\n//bean:property style=computed\nn int\n}", 3, "unsupported style"},
		{"missing equals", "//bean:definition\ntype A struct {\n//bean:property validate\nn int\n}", 3, "missing '='"},
		{"unterminated quote", "//bean:definition\ntype A struct {\n//bean:property init=\"x\nn int\n}", 3, "unterminated quote"},
		{"bad accessor", "//bean:definition\ntype A struct {\n//bean:property accessor=1x\nn int\n}", 3, "not an identifier"},
		{"no declaration", "//bean:definition\ntype A struct {\n//bean:property\n", 3, "not followed by a declaration"},
		{"closing brace", "//bean:definition\ntype A struct {\n//bean:property\n}", 4, "not followed by a field"},
		{"embedded", "//bean:definition\ntype A struct {\n//bean:property\nBase\n}", 4, "embedded"},
		{"embedded pointer", "//bean:definition\ntype A struct {\n//bean:property\n*Base\n}", 4, "embedded"},
		{"embedded qualified", "//bean:definition\ntype A struct {\n//bean:property\nsync.Mutex\n}", 4, "embedded"},
		{"multiple names", "//bean:definition\ntype A struct {\n//bean:property\nx, y int\n}", 4, "one field"},
		{"optional without pointer", "//bean:definition\ntype A struct {\n//bean:property get=optional\nn int\n}", 4, "requires a pointer"},
		{"method without derived", "//bean:definition\ntype A struct {\n}\n//bean:property\nfunc (a *A) N() int {", 5, "style=derived"},
		{"derived on field", "//bean:definition\ntype A struct {\n//bean:property style=derived\nn int\n}", 4, "must annotate a method"},
		{"derived with args", "//bean:definition\ntype A struct {\n}\n//bean:property style=derived\nfunc (a *A) N(x int) int {", 5, "no arguments"},
		{"derived multi result", "//bean:definition\ntype A struct {\n}\n//bean:property style=derived\nfunc (a *A) N() (int, error) {", 5, "single value"},
		{"derived with init", "//bean:definition\ntype A struct {\n}\n//bean:property style=derived init=1\nfunc (a *A) N() int {", 4, "accepts no"},
		{"duplicate property", "//bean:definition\ntype A struct {\n//bean:property\nn int\n//bean:property\nn int\n}", 6, "already declared"},
		{"field of another struct", "//bean:definition\ntype A struct {\n}\n\ntype B struct {\n//bean:property\nsecret int\n}", 6, "outside the A struct body"},
		{"field before the struct", "//bean:property\nn int\n//bean:definition\ntype A struct {\n}", 1, "outside the A struct body"},
		{"method of another type", "//bean:definition\ntype A struct {\n}\n//bean:property style=derived\nfunc (b *B) Size() int {", 5, "receiver B, not A"},
		{"method with similar receiver", "//bean:definition\ntype A struct {\n}\n//bean:property style=derived\nfunc (b AB) Size() int {", 5, "receiver AB, not A"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := markers.Parse(lines(tc.src))
			var serr *markers.StructuralError
			require.ErrorAs(t, err, &serr)
			assert.Equal(t, tc.line, serr.Line)
			assert.Contains(t, serr.Msg, tc.msg)
		})
	}
}

func TestStructuralErrorMessage(t *testing.T) {
	err := markers.Errorf(2, "bad %s", "thing")
	assert.Equal(t, "3: bad thing", err.Error())
	err.File = "address.go"
	assert.Equal(t, "address.go:3: bad thing", err.Error())
	assert.Equal(t, "oops", (&markers.StructuralError{Msg: "oops"}).Error())
}
