package model_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goa.design/beans/example/model"
	"goa.design/beans/runtime/beans"
	"goa.design/beans/runtime/beans/ser"
)

func buildAddress(t *testing.T, number int, street, city string) *model.Address {
	t.Helper()
	b := model.NewAddressBuilder()
	require.NoError(t, b.SetAll(map[string]any{"number": number, "street": street, "city": city}))
	addr, err := beans.BuildAs[*model.Address](b)
	require.NoError(t, err)
	return addr
}

func TestAddressBuilderScenario(t *testing.T) {
	b := model.NewAddressBuilder()
	require.NoError(t, b.Set("number", 12))
	require.NoError(t, b.Set("street", "Park Lane"))

	bean, err := b.Build()
	assert.Nil(t, bean)
	require.ErrorIs(t, err, beans.ErrValidation)
	assert.Contains(t, err.Error(), "city")

	require.NoError(t, b.Set("city", "Smallville"))
	bean, err = b.Build()
	require.NoError(t, err)
	addr := bean.(*model.Address)
	assert.Equal(t, "Park Lane", addr.Street())
	assert.Equal(t, 12, addr.Number())

	street, err := addr.PropertyGet("street")
	require.NoError(t, err)
	assert.Equal(t, "Park Lane", street)
}

func TestAddressIsImmutable(t *testing.T) {
	addr := buildAddress(t, 1, "High Street", "Leeds")
	assert.True(t, addr.MetaBean().IsImmutable())
	assert.ErrorIs(t, addr.PropertySet("street", "Low Street"), beans.ErrUnsupported)
	assert.Equal(t, "High Street", addr.Street())

	created, ok := addr.MetaBean().CreateBean().(beans.BeanBuilder)
	require.True(t, ok)
	assert.Same(t, addr.MetaBean(), created.MetaBean())
}

func TestAddressValidateBean(t *testing.T) {
	b := model.NewAddressBuilder()
	require.NoError(t, b.SetAll(map[string]any{"number": -1, "street": "Park Lane", "city": "Smallville"}))
	_, err := b.Build()
	assert.ErrorContains(t, err, "Address: negative street number -1")

	assert.ErrorIs(t, b.Set("number", "twelve"), beans.ErrTypeMismatch)
	require.NoError(t, b.SetString("number", "12"))
	_, err = b.Build()
	assert.NoError(t, err)
}

func TestPersonDerivedAddress(t *testing.T) {
	p := new(model.Person)
	require.NoError(t, p.SetForename("Ann"))
	p.SetHome(buildAddress(t, 12, "Park Lane", "Smallville"))

	v, err := p.PropertyGet("address")
	require.NoError(t, err)
	assert.Equal(t, "Park Lane, Smallville", v)

	err = p.PropertySet("address", "elsewhere")
	assert.ErrorIs(t, err, beans.ErrUnsupported)
	assert.NotErrorIs(t, err, beans.ErrNotFound)

	assert.ErrorIs(t, p.PropertySet("unknown", 1), beans.ErrNotFound)
	assert.False(t, p.MetaBean().MustMetaProperty("address").Settable())
}

func TestPersonOptionalHome(t *testing.T) {
	p := new(model.Person)
	assert.False(t, p.Home().IsPresent())

	home := buildAddress(t, 3, "Mill Road", "Ely")
	require.NoError(t, p.PropertySet("home", home))
	got, ok := p.Home().Get()
	require.True(t, ok)
	assert.Same(t, home, got)

	require.NoError(t, p.PropertySet("home", nil))
	assert.False(t, p.Home().IsPresent())
}

func TestPersonCollection(t *testing.T) {
	b := model.NewPersonBuilder()
	require.NoError(t, b.Set("forename", "Ann"))
	p, err := beans.BuildAs[*model.Person](b)
	require.NoError(t, err)
	assert.NotNil(t, p.Nicknames())
	assert.Empty(t, p.Nicknames())

	assert.ErrorIs(t, p.SetNicknames(nil), beans.ErrValidation)
	assert.ErrorIs(t, p.PropertySet("nicknames", nil), beans.ErrValidation)

	names := []string{"Annie", "Nan"}
	require.NoError(t, p.PropertySet("nicknames", names))
	names[0] = "changed"
	assert.Equal(t, []string{"Annie", "Nan"}, p.Nicknames())
}

func TestPersonEqualHashString(t *testing.T) {
	newPerson := func() *model.Person {
		p := new(model.Person)
		require.NoError(t, p.SetForename("Ann"))
		p.SetAge(30)
		require.NoError(t, p.SetNicknames([]string{}))
		return p
	}
	a, b := newPerson(), newPerson()
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.Equal(t, "Person{forename=Ann, age=30, home=nil, nicknames=[]}", a.String())

	b.SetHome(buildAddress(t, 12, "Park Lane", "Smallville"))
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(nil))
	assert.True(t, a.Equal(a))

	c := newPerson()
	c.SetHome(buildAddress(t, 12, "Park Lane", "Smallville"))
	assert.True(t, b.Equal(c), "nested beans compare by value")
	assert.Equal(t, b.Hash(), c.Hash())
}

func TestPersonHandles(t *testing.T) {
	p := new(model.Person)
	prop := p.AgeProperty()
	require.NoError(t, prop.Set(41))
	assert.Equal(t, 41, p.Age())
	assert.Equal(t, "age", prop.Name())
	assert.Equal(t, "age=41", prop.String())

	pm, err := p.MetaBean().PropertyMap(p)
	require.NoError(t, err)
	assert.Equal(t, []string{"forename", "age", "home", "nicknames", "address"}, pm.Names())
}

func TestPairIsGeneric(t *testing.T) {
	p := new(model.Pair[string, int])
	p.SetFirst("a")
	require.NoError(t, p.PropertySet("second", 2))
	assert.Equal(t, 2, p.Second())
	assert.ErrorIs(t, p.PropertySet("second", "two"), beans.ErrTypeMismatch)

	other := new(model.Pair[int, int])
	assert.NotSame(t, p.MetaBean(), other.MetaBean())
	assert.Same(t, p.MetaBean(), new(model.Pair[string, int]).MetaBean())
	assert.Equal(t, reflect.TypeFor[int](), p.MetaBean().MustMetaProperty("second").PropertyType())

	swapped := p.Swap()
	assert.Equal(t, 2, swapped.First())
	assert.Equal(t, "a", swapped.Second())

	b := model.NewPairBuilder[string, int]()
	require.NoError(t, b.Set("first", "x"))
	built, err := beans.BuildAs[*model.Pair[string, int]](b)
	require.NoError(t, err)
	assert.Equal(t, "x", built.First())
}

func TestLightStyles(t *testing.T) {
	l, err := beans.BuildAs[*model.Light](model.NewLightBuilder())
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"main": 0}, l.Channels())
	assert.False(t, l.IsOn())

	l.SetLevel(7)
	level, err := l.PropertyGet("level")
	require.NoError(t, err)
	assert.Equal(t, 7, level)
	brightness, err := l.PropertyGet("brightness")
	require.NoError(t, err)
	assert.Equal(t, 0, brightness)

	require.NoError(t, l.PropertySet("on", true))
	assert.Equal(t, 7, l.Brightness())

	mb := l.MetaBean()
	styles := map[string]beans.Style{
		"on":         beans.StyleReadWrite,
		"level":      beans.StyleFieldOnlyGet,
		"colour":     beans.StyleOptionalWrapped,
		"channels":   beans.StyleCollection,
		"brightness": beans.StyleDerived,
	}
	for name, style := range styles {
		mp := mb.MustMetaProperty(name)
		assert.Equal(t, style, mp.Style(), name)
		assert.Equal(t, reflect.TypeFor[*model.Light](), mp.DeclaringType(), name)
	}
	assert.Equal(t, "Light", mb.Name())
	assert.Equal(t, 5, mb.MetaPropertyCount())
}

func TestAddressJSON(t *testing.T) {
	addr := buildAddress(t, 12, "Park Lane", "Smallville")
	data, err := ser.MarshalJSON(addr)
	require.NoError(t, err)
	assert.JSONEq(t, `{"number":12,"street":"Park Lane","city":"Smallville"}`, string(data))
	require.NoError(t, ser.ValidateJSON(addr.MetaBean(), data))

	back, err := ser.UnmarshalJSON(addr.MetaBean(), data)
	require.NoError(t, err)
	assert.True(t, addr.Equal(back.(*model.Address)))
}
