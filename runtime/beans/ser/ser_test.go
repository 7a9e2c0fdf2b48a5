package ser_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"goa.design/beans/runtime/beans"
	"goa.design/beans/runtime/beans/ser"
)

type parcel struct {
	weight int
	label  string
	tags   []string
	note   *string
}

func (*parcel) MetaBean() *beans.MetaBean { return parcelMeta() }

func parcelMeta() *beans.MetaBean { return beans.Load[*parcel](newParcelMeta) }

func newParcelMeta() *beans.MetaBean {
	return beans.NewMetaBean("Parcel", func() *parcel { return &parcel{tags: []string{}} }, []beans.MetaProperty{
		beans.ReadWrite("weight", func(p *parcel) int { return p.weight }, func(p *parcel, v int) error { p.weight = v; return nil }),
		beans.ReadWriteValidated("label", func(p *parcel) string { return p.label }, func(p *parcel, v string) error { p.label = v; return nil }),
		beans.Collection("tags", func(p *parcel) []string { return p.tags }, func(p *parcel, v []string) error { beans.ReplaceSlice(&p.tags, v); return nil }),
		beans.ReadWrite("note", func(p *parcel) *string { return p.note }, func(p *parcel, v *string) error { p.note = v; return nil }),
		beans.Derived("heavy", func(p *parcel) bool { return p.weight > 10 }),
	}, beans.Immutable())
}

func newParcel(t *testing.T) *parcel {
	t.Helper()
	b := parcelMeta().Builder()
	require.NoError(t, b.SetAll(map[string]any{"weight": 12, "label": "fragile", "tags": []string{"a", "b"}}))
	p, err := beans.BuildAs[*parcel](b)
	require.NoError(t, err)
	return p
}

func TestMarshalJSON(t *testing.T) {
	data, err := ser.MarshalJSON(newParcel(t))
	require.NoError(t, err)
	assert.Equal(t, `{"weight":12,"label":"fragile","tags":["a","b"],"note":null}`, string(data))

	_, err = ser.MarshalJSON(struct{}{})
	require.ErrorIs(t, err, beans.ErrTypeMismatch)
}

func TestUnmarshalJSON(t *testing.T) {
	v, err := ser.UnmarshalJSON(parcelMeta(), []byte(`{"label":"fragile","weight":3,"note":"top","tags":["x"]}`))
	require.NoError(t, err)
	p := v.(*parcel)
	assert.Equal(t, 3, p.weight)
	assert.Equal(t, "fragile", p.label)
	assert.Equal(t, []string{"x"}, p.tags)
	require.NotNil(t, p.note)
	assert.Equal(t, "top", *p.note)

	_, err = ser.UnmarshalJSON(parcelMeta(), []byte(`{"weight":3}`))
	require.ErrorIs(t, err, beans.ErrValidation)
	_, err = ser.UnmarshalJSON(parcelMeta(), []byte(`{"label":"x","heavy":true}`))
	require.ErrorIs(t, err, beans.ErrUnsupported)
	_, err = ser.UnmarshalJSON(parcelMeta(), []byte(`{"label":"x","colour":"red"}`))
	require.ErrorIs(t, err, beans.ErrNotFound)
	_, err = ser.UnmarshalJSON(parcelMeta(), []byte(`{"label":"x","weight":"heavy"}`))
	require.ErrorIs(t, err, beans.ErrTypeMismatch)
	_, err = ser.UnmarshalJSON(parcelMeta(), []byte(`[`))
	require.Error(t, err)
}

func TestJSONRoundTrip(t *testing.T) {
	p := newParcel(t)
	data, err := ser.MarshalJSON(p)
	require.NoError(t, err)
	v, err := ser.UnmarshalJSON(parcelMeta(), data)
	require.NoError(t, err)
	assert.Equal(t, p, v)
}

func TestJSONSchema(t *testing.T) {
	raw, err := ser.JSONSchema(parcelMeta())
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "Parcel", doc["title"])
	assert.Equal(t, false, doc["additionalProperties"])
	assert.ElementsMatch(t, []any{"label", "tags"}, doc["required"])
	props := doc["properties"].(map[string]any)
	assert.Len(t, props, 4)
	assert.Equal(t, map[string]any{"type": "integer"}, props["weight"])
	assert.NotContains(t, props, "heavy")
}

func TestValidateJSON(t *testing.T) {
	mb := parcelMeta()
	require.NoError(t, ser.ValidateJSON(mb, []byte(`{"weight":1,"label":"x","tags":[],"note":null}`)))
	require.Error(t, ser.ValidateJSON(mb, []byte(`{"weight":1,"tags":[]}`)))
	require.Error(t, ser.ValidateJSON(mb, []byte(`{"label":"x","tags":[],"weight":"one"}`)))
	require.Error(t, ser.ValidateJSON(mb, []byte(`{"label":"x","tags":[],"extra":1}`)))
	require.Error(t, ser.ValidateJSON(mb, []byte(`{`)))

	data, err := ser.MarshalJSON(newParcel(t))
	require.NoError(t, err)
	require.NoError(t, ser.ValidateJSON(mb, data))
}

func TestMsgpackRoundTrip(t *testing.T) {
	p := newParcel(t)
	note := "handle with care"
	p2, err := beans.BuildAs[*parcel](mustBuilder(t, map[string]any{"weight": 1, "label": "x", "note": &note}))
	require.NoError(t, err)

	for _, want := range []*parcel{p, p2} {
		data, err := ser.MarshalMsgpack(want)
		require.NoError(t, err)
		got, err := ser.UnmarshalMsgpack(parcelMeta(), data)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err = ser.UnmarshalMsgpack(parcelMeta(), []byte{0xc0})
	require.Error(t, err)
}

func mustBuilder(t *testing.T, values map[string]any) beans.BeanBuilder {
	t.Helper()
	b := parcelMeta().Builder()
	require.NoError(t, b.SetAll(values))
	return b
}
