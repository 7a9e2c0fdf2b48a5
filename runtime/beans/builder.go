package beans

import (
	"maps"
	"reflect"
	"slices"

	"github.com/go-viper/mapstructure/v2"
)

type (
	// BeanBuilder assigns properties by name and produces a bean. Builders are
	// owned by a single goroutine.
	BeanBuilder interface {
		// MetaBean returns the meta-bean of the bean being built.
		MetaBean() *MetaBean
		// Get returns the value currently assigned to the named property.
		Get(name string) (any, error)
		// Set assigns value to the named property.
		Set(name string, value any) error
		// SetString converts text to the property type and assigns it.
		SetString(name, text string) error
		// SetAll assigns every entry in name order, stopping at the first
		// failure.
		SetAll(values map[string]any) error
		// Build returns the bean, or an error and no bean.
		Build() (any, error)
	}

	// mutatingBuilder writes straight through to an allocated bean.
	mutatingBuilder struct {
		meta *MetaBean
		bean any
	}

	// accumulatingBuilder collects values and allocates the bean in Build.
	accumulatingBuilder struct {
		meta   *MetaBean
		values map[string]any
	}
)

// BuildAs builds b and returns the bean as B.
func BuildAs[B any](b BeanBuilder) (B, error) {
	var zero B
	v, err := b.Build()
	if err != nil {
		return zero, err
	}
	bean, ok := v.(B)
	if !ok {
		return zero, mismatch(b.MetaBean().Name(), "", "built %T, not %v", v, reflect.TypeFor[B]())
	}
	return bean, nil
}

func newMutatingBuilder(mb *MetaBean, bean any) *mutatingBuilder {
	return &mutatingBuilder{meta: mb, bean: bean}
}

func (b *mutatingBuilder) MetaBean() *MetaBean { return b.meta }

func (b *mutatingBuilder) Get(name string) (any, error) {
	return b.meta.PropertyGet(b.bean, name)
}

func (b *mutatingBuilder) Set(name string, value any) error {
	return b.meta.PropertySet(b.bean, name, value)
}

func (b *mutatingBuilder) SetString(name, text string) error {
	return setString(b, b.meta, name, text)
}

func (b *mutatingBuilder) SetAll(values map[string]any) error {
	return setAll(b, values)
}

// Build returns the wrapped bean; every assignment was already applied.
func (b *mutatingBuilder) Build() (any, error) {
	return b.bean, nil
}

func newAccumulatingBuilder(mb *MetaBean) *accumulatingBuilder {
	return &accumulatingBuilder{meta: mb, values: make(map[string]any, mb.MetaPropertyCount())}
}

func (b *accumulatingBuilder) MetaBean() *MetaBean { return b.meta }

// Get returns the pending value, or the zero value of the property type when
// nothing was assigned.
func (b *accumulatingBuilder) Get(name string) (any, error) {
	mp, err := b.meta.MetaProperty(name)
	if err != nil {
		return nil, err
	}
	if mp.Style() == StyleDerived {
		return nil, unsupported(b.meta.name, name, "derived properties are not built")
	}
	if v, ok := b.values[name]; ok {
		return v, nil
	}
	return reflect.Zero(mp.PropertyType()).Interface(), nil
}

// Set records value. Nil for a required property is accepted here and
// rejected by Build.
func (b *accumulatingBuilder) Set(name string, value any) error {
	mp, err := b.meta.MetaProperty(name)
	if err != nil {
		return err
	}
	if mp.Style() == StyleDerived {
		return unsupported(b.meta.name, name, "derived property is read-only")
	}
	if !(mp.Required() && isNil(value)) {
		if err := mp.Validate(value); err != nil {
			return err
		}
	}
	b.values[name] = value
	return nil
}

func (b *accumulatingBuilder) SetString(name, text string) error {
	return setString(b, b.meta, name, text)
}

func (b *accumulatingBuilder) SetAll(values map[string]any) error {
	return setAll(b, values)
}

// Build allocates the bean, applies the pending values in declaration order
// and validates the result.
func (b *accumulatingBuilder) Build() (any, error) {
	for _, mp := range b.meta.props {
		if !mustSupply(mp) {
			continue
		}
		if v, ok := b.values[mp.Name()]; !ok || isNil(v) {
			return nil, invalid(b.meta.name, mp.Name(), "required property not set")
		}
	}
	bean := b.meta.newBean()
	for _, mp := range b.meta.props {
		v, ok := b.values[mp.Name()]
		if !ok {
			continue
		}
		if err := mp.assign(bean, v); err != nil {
			return nil, err
		}
	}
	if err := b.meta.Validate(bean); err != nil {
		return nil, err
	}
	return bean, nil
}

// mustSupply reports whether an accumulating builder requires a value for
// mp. Collections are covered by the bean factory defaults.
func mustSupply(mp MetaProperty) bool {
	return mp.Required() && mp.Style() != StyleDerived && mp.Style() != StyleCollection
}

func setString(b BeanBuilder, mb *MetaBean, name, text string) error {
	mp, err := mb.MetaProperty(name)
	if err != nil {
		return err
	}
	if mp.Style() == StyleDerived {
		return unsupported(mb.name, name, "derived property is read-only")
	}
	target := reflect.New(mp.PropertyType())
	if err := mapstructure.WeakDecode(text, target.Interface()); err != nil {
		return mismatch(mb.name, name, "cannot convert %q to %v: %v", text, mp.PropertyType(), err)
	}
	return b.Set(name, target.Elem().Interface())
}

func setAll(b BeanBuilder, values map[string]any) error {
	for _, name := range slices.Sorted(maps.Keys(values)) {
		if err := b.Set(name, values[name]); err != nil {
			return err
		}
	}
	return nil
}
